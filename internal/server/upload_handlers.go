package server

import (
	"errors"

	"vietchronicle/internal/middleware"
	"vietchronicle/internal/models"

	"github.com/gofiber/fiber/v2"
)

type uploadRequest struct {
	Image  string `json:"image"`
	Folder string `json:"folder"`
}

// UploadImage handles POST /api/upload - image upload to Cloudinary.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	if !s.config.CloudinaryConfigured() {
		return fail(c, models.NewUpstreamError("cloudinary",
			errors.New("cloudinary credentials not configured")))
	}

	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}
	if req.Image == "" {
		return fail(c, models.NewValidationError("Không có ảnh / No image provided"))
	}

	result, err := s.uploader.Upload(c.UserContext(), req.Image, req.Folder)
	if err != nil {
		middleware.UpstreamErrors.WithLabelValues("cloudinary").Inc()
		return fail(c, models.NewUpstreamError("cloudinary", err))
	}

	return okMessage(c, fiber.StatusOK, result, "Upload thành công / Upload successful")
}
