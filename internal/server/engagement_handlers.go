package server

import (
	"vietchronicle/internal/models"
	"vietchronicle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /api/posts/like.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	var in service.ToggleLikeInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	status, err := s.engagementService.ToggleLike(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, status)
}

// GetLikeStatus handles GET /api/posts/like?postId&odId.
func (s *Server) GetLikeStatus(c *fiber.Ctx) error {
	status, err := s.engagementService.Status(c.UserContext(), c.Query("postId"), c.Query("odId"))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, status)
}
