package server

import (
	"fmt"

	"vietchronicle/internal/middleware"
	"vietchronicle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RunSeed handles POST /api/seed - wipes posts and repopulates from the
// bundled historical events.
func (s *Server) RunSeed(c *fiber.Ctx) error {
	result, err := s.seedService.Run(c.UserContext())
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	middleware.SeedRuns.Inc()

	return c.JSON(fiber.Map{
		"success":   true,
		"count":     result.Count,
		"topics":    result.Topics,
		"message":   fmt.Sprintf("Đã thêm %d bài viết lịch sử Việt Nam vào database", result.Count),
		"messageEn": fmt.Sprintf("Added %d Vietnamese history posts to the database", result.Count),
	})
}

// GetSeedStatus handles GET /api/seed.
func (s *Server) GetSeedStatus(c *fiber.Ctx) error {
	status, err := s.seedService.Status(c.UserContext())
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}

	return ok(c, fiber.StatusOK, status)
}
