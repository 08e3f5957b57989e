package server

import (
	"vietchronicle/internal/models"
	"vietchronicle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetStats handles GET /api/stats. With type=global it returns community-wide
// totals; with odId it returns the viewer's own counters.
func (s *Server) GetStats(c *fiber.Ctx) error {
	if c.Query("type") == "global" {
		stats, err := s.statsService.Global(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, fiber.StatusOK, stats)
	}

	stats, err := s.statsService.ForViewer(c.UserContext(), c.Query("odId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, stats)
}

// UpdateStats handles POST /api/stats - best-effort engagement counters.
func (s *Server) UpdateStats(c *fiber.Ctx) error {
	var in service.UpdateStatsInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	stats, err := s.statsService.Record(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, stats)
}
