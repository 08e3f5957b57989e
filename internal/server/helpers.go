package server

import (
	"strconv"

	"vietchronicle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Pagination carries the parsed page/limit query parameters.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// parsePagination reads page & limit query params with sane defaults and caps.
func parsePagination(c *fiber.Ctx) Pagination {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// paginationMeta builds the pagination block included in list responses.
func paginationMeta(p Pagination, total int64) fiber.Map {
	totalPages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		totalPages++
	}
	return fiber.Map{
		"page":       p.Page,
		"limit":      p.Limit,
		"total":      total,
		"totalPages": totalPages,
	}
}

// fail writes the standard error envelope with the status mapped from the
// error's code.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusFor(err), err)
}

// ok writes a success envelope with the given payload.
func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(models.Envelope{
		Success: true,
		Data:    data,
	})
}

// okMessage writes a success envelope carrying both a payload and a
// human-readable bilingual message.
func okMessage(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(models.Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}
