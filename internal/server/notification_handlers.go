package server

import (
	"strconv"

	"vietchronicle/internal/models"
	"vietchronicle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications?odId&page&limit&unreadOnly.
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	p := parsePagination(c)
	unreadOnly := c.Query("unreadOnly") == "true"

	page, err := s.notificationService.List(c.UserContext(), c.Query("odId"), unreadOnly, p.Limit, p.Offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"notifications": page.Notifications,
			"unreadCount":   page.UnreadCount,
			"pagination":    paginationMeta(p, page.Total),
		},
	})
}

// CreateNotification handles POST /api/notifications.
func (s *Server) CreateNotification(c *fiber.Ctx) error {
	var in service.CreateNotificationInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	notification, err := s.notificationService.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, notification)
}

// MarkNotificationsRead handles PUT /api/notifications.
func (s *Server) MarkNotificationsRead(c *fiber.Ctx) error {
	var in service.MarkReadInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	unread, err := s.notificationService.MarkRead(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{"unreadCount": unread})
}

// DeleteNotifications handles DELETE /api/notifications?odId&notificationId|deleteAll.
func (s *Server) DeleteNotifications(c *fiber.Ctx) error {
	odID := c.Query("odId")
	deleteAll := c.Query("deleteAll") == "true"

	var notificationID uint
	if raw := c.Query("notificationId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fail(c, models.NewValidationError("notificationId không hợp lệ / Invalid notificationId"))
		}
		notificationID = uint(id)
	}

	if err := s.notificationService.Delete(c.UserContext(), odID, notificationID, deleteAll); err != nil {
		return fail(c, err)
	}

	return okMessage(c, fiber.StatusOK, nil, "Đã xóa thông báo / Notifications deleted")
}
