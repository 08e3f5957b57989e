package server

import (
	"vietchronicle/internal/models"
	"vietchronicle/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register.
func (s *Server) Register(c *fiber.Ctx) error {
	var in validation.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	user, err := s.authService.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user.Public(),
		"message": "Đăng ký thành công / Registration successful",
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var in validation.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	user, err := s.authService.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.Public(),
		"message": "Đăng nhập thành công / Login successful",
	})
}
