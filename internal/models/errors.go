package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the wire shape every endpoint responds with.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors. Messages intended for the client are
// bilingual (Vietnamese / English) where the UI shows them directly.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
	}
}

func NewUpstreamError(service string, err error) *AppError {
	return &AppError{
		Code:    "UPSTREAM_ERROR",
		Message: fmt.Sprintf("%s request failed", service),
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Lỗi máy chủ / Server error",
		Err:     err,
	}
}

// RespondWithError writes a standardized error envelope.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	env := Envelope{Success: false}

	if appErr, ok := err.(*AppError); ok {
		env.Error = appErr.Message
		env.Code = appErr.Code
	} else {
		env.Error = err.Error()
	}

	return c.Status(status).JSON(env)
}

// StatusFor maps an AppError code to its HTTP status. Non-AppError values
// are treated as internal failures.
func StatusFor(err error) int {
	appErr, ok := err.(*AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	case "FORBIDDEN":
		return fiber.StatusForbidden
	case "CONFLICT":
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
