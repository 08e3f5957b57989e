// Package validation holds request-level input validation helpers.
package validation

import (
	"strings"

	"vietchronicle/internal/models"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// RegisterInput is the registration payload after JSON decoding.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
}

// Validate checks the registration payload. Error messages are bilingual,
// matching the client-facing strings of the original application.
func (in *RegisterInput) Validate() error {
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Handle == "" {
		return models.NewValidationError("Vui lòng điền đầy đủ thông tin / Please fill all fields")
	}
	if len(in.Password) < MinPasswordLen {
		return models.NewValidationError("Mật khẩu phải có ít nhất 6 ký tự / Password must be at least 6 characters")
	}
	return nil
}

// NormalizedEmail folds the email for storage and lookup.
func (in *RegisterInput) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(in.Email))
}

// NormalizedHandle lowercases the handle and strips everything outside
// [a-z0-9_], as the original did. The raw handle seeds the avatar.
func (in *RegisterInput) NormalizedHandle() string {
	return NormalizeHandle(in.Handle)
}

// NormalizeHandle reduces a handle to its canonical stored form.
func NormalizeHandle(handle string) string {
	lower := strings.ToLower(handle)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks presence of both credentials.
func (in *LoginInput) Validate() error {
	if in.Email == "" || in.Password == "" {
		return models.NewValidationError("Vui lòng nhập email và mật khẩu / Please enter email and password")
	}
	return nil
}
