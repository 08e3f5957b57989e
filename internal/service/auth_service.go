package service

import (
	"context"

	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"
	"vietchronicle/internal/validation"
)

// AuthService handles registration and login. There are no sessions or
// tokens; login simply returns the user object and the client persists it.
// Passwords are stored and compared in plaintext, matching the original
// application. Do not reuse this outside the demo.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates an account. Email and handle are stored case-folded and
// checked for duplicates; the raw handle seeds the default avatar.
func (s *AuthService) Register(ctx context.Context, in validation.RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	email := in.NormalizedEmail()
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, models.NewValidationError("Email đã được sử dụng / Email already exists")
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	handle := in.NormalizedHandle()
	if _, err := s.userRepo.GetByHandle(ctx, handle); err == nil {
		return nil, models.NewValidationError("Handle đã được sử dụng / Handle already exists")
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  in.Password,
		Name:      in.Name,
		Handle:    handle,
		AvatarURL: models.DicebearAvatar(in.Handle),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same message so the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if repository.IsNotFound(err) {
		return nil, models.NewUnauthorizedError("Email hoặc mật khẩu không đúng / Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if user.Password != in.Password {
		return nil, models.NewUnauthorizedError("Email hoặc mật khẩu không đúng / Invalid email or password")
	}
	return user, nil
}
