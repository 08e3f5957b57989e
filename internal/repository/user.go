package repository

import (
	"context"
	"strings"

	"vietchronicle/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByHandle(ctx context.Context, handle string) (*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Lookups are case-insensitive; registration stores both fields lowercased,
// so folding the argument is enough.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("handle = ?", strings.ToLower(handle)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
