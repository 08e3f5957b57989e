package models

import (
	"fmt"
	"strings"
	"time"
)

// User is an account in the VietChronicle application. There is no session
// or token model: login returns this object (minus the password) and the
// client persists it locally.
//
// Password is stored and compared as plaintext to match the original
// application's behavior. This is explicitly not production-safe.
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Name       string `gorm:"not null" json:"name"`
	Handle     string `gorm:"uniqueIndex;not null" json:"handle"`
	AvatarURL  string `json:"avatarUrl"`
	Bio        string `gorm:"size:160" json:"bio"`
	IsVerified bool   `gorm:"default:false" json:"isVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the user projection returned by auth endpoints.
type PublicUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	AvatarURL  string `json:"avatarUrl"`
	Bio        string `json:"bio"`
	IsVerified bool   `json:"isVerified"`
}

// Public strips the password and stringifies the ID for the client.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         fmt.Sprintf("%d", u.ID),
		Email:      u.Email,
		Name:       u.Name,
		Handle:     u.Handle,
		AvatarURL:  u.AvatarURL,
		Bio:        u.Bio,
		IsVerified: u.IsVerified,
	}
}

// DicebearAvatar returns the deterministic fallback avatar for a seed string.
func DicebearAvatar(seed string) string {
	return "https://api.dicebear.com/7.x/personas/svg?seed=" + strings.TrimPrefix(seed, "@")
}
