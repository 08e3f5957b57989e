package models

import (
	"time"
)

// MaxCommentLen caps comment content length.
const MaxCommentLen = 500

// Comment belongs to a post by its external PostID string. Author display
// fields are snapshotted at creation time rather than joined live, so a
// later profile change does not rewrite history.
type Comment struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	PostID     string   `gorm:"index;not null" json:"postId"`
	UserID     string   `gorm:"not null" json:"userId"`
	UserName   string   `gorm:"not null" json:"userName"`
	UserHandle string   `gorm:"not null" json:"userHandle"`
	UserAvatar string   `json:"userAvatar"`
	Content    string   `gorm:"type:text;not null" json:"content"`
	Likes      int      `gorm:"default:0" json:"likes"`
	LikedBy    []string `gorm:"serializer:json" json:"likedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
