package models

import (
	"time"
)

// Notification types.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationRetweet = "retweet"
	NotificationMention = "mention"
	NotificationFollow  = "follow"
	NotificationSystem  = "system"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t string) bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationRetweet,
		NotificationMention, NotificationFollow, NotificationSystem:
		return true
	}
	return false
}

// Notification is addressed to a user handle and carries bilingual
// title/message pairs. Delivery is "row exists in the store" - there is no
// push channel or delivery guarantee.
type Notification struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"index:idx_notifications_user_read,priority:1;not null" json:"userId"`
	Type           string `gorm:"not null" json:"type"`
	Title          string `gorm:"not null" json:"title"`
	TitleEn        string `gorm:"not null" json:"titleEn"`
	Message        string `gorm:"not null" json:"message"`
	MessageEn      string `gorm:"not null" json:"messageEn"`
	PostID         string `json:"postId,omitempty"`
	FromUserID     string `json:"fromUserId,omitempty"`
	FromUserName   string `json:"fromUserName,omitempty"`
	FromUserAvatar string `json:"fromUserAvatar,omitempty"`
	IsRead         bool   `gorm:"default:false;index:idx_notifications_user_read,priority:2" json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
