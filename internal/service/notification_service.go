package service

import (
	"context"

	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"
)

// NotificationService handles the notification inbox.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// CreateNotificationInput is the direct notification-creation payload.
type CreateNotificationInput struct {
	UserID         string `json:"userId"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	TitleEn        string `json:"titleEn"`
	Message        string `json:"message"`
	MessageEn      string `json:"messageEn"`
	PostID         string `json:"postId"`
	FromUserID     string `json:"fromUserId"`
	FromUserName   string `json:"fromUserName"`
	FromUserAvatar string `json:"fromUserAvatar"`
}

// MarkReadInput selects which notifications to mark read.
type MarkReadInput struct {
	OdID            string `json:"odId"`
	NotificationIDs []uint `json:"notificationIds"`
	MarkAllRead     bool   `json:"markAllRead"`
}

// NotificationPage is a page of notifications plus counts.
type NotificationPage struct {
	Notifications []*models.Notification
	Total         int64
	UnreadCount   int64
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns a page of notifications for a viewer, newest first, with the
// viewer's unread count alongside.
func (s *NotificationService) List(ctx context.Context, odID string, unreadOnly bool, limit, offset int) (*NotificationPage, error) {
	if odID == "" {
		return nil, models.NewValidationError("odId là bắt buộc / odId is required")
	}

	notifications, total, err := s.notificationRepo.ListByUser(ctx, odID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.CountUnread(ctx, odID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return &NotificationPage{
		Notifications: notifications,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// Create stores a notification. English strings default to the Vietnamese
// ones when omitted, as in the original.
func (s *NotificationService) Create(ctx context.Context, in CreateNotificationInput) (*models.Notification, error) {
	if in.UserID == "" || in.Type == "" || in.Title == "" || in.Message == "" {
		return nil, models.NewValidationError("Thiếu thông tin bắt buộc / Missing required fields")
	}
	if !models.ValidNotificationType(in.Type) {
		return nil, models.NewValidationError("Loại thông báo không hợp lệ / Invalid notification type")
	}

	notification := &models.Notification{
		UserID:         in.UserID,
		Type:           in.Type,
		Title:          in.Title,
		TitleEn:        orDefault(in.TitleEn, in.Title),
		Message:        in.Message,
		MessageEn:      orDefault(in.MessageEn, in.Message),
		PostID:         in.PostID,
		FromUserID:     in.FromUserID,
		FromUserName:   in.FromUserName,
		FromUserAvatar: in.FromUserAvatar,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkRead marks all or selected notifications read and returns the
// remaining unread count.
func (s *NotificationService) MarkRead(ctx context.Context, in MarkReadInput) (int64, error) {
	if in.OdID == "" {
		return 0, models.NewValidationError("odId là bắt buộc / odId is required")
	}

	var err error
	if in.MarkAllRead {
		_, err = s.notificationRepo.MarkAllRead(ctx, in.OdID)
	} else if len(in.NotificationIDs) > 0 {
		_, err = s.notificationRepo.MarkRead(ctx, in.NotificationIDs, in.OdID)
	}
	if err != nil {
		return 0, err
	}
	return s.notificationRepo.CountUnread(ctx, in.OdID)
}

// Delete removes one notification or, with deleteAll, the viewer's whole
// inbox. A missing single notification is ignored, as in the original.
func (s *NotificationService) Delete(ctx context.Context, odID string, notificationID uint, deleteAll bool) error {
	if odID == "" {
		return models.NewValidationError("odId là bắt buộc / odId is required")
	}

	if deleteAll {
		_, err := s.notificationRepo.DeleteAllForUser(ctx, odID)
		return err
	}
	if notificationID == 0 {
		return nil
	}
	err := s.notificationRepo.Delete(ctx, notificationID, odID)
	if repository.IsNotFound(err) {
		return nil
	}
	return err
}
