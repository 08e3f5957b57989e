// Package service implements the application's use cases on top of the
// repositories. Counter updates are read-modify-write without locking; the
// lost-update behavior of the original store is kept on purpose.
package service

import (
	"context"
	"log/slog"

	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"
)

// EngagementService handles like toggling and like-status reads.
type EngagementService struct {
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// ToggleLikeInput is the like/unlike payload.
type ToggleLikeInput struct {
	PostID string `json:"postId"`
	OdID   string `json:"odId"`
	Action string `json:"action"` // "like" or "unlike"
}

// LikeStatus is the engagement snapshot returned by both like endpoints.
type LikeStatus struct {
	PostID  string `json:"postId"`
	Likes   int    `json:"likes"`
	IsLiked bool   `json:"isLiked"`
}

// NewEngagementService creates a new engagement service.
func NewEngagementService(
	postRepo repository.PostRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) *EngagementService {
	return &EngagementService{
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// ToggleLike applies a like or unlike for a viewer. Unknown posts get a
// placeholder row so engagement is never lost. Re-liking or un-liking when
// not in the set is a no-op that still reports the current state.
func (s *EngagementService) ToggleLike(ctx context.Context, in ToggleLikeInput) (*LikeStatus, error) {
	if in.PostID == "" || in.OdID == "" {
		return nil, models.NewValidationError("postId và odId là bắt buộc / postId and odId are required")
	}

	post, err := s.postRepo.GetByPostID(ctx, in.PostID)
	if repository.IsNotFound(err) {
		post = models.NewPlaceholderPost(in.PostID)
		if err := s.postRepo.Create(ctx, post); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	switch in.Action {
	case "like":
		if post.AddLike(in.OdID) {
			s.notifyLiked(ctx, post, in.OdID)
		}
	case "unlike":
		post.RemoveLike(in.OdID)
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	return &LikeStatus{
		PostID:  post.PostID,
		Likes:   post.Likes,
		IsLiked: post.LikedByUser(in.OdID),
	}, nil
}

// Status returns the like state without mutating anything. Unknown posts
// report zeros rather than 404 so the client can render optimistically.
func (s *EngagementService) Status(ctx context.Context, postID, odID string) (*LikeStatus, error) {
	if postID == "" {
		return nil, models.NewValidationError("postId là bắt buộc / postId is required")
	}

	post, err := s.postRepo.GetByPostID(ctx, postID)
	if repository.IsNotFound(err) {
		return &LikeStatus{PostID: postID}, nil
	}
	if err != nil {
		return nil, err
	}

	isLiked := false
	if odID != "" {
		isLiked = post.LikedByUser(odID)
	}
	return &LikeStatus{
		PostID:  post.PostID,
		Likes:   post.Likes,
		IsLiked: isLiked,
	}, nil
}

// notifyLiked is best-effort: a failed notification never fails the like.
func (s *EngagementService) notifyLiked(ctx context.Context, post *models.Post, odID string) {
	err := s.notificationRepo.Create(ctx, &models.Notification{
		UserID:     post.AuthorHandle,
		Type:       models.NotificationLike,
		Title:      "Lượt thích mới",
		TitleEn:    "New Like",
		Message:    "Ai đó đã thích bài viết của bạn",
		MessageEn:  "Someone liked your post",
		PostID:     post.PostID,
		FromUserID: odID,
	})
	if err != nil {
		s.logger.Warn("like notification not delivered",
			"post_id", post.PostID,
			"error", err)
	}
}
