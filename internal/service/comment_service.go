package service

import (
	"context"
	"log/slog"

	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"
)

// CommentService handles comment creation, listing and deletion, including
// the best-effort reply-counter maintenance on the parent post.
type CommentService struct {
	commentRepo      repository.CommentRepository
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// CreateCommentInput is the comment payload. Author fields are optional;
// anonymous defaults apply.
type CreateCommentInput struct {
	PostID     string `json:"postId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserHandle string `json:"userHandle"`
	UserAvatar string `json:"userAvatar"`
	Content    string `json:"content"`
}

// CommentPage is a page of comments with its pagination envelope.
type CommentPage struct {
	Comments []*models.Comment `json:"comments"`
	Total    int64             `json:"-"`
}

// NewCommentService creates a new comment service.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		commentRepo:      commentRepo,
		postRepo:         postRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create stores a comment with author fields snapshotted, bumps the parent
// reply counter (creating a placeholder parent when needed) and notifies the
// post author best-effort.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.PostID == "" || in.UserID == "" || in.Content == "" {
		return nil, models.NewValidationError("postId, userId và content là bắt buộc / postId, userId and content are required")
	}
	if len([]rune(in.Content)) > models.MaxCommentLen {
		return nil, models.NewValidationError("Bình luận quá dài (tối đa 500 ký tự) / Comment too long (max 500 characters)")
	}

	comment := &models.Comment{
		PostID:     in.PostID,
		UserID:     in.UserID,
		UserName:   orDefault(in.UserName, "Người dùng ẩn danh"),
		UserHandle: orDefault(in.UserHandle, "@anonymous"),
		UserAvatar: orDefault(in.UserAvatar, models.DicebearAvatar(in.UserID)),
		Content:    in.Content,
		LikedBy:    []string{},
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reply count and notification are separate writes: non-transactional,
	// drift on partial failure is accepted.
	if err := s.postRepo.IncrementReplies(ctx, in.PostID); err != nil {
		s.logger.Warn("reply counter not incremented",
			"post_id", in.PostID,
			"error", err)
	}
	s.notifyCommented(ctx, in)

	return comment, nil
}

// List returns a page of comments, newest first.
func (s *CommentService) List(ctx context.Context, postID string, limit, offset int) (*CommentPage, error) {
	if postID == "" {
		return nil, models.NewValidationError("postId là bắt buộc / postId is required")
	}
	comments, total, err := s.commentRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return &CommentPage{Comments: comments, Total: total}, nil
}

// Delete removes a comment. Only the comment's author may delete it; the
// parent reply counter is decremented without a floor, as in the original.
func (s *CommentService) Delete(ctx context.Context, commentID uint, userID string) error {
	if userID == "" {
		return models.NewValidationError("commentId và userId là bắt buộc / commentId and userId are required")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if repository.IsNotFound(err) {
		return models.NewNotFoundError("Không tìm thấy bình luận / Comment not found")
	}
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewForbiddenError("Không có quyền xóa / Not authorized to delete")
	}

	if err := s.postRepo.DecrementReplies(ctx, comment.PostID); err != nil {
		s.logger.Warn("reply counter not decremented",
			"post_id", comment.PostID,
			"error", err)
	}
	return s.commentRepo.Delete(ctx, commentID)
}

func (s *CommentService) notifyCommented(ctx context.Context, in CreateCommentInput) {
	post, err := s.postRepo.GetByPostID(ctx, in.PostID)
	if err != nil {
		return
	}
	err = s.notificationRepo.Create(ctx, &models.Notification{
		UserID:         post.AuthorHandle,
		Type:           models.NotificationComment,
		Title:          "Bình luận mới",
		TitleEn:        "New Comment",
		Message:        orDefault(in.UserName, "Ai đó") + " đã bình luận về bài viết của bạn",
		MessageEn:      orDefault(in.UserName, "Someone") + " commented on your post",
		PostID:         in.PostID,
		FromUserID:     in.UserID,
		FromUserName:   in.UserName,
		FromUserAvatar: in.UserAvatar,
	})
	if err != nil {
		s.logger.Warn("comment notification not delivered",
			"post_id", in.PostID,
			"error", err)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
