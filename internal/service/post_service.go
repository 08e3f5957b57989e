package service

import (
	"context"
	"time"

	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"

	"github.com/google/uuid"
)

// PostService handles the feed listing and user-authored posts.
type PostService struct {
	postRepo repository.PostRepository
}

// ListPostsInput mirrors the feed query parameters.
type ListPostsInput struct {
	Topic  string
	Search string
	SortBy string
	Limit  int
	Offset int
}

// CreatePostInput is the user-authored post payload.
type CreatePostInput struct {
	PostID       string `json:"postId"`
	Topic        string `json:"topic"`
	AuthorName   string `json:"authorName"`
	AuthorHandle string `json:"authorHandle"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
	Type         string `json:"type"`
	ImageURL     string `json:"imageUrl"`
}

// FeedPage is a page of feed posts plus the total for pagination.
type FeedPage struct {
	Posts []models.FeedPost
	Total int64
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List returns a feed page. The total comes from a separate count query;
// staleness under concurrent writes is accepted.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (*FeedPage, error) {
	posts, total, err := s.postRepo.List(ctx, repository.PostListFilter{
		Topic:  in.Topic,
		Search: in.Search,
		SortBy: in.SortBy,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		feed = append(feed, p.ToFeedPost())
	}
	return &FeedPage{Posts: feed, Total: total}, nil
}

// Create stores a user-authored post with zeroed counters. When the client
// does not supply a postId, one is generated. A duplicate postId is a
// conflict, surfaced by the unique index.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("postId và content là bắt buộc / postId and content are required")
	}

	postID := in.PostID
	if postID == "" {
		postID = "user-" + uuid.NewString()
	} else {
		if _, err := s.postRepo.GetByPostID(ctx, postID); err == nil {
			return nil, models.NewConflictError("postId đã tồn tại / postId already exists")
		} else if !repository.IsNotFound(err) {
			return nil, err
		}
	}

	post := &models.Post{
		PostID:       postID,
		Topic:        orDefault(in.Topic, "General"),
		AuthorName:   orDefault(in.AuthorName, "Người dùng"),
		AuthorHandle: orDefault(in.AuthorHandle, "@user"),
		Content:      in.Content,
		Timestamp:    orDefault(in.Timestamp, time.Now().UTC().Format(time.RFC3339)),
		Type:         orDefault(in.Type, models.PostTypePost),
		ImageURL:     in.ImageURL,
		LikedBy:      []string{},
		RetweetedBy:  []string{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the author (by handle) may delete it.
func (s *PostService) Delete(ctx context.Context, postID, authorHandle string) error {
	if authorHandle == "" {
		return models.NewValidationError("authorHandle là bắt buộc / authorHandle is required")
	}

	post, err := s.postRepo.GetByPostID(ctx, postID)
	if repository.IsNotFound(err) {
		return models.NewNotFoundError("Không tìm thấy bài viết / Post not found")
	}
	if err != nil {
		return err
	}
	if post.AuthorHandle != authorHandle {
		return models.NewForbiddenError("Không có quyền xóa / Not authorized to delete")
	}
	return s.postRepo.DeleteByPostID(ctx, postID)
}
