// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"vietchronicle/internal/cache"
	"vietchronicle/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist. Callers translate it
// into the domain error shape appropriate for their surface.
var ErrNotFound = gorm.ErrRecordNotFound

// PostListFilter carries the filtering and paging options of the feed query.
type PostListFilter struct {
	Topic  string
	Search string
	SortBy string // "likes" (default), "retweets", "replies" or "newest"
	Limit  int
	Offset int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByPostID(ctx context.Context, postID string) (*models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	List(ctx context.Context, filter PostListFilter) ([]*models.Post, int64, error)
	IncrementReplies(ctx context.Context, postID string) error
	DecrementReplies(ctx context.Context, postID string) error
	DeleteByPostID(ctx context.Context, postID string) error
	DeleteAll(ctx context.Context) error
	InsertBatch(ctx context.Context, posts []*models.Post) error
	DistinctTopics(ctx context.Context) ([]string, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

// cachedPost carries the database key alongside the row: Post hides its ID
// from JSON, and a cache hit that lost the key would make a later Save
// insert a duplicate instead of updating.
type cachedPost struct {
	models.Post
	RowID uint `json:"rowId"`
}

// GetByPostID serves reads through the cache; every write path invalidates
// the post key, so staleness is bounded by the TTL.
func (r *postRepository) GetByPostID(ctx context.Context, postID string) (*models.Post, error) {
	var cached cachedPost
	err := cache.Aside(ctx, cache.PostKey(postID), &cached, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&cached.Post).Error; err != nil {
			return err
		}
		cached.RowID = cached.Post.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	cached.Post.ID = cached.RowID
	return &cached.Post, nil
}

// Save persists the full row. Writers read, mutate in memory and Save; the
// last writer wins when two requests race on the same post.
func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Save(post).Error
	if err == nil {
		cache.InvalidatePost(ctx, post.PostID)
		cache.InvalidateFeed(ctx)
	}
	return err
}

// cachedFeedPage bundles the rows with their count so one cache entry keeps
// the pagination total consistent with the page it was computed for.
type cachedFeedPage struct {
	Posts []*models.Post `json:"posts"`
	Total int64          `json:"total"`
}

// isDefaultFirstPage reports whether the filter matches the unfiltered first
// feed page at the default size, the only listing hot enough to cache.
func isDefaultFirstPage(filter PostListFilter) bool {
	return (filter.Topic == "" || filter.Topic == "all") &&
		filter.Search == "" &&
		(filter.SortBy == "" || filter.SortBy == "likes") &&
		filter.Offset == 0 &&
		filter.Limit == 20
}

func (r *postRepository) List(ctx context.Context, filter PostListFilter) ([]*models.Post, int64, error) {
	if isDefaultFirstPage(filter) {
		var page cachedFeedPage
		err := cache.Aside(ctx, cache.FeedFirstPageKey(), &page, cache.FeedTTL, func() error {
			posts, total, err := r.list(ctx, filter)
			if err != nil {
				return err
			}
			page = cachedFeedPage{Posts: posts, Total: total}
			return nil
		})
		if err != nil {
			return nil, 0, err
		}
		return page.Posts, page.Total, nil
	}
	return r.list(ctx, filter)
}

func (r *postRepository) list(ctx context.Context, filter PostListFilter) ([]*models.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{})

	// Topic is a case-insensitive substring match, mirroring the regex
	// filter the original application used.
	if filter.Topic != "" && filter.Topic != "all" {
		query = query.Where("LOWER(topic) LIKE ?", "%"+strings.ToLower(filter.Topic)+"%")
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(content) LIKE ? OR LOWER(author_name) LIKE ? OR LOWER(topic) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case "newest":
		query = query.Order("created_at DESC")
	case "retweets":
		query = query.Order("retweets DESC").Order("created_at DESC")
	case "replies":
		query = query.Order("replies DESC").Order("created_at DESC")
	default: // "likes"
		query = query.Order("likes DESC").Order("created_at DESC")
	}

	var posts []*models.Post
	err := query.Limit(filter.Limit).Offset(filter.Offset).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// IncrementReplies bumps the parent post's reply counter, creating a
// placeholder row when the post only exists in static content.
func (r *postRepository) IncrementReplies(ctx context.Context, postID string) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("post_id = ?", postID).
		UpdateColumn("replies", gorm.Expr("replies + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		placeholder := models.NewPlaceholderPost(postID)
		placeholder.Replies = 1
		if err := r.db.WithContext(ctx).Create(placeholder).Error; err != nil {
			return err
		}
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// DecrementReplies mirrors the original behavior: no floor, a drifted counter
// can go negative and stays visible.
func (r *postRepository) DecrementReplies(ctx context.Context, postID string) error {
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("post_id = ?", postID).
		UpdateColumn("replies", gorm.Expr("replies - 1")).Error
	if err == nil {
		cache.InvalidatePost(ctx, postID)
	}
	return err
}

func (r *postRepository) DeleteByPostID(ctx context.Context, postID string) error {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) DeleteAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Post{}).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *postRepository) InsertBatch(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).CreateInBatches(posts, 100).Error
	if err == nil {
		cache.InvalidateFeed(ctx)
	}
	return err
}

func (r *postRepository) DistinctTopics(ctx context.Context) ([]string, error) {
	var topics []string
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Distinct("topic").
		Order("topic ASC").
		Pluck("topic", &topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
