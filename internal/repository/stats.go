package repository

import (
	"context"

	"vietchronicle/internal/models"

	"gorm.io/gorm"
)

// StatsRepository defines the interface for engagement statistics operations
type StatsRepository interface {
	GetByOdID(ctx context.Context, odID string) (*models.UserStats, error)
	Create(ctx context.Context, stats *models.UserStats) error
	Save(ctx context.Context, stats *models.UserStats) error
	Global(ctx context.Context) (*models.GlobalStats, error)
}

// statsRepository implements StatsRepository
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetByOdID(ctx context.Context, odID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.db.WithContext(ctx).Where("od_id = ?", odID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) Create(ctx context.Context, stats *models.UserStats) error {
	return r.db.WithContext(ctx).Create(stats).Error
}

func (r *statsRepository) Save(ctx context.Context, stats *models.UserStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

// Global aggregates site-wide counters from the posts and comments tables.
// The numbers come from the stored counter columns, so any drift those
// counters carry shows up here unmodified.
func (r *statsRepository) Global(ctx context.Context) (*models.GlobalStats, error) {
	stats := &models.GlobalStats{}

	type counterSums struct {
		TotalLikes    int64 `gorm:"column:total_likes"`
		TotalRetweets int64 `gorm:"column:total_retweets"`
	}

	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&stats.TotalPosts).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&stats.TotalComments).Error; err != nil {
		return nil, err
	}

	var sums counterSums
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Select("COALESCE(SUM(likes), 0) AS total_likes, COALESCE(SUM(retweets), 0) AS total_retweets").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	stats.TotalLikes = sums.TotalLikes
	stats.TotalRetweets = sums.TotalRetweets

	err = r.db.WithContext(ctx).Model(&models.Post{}).
		Select("topic, COUNT(*) AS count, COALESCE(SUM(likes), 0) AS total_likes").
		Group("topic").
		Order("total_likes DESC").
		Limit(5).
		Scan(&stats.TopTopics).Error
	if err != nil {
		return nil, err
	}
	if stats.TopTopics == nil {
		stats.TopTopics = []models.TopicStats{}
	}

	return stats, nil
}
