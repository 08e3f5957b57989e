package service

import (
	"context"
	"time"

	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"
)

// StatsService handles per-viewer and global engagement statistics.
type StatsService struct {
	statsRepo repository.StatsRepository
}

// UpdateStatsInput is the client action payload.
type UpdateStatsInput struct {
	OdID      string `json:"odId"`
	SessionID string `json:"sessionId"`
	Action    string `json:"action"`
	Topic     string `json:"topic"`
}

// NewStatsService creates a new stats service.
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// Global returns the site-wide aggregate snapshot.
func (s *StatsService) Global(ctx context.Context) (*models.GlobalStats, error) {
	return s.statsRepo.Global(ctx)
}

// ForViewer returns the viewer's stats, or a zero-valued object when the
// viewer has none yet (no row is created on read).
func (s *StatsService) ForViewer(ctx context.Context, odID string) (*models.UserStats, error) {
	if odID == "" {
		return nil, models.NewValidationError("odId là bắt buộc / odId is required")
	}

	stats, err := s.statsRepo.GetByOdID(ctx, odID)
	if repository.IsNotFound(err) {
		return &models.UserStats{OdID: odID, TopicsExplored: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Record applies an action to the viewer's stats, creating the row on first
// touch. Unknown actions only refresh lastActive/sessionId (best-effort).
func (s *StatsService) Record(ctx context.Context, in UpdateStatsInput) (*models.UserStats, error) {
	if in.OdID == "" || in.SessionID == "" {
		return nil, models.NewValidationError("odId và sessionId là bắt buộc / odId and sessionId are required")
	}

	stats, err := s.statsRepo.GetByOdID(ctx, in.OdID)
	if repository.IsNotFound(err) {
		stats = &models.UserStats{
			OdID:           in.OdID,
			SessionID:      in.SessionID,
			TopicsExplored: []string{},
			LastActive:     time.Now().UTC(),
		}
		if err := s.statsRepo.Create(ctx, stats); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	stats.Apply(in.Action, in.Topic)
	stats.SessionID = in.SessionID
	stats.LastActive = time.Now().UTC()

	if err := s.statsRepo.Save(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
