package service

import (
	"context"
	"fmt"
	"log/slog"

	"vietchronicle/internal/content"
	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// SeedService wipes and repopulates the posts table from the static events
// file. Destructive, intended for demo/dev environments.
type SeedService struct {
	postRepo repository.PostRepository
	store    *content.Store
	logger   *slog.Logger
}

// SeedResult reports what a seeding run produced.
type SeedResult struct {
	Count  int      `json:"count"`
	Topics []string `json:"topics"`
}

// SeedStatus is the read-only seeding snapshot.
type SeedStatus struct {
	TotalPosts   int64    `json:"totalPosts"`
	Topics       []string `json:"topics"`
	EventsInFile int      `json:"eventsInFile"`
	Message      string   `json:"message"`
}

// NewSeedService creates a new seed service.
func NewSeedService(postRepo repository.PostRepository, store *content.Store, logger *slog.Logger) *SeedService {
	return &SeedService{postRepo: postRepo, store: store, logger: logger}
}

// Run clears all posts and inserts one per event with randomized engagement
// counters, so the demo feed looks lived-in.
func (s *SeedService) Run(ctx context.Context) (*SeedResult, error) {
	events, err := s.store.Events()
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}

	posts := make([]*models.Post, 0, len(events))
	topicSet := make(map[string]bool)
	topics := make([]string, 0)
	for _, event := range events {
		posts = append(posts, &models.Post{
			PostID:          "vn-" + event.ID,
			Topic:           event.Topic,
			AuthorName:      event.AuthorName,
			AuthorHandle:    event.AuthorHandle,
			AuthorAvatarURL: event.AvatarURL,
			Content:         event.Content,
			Timestamp:       event.Timestamp,
			Type:            event.Type,
			Likes:           gofakeit.Number(100_000, 600_000),
			Retweets:        gofakeit.Number(50_000, 250_000),
			Replies:         gofakeit.Number(20_000, 120_000),
			LikedBy:         []string{},
			RetweetedBy:     []string{},
		})
		if !topicSet[event.Topic] {
			topicSet[event.Topic] = true
			topics = append(topics, event.Topic)
		}
	}

	if err := s.postRepo.InsertBatch(ctx, posts); err != nil {
		return nil, err
	}

	s.logger.Info("database seeded",
		"posts", len(posts),
		"topics", len(topics))

	return &SeedResult{Count: len(posts), Topics: topics}, nil
}

// Status reports the current post count, distinct topics and the size of the
// events file.
func (s *SeedService) Status(ctx context.Context) (*SeedStatus, error) {
	events, err := s.store.Events()
	if err != nil {
		return nil, err
	}

	_, total, err := s.postRepo.List(ctx, repository.PostListFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	topics, err := s.postRepo.DistinctTopics(ctx)
	if err != nil {
		return nil, err
	}

	message := "Database trống / Database is empty"
	if total > 0 {
		message = fmt.Sprintf("Database có %d bài viết / Database has %d posts", total, total)
	}

	return &SeedStatus{
		TotalPosts:   total,
		Topics:       topics,
		EventsInFile: len(events),
		Message:      message,
	}, nil
}
