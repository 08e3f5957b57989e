package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vietchronicle/internal/database"
	"vietchronicle/internal/models"
	"vietchronicle/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn           func(context.Context, *models.Post) error
	getByPostIDFn      func(context.Context, string) (*models.Post, error)
	saveFn             func(context.Context, *models.Post) error
	listFn             func(context.Context, repository.PostListFilter) ([]*models.Post, int64, error)
	incrementRepliesFn func(context.Context, string) error
	decrementRepliesFn func(context.Context, string) error
	deleteByPostIDFn   func(context.Context, string) error
	deleteAllFn        func(context.Context) error
	insertBatchFn      func(context.Context, []*models.Post) error
	distinctTopicsFn   func(context.Context) ([]string, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByPostID(ctx context.Context, postID string) (*models.Post, error) {
	return s.getByPostIDFn(ctx, postID)
}
func (s *postRepoStub) Save(ctx context.Context, post *models.Post) error {
	return s.saveFn(ctx, post)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.PostListFilter) ([]*models.Post, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) IncrementReplies(ctx context.Context, postID string) error {
	return s.incrementRepliesFn(ctx, postID)
}
func (s *postRepoStub) DecrementReplies(ctx context.Context, postID string) error {
	return s.decrementRepliesFn(ctx, postID)
}
func (s *postRepoStub) DeleteByPostID(ctx context.Context, postID string) error {
	return s.deleteByPostIDFn(ctx, postID)
}
func (s *postRepoStub) DeleteAll(ctx context.Context) error {
	return s.deleteAllFn(ctx)
}
func (s *postRepoStub) InsertBatch(ctx context.Context, posts []*models.Post) error {
	return s.insertBatchFn(ctx, posts)
}
func (s *postRepoStub) DistinctTopics(ctx context.Context) ([]string, error) {
	return s.distinctTopicsFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByPostIDFn: func(_ context.Context, postID string) (*models.Post, error) {
			return &models.Post{PostID: postID}, nil
		},
		saveFn: func(_ context.Context, _ *models.Post) error { return nil },
		listFn: func(_ context.Context, _ repository.PostListFilter) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		incrementRepliesFn: func(_ context.Context, _ string) error { return nil },
		decrementRepliesFn: func(_ context.Context, _ string) error { return nil },
		deleteByPostIDFn:   func(_ context.Context, _ string) error { return nil },
		deleteAllFn:        func(_ context.Context) error { return nil },
		insertBatchFn:      func(_ context.Context, _ []*models.Post) error { return nil },
		distinctTopicsFn:   func(_ context.Context) ([]string, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, string, int, int) ([]*models.Comment, int64, error)
	deleteFn     func(context.Context, uint) error
	deleteAllFn  func(context.Context) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) DeleteAll(ctx context.Context) error {
	return s.deleteAllFn(ctx)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ string, _, _ int) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
		deleteAllFn: func(_ context.Context) error { return nil },
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn           func(context.Context, *models.Notification) error
	listByUserFn       func(context.Context, string, bool, int, int) ([]*models.Notification, int64, error)
	countUnreadFn      func(context.Context, string) (int64, error)
	markReadFn         func(context.Context, []uint, string) (int64, error)
	markAllReadFn      func(context.Context, string) (int64, error)
	deleteFn           func(context.Context, uint, string) error
	deleteAllForUserFn func(context.Context, string) (int64, error)
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*models.Notification, int64, error) {
	return s.listByUserFn(ctx, userID, unreadOnly, limit, offset)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, ids []uint, userID string) (int64, error) {
	return s.markReadFn(ctx, ids, userID)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.markAllReadFn(ctx, userID)
}
func (s *notificationRepoStub) Delete(ctx context.Context, id uint, userID string) error {
	return s.deleteFn(ctx, id, userID)
}
func (s *notificationRepoStub) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	return s.deleteAllForUserFn(ctx, userID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn: func(_ context.Context, _ *models.Notification) error { return nil },
		listByUserFn: func(_ context.Context, _ string, _ bool, _, _ int) ([]*models.Notification, int64, error) {
			return nil, 0, nil
		},
		countUnreadFn:      func(_ context.Context, _ string) (int64, error) { return 0, nil },
		markReadFn:         func(_ context.Context, _ []uint, _ string) (int64, error) { return 0, nil },
		markAllReadFn:      func(_ context.Context, _ string) (int64, error) { return 0, nil },
		deleteFn:           func(_ context.Context, _ uint, _ string) error { return nil },
		deleteAllForUserFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn      func(context.Context, *models.User) error
	getByEmailFn  func(context.Context, string) (*models.User, error)
	getByHandleFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	return s.getByHandleFn(ctx, handle)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:      func(_ context.Context, _ *models.User) error { return nil },
		getByEmailFn:  func(_ context.Context, _ string) (*models.User, error) { return nil, repository.ErrNotFound },
		getByHandleFn: func(_ context.Context, _ string) (*models.User, error) { return nil, repository.ErrNotFound },
	}
}

// statsRepoStub is a stub for repository.StatsRepository.
type statsRepoStub struct {
	getByOdIDFn func(context.Context, string) (*models.UserStats, error)
	createFn    func(context.Context, *models.UserStats) error
	saveFn      func(context.Context, *models.UserStats) error
	globalFn    func(context.Context) (*models.GlobalStats, error)
}

func (s *statsRepoStub) GetByOdID(ctx context.Context, odID string) (*models.UserStats, error) {
	return s.getByOdIDFn(ctx, odID)
}
func (s *statsRepoStub) Create(ctx context.Context, stats *models.UserStats) error {
	return s.createFn(ctx, stats)
}
func (s *statsRepoStub) Save(ctx context.Context, stats *models.UserStats) error {
	return s.saveFn(ctx, stats)
}
func (s *statsRepoStub) Global(ctx context.Context) (*models.GlobalStats, error) {
	return s.globalFn(ctx)
}

func noopStatsRepo() *statsRepoStub {
	return &statsRepoStub{
		getByOdIDFn: func(_ context.Context, _ string) (*models.UserStats, error) {
			return nil, repository.ErrNotFound
		},
		createFn: func(_ context.Context, _ *models.UserStats) error { return nil },
		saveFn:   func(_ context.Context, _ *models.UserStats) error { return nil },
		globalFn: func(_ context.Context) (*models.GlobalStats, error) { return &models.GlobalStats{}, nil },
	}
}
