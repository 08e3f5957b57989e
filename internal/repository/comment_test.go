package repository

import (
	"context"
	"fmt"
	"testing"

	"vietchronicle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	comment := &models.Comment{
		PostID:     "vn-1",
		UserID:     "od-1",
		UserName:   "Lê Lợi",
		UserHandle: "@leloi",
		Content:    "Tuyệt vời!",
	}
	require.NoError(t, repo.Create(ctx, comment))
	require.NotZero(t, comment.ID)

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "od-1", got.UserID)
	assert.Equal(t, "Lê Lợi", got.UserName)
}

func TestCommentRepository_ListByPost(t *testing.T) {
	t.Parallel()
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			PostID:     "vn-1",
			UserID:     "od-1",
			UserName:   "A",
			UserHandle: "@a",
			Content:    fmt.Sprintf("comment %d", i),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Comment{
		PostID: "vn-2", UserID: "od-1", UserName: "A", UserHandle: "@a", Content: "other post",
	}))

	comments, total, err := repo.ListByPost(ctx, "vn-1", 3, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, comments, 3)

	comments, total, err = repo.ListByPost(ctx, "vn-1", 3, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, comments, 2)

	comments, total, err = repo.ListByPost(ctx, "empty", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, comments)
}

func TestCommentRepository_Delete(t *testing.T) {
	t.Parallel()
	repo := NewCommentRepository(setupTestDB(t))
	ctx := context.Background()

	comment := &models.Comment{PostID: "vn-1", UserID: "od-1", UserName: "A", UserHandle: "@a", Content: "bye"}
	require.NoError(t, repo.Create(ctx, comment))

	require.NoError(t, repo.Delete(ctx, comment.ID))
	assert.True(t, IsNotFound(repo.Delete(ctx, comment.ID)))
}
