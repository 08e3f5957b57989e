package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPost struct {
	PostID string `json:"postId"`
	Likes  int    `json:"likes"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedPost) func() error {
		return func() error {
			calls++
			dest.PostID = "vn-1"
			dest.Likes = 7
			return nil
		}
	}

	var first cachedPost
	require.NoError(t, Aside(ctx, PostKey("vn-1"), &first, PostTTL, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, first.Likes)

	// Second read is served from the cache.
	var second cachedPost
	require.NoError(t, Aside(ctx, PostKey("vn-1"), &second, PostTTL, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "vn-1", second.PostID)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchErr := errors.New("store down")
	var dest cachedPost
	err := Aside(ctx, PostKey("vn-2"), &dest, PostTTL, func() error { return fetchErr })
	assert.ErrorIs(t, err, fetchErr)

	// Nothing was stored for the failed key.
	var retry cachedPost
	require.NoError(t, Aside(ctx, PostKey("vn-2"), &retry, PostTTL, func() error {
		retry.Likes = 3
		return nil
	}))
	assert.Equal(t, 3, retry.Likes)
}

func TestAside_NilClientDegrades(t *testing.T) {
	SetClient(nil)
	var dest cachedPost
	err := Aside(context.Background(), PostKey("vn-3"), &dest, time.Minute, func() error {
		dest.Likes = 1
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dest.Likes)
}

func TestInvalidatePost(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(PostKey("vn-1"), `{"postId":"vn-1","likes":1}`))
	require.NoError(t, mr.Set(FeedFirstPageKey(), `[]`))

	InvalidatePost(ctx, "vn-1")

	assert.False(t, mr.Exists(PostKey("vn-1")))
	assert.False(t, mr.Exists(FeedFirstPageKey()))
}
