package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	postKeyPrefix = "post:%s"
	feedFirstPage = "feed:first"
)

const (
	// PostTTL bounds staleness of a single cached post document.
	PostTTL = 5 * time.Minute
	// FeedTTL is short because the first feed page is the hottest read and
	// engagement counters change constantly.
	FeedTTL = 30 * time.Second
)

// PostKey returns the cache key for a post by its application-level id.
func PostKey(postID string) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// FeedFirstPageKey returns the cache key for the default first feed page.
func FeedFirstPageKey() string {
	return feedFirstPage
}

// Invalidate removes a single cache entry.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached post and the first feed page, which embeds
// its counters.
func InvalidatePost(ctx context.Context, postID string) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, feedFirstPage)
}

// InvalidateFeed drops the cached first feed page.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, feedFirstPage)
}
