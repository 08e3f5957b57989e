// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post types mirror the feed item kinds rendered by the client.
const (
	PostTypePost  = "post"
	PostTypeReply = "reply"
	PostTypeNews  = "news"
)

// Post represents a historical event rendered as a social feed item.
// PostID is the application-level identifier ("vn-1", "user-...") that the
// client and the static content files use; references between collections
// are by this string, not by database keys.
type Post struct {
	ID              uint     `gorm:"primaryKey" json:"-"`
	PostID          string   `gorm:"uniqueIndex;not null" json:"postId"`
	Topic           string   `gorm:"index;not null" json:"topic"`
	AuthorName      string   `gorm:"not null" json:"authorName"`
	AuthorHandle    string   `gorm:"not null" json:"authorHandle"`
	AuthorAvatarURL string   `json:"authorAvatarUrl,omitempty"`
	Content         string   `gorm:"type:text" json:"content"`
	// Timestamp is a display string ("Năm 1288", "2 giờ trước"), not a real
	// date; sorting by recency uses CreatedAt instead.
	Timestamp   string   `json:"timestamp"`
	Type        string   `gorm:"default:post" json:"type"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Likes       int      `gorm:"default:0;index" json:"likes"`
	Retweets    int      `gorm:"default:0" json:"retweets"`
	Replies     int      `gorm:"default:0" json:"replies"`
	LikedBy     []string `gorm:"serializer:json" json:"likedBy"`
	RetweetedBy []string `gorm:"serializer:json" json:"retweetedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LikedByUser reports membership of the viewer in the liked-by set.
// Sets are small (bounded by active demo users), so a linear scan is fine.
func (p *Post) LikedByUser(odID string) bool {
	for _, id := range p.LikedBy {
		if id == odID {
			return true
		}
	}
	return false
}

// AddLike records a like by the given viewer. Returns false if the viewer
// already liked the post (membership-level no-op).
func (p *Post) AddLike(odID string) bool {
	if p.LikedByUser(odID) {
		return false
	}
	p.Likes++
	p.LikedBy = append(p.LikedBy, odID)
	return true
}

// RemoveLike removes the viewer's like. The counter is clamped at zero so
// drifted data can never push it negative. Returns false when the viewer was
// not in the set.
func (p *Post) RemoveLike(odID string) bool {
	idx := -1
	for i, id := range p.LikedBy {
		if id == odID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}
	p.LikedBy = append(p.LikedBy[:idx], p.LikedBy[idx+1:]...)
	if p.Likes > 0 {
		p.Likes--
	}
	return true
}

// NewPlaceholderPost builds the stub record created when engagement arrives
// for a post that only exists in the static content files.
func NewPlaceholderPost(postID string) *Post {
	return &Post{
		PostID:       postID,
		Topic:        "unknown",
		AuthorName:   "Unknown",
		AuthorHandle: "@unknown",
		Content:      "",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Type:         PostTypePost,
		LikedBy:      []string{},
		RetweetedBy:  []string{},
	}
}

// FeedPost is the feed-shaped projection returned by the post listing API.
type FeedPost struct {
	ID        string     `json:"id"`
	Author    FeedAuthor `json:"author"`
	Content   string     `json:"content"`
	Timestamp string     `json:"timestamp"`
	Stats     FeedStats  `json:"stats"`
	Type      string     `json:"type"`
	Topic     string     `json:"topic,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty"`
}

// FeedAuthor is the author block of a feed item.
type FeedAuthor struct {
	Name       string `json:"name"`
	Handle     string `json:"handle"`
	AvatarURL  string `json:"avatarUrl"`
	IsVerified bool   `json:"isVerified"`
}

// FeedStats carries the engagement counters of a feed item.
type FeedStats struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
}

// ToFeedPost projects a stored post into the shape the timeline renders.
// Avatar falls back to a deterministic dicebear image keyed by handle.
func (p *Post) ToFeedPost() FeedPost {
	avatar := p.AuthorAvatarURL
	if avatar == "" {
		avatar = DicebearAvatar(p.AuthorHandle)
	}
	return FeedPost{
		ID: p.PostID,
		Author: FeedAuthor{
			Name:       p.AuthorName,
			Handle:     p.AuthorHandle,
			AvatarURL:  avatar,
			IsVerified: true,
		},
		Content:   p.Content,
		Timestamp: p.Timestamp,
		Stats: FeedStats{
			Likes:    p.Likes,
			Retweets: p.Retweets,
			Replies:  p.Replies,
		},
		Type:     p.Type,
		Topic:    p.Topic,
		ImageURL: p.ImageURL,
	}
}
