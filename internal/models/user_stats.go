package models

import (
	"time"
)

// Stats actions accepted by the stats endpoint.
const (
	StatsActionLike    = "like"
	StatsActionUnlike  = "unlike"
	StatsActionComment = "comment"
	StatsActionRetweet = "retweet"
	StatsActionExplore = "explore"
)

// UserStats tracks per-viewer engagement counters. OdID identifies the
// viewer whether anonymous (a client-generated id) or logged in; updates are
// best-effort increments fired by client actions.
type UserStats struct {
	ID             uint     `gorm:"primaryKey" json:"-"`
	OdID           string   `gorm:"uniqueIndex;not null" json:"odId"`
	SessionID      string   `gorm:"not null" json:"sessionId"`
	TotalLikes     int      `gorm:"default:0" json:"totalLikes"`
	TotalComments  int      `gorm:"default:0" json:"totalComments"`
	TotalRetweets  int      `gorm:"default:0" json:"totalRetweets"`
	TopicsExplored []string `gorm:"serializer:json" json:"topicsExplored"`

	LastActive time.Time `json:"lastActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Apply mutates the stats record for a client action. Unknown actions are
// ignored (best-effort semantics). Unlike is floored at zero.
func (s *UserStats) Apply(action, topic string) {
	switch action {
	case StatsActionLike:
		s.TotalLikes++
	case StatsActionUnlike:
		if s.TotalLikes > 0 {
			s.TotalLikes--
		}
	case StatsActionComment:
		s.TotalComments++
	case StatsActionRetweet:
		s.TotalRetweets++
	case StatsActionExplore:
		if topic == "" {
			return
		}
		for _, t := range s.TopicsExplored {
			if t == topic {
				return
			}
		}
		s.TopicsExplored = append(s.TopicsExplored, topic)
	}
}

// GlobalStats is the aggregate snapshot returned by GET /api/stats?type=global.
type GlobalStats struct {
	TotalPosts    int64        `json:"totalPosts"`
	TotalComments int64        `json:"totalComments"`
	TotalLikes    int64        `json:"totalLikes"`
	TotalRetweets int64        `json:"totalRetweets"`
	TopTopics     []TopicStats `json:"topTopics"`
}

// TopicStats is one row of the top-topics aggregation.
type TopicStats struct {
	Topic      string `gorm:"column:topic" json:"topic"`
	Count      int64  `gorm:"column:count" json:"count"`
	TotalLikes int64  `gorm:"column:total_likes" json:"totalLikes"`
}
