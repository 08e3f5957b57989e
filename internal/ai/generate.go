package ai

import (
	"fmt"
	"strings"

	"vietchronicle/internal/models"
)

// MockFeedPosts returns the static feed used by the generate endpoint when no
// completion API key is configured. Content interpolates the requested topic,
// bilingual like the original mock data.
func MockFeedPosts(topic string) []models.FeedPost {
	hashtag := strings.ReplaceAll(topic, " ", "")
	return []models.FeedPost{
		{
			ID: "api-1",
			Author: models.FeedAuthor{
				Name:       "Nhà Sử Học",
				Handle:     "@lichsu_vietnam",
				AvatarURL:  "https://api.dicebear.com/7.x/personas/svg?seed=lichsu",
				IsVerified: true,
			},
			Content: fmt.Sprintf("📚 Khám phá chủ đề \"%s\" trong lịch sử Việt Nam! Đây là một phần quan trọng của di sản văn hóa dân tộc.\n\n🇬🇧 Exploring the topic \"%s\" in Vietnamese history! This is an important part of our national cultural heritage.\n\n#LịchSửViệtNam #%s", topic, topic, hashtag),
			Timestamp: "Từ ngàn xưa / Ages ago",
			Stats:     models.FeedStats{Likes: 12500, Retweets: 4300, Replies: 890},
			Type:      models.PostTypePost,
		},
		{
			ID: "api-2",
			Author: models.FeedAuthor{
				Name:       "Báo Lịch Sử VN",
				Handle:     "@lichsuvn_news",
				AvatarURL:  "https://api.dicebear.com/7.x/personas/svg?seed=baols",
				IsVerified: true,
			},
			Content: fmt.Sprintf("🚨 TIN NÓNG: Những phát hiện mới về \"%s\" đang thay đổi cách chúng ta hiểu về lịch sử Việt Nam!\n\n🇬🇧 BREAKING: New discoveries about \"%s\" are changing how we understand Vietnamese history!\n\n#TinLịchSử #ViệtNam", topic, topic),
			Timestamp: "Nhiều thế kỷ trước",
			Stats:     models.FeedStats{Likes: 45000, Retweets: 23000, Replies: 5600},
			Type:      models.PostTypeNews,
		},
		{
			ID: "api-3",
			Author: models.FeedAuthor{
				Name:       "Sinh Viên Sử Học",
				Handle:     "@sinhviensuhoc",
				AvatarURL:  "https://api.dicebear.com/7.x/personas/svg?seed=sinhvien",
				IsVerified: false,
			},
			Content: fmt.Sprintf("💬 Trả lời @lichsu_vietnam: Chủ đề \"%s\" thực sự rất thú vị! Mình đã nghiên cứu nó trong nhiều năm. 📖\n\n🇬🇧 Replying: The topic \"%s\" is really fascinating! I've been studying it for years.\n\n#HọcSử #NghiênCứu", topic, topic),
			Timestamp: "2 giờ trước trong quá khứ",
			Stats:     models.FeedStats{Likes: 3400, Retweets: 890, Replies: 234},
			Type:      models.PostTypeReply,
		},
	}
}
