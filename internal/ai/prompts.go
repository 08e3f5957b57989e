package ai

import "fmt"

// LearnMoreInput carries the event fields the client wants expanded.
type LearnMoreInput struct {
	Topic      string
	Content    string
	AuthorName string
	Timestamp  string
	Language   string // "vi" (default) or "en"
}

// systemPrompt returns the expert persona in the requested language.
func (in LearnMoreInput) systemPrompt() string {
	if in.Language == "en" {
		return "You are a Vietnamese history expert who always provides accurate and engaging information about Vietnamese historical events in English."
	}
	return "Bạn là một chuyên gia lịch sử Việt Nam, luôn cung cấp thông tin chính xác và hấp dẫn về các sự kiện lịch sử Việt Nam."
}

// userPrompt builds the bilingual learn-more prompt. Field fallbacks match
// the original application's wording.
func (in LearnMoreInput) userPrompt() string {
	if in.Language == "en" {
		return fmt.Sprintf(`You are a Vietnamese history expert. Please provide detailed information about the following historical event in English:

Topic: %s
Historical Figure: %s
Time Period: %s
Original Content: %s

Please write a detailed summary (about 200-300 words) including:
1. Historical Context
2. Main Events
3. Important Figures Involved
4. Historical Significance and Impact
5. Lessons Learned

Write in an engaging, easy-to-understand, and historically accurate style.`,
			orDefault(in.Topic, "Vietnamese History"),
			orDefault(in.AuthorName, "Unknown"),
			orDefault(in.Timestamp, "Unknown"),
			in.Content)
	}
	return fmt.Sprintf(`Bạn là một chuyên gia lịch sử Việt Nam. Hãy cung cấp thông tin chi tiết về sự kiện lịch sử sau đây bằng tiếng Việt:

Chủ đề: %s
Nhân vật: %s
Thời gian: %s
Nội dung gốc: %s

Hãy viết một bài tóm tắt chi tiết (khoảng 200-300 từ) bao gồm:
1. Bối cảnh lịch sử
2. Diễn biến chính của sự kiện
3. Nhân vật quan trọng liên quan
4. Ý nghĩa lịch sử và tác động
5. Bài học rút ra

Viết theo phong cách dễ hiểu, hấp dẫn và chính xác về mặt lịch sử.`,
		orDefault(in.Topic, "Lịch sử Việt Nam"),
		orDefault(in.AuthorName, "Không rõ"),
		orDefault(in.Timestamp, "Không rõ"),
		in.Content)
}

// Messages builds the chat history for a learn-more request.
func (in LearnMoreInput) Messages() []Message {
	return []Message{
		{Role: "system", Content: in.systemPrompt()},
		{Role: "user", Content: in.userPrompt()},
	}
}

// ExplainMessages builds the chat history for the event explain endpoint:
// the bundled system prompt plus the event serialized as the user turn.
func ExplainMessages(systemPrompt, eventJSON string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: eventJSON},
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
