package server

import (
	"errors"

	"vietchronicle/internal/ai"
	"vietchronicle/internal/middleware"
	"vietchronicle/internal/models"

	"github.com/gofiber/fiber/v2"
)

type learnMoreRequest struct {
	Topic      string `json:"topic"`
	Content    string `json:"content"`
	AuthorName string `json:"authorName"`
	Timestamp  string `json:"timestamp"`
	Language   string `json:"language"`
}

// LearnMore handles POST /api/learn-more - a deeper bilingual explanation of
// a feed post.
func (s *Server) LearnMore(c *fiber.Ctx) error {
	var req learnMoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	if req.Topic == "" && req.Content == "" {
		return fail(c, models.NewValidationError("Cần có topic hoặc content / topic or content is required"))
	}

	if !s.config.GroqConfigured() {
		return fail(c, models.NewUpstreamError("groq", errors.New("GROQ_API_KEY not configured")))
	}

	in := ai.LearnMoreInput{
		Topic:      req.Topic,
		Content:    req.Content,
		AuthorName: req.AuthorName,
		Timestamp:  req.Timestamp,
		Language:   req.Language,
	}

	resp, err := s.aiClient.Complete(c.UserContext(), ai.Request{Messages: in.Messages()})
	if err != nil {
		middleware.UpstreamErrors.WithLabelValues("groq").Inc()
		return fail(c, models.NewUpstreamError("groq", err))
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"content":   resp.Content,
		"topic":     req.Topic,
		"timestamp": req.Timestamp,
	})
}

type generateRequest struct {
	Topic string `json:"topic"`
}

// GenerateFeed handles POST /api/generate. Without a configured completion
// key it falls back to the bundled mock posts so the feed still renders.
func (s *Server) GenerateFeed(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}
	if req.Topic == "" {
		return fail(c, models.NewValidationError("topic là bắt buộc / topic is required"))
	}

	if !s.config.GroqConfigured() {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    ai.MockFeedPosts(req.Topic),
			"source":  "mock",
		})
	}

	in := ai.LearnMoreInput{Topic: req.Topic}
	resp, err := s.aiClient.Complete(c.UserContext(), ai.Request{Messages: in.Messages()})
	if err != nil {
		middleware.UpstreamErrors.WithLabelValues("groq").Inc()
		middleware.Logger.WarnContext(c.UserContext(), "feed generation failed, serving mock posts",
			"topic", req.Topic, "error", err)
		return c.JSON(fiber.Map{
			"success": true,
			"data":    ai.MockFeedPosts(req.Topic),
			"source":  "mock",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resp.Content,
		"source":  "ai",
	})
}
