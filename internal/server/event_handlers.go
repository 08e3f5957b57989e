package server

import (
	"encoding/json"

	"vietchronicle/internal/ai"
	"vietchronicle/internal/middleware"
	"vietchronicle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetEvents handles GET /api/events - the full bundled timeline.
func (s *Server) GetEvents(c *fiber.Ctx) error {
	events, err := s.contentStore.Events()
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}
	return ok(c, fiber.StatusOK, events)
}

// GetEvent handles GET /api/events/:id.
func (s *Server) GetEvent(c *fiber.Ctx) error {
	event, err := s.contentStore.EventByID(c.Params("id"))
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}
	if event == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, &models.AppError{
			Code:    "EVENT_NOT_FOUND",
			Message: "Không tìm thấy sự kiện / Event not found",
		})
	}
	return ok(c, fiber.StatusOK, event)
}

// ExplainEvent handles POST /api/events/:id/ai-explain. The event is fed to
// the completion adapter with the bundled system prompt; the model answers
// with a JSON document which is passed through verbatim.
func (s *Server) ExplainEvent(c *fiber.Ctx) error {
	event, err := s.contentStore.EventByID(c.Params("id"))
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}
	if event == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, &models.AppError{
			Code:    "EVENT_NOT_FOUND",
			Message: "Không tìm thấy sự kiện / Event not found",
		})
	}

	aiError := func(err error) error {
		middleware.UpstreamErrors.WithLabelValues("groq").Inc()
		middleware.Logger.ErrorContext(c.UserContext(), "ai explain failed",
			"event_id", event.ID, "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError, &models.AppError{
			Code:    "AI_ERROR",
			Message: "Không thể tạo giải thích / Could not generate explanation",
			Err:     err,
		})
	}

	prompt, err := s.contentStore.SystemPrompt()
	if err != nil {
		return aiError(err)
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return aiError(err)
	}

	resp, err := s.aiClient.Complete(c.UserContext(), ai.Request{
		Messages:     ai.ExplainMessages(prompt, string(eventJSON)),
		JSONResponse: true,
	})
	if err != nil {
		return aiError(err)
	}

	var explanation map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Content), &explanation); err != nil {
		return aiError(err)
	}

	return ok(c, fiber.StatusOK, explanation)
}
