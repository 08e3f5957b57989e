package server

import (
	"strconv"

	"vietchronicle/internal/models"
	"vietchronicle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/posts/comment.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var in service.CreateCommentInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	comment, err := s.commentService.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.StatusCreated, comment)
}

// GetComments handles GET /api/posts/comment?postId&page&limit.
func (s *Server) GetComments(c *fiber.Ctx) error {
	p := parsePagination(c)

	page, err := s.commentService.List(c.UserContext(), c.Query("postId"), p.Limit, p.Offset)
	if err != nil {
		return fail(c, err)
	}

	// The comment list nests its pagination inside data, unlike the feed.
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"comments":   page.Comments,
			"pagination": paginationMeta(p, page.Total),
		},
	})
}

// DeleteComment handles DELETE /api/posts/comment?commentId&userId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := strconv.ParseUint(c.Query("commentId"), 10, 64)
	if err != nil {
		return fail(c, models.NewValidationError("commentId và userId là bắt buộc / commentId and userId are required"))
	}
	userID := c.Query("userId")
	if userID == "" {
		return fail(c, models.NewValidationError("commentId và userId là bắt buộc / commentId and userId are required"))
	}

	if err := s.commentService.Delete(c.UserContext(), uint(commentID), userID); err != nil {
		return fail(c, err)
	}

	return okMessage(c, fiber.StatusOK, nil, "Đã xóa bình luận / Comment deleted")
}
