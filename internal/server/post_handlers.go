package server

import (
	"vietchronicle/internal/middleware"
	"vietchronicle/internal/models"
	"vietchronicle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts - the main feed.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c)

	page, err := s.postService.List(c.UserContext(), service.ListPostsInput{
		Topic:  c.Query("topic"),
		Search: c.Query("search"),
		SortBy: c.Query("sortBy"),
		Limit:  p.Limit,
		Offset: p.Offset,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       page.Posts,
		"pagination": paginationMeta(p, page.Total),
	})
}

// CreatePost handles POST /api/posts - a user-authored post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("Dữ liệu không hợp lệ / Invalid request body"))
	}

	post, err := s.postService.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created",
		"post_id", post.PostID, "topic", post.Topic)

	return ok(c, fiber.StatusCreated, post.ToFeedPost())
}

// GetPostDetail handles GET /api/posts/:id - static curated content joined
// with its historical event.
func (s *Server) GetPostDetail(c *fiber.Ctx) error {
	detail, err := s.contentStore.PostByID(c.Params("id"))
	if err != nil {
		return fail(c, models.NewInternalError(err))
	}
	if detail == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, &models.AppError{
			Code:    "POST_NOT_FOUND",
			Message: "Không tìm thấy bài viết / Post not found",
		})
	}
	return ok(c, fiber.StatusOK, detail)
}

// DeletePost handles DELETE /api/posts/:id - author-only removal.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	handle := c.Query("authorHandle")
	if handle == "" {
		return fail(c, models.NewValidationError("authorHandle là bắt buộc / authorHandle is required"))
	}

	if err := s.postService.Delete(c.UserContext(), c.Params("id"), handle); err != nil {
		return fail(c, err)
	}

	return okMessage(c, fiber.StatusOK, nil, "Đã xóa bài viết / Post deleted")
}
