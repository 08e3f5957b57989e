package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentFlow(t *testing.T) {
	s, app := newTestServer(t)
	seedFeedPost(t, s, "vn-5", "Độc Lập", 0)

	t.Run("MissingContent", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/comment", map[string]string{
			"postId": "vn-5", "userId": "viewer-1",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
	})

	var commentID float64
	t.Run("CreateSnapshotsAuthor", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/comment", map[string]string{
			"postId":  "vn-5",
			"userId":  "viewer-1",
			"content": "Bài viết rất hay!",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Người dùng ẩn danh", data["userName"])
		assert.Equal(t, "@anonymous", data["userHandle"])
		commentID = data["id"].(float64)

		post, err := s.postRepo.GetByPostID(context.Background(), "vn-5")
		require.NoError(t, err)
		assert.Equal(t, 1, post.Replies)
	})

	t.Run("List", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/posts/comment?postId=vn-5", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]interface{})
		comments := data["comments"].([]interface{})
		require.Len(t, comments, 1)
		pagination := data["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["total"])
	})

	t.Run("DeleteNonOwnerForbidden", func(t *testing.T) {
		target := fmt.Sprintf("/api/posts/comment?commentId=%d&userId=other", int(commentID))
		resp, body := doJSON(t, app, http.MethodDelete, target, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", body["code"])
	})

	t.Run("DeleteOwnerDecrementsReplies", func(t *testing.T) {
		target := fmt.Sprintf("/api/posts/comment?commentId=%d&userId=viewer-1", int(commentID))
		resp, _ := doJSON(t, app, http.MethodDelete, target, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		post, err := s.postRepo.GetByPostID(context.Background(), "vn-5")
		require.NoError(t, err)
		assert.Equal(t, 0, post.Replies)
	})

	t.Run("DeleteUnknownIs404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete, "/api/posts/comment?commentId=9999&userId=viewer-1", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
