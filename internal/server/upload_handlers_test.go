package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadImage(t *testing.T) {
	t.Run("FailsFastWithoutCredentials", func(t *testing.T) {
		_, app := newTestServer(t)

		resp, body := doJSON(t, app, http.MethodPost, "/api/upload", map[string]string{
			"image": "data:image/png;base64,iVBORw0KGgo=",
		})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "UPSTREAM_ERROR", body["code"])
	})

	t.Run("MissingImage", func(t *testing.T) {
		s, app := newTestServer(t)
		s.config.CloudinaryCloudName = "demo"
		s.config.CloudinaryAPIKey = "key"
		s.config.CloudinaryAPISecret = "secret"

		resp, body := doJSON(t, app, http.MethodPost, "/api/upload", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["error"], "No image provided")
	})
}
