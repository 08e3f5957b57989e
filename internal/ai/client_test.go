package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	t.Parallel()

	var captured wireRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "llama-3.3-70b-versatile",
			"choices": []map[string]any{
				{
					"message":       map[string]string{"content": "Bạch Đằng, năm 938."},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "llama-3.3-70b-versatile",
		WithHTTPClient(server.Client()))

	resp, err := client.Complete(context.Background(), Request{
		Messages:  []Message{{Role: "user", Content: "Ngô Quyền?"}},
		MaxTokens: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bạch Đằng, năm 938.", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Equal(t, 1024, captured.MaxTokens)
	assert.Nil(t, captured.ResponseFormat)
}

func TestClient_CompleteJSONResponseFormat(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req wireRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": `{"summary": "ok"}`}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "m", WithHTTPClient(server.Client()))
	resp, err := client.Complete(context.Background(), Request{
		Messages:     []Message{{Role: "user", Content: "x"}},
		JSONResponse: true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary": "ok"}`, resp.Content)
}

func TestClient_CompleteErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()
		client := NewClient("http://localhost", "", "m")
		assert.False(t, client.Configured())
		_, err := client.Complete(context.Background(), Request{
			Messages: []Message{{Role: "user", Content: "x"}},
		})
		assert.ErrorContains(t, err, "not configured")
	})

	t.Run("no messages", func(t *testing.T) {
		t.Parallel()
		client := NewClient("http://localhost", "k", "m")
		_, err := client.Complete(context.Background(), Request{})
		assert.ErrorContains(t, err, "at least one message")
	})

	t.Run("upstream error surfaces message", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "tokens"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "k", "m", WithHTTPClient(server.Client()))
		_, err := client.Complete(context.Background(), Request{
			Messages: []Message{{Role: "user", Content: "x"}},
		})
		assert.ErrorContains(t, err, "rate limit exceeded")
	})

	t.Run("empty choices", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "k", "m", WithHTTPClient(server.Client()))
		_, err := client.Complete(context.Background(), Request{
			Messages: []Message{{Role: "user", Content: "x"}},
		})
		assert.ErrorContains(t, err, "no choices")
	})
}

func TestLearnMoreInput_Messages(t *testing.T) {
	t.Parallel()

	t.Run("vietnamese by default", func(t *testing.T) {
		msgs := LearnMoreInput{Topic: "Bạch Đằng"}.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].Role)
		assert.Contains(t, msgs[0].Content, "chuyên gia lịch sử Việt Nam")
		assert.Contains(t, msgs[1].Content, "Chủ đề: Bạch Đằng")
		assert.Contains(t, msgs[1].Content, "Nhân vật: Không rõ")
	})

	t.Run("english", func(t *testing.T) {
		msgs := LearnMoreInput{Content: "năm 938", Language: "en"}.Messages()
		assert.Contains(t, msgs[0].Content, "Vietnamese history expert")
		assert.Contains(t, msgs[1].Content, "Topic: Vietnamese History")
		assert.Contains(t, msgs[1].Content, "Original Content: năm 938")
	})
}

func TestMockFeedPosts(t *testing.T) {
	t.Parallel()

	posts := MockFeedPosts("Nhà Trần")
	require.Len(t, posts, 3)
	assert.Equal(t, "api-1", posts[0].ID)
	assert.Contains(t, posts[0].Content, `"Nhà Trần"`)
	assert.Contains(t, posts[0].Content, "#NhàTrần")
	assert.Equal(t, "news", posts[1].Type)
	assert.Equal(t, "reply", posts[2].Type)
}
