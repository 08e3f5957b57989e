// Package ai wraps the Groq (OpenAI-compatible) chat-completions API used by
// the learn-more and explain endpoints. Calls are single-shot: upstream
// failures surface to the handler, there is no retry or fallback.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// maxResponseSize limits the completion response body.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// Request defines a completion request.
type Request struct {
	// Messages is the chat history to send.
	Messages []Message

	// Temperature controls randomness. nil uses the endpoint default.
	Temperature *float64

	// MaxTokens limits response length. 0 uses the endpoint default.
	MaxTokens int

	// JSONResponse asks the endpoint for a json_object response format.
	JSONResponse bool
}

// Response contains the completion result.
type Response struct {
	// Content is the generated text.
	Content string

	// Model is the model that served the request.
	Model string

	// FinishReason indicates why generation stopped.
	FinishReason string
}

// Client is a chat-completions client bound to one endpoint and model.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient creates a completion client for the given endpoint and model.
func NewClient(baseURL, apiKey, model string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // Allow time for completion responses
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Configured reports whether the client has credentials to call the endpoint.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// wire shapes of the OpenAI-compatible chat-completions endpoint.
type wireRequest struct {
	Model          string              `json:"model"`
	Messages       []Message           `json:"messages"`
	Temperature    *float64            `json:"temperature,omitempty"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	ResponseFormat *wireResponseFormat `json:"response_format,omitempty"`
}

type wireResponseFormat struct {
	Type string `json:"type"`
}

type wireResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a completion request.
func (c *Client) Complete(ctx context.Context, req Request) (*Response, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("completion API key not configured")
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}

	payload := wireRequest{
		Model:       c.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONResponse {
		payload.ResponseFormat = &wireResponseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling completion endpoint: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading completion response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		c.logger.Warn("completion endpoint returned error",
			"status", httpResp.StatusCode,
			"model", c.model,
			"elapsed", time.Since(start))
		var parsed wireResponse
		if json.Unmarshal(raw, &parsed) == nil && parsed.Error != nil {
			return nil, fmt.Errorf("completion API error (status %d): %s", httpResp.StatusCode, parsed.Error.Message)
		}
		return nil, fmt.Errorf("completion API error: status %d", httpResp.StatusCode)
	}

	var parsed wireResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion response contained no choices")
	}

	c.logger.Debug("completion succeeded",
		"model", parsed.Model,
		"elapsed", time.Since(start))

	return &Response{
		Content:      parsed.Choices[0].Message.Content,
		Model:        parsed.Model,
		FinishReason: parsed.Choices[0].FinishReason,
	}, nil
}
