// Package media uploads images to Cloudinary. The upload is a signed direct
// HTTP call (no SDK), pass-through with no retry.
package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultFolder is used when the caller does not name one.
const DefaultFolder = "chronofeed/posts"

// UploadResult is the subset of the Cloudinary response the API returns to
// clients.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Uploader sends images to a media host.
type Uploader interface {
	Upload(ctx context.Context, image, folder string) (*UploadResult, error)
}

// Client is a Cloudinary uploader.
type Client struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithBaseURL overrides the API host.
func WithBaseURL(base string) ClientOption {
	return func(client *Client) {
		client.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient creates a Cloudinary client.
func NewClient(cloudName, apiKey, apiSecret string, opts ...ClientOption) *Client {
	c := &Client{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   "https://api.cloudinary.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.cloudName != "" && c.apiKey != "" && c.apiSecret != ""
}

// sign builds the Cloudinary request signature: the parameters sorted by key,
// joined key=value with '&', with the API secret appended, SHA-1 hex.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends a data-URI or base64 image to the image upload endpoint.
// The transformation mirrors the original app: limit 1200x1200, auto quality
// and format.
func (c *Client) Upload(ctx context.Context, image, folder string) (*UploadResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("cloudinary not configured")
	}
	if folder == "" {
		folder = DefaultFolder
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	transformation := "c_limit,h_1200,w_1200/f_auto/q_auto"
	signed := map[string]string{
		"folder":         folder,
		"timestamp":      timestamp,
		"transformation": transformation,
	}

	form := url.Values{}
	form.Set("file", image)
	form.Set("folder", folder)
	form.Set("timestamp", timestamp)
	form.Set("transformation", transformation)
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(signed))

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling cloudinary: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading cloudinary response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing cloudinary response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("cloudinary upload failed (status %d): %s", resp.StatusCode, parsed.Error.Message)
		}
		return nil, fmt.Errorf("cloudinary upload failed: status %d", resp.StatusCode)
	}

	c.logger.Info("image uploaded",
		"public_id", parsed.PublicID,
		"folder", folder,
		"size_kb", len(image)/1024)

	return &UploadResult{
		URL:      parsed.SecureURL,
		PublicID: parsed.PublicID,
	}, nil
}
