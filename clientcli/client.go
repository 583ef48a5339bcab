package clientcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sagarc03/quickserve"
	qshttp "github.com/sagarc03/quickserve/http"
)

const (
	// DefaultEndpoint is the server address used when none is configured.
	DefaultEndpoint = "http://localhost:3000"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// EnvEndpoint names the environment variable read by ConfigFromEnv.
	EnvEndpoint = "QUICKSERVE_ENDPOINT"
)

// Config holds client connection settings.
type Config struct {
	Endpoint string
}

// WithDefaults returns a copy with empty fields filled in.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Endpoint == "" {
		out.Endpoint = DefaultEndpoint
	}
	return &out
}

// ConfigFromEnv reads client settings from the environment.
func ConfigFromEnv() *Config {
	return &Config{Endpoint: os.Getenv(EnvEndpoint)}
}

// MergeConfig merges configs left to right. Later non-empty values win.
func MergeConfig(configs ...*Config) *Config {
	out := &Config{}
	for _, c := range configs {
		if c == nil {
			continue
		}
		if c.Endpoint != "" {
			out.Endpoint = c.Endpoint
		}
	}
	return out
}

// Client performs requests against a quickserve server.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	cfg = cfg.WithDefaults()

	u, err := url.Parse(cfg.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, cfg.Endpoint)
	}

	c := &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Endpoint returns the normalized server URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Health calls GET /api/health.
func (c *Client) Health(ctx context.Context) (*quickserve.Health, error) {
	var out quickserve.Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("health: %w", err)
	}
	return &out, nil
}

// CreateItem calls POST /api/example and returns the echoed payload.
func (c *Client) CreateItem(ctx context.Context, p quickserve.Payload) (*quickserve.Payload, error) {
	var out quickserve.Payload
	if err := c.do(ctx, http.MethodPost, "/api/example", p, http.StatusCreated, &out); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &out, nil
}

// GetItem calls GET /api/example/{id}. The id is sent as given so the server
// decides whether it is valid.
func (c *Client) GetItem(ctx context.Context, id string) (*quickserve.Item, error) {
	if id == "" {
		return nil, fmt.Errorf("get item: %w", ErrEmptyID)
	}

	var out quickserve.Item
	if err := c.do(ctx, http.MethodGet, "/api/example/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &out, nil
}

// do sends a request with an optional JSON body and decodes a JSON response
// into out when the status is want.
func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != want {
		return parseServerError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

func parseServerError(statusCode int, body []byte) error {
	var er qshttp.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return &APIError{StatusCode: statusCode, Message: er.Message, Trace: er.Trace}
	}
	return &APIError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}
