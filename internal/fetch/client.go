package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ytget/mycelia/internal/model"
)

// Client defaults
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "mycelia-viewer"

	// MaxBodyBytes caps how much of a response body is read
	MaxBodyBytes = 8 << 20
)

// Client dispatches fetches over net/http. The transport is chosen per
// platform at build time; see transport_native.go and transport_js.go.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the overall request timeout. Timeouts surface as transport failures.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new fetch client
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Transport: newTransport(),
			Timeout:   DefaultTimeout,
		},
		userAgent: DefaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "fetch"))
	return c
}

// Dispatch starts the transfer in the background and returns its handle.
// There is no cancellation: the transfer runs until it completes or fails.
func (c *Client) Dispatch(rawURL, token string) *Handle {
	h := newHandle(rawURL)
	c.logger.Debug("dispatch", slog.String("handle", h.ID), slog.String("url", rawURL))
	go c.run(h, token)
	return h
}

// run performs the transfer and delivers exactly one outcome
func (c *Client) run(h *Handle, token string) {
	outcome := c.do(context.Background(), h.URL, token)
	c.logger.Debug("fetch finished",
		slog.String("handle", h.ID),
		slog.String("kind", outcome.Kind.String()),
		slog.Int("status", outcome.StatusCode),
		slog.Duration("elapsed", time.Since(h.DispatchedAt)))
	h.deliver(outcome)
}

// do executes the request synchronously and maps the result to an outcome
func (c *Client) do(ctx context.Context, rawURL, token string) model.Outcome {
	if err := validateURL(rawURL); err != nil {
		return model.TransportFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return model.TransportFailure(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return model.TransportFailure(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return model.TransportFailure(fmt.Errorf("read response body: %w", err))
	}
	if len(body) > MaxBodyBytes {
		return model.TransportFailure(fmt.Errorf("response body exceeds %d bytes", MaxBodyBytes))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return model.Success(string(body), resp.StatusCode)
	}
	return model.ServerFailure(string(body), resp.StatusCode)
}

// validateURL checks that the URL is absolute http(s)
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://: %q", rawURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL has no host: %q", rawURL)
	}
	return nil
}
