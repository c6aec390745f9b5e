// Package github talks to the public GitHub endpoints the cookbook reads from:
// the contents API, the raw content host, issue search and issue comments.
// Requests are unauthenticated and never retried.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goliatone/go-cookbook/internal/logging"
	"github.com/goliatone/go-cookbook/internal/routes"
	"github.com/goliatone/go-cookbook/pkg/interfaces"
)

const (
	acceptJSON        = "application/vnd.github+json"
	defaultUserAgent  = "go-cookbook"
	defaultTimeout    = 30 * time.Second
	defaultMaxBody    = 5 << 20
	maxErrorBodyBytes = 512
)

// ErrBodyTooLarge is returned when a response exceeds the configured limit.
var ErrBodyTooLarge = errors.New("github: response body exceeds limit")

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github: GET %s: status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github: GET %s: status %d", e.URL, e.StatusCode)
}

// Is lets a 404 match interfaces.ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == interfaces.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	return errors.Is(err, interfaces.ErrNotFound)
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
	MaxBody    int64
	Logger     interfaces.Logger
}

// Client implements interfaces.ContentStore and interfaces.IssueTracker.
type Client struct {
	routes    *routes.Routes
	http      *http.Client
	userAgent string
	maxBody   int64
	logger    interfaces.Logger
}

var (
	_ interfaces.ContentStore = (*Client)(nil)
	_ interfaces.IssueTracker = (*Client)(nil)
)

// NewClient builds a client resolving endpoints through r.
func NewClient(r *routes.Routes, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBody := opts.MaxBody
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Client{
		routes:    r,
		http:      httpClient,
		userAgent: userAgent,
		maxBody:   maxBody,
		logger:    logger,
	}
}

func (c *Client) get(ctx context.Context, target, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("github: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("github.request.failed", "url", target, "error", err)
		return nil, fmt.Errorf("github: GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("github.request.completed", "url", target, "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target, Message: errorMessage(snippet)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("github: read %s: %w", target, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w: %s", ErrBodyTooLarge, target)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	body, err := c.get(ctx, target, acceptJSON)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("github: decode %s: %w", target, err)
	}
	return nil
}

// errorMessage extracts the "message" field GitHub puts in error payloads.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		return payload.Message
	}
	return ""
}
