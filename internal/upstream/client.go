// Package upstream talks to the raw data provider: two read-only collection
// endpoints serving users and post-like records.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the reference data provider.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// RawUser is an upstream user record.
type RawUser struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RawPost is an upstream post-like record.
type RawPost struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// FetchError indicates an upstream retrieval did not succeed. A non-2xx
// response counts as failure even when a body was received.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status %d", e.Endpoint, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches the raw collections.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates an upstream client. A nil httpClient gets a default with
// a conservative timeout; an empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{baseURL: baseURL, http: httpClient, logger: logger}
}

// FetchAll retrieves the user and post collections in parallel and joins
// both before returning. If either retrieval fails the whole call fails and
// neither partial result is returned. Cancelling the context aborts both
// in-flight requests.
func (c *Client) FetchAll(ctx context.Context) ([]RawUser, []RawPost, error) {
	var (
		users []RawUser
		posts []RawPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.fetchJSON(gctx, "/users", &users)
	})
	g.Go(func() error {
		return c.fetchJSON(gctx, "/posts", &posts)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	c.logger.Debug("upstream fetch complete", "users", len(users), "posts", len(posts))
	return users, posts, nil
}

func (c *Client) fetchJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &FetchError{Endpoint: path, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Endpoint: path, Err: err}
	}
	return nil
}
