// Package client is a small HTTP client for the read side of the cast
// directory API, used by the terminal wizard.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arisa-app/castdir/internal/handler/gen"
)

// ErrStatus is wrapped by every error caused by a non-2xx response.
var ErrStatus = errors.New("unexpected status")

// Client calls the API at a fixed base URL. The zero value is not usable; use New.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a Client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
		log:  log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ActiveAreas returns the area labels in display order, skipping inactive ones.
func (c *Client) ActiveAreas(ctx context.Context) ([]gen.AreaLabel, error) {
	var all []gen.AreaLabel
	if err := c.get(ctx, "/api/areas", &all); err != nil {
		return nil, fmt.Errorf("client.ActiveAreas: %w", err)
	}
	active := make([]gen.AreaLabel, 0, len(all))
	for _, a := range all {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active, nil
}

// Casts returns the active casts matching q, newest first. q uses the same
// keys as the wizard's result query.
func (c *Client) Casts(ctx context.Context, q url.Values) ([]gen.Cast, error) {
	path := "/api/casts"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var casts []gen.Cast
	if err := c.get(ctx, path, &casts); err != nil {
		return nil, fmt.Errorf("client.Casts: %w", err)
	}
	if casts == nil {
		casts = []gen.Cast{}
	}
	return casts, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", req.Method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		"method", req.Method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := statusError(resp)
		c.log.Warn("request rejected", "path", path, "status", resp.StatusCode, "error", err)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError builds an error from the API's error envelope when present.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var env gen.ErrorResponse
	if json.Unmarshal(body, &env) == nil && env.Error.Message != "" {
		return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, env.Error.Message)
	}
	return fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
}
