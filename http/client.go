// Package http implements spotlight.ResourceService against the Modrinth
// and CurseForge web APIs.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies requests made by this package.
const DefaultUserAgent = "spotlight/1.0 (+https://github.com/fwojciec/spotlight)"

// client performs JSON GET requests against one API base URL.
type client struct {
	http      *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
	apiKey    string
	limiter   *HostLimiter
}

// Option configures a provider service.
type Option func(*client)

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// WithBaseURL overrides the API base URL, e.g. to point at a mirror or a
// test server.
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
	}
}

// WithAPIKey sets the API key. Only CurseForge requires one.
func WithAPIKey(key string) Option {
	return func(c *client) {
		c.apiKey = key
	}
}

// WithRateLimiter throttles requests per API host. Services may share one limiter.
func WithRateLimiter(l *HostLimiter) Option {
	return func(c *client) {
		c.limiter = l
	}
}

func newClient(baseURL string, opts []Option) *client {
	c := &client{
		timeout:   DefaultTimeout,
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// getJSON requests path below the base URL and decodes the JSON response into v.
// Transport failures and non-2xx responses are EUNAVAILABLE; undecodable
// bodies are EINTERNAL. Context errors are returned unchanged.
func (c *client) getJSON(ctx context.Context, path string, params url.Values, header http.Header, v any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse request url: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, u.Host); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for k, vs := range header {
		for _, hv := range vs {
			req.Header.Add(k, hv)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return unavailable("GET %s: %v", u.Redacted(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return unavailable("HTTP %d for %s", resp.StatusCode, u.Redacted())
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return internal("decode %s: %v", u.Redacted(), err)
	}
	return nil
}
