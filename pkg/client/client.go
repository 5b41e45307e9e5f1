// Package client provides the cache-aside HTTP client through which all
// profile backend access flows: instant reads of previously-seen responses,
// network fetches on miss, and full-store invalidation on any mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aivault/profile-client/pkg/cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"
)

// Prometheus metrics for backend request operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_requests_total",
		Help: "Total backend requests by resource kind, method and status",
	}, []string{"kind", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profile_request_duration_seconds",
		Help:    "Backend request duration in seconds by resource kind",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"kind"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_errors_total",
		Help: "Total backend errors by resource kind",
	}, []string{"kind"})
)

// Client is the single choke point for resource access. GET results are
// served from the injected store when present (no network call, no
// freshness check); mutations always hit the network and clear the entire
// store on success.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *cache.Store
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the profile backend (required), e.g. "http://localhost:8000"
	BaseURL string

	// Store is the shared response cache. A fresh empty store is created
	// when nil; pass an explicit instance to share it with hydration
	// callers or to isolate tests.
	Store *cache.Store

	// HTTPClient performs the actual requests. Defaults to a plain
	// http.Client; the sync layer itself imposes no timeouts.
	HTTPClient *http.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		Store:      cache.NewStore(),
		HTTPClient: &http.Client{},
	}
}

// New creates a new profile backend client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	if cfg.Store == nil {
		cfg.Store = cache.NewStore()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	logger := log.With().Str("component", "profile-client").Logger()

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		store:      cfg.Store,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Store returns the injected response cache.
func (c *Client) Store() *cache.Store {
	return c.store
}

// key derives the cache key for path. This is the one derivation shared by
// Get, Hydrate and Prefetch; if it diverged, hydration would silently
// always miss.
func (c *Client) key(path string) cache.Key {
	return cache.Key{Base: c.baseURL, Path: path}
}

// Get fetches the resource at path, decoding the JSON body into out.
//
// When a previous fetch of the same path is cached, the cached body is
// decoded and returned with no network call at all - the instant path.
// Otherwise the backend is queried, the successful body stored, and the
// fresh value returned.
//
// The returned bool is false only when kind is optional and the backend
// answered 404: the resource legitimately does not exist yet, out is left
// untouched, and nothing is cached (the next Get retries the network).
// out may be nil to warm the cache without decoding.
func (c *Client) Get(ctx context.Context, kind Kind, path string, out any) (bool, error) {
	key := c.key(path)

	if body, ok := c.store.Peek(key); ok {
		c.logger.Debug().
			Str("kind", string(kind)).
			Str("path", path).
			Msg("Serving cached response")
		if out == nil {
			return true, nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return false, fmt.Errorf("decode cached response for %s: %w", path, err)
		}
		return true, nil
	}

	body, found, err := c.fetch(ctx, kind, path)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return false, fmt.Errorf("decode response for %s: %w", path, err)
		}
	}
	return true, nil
}

// fetch performs the network GET, caches successful bodies and translates
// optional 404s into an absent result. Shared by Get and Prefetch.
func (c *Client) fetch(ctx context.Context, kind Kind, path string) ([]byte, bool, error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request for %s: %w", path, err)
	}
	c.decorate(req)

	c.logger.Debug().
		Str("kind", string(kind)).
		Str("path", path).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("Fetching from backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		requestsTotal.WithLabelValues(string(kind), http.MethodGet, "network_error").Inc()
		return nil, false, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		return nil, false, fmt.Errorf("read response body for %s: %w", path, err)
	}

	requestsTotal.WithLabelValues(string(kind), http.MethodGet, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNotFound && kind.Optional() {
		// Valid "not configured yet" state. Deliberately not memoized: the
		// resource may come into existence at any moment and presence in
		// the store means "exists", so the next read goes back to the
		// network.
		c.logger.Debug().
			Str("kind", string(kind)).
			Str("path", path).
			Msg("Optional resource absent")
		return nil, false, nil
	}

	if resp.StatusCode >= 400 {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		c.logger.Warn().
			Str("kind", string(kind)).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Backend request failed")
		return nil, false, &APIError{
			StatusCode: resp.StatusCode,
			Method:     http.MethodGet,
			Path:       path,
			Body:       string(body),
		}
	}

	c.store.Put(c.key(path), body)
	return body, true, nil
}

// Post creates a resource at path and decodes the response into out
// (out may be nil). On success the entire store is cleared.
func (c *Client) Post(ctx context.Context, kind Kind, path string, in, out any) error {
	return c.mutate(ctx, kind, http.MethodPost, path, in, out)
}

// Patch partially updates the resource at path. On success the entire
// store is cleared.
func (c *Client) Patch(ctx context.Context, kind Kind, path string, in, out any) error {
	return c.mutate(ctx, kind, http.MethodPatch, path, in, out)
}

// Delete removes the resource at path. On success the entire store is
// cleared.
func (c *Client) Delete(ctx context.Context, kind Kind, path string) error {
	return c.mutate(ctx, kind, http.MethodDelete, path, nil, nil)
}

// mutate performs a mutating call. Mutations never read the cache; on any
// successful mutation every cached GET result is discarded, regardless of
// resource type. The backend has no dependency graph between resources (a
// coupon mutation may change a directory aggregate), so conservative full
// invalidation is the only way no caller ever observes stale data after a
// write.
func (c *Client) mutate(ctx context.Context, kind Kind, method, path string, in, out any) error {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}
	c.decorate(req)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("kind", string(kind)).
		Str("method", method).
		Str("path", path).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("Mutating backend resource")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		requestsTotal.WithLabelValues(string(kind), method, "network_error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		return fmt.Errorf("read response body for %s: %w", path, err)
	}

	requestsTotal.WithLabelValues(string(kind), method, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		c.logger.Warn().
			Str("kind", string(kind)).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("Backend mutation failed")
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(body),
		}
	}

	c.store.Clear()
	c.logger.Debug().
		Str("kind", string(kind)).
		Str("method", method).
		Str("path", path).
		Msg("Cache cleared after mutation")

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response for %s: %w", path, err)
		}
	}
	return nil
}

// decorate sets the standard headers on every outbound request.
func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", ksuid.New().String())
}
