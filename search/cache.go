package search

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/spotlight"
)

// Default cache tuning.
const (
	DefaultCacheTTL        = 5 * time.Minute
	DefaultCacheMaxEntries = 256
)

var _ spotlight.ResourceService = (*ResponseCache)(nil)

// ResponseCache memoizes successful resource pages for a TTL.
// Errors are never cached. Every caller gets its own copy of a cached page.
type ResponseCache struct {
	next       spotlight.ResourceService
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	page     *spotlight.ResourcePage
	storedAt time.Time
}

// CacheOption configures a ResponseCache.
type CacheOption func(*ResponseCache)

// WithTTL sets how long a cached page stays valid.
func WithTTL(d time.Duration) CacheOption {
	return func(c *ResponseCache) {
		c.ttl = d
	}
}

// WithMaxEntries bounds the number of cached pages.
func WithMaxEntries(n int) CacheOption {
	return func(c *ResponseCache) {
		c.maxEntries = n
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *ResponseCache) {
		c.now = now
	}
}

// NewResponseCache wraps next with a response cache.
func NewResponseCache(next spotlight.ResourceService, opts ...CacheOption) *ResponseCache {
	c := &ResponseCache{
		next:       next,
		ttl:        DefaultCacheTTL,
		maxEntries: DefaultCacheMaxEntries,
		now:        time.Now,
		entries:    make(map[uint64]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxEntries <= 0 {
		c.maxEntries = DefaultCacheMaxEntries
	}
	return c
}

// FetchResourceListByName returns a cached page when fresh, otherwise
// delegates and stores the result.
func (c *ResponseCache) FetchResourceListByName(ctx context.Context, query spotlight.ResourceQuery) (*spotlight.ResourcePage, error) {
	key := cacheKey(query)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.storedAt) < c.ttl {
		c.mu.Unlock()
		return e.page.Clone(), nil
	}
	c.mu.Unlock()

	page, err := c.next.FetchResourceListByName(ctx, query)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictLocked()
	c.entries[key] = cacheEntry{page: page.Clone(), storedAt: c.now()}
	return page, nil
}

// Len returns the number of cached pages, fresh or not.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictLocked drops expired entries and, if the cache is still full, the oldest one.
func (c *ResponseCache) evictLocked() {
	if len(c.entries) < c.maxEntries {
		return
	}
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	for len(c.entries) >= c.maxEntries {
		var oldestKey uint64
		var oldest time.Time
		first := true
		for k, e := range c.entries {
			if first || e.storedAt.Before(oldest) {
				oldestKey, oldest, first = k, e.storedAt, false
			}
		}
		delete(c.entries, oldestKey)
	}
}

func cacheKey(q spotlight.ResourceQuery) uint64 {
	parts := []string{
		string(q.Source),
		string(q.Type),
		q.Query,
		q.GameVersion,
		q.Tag,
		q.SortBy,
		strconv.Itoa(q.Page),
		strconv.Itoa(q.PageSize),
	}
	return xxhash.Sum64String(strings.Join(parts, "\x00"))
}
