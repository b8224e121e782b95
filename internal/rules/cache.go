package rules

import (
	"context"
	"sync"
	"time"

	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
)

// Clock returns the current time. Injectable so cache expiry is
// deterministic under test.
type Clock func() time.Time

// CachedSource wraps an OverrideSource with a TTL cache keyed by
// category and brand. It exists so repeated registry builds don't
// re-fetch a published rule module on every evaluation; the wrapped
// source never knows it is cached.
type CachedSource struct {
	src OverrideSource
	ttl time.Duration
	now Clock

	mu      sync.RWMutex
	routing map[string]routingEntry
	rules   map[string]rulesEntry
}

type routingEntry struct {
	value     decoder.Routing
	expiresAt time.Time
}

type rulesEntry struct {
	value     *RuleOverrides
	expiresAt time.Time
}

// NewCachedSource wraps src with the given TTL. A nil clock uses
// time.Now.
func NewCachedSource(src OverrideSource, ttl time.Duration, now Clock) *CachedSource {
	if now == nil {
		now = time.Now
	}
	return &CachedSource{
		src:     src,
		ttl:     ttl,
		now:     now,
		routing: make(map[string]routingEntry),
		rules:   make(map[string]rulesEntry),
	}
}

func cacheKey(category model.CategoryID, brand string) string {
	return string(category) + "|" + brand
}

// FetchDecoderOverrides returns the cached routing for the key when
// fresh, otherwise delegates and caches the result.
func (c *CachedSource) FetchDecoderOverrides(ctx context.Context, category model.CategoryID, brand string) (decoder.Routing, error) {
	key := cacheKey(category, brand)

	c.mu.RLock()
	entry, ok := c.routing[key]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	value, err := c.src.FetchDecoderOverrides(ctx, category, brand)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.routing[key] = routingEntry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}

// FetchRuleOverrides returns the cached overrides for the key when
// fresh, otherwise delegates and caches the result.
func (c *CachedSource) FetchRuleOverrides(ctx context.Context, category model.CategoryID, brand string) (*RuleOverrides, error) {
	key := cacheKey(category, brand)

	c.mu.RLock()
	entry, ok := c.rules[key]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	value, err := c.src.FetchRuleOverrides(ctx, category, brand)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.rules[key] = rulesEntry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}

// Invalidate drops every cached entry.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.routing = make(map[string]routingEntry)
	c.rules = make(map[string]rulesEntry)
	c.mu.Unlock()
}
