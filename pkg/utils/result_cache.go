package utils

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"

	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
)

const (
	cacheTTL        = time.Hour
	cacheMaxEntries = 1000
)

// ResultCache keeps recently normalized plans in process memory so a
// repeated submission of the same trip does not burn another model call.
// Regeneration bypasses it entirely; nothing is ever written to disk.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]cachedResult
}

type cachedResult struct {
	result   *response_models.PlanResult
	storedAt time.Time
}

func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string]cachedResult),
	}
}

// CacheKey hashes every request field that influences the generated plan.
func CacheKey(req request_models.TripRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%.2f|%s|%d|%s|%s|%s|%s|%s",
		req.Budget,
		strings.ToLower(req.Destination),
		req.DurationDays,
		req.StartDate,
		req.TravelStyle,
		req.GroupType,
		req.DietaryPreference,
		strings.ToLower(strings.Join(req.Interests, ",")),
	)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func (c *ResultCache) Get(key string) (*response_models.PlanResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[key]
	if !ok || time.Since(cached.storedAt) > cacheTTL {
		return nil, false
	}
	return cached.result, true
}

func (c *ResultCache) Set(key string, result *response_models.PlanResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cachedResult{result: result, storedAt: time.Now()}

	if len(c.entries) > cacheMaxEntries {
		for k, v := range c.entries {
			if time.Since(v.storedAt) > cacheTTL {
				delete(c.entries, k)
			}
		}
	}
}
