package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/models"
	"github.com/hospsys/patient-registry/internal/observability"
	"github.com/hospsys/patient-registry/internal/redisclient"
	"github.com/hospsys/patient-registry/internal/utils"
)

// CandidateCache is a Redis-backed cache for duplicate candidate lists.
// All failures degrade to a cache miss so the search path never depends
// on Redis being available.
type CandidateCache struct {
	client *redisclient.Client
	ttl    time.Duration
	logger *logging.SafeLogger
}

// NewCandidateCache creates a CandidateCache with the given TTL
func NewCandidateCache(client *redisclient.Client, ttl time.Duration, logger *logging.SafeLogger) *CandidateCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CandidateCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Key derives the cache key from normalized search criteria
func (c *CandidateCache) Key(criteria models.SearchCriteria) string {
	return fmt.Sprintf("dedup:candidates:%s:%s:%s",
		utils.NormalizeName(criteria.FirstName),
		utils.NormalizeName(criteria.LastName),
		criteria.DateOfBirthFrom)
}

// Get returns the cached candidate list for the criteria, or (nil, false)
// on a miss or any Redis failure
func (c *CandidateCache) Get(ctx context.Context, criteria models.SearchCriteria) ([]models.DuplicateCandidate, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	key := c.Key(criteria)
	ctx, span := utils.TraceCacheGet(ctx, key)
	defer span.End()
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		observability.CacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	var candidates []models.DuplicateCandidate
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		c.logger.Warn("discarding malformed cached candidate list", zap.String("key", key), zap.Error(err))
		observability.CacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	observability.CacheHits.WithLabelValues("hit").Inc()
	return candidates, true
}

// Set stores the candidate list for the criteria. Failures are logged
// and otherwise ignored.
func (c *CandidateCache) Set(ctx context.Context, criteria models.SearchCriteria, candidates []models.DuplicateCandidate) {
	if c == nil || c.client == nil {
		return
	}
	key := c.Key(criteria)
	payload, err := json.Marshal(candidates)
	if err != nil {
		c.logger.Warn("failed to marshal candidate list for cache", zap.String("key", key), zap.Error(err))
		return
	}
	ctx, span := utils.TraceCacheSet(ctx, key)
	defer span.End()
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache candidate list", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the cached list for the criteria. Used after a
// registration changes the record set the criteria would match.
func (c *CandidateCache) Invalidate(ctx context.Context, criteria models.SearchCriteria) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.Key(criteria)).Err(); err != nil {
		c.logger.Warn("failed to invalidate candidate cache", zap.Error(err))
	}
}
