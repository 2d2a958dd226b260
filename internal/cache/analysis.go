// Package cache provides a Redis-backed cache for analysis results so that
// identical text is only sent to the cloud provider once.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/aura-journal/internal/model"
)

const keyPrefix = "analysis:"

// AnalysisCache caches AnalysisPayload values keyed by the SHA-256 of the
// analyzed text.  A nil *AnalysisCache is valid and behaves as a permanent
// miss, which is how the nlp service degrades when Redis is unreachable at
// startup.
type AnalysisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a cache over the given client, or nil when the client is nil.
func New(rdb *redis.Client, ttl time.Duration) *AnalysisCache {
	if rdb == nil {
		return nil
	}
	return &AnalysisCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached analysis for the text, if any.
func (c *AnalysisCache) Get(ctx context.Context, text string) (*model.AnalysisPayload, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, keyFor(text)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("analysis-cache: get failed: %v", err)
		}
		return nil, false
	}
	var payload model.AnalysisPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("analysis-cache: corrupt entry dropped: %v", err)
		_ = c.rdb.Del(ctx, keyFor(text)).Err()
		return nil, false
	}
	return &payload, true
}

// Set stores the analysis under the text's key.  Failures are logged and
// swallowed; caching is best-effort.
func (c *AnalysisCache) Set(ctx context.Context, text string, payload model.AnalysisPayload) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("analysis-cache: marshal failed: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, keyFor(text), raw, c.ttl).Err(); err != nil {
		log.Printf("analysis-cache: set failed: %v", err)
	}
}

func keyFor(text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + hex.EncodeToString(sum[:])
}
