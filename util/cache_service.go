// util/cache_service.go

package util

import (
	"context"
	"time"

	"go.uber.org/zap"

	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
)

// CacheBackend is the keyed store the caching layer runs against.
// db.RedisCache is the production implementation; db.MemoryCache
// serves tests and Redis-less deployments. Get returns (nil, nil) for
// an absent key.
type CacheBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	DeleteMany(ctx context.Context, keys ...string) error
	ScanKeys(ctx context.Context, prefix string) ([]string, error)
}

// CacheTTLs holds the per-entity-kind time-to-live durations.
type CacheTTLs struct {
	SnippetList   time.Duration
	SnippetDetail time.Duration
	TagList       time.Duration
	TagDetail     time.Duration
}

// Validate rejects zero or negative TTLs. A zero TTL would cache
// forever on Redis and never on the in-memory backend, so it must
// abort startup instead.
func (t CacheTTLs) Validate() error {
	for _, ttl := range []time.Duration{t.SnippetList, t.SnippetDetail, t.TagList, t.TagDetail} {
		if ttl <= 0 {
			return apierrors.ErrInvalidCacheTTL
		}
	}
	return nil
}

// CacheService implements the read-through pattern over an injected
// backend.
type CacheService struct {
	backend CacheBackend
	ttls    CacheTTLs
}

func NewCacheService(backend CacheBackend, ttls CacheTTLs) (*CacheService, error) {
	if err := ttls.Validate(); err != nil {
		return nil, err
	}
	return &CacheService{backend: backend, ttls: ttls}, nil
}

func (c *CacheService) TTLs() CacheTTLs {
	return c.ttls
}

// GetOrCompute returns the cached payload for key when present,
// reporting servedFromCache=true. On a miss it invokes compute, stores
// the result under key with the given TTL and returns it with
// servedFromCache=false.
//
// The cache backend is allowed to fail: a read error degrades to a
// miss and a write error is logged and dropped, so an unreachable
// backend never turns a working read into an error. Only compute
// failures propagate.
func (c *CacheService) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, bool, error) {
	cached, err := c.backend.Get(ctx, key)
	if err != nil {
		logger.Warn("Cache read failed, computing fresh", zap.Error(err), zap.String("key", key))
	} else if cached != nil {
		return cached, true, nil
	}

	data, err := compute()
	if err != nil {
		return nil, false, err
	}

	if err := c.backend.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to populate cache", zap.Error(err), zap.String("key", key))
	}
	return data, false, nil
}
