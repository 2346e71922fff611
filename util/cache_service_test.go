// util/cache_service_test.go
package util_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/snipvault/api/db"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/util"
)

var errBackendDown = errors.New("backend down")

// brokenBackend fails every operation, standing in for an unreachable
// Redis.
type brokenBackend struct{}

func (brokenBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errBackendDown
}

func (brokenBackend) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return errBackendDown
}

func (brokenBackend) DeleteMany(ctx context.Context, keys ...string) error {
	return errBackendDown
}

func (brokenBackend) ScanKeys(ctx context.Context, prefix string) ([]string, error) {
	return nil, errBackendDown
}

func testTTLs() util.CacheTTLs {
	return util.CacheTTLs{
		SnippetList:   time.Minute,
		SnippetDetail: time.Minute,
		TagList:       time.Minute,
		TagDetail:     time.Minute,
	}
}

func TestCacheService(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("MissComputesAndStores", func(t *testing.T) {
		backend := db.NewMemoryCache()
		svc, err := util.NewCacheService(backend, testTTLs())
		assert.NoError(t, err)

		computes := 0
		compute := func() ([]byte, error) {
			computes++
			return []byte(`{"n":1}`), nil
		}

		data, fromCache, err := svc.GetOrCompute(ctx, "k", time.Minute, compute)
		assert.NoError(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, []byte(`{"n":1}`), data)
		assert.Equal(t, 1, computes)

		// Second read is served from the backend without recomputing.
		data, fromCache, err = svc.GetOrCompute(ctx, "k", time.Minute, compute)
		assert.NoError(t, err)
		assert.True(t, fromCache)
		assert.Equal(t, []byte(`{"n":1}`), data)
		assert.Equal(t, 1, computes)
	})

	t.Run("ExpiredEntryRecomputes", func(t *testing.T) {
		backend := db.NewMemoryCache()
		svc, err := util.NewCacheService(backend, testTTLs())
		assert.NoError(t, err)

		computes := 0
		compute := func() ([]byte, error) {
			computes++
			return []byte("v"), nil
		}

		_, _, err = svc.GetOrCompute(ctx, "k", time.Nanosecond, compute)
		assert.NoError(t, err)
		time.Sleep(5 * time.Millisecond)

		_, fromCache, err := svc.GetOrCompute(ctx, "k", time.Nanosecond, compute)
		assert.NoError(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, 2, computes)
	})

	t.Run("BackendFailureDegradesToMiss", func(t *testing.T) {
		svc, err := util.NewCacheService(brokenBackend{}, testTTLs())
		assert.NoError(t, err)

		data, fromCache, err := svc.GetOrCompute(ctx, "k", time.Minute, func() ([]byte, error) {
			return []byte("fresh"), nil
		})
		assert.NoError(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, []byte("fresh"), data)
	})

	t.Run("ComputeFailurePropagates", func(t *testing.T) {
		backend := db.NewMemoryCache()
		svc, err := util.NewCacheService(backend, testTTLs())
		assert.NoError(t, err)

		computeErr := errors.New("store unavailable")
		_, _, err = svc.GetOrCompute(ctx, "k", time.Minute, func() ([]byte, error) {
			return nil, computeErr
		})
		assert.ErrorIs(t, err, computeErr)

		// A failed compute must not leave anything cached.
		cached, err := backend.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Nil(t, cached)
	})
}

func TestNewCacheService_RejectsInvalidTTLs(t *testing.T) {
	backend := db.NewMemoryCache()

	ttls := testTTLs()
	ttls.TagList = 0
	_, err := util.NewCacheService(backend, ttls)
	assert.ErrorIs(t, err, apierrors.ErrInvalidCacheTTL)

	ttls = testTTLs()
	ttls.SnippetDetail = -time.Second
	_, err = util.NewCacheService(backend, ttls)
	assert.ErrorIs(t, err, apierrors.ErrInvalidCacheTTL)
}
