// db/redis_cache_test.go
package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/snipvault/api/db"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
)

// Backend failures must be recognizable by callers so the caching
// layer can degrade to a miss instead of failing the request. A
// canceled context makes every command fail without a live server.
func TestRedisCache_BackendFailureIsCacheUnavailable(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	client := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	defer client.Close()
	cache := db.NewRedisCache(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cache.Get(ctx, "snippets:list:user:7")
	assert.ErrorIs(t, err, apierrors.ErrCacheUnavailable)

	err = cache.Set(ctx, "snippets:list:user:7", []byte("{}"), time.Minute)
	assert.ErrorIs(t, err, apierrors.ErrCacheUnavailable)

	err = cache.DeleteMany(ctx, "snippets:list:user:7")
	assert.ErrorIs(t, err, apierrors.ErrCacheUnavailable)

	_, err = cache.ScanKeys(ctx, "tags:detail:")
	assert.ErrorIs(t, err, apierrors.ErrCacheUnavailable)
}
