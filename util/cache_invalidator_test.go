// util/cache_invalidator_test.go
package util_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/snipvault/api/db"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/util"
)

func seed(t *testing.T, backend *db.MemoryCache, keys ...string) {
	t.Helper()
	for _, key := range keys {
		assert.NoError(t, backend.Set(context.Background(), key, []byte("cached"), time.Minute))
	}
}

func assertCached(t *testing.T, backend *db.MemoryCache, key string, want bool) {
	t.Helper()
	val, err := backend.Get(context.Background(), key)
	assert.NoError(t, err)
	if want {
		assert.NotNil(t, val, "expected %q to still be cached", key)
	} else {
		assert.Nil(t, val, "expected %q to be invalidated", key)
	}
}

func TestCacheInvalidator(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("SnippetUpdateDropsOwnerViewsOnly", func(t *testing.T) {
		backend := db.NewMemoryCache()
		seed(t, backend,
			util.SnippetListKey(7),
			util.SnippetDetailKey(7, 42),
			util.SnippetListKey(9),
			util.SnippetDetailKey(9, 42),
		)

		util.NewCacheInvalidator(backend).OnSnippetWrite(ctx, 7, 42)

		assertCached(t, backend, util.SnippetListKey(7), false)
		assertCached(t, backend, util.SnippetDetailKey(7, 42), false)
		// Another owner's views survive.
		assertCached(t, backend, util.SnippetListKey(9), true)
		assertCached(t, backend, util.SnippetDetailKey(9, 42), true)
	})

	t.Run("SnippetCreateDropsListOnly", func(t *testing.T) {
		backend := db.NewMemoryCache()
		seed(t, backend,
			util.SnippetListKey(7),
			util.SnippetDetailKey(7, 42),
		)

		util.NewCacheInvalidator(backend).OnSnippetWrite(ctx, 7, 0)

		assertCached(t, backend, util.SnippetListKey(7), false)
		assertCached(t, backend, util.SnippetDetailKey(7, 42), true)
	})

	t.Run("SnippetWriteSweepsTagViews", func(t *testing.T) {
		backend := db.NewMemoryCache()
		seed(t, backend,
			util.TagListKey(),
			util.TagDetailKey(3, 7),
			util.TagDetailKey(5, 9),
		)

		util.NewCacheInvalidator(backend).OnSnippetWrite(ctx, 7, 42)

		// A snippet write can touch any tag association, so the whole
		// tag-detail namespace goes.
		assertCached(t, backend, util.TagListKey(), false)
		assertCached(t, backend, util.TagDetailKey(3, 7), false)
		assertCached(t, backend, util.TagDetailKey(5, 9), false)
	})

	t.Run("TagWriteWithKnownOwnerDropsSingleDetail", func(t *testing.T) {
		backend := db.NewMemoryCache()
		seed(t, backend,
			util.TagListKey(),
			util.TagDetailKey(3, 7),
			util.TagDetailKey(3, 9),
		)

		util.NewCacheInvalidator(backend).OnTagWrite(ctx, 3, 7)

		assertCached(t, backend, util.TagListKey(), false)
		assertCached(t, backend, util.TagDetailKey(3, 7), false)
		assertCached(t, backend, util.TagDetailKey(3, 9), true)
	})

	t.Run("BackendFailureIsSwallowed", func(t *testing.T) {
		invalidator := util.NewCacheInvalidator(brokenBackend{})
		assert.NotPanics(t, func() {
			invalidator.OnSnippetWrite(ctx, 7, 42)
			invalidator.OnTagWrite(ctx, 0, 0)
		})
	})
}
