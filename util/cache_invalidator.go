// util/cache_invalidator.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/snipvault/api/logging"
)

// CacheInvalidator drops the cache entries a durable-store mutation
// could have made stale. Callers invoke it strictly after the mutation
// commits. Failures are logged, never surfaced: a write that cannot
// invalidate still succeeds and staleness is bounded by TTL expiry.
type CacheInvalidator struct {
	backend CacheBackend
}

func NewCacheInvalidator(backend CacheBackend) *CacheInvalidator {
	return &CacheInvalidator{backend: backend}
}

// OnSnippetWrite invalidates the owner's snippet views after a snippet
// create, update or delete. snippetID <= 0 means no detail entry can
// exist yet (create), so only the list key is dropped. Snippet writes
// can create tags or change tag-to-snippet associations, so every
// snippet write also invalidates the tag views.
func (i *CacheInvalidator) OnSnippetWrite(ctx context.Context, ownerID, snippetID int64) {
	keys := []string{SnippetListKey(ownerID)}
	if snippetID > 0 {
		keys = append(keys, SnippetDetailKey(ownerID, snippetID))
	}
	if err := i.backend.DeleteMany(ctx, keys...); err != nil {
		logger.Warn("Snippet cache invalidation failed",
			zap.Error(err),
			zap.Int64("ownerID", ownerID),
			zap.Int64("snippetID", snippetID))
	}
	i.OnTagWrite(ctx, 0, 0)
}

// OnTagWrite invalidates the global tag list and the affected
// tag-detail views. When both the tag and the owner are known only
// that single detail key is dropped. Otherwise the precise set of
// affected owners is unknown, so every key in the tag-detail
// namespace is swept. Over-invalidation is always safe; leaving a
// stale entry is not.
func (i *CacheInvalidator) OnTagWrite(ctx context.Context, tagID, ownerID int64) {
	keys := []string{TagListKey()}
	if tagID > 0 && ownerID > 0 {
		keys = append(keys, TagDetailKey(tagID, ownerID))
	} else {
		detailKeys, err := i.backend.ScanKeys(ctx, TagDetailPrefix)
		if err != nil {
			logger.Warn("Tag detail sweep failed", zap.Error(err))
		} else {
			keys = append(keys, detailKeys...)
		}
	}
	if err := i.backend.DeleteMany(ctx, keys...); err != nil {
		logger.Warn("Tag cache invalidation failed", zap.Error(err), zap.Int64("tagID", tagID))
	}
}
