// service/tag_service.go
package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/util"
)

// TagStore is the durable-store surface the tag service needs.
// dao.TagDAO is the production implementation. The bool reports
// whether the call inserted the tag.
type TagStore interface {
	GetOrCreateByLabel(ctx context.Context, label string) (int64, bool, error)
	ListTags(ctx context.Context) ([]model.TagWithCount, error)
	FindWithSnippetsForOwner(ctx context.Context, tagID, ownerID int64) (*model.TagDetail, error)
}

// ITagService defines the interface for tag operations
type ITagService interface {
	ResolveLabels(ctx context.Context, labels []string) ([]int64, error)
	ListTags(ctx context.Context) (*model.TagListPayload, bool, error)
	GetTagDetail(ctx context.Context, tagID, ownerID int64) (*model.TagDetail, bool, error)
}

type TagService struct {
	tagStore        TagStore
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ITagService = &TagService{}

func NewTagService(tagStore TagStore, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *TagService {
	service := &TagService{
		tagStore:        tagStore,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("tag.created", service.handleTagCreated)

	return service
}

func (s *TagService) handleTagCreated(ctx context.Context, event util.Event) error {
	tag, ok := event.Payload.(model.Tag)
	if !ok {
		logger.Warn("Unexpected payload on tag.created event")
		return nil
	}
	if err := s.notificationSvc.NotifyTagChange(ctx, "created", tag); err != nil {
		logger.Warn("Failed to send tag creation notification",
			zap.Error(err), zap.Int64("tagID", tag.ID))
	}
	return nil
}

// ResolveLabels converts free-text tag labels into a set of tag ids,
// creating tags that do not exist yet. Labels are trimmed and
// lowercased; empty and duplicate labels are dropped. The call blocks
// until every label is resolved, since the snippet-to-tag association
// is part of the same logical write.
func (s *TagService) ResolveLabels(ctx context.Context, labels []string) ([]int64, error) {
	seen := make(map[string]struct{}, len(labels))
	ids := make([]int64, 0, len(labels))
	idSet := make(map[int64]struct{}, len(labels))

	for _, raw := range labels {
		label := strings.ToLower(strings.TrimSpace(raw))
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}

		id, created, err := s.tagStore.GetOrCreateByLabel(ctx, label)
		if err != nil {
			return nil, err
		}
		if created {
			s.eventBus.Publish(ctx, "tag.created", model.Tag{ID: id, Title: label})
		}
		if _, dup := idSet[id]; !dup {
			idSet[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ListTags returns the global tag listing, served from cache when
// fresh.
func (s *TagService) ListTags(ctx context.Context) (*model.TagListPayload, bool, error) {
	data, fromCache, err := s.cacheService.GetOrCompute(ctx, util.TagListKey(), s.cacheService.TTLs().TagList, func() ([]byte, error) {
		tags, err := s.tagStore.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(model.TagListPayload{Tags: tags})
	})
	if err != nil {
		return nil, false, err
	}

	var payload model.TagListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, err
	}
	return &payload, fromCache, nil
}

// GetTagDetail returns the per-owner view of a tag, served from cache
// when fresh.
func (s *TagService) GetTagDetail(ctx context.Context, tagID, ownerID int64) (*model.TagDetail, bool, error) {
	key := util.TagDetailKey(tagID, ownerID)
	data, fromCache, err := s.cacheService.GetOrCompute(ctx, key, s.cacheService.TTLs().TagDetail, func() ([]byte, error) {
		detail, err := s.tagStore.FindWithSnippetsForOwner(ctx, tagID, ownerID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(detail)
	})
	if err != nil {
		return nil, false, err
	}

	var detail model.TagDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, false, err
	}
	return &detail, fromCache, nil
}
