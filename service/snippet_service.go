// service/snippet_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/util"
)

// SnippetStore is the durable-store surface the snippet service needs.
// dao.SnippetDAO is the production implementation.
type SnippetStore interface {
	CreateSnippet(ctx context.Context, ownerID int64, title, note string, tagIDs []int64) (int64, error)
	FindByOwnerAndID(ctx context.Context, ownerID, snippetID int64) (*model.Snippet, error)
	FilterByOwner(ctx context.Context, ownerID int64) ([]model.SnippetOverview, error)
	UpdateSnippet(ctx context.Context, ownerID, snippetID int64, title, note string, tagIDs []int64, replaceTags bool) error
	DeleteSnippet(ctx context.Context, ownerID, snippetID int64) error
}

// TagResolver resolves free-text labels into tag ids before a snippet
// write commits.
type TagResolver interface {
	ResolveLabels(ctx context.Context, labels []string) ([]int64, error)
}

// ISnippetService defines the interface for snippet operations
type ISnippetService interface {
	CreateSnippet(ctx context.Context, ownerID int64, req model.SnippetWriteRequest) (*model.Snippet, error)
	UpdateSnippet(ctx context.Context, ownerID, snippetID int64, req model.SnippetWriteRequest) (*model.Snippet, error)
	DeleteSnippet(ctx context.Context, ownerID, snippetID int64) (*model.SnippetDeletePayload, error)
	GetSnippet(ctx context.Context, ownerID, snippetID int64) (*model.Snippet, bool, error)
	ListSnippets(ctx context.Context, ownerID int64) (*model.SnippetListPayload, bool, error)
}

// SnippetService handles business logic for snippet operations.
// Reads go through the cache; writes commit to the durable store
// first and invalidate afterwards, so a failed write never wipes a
// valid cache entry.
type SnippetService struct {
	snippetStore    SnippetStore
	tagResolver     TagResolver
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	invalidator     *util.CacheInvalidator
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ISnippetService = &SnippetService{}

func NewSnippetService(
	snippetStore SnippetStore,
	tagResolver TagResolver,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	invalidator *util.CacheInvalidator,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *SnippetService {
	service := &SnippetService{
		snippetStore:    snippetStore,
		tagResolver:     tagResolver,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		invalidator:     invalidator,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("snippet.created", service.handleSnippetCreated)
	eventBus.Subscribe("snippet.updated", service.handleSnippetUpdated)
	eventBus.Subscribe("snippet.deleted", service.handleSnippetDeleted)

	return service
}

func (s *SnippetService) handleSnippetCreated(ctx context.Context, event util.Event) error {
	snippet := event.Payload.(model.Snippet)
	logger.Info("Snippet created event received", zap.Int64("snippetID", snippet.ID))
	if err := s.notificationSvc.NotifySnippetChange(ctx, "created", snippet); err != nil {
		logger.Warn("Failed to send snippet creation notification", zap.Error(err), zap.Int64("snippetID", snippet.ID))
	}
	return nil
}

func (s *SnippetService) handleSnippetUpdated(ctx context.Context, event util.Event) error {
	snippet := event.Payload.(model.Snippet)
	logger.Info("Snippet updated event received", zap.Int64("snippetID", snippet.ID))
	if err := s.notificationSvc.NotifySnippetChange(ctx, "updated", snippet); err != nil {
		logger.Warn("Failed to send snippet update notification", zap.Error(err), zap.Int64("snippetID", snippet.ID))
	}
	return nil
}

func (s *SnippetService) handleSnippetDeleted(ctx context.Context, event util.Event) error {
	snippet := event.Payload.(model.Snippet)
	logger.Info("Snippet deleted event received", zap.Int64("snippetID", snippet.ID))
	if err := s.notificationSvc.NotifySnippetChange(ctx, "deleted", snippet); err != nil {
		logger.Warn("Failed to send snippet deletion notification", zap.Error(err), zap.Int64("snippetID", snippet.ID))
	}
	return nil
}

// CreateSnippet resolves the requested tag labels, creates the snippet
// and invalidates the affected cache entries. No detail entry can
// exist for a brand-new snippet, so only the owner's list view (and
// the tag views) are dropped.
func (s *SnippetService) CreateSnippet(ctx context.Context, ownerID int64, req model.SnippetWriteRequest) (*model.Snippet, error) {
	if err := s.validationUtil.ValidateSnippetWrite(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrInvalidSnippetData, err)
	}

	tagIDs, err := s.tagResolver.ResolveLabels(ctx, req.TagTitles)
	if err != nil {
		return nil, err
	}

	snippetID, err := s.snippetStore.CreateSnippet(ctx, ownerID, req.Title, req.Note, tagIDs)
	if err != nil {
		return nil, err
	}

	s.invalidator.OnSnippetWrite(ctx, ownerID, 0)

	snippet, err := s.snippetStore.FindByOwnerAndID(ctx, ownerID, snippetID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "snippet.created", *snippet)
	return snippet, nil
}

// UpdateSnippet updates the snippet and, when tag titles were sent,
// replaces its tag set. Invalidation runs strictly after the store
// commit.
func (s *SnippetService) UpdateSnippet(ctx context.Context, ownerID, snippetID int64, req model.SnippetWriteRequest) (*model.Snippet, error) {
	if err := s.validationUtil.ValidateSnippetWrite(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apierrors.ErrInvalidSnippetData, err)
	}

	replaceTags := req.TagTitles != nil
	var tagIDs []int64
	if replaceTags {
		var err error
		tagIDs, err = s.tagResolver.ResolveLabels(ctx, req.TagTitles)
		if err != nil {
			return nil, err
		}
	}

	if err := s.snippetStore.UpdateSnippet(ctx, ownerID, snippetID, req.Title, req.Note, tagIDs, replaceTags); err != nil {
		return nil, err
	}

	s.invalidator.OnSnippetWrite(ctx, ownerID, snippetID)

	snippet, err := s.snippetStore.FindByOwnerAndID(ctx, ownerID, snippetID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "snippet.updated", *snippet)
	return snippet, nil
}

// DeleteSnippet removes the snippet and returns the owner's remaining
// snippets, counted from the same snapshot as the returned list.
func (s *SnippetService) DeleteSnippet(ctx context.Context, ownerID, snippetID int64) (*model.SnippetDeletePayload, error) {
	if err := s.snippetStore.DeleteSnippet(ctx, ownerID, snippetID); err != nil {
		return nil, err
	}

	s.invalidator.OnSnippetWrite(ctx, ownerID, snippetID)
	s.eventBus.Publish(ctx, "snippet.deleted", model.Snippet{ID: snippetID})

	remaining, err := s.snippetStore.FilterByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &model.SnippetDeletePayload{
		TotalSnippetsRemaining: len(remaining),
		Snippets:               remaining,
	}, nil
}

// GetSnippet returns the snippet detail for its owner, served from
// cache when fresh.
func (s *SnippetService) GetSnippet(ctx context.Context, ownerID, snippetID int64) (*model.Snippet, bool, error) {
	key := util.SnippetDetailKey(ownerID, snippetID)
	data, fromCache, err := s.cacheService.GetOrCompute(ctx, key, s.cacheService.TTLs().SnippetDetail, func() ([]byte, error) {
		snippet, err := s.snippetStore.FindByOwnerAndID(ctx, ownerID, snippetID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(snippet)
	})
	if err != nil {
		return nil, false, err
	}

	var snippet model.Snippet
	if err := json.Unmarshal(data, &snippet); err != nil {
		return nil, false, err
	}
	return &snippet, fromCache, nil
}

// ListSnippets returns the owner's snippet overview, served from cache
// when fresh. The total is derived from the same snapshot as the list.
func (s *SnippetService) ListSnippets(ctx context.Context, ownerID int64) (*model.SnippetListPayload, bool, error) {
	key := util.SnippetListKey(ownerID)
	data, fromCache, err := s.cacheService.GetOrCompute(ctx, key, s.cacheService.TTLs().SnippetList, func() ([]byte, error) {
		snippets, err := s.snippetStore.FilterByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(model.SnippetListPayload{
			TotalSnippets: len(snippets),
			Snippets:      snippets,
		})
	})
	if err != nil {
		return nil, false, err
	}

	var payload model.SnippetListPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false, err
	}
	return &payload, fromCache, nil
}
