// service/snippet_service_test.go
package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snipvault/api/db"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	"github.com/snipvault/api/service"
	"github.com/snipvault/api/util"
)

// fakeSnippetStore keeps snippets per owner in memory, mirroring the
// owner-scoped durable store.
type fakeSnippetStore struct {
	mu       sync.Mutex
	nextID   int64
	snippets map[int64]map[int64]*model.Snippet
}

func newFakeSnippetStore() *fakeSnippetStore {
	return &fakeSnippetStore{snippets: make(map[int64]map[int64]*model.Snippet)}
}

func (f *fakeSnippetStore) CreateSnippet(ctx context.Context, ownerID int64, title, note string, tagIDs []int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	if f.snippets[ownerID] == nil {
		f.snippets[ownerID] = make(map[int64]*model.Snippet)
	}
	f.snippets[ownerID][f.nextID] = &model.Snippet{ID: f.nextID, Title: title, Note: note}
	return f.nextID, nil
}

func (f *fakeSnippetStore) FindByOwnerAndID(ctx context.Context, ownerID, snippetID int64) (*model.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snippet, ok := f.snippets[ownerID][snippetID]
	if !ok {
		return nil, apierrors.ErrSnippetNotFound
	}
	copied := *snippet
	return &copied, nil
}

func (f *fakeSnippetStore) FilterByOwner(ctx context.Context, ownerID int64) ([]model.SnippetOverview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	overviews := []model.SnippetOverview{}
	for _, snippet := range f.snippets[ownerID] {
		overviews = append(overviews, model.SnippetOverview{ID: snippet.ID, Title: snippet.Title})
	}
	return overviews, nil
}

func (f *fakeSnippetStore) UpdateSnippet(ctx context.Context, ownerID, snippetID int64, title, note string, tagIDs []int64, replaceTags bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	snippet, ok := f.snippets[ownerID][snippetID]
	if !ok {
		return apierrors.ErrSnippetNotFound
	}
	snippet.Title = title
	snippet.Note = note
	return nil
}

func (f *fakeSnippetStore) DeleteSnippet(ctx context.Context, ownerID, snippetID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.snippets[ownerID][snippetID]; !ok {
		return apierrors.ErrSnippetNotFound
	}
	delete(f.snippets[ownerID], snippetID)
	return nil
}

// fakeTagResolver records the labels it was asked to resolve.
type fakeTagResolver struct {
	mu     sync.Mutex
	labels [][]string
}

func (f *fakeTagResolver) ResolveLabels(ctx context.Context, labels []string) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.labels = append(f.labels, labels)
	ids := make([]int64, len(labels))
	for i := range labels {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

func newSnippetService(t *testing.T, store *fakeSnippetStore, resolver *fakeTagResolver, backend util.CacheBackend) *service.SnippetService {
	t.Helper()
	return service.NewSnippetService(
		store,
		resolver,
		util.NewValidationUtil(),
		newTestCacheService(t, backend),
		util.NewCacheInvalidator(backend),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
}

func TestSnippetService_CreateInvalidatesListCache(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	store := newFakeSnippetStore()
	resolver := &fakeTagResolver{}
	backend := db.NewMemoryCache()
	svc := newSnippetService(t, store, resolver, backend)

	// Warm the list cache.
	payload, fromCache, err := svc.ListSnippets(ctx, 7)
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 0, payload.TotalSnippets)

	_, fromCache, err = svc.ListSnippets(ctx, 7)
	assert.NoError(t, err)
	assert.True(t, fromCache)

	snippet, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{
		Title:     "retry with backoff",
		Note:      "exponential, capped",
		TagTitles: []string{"go"},
	})
	assert.NoError(t, err)
	assert.NotZero(t, snippet.ID)
	assert.Equal(t, [][]string{{"go"}}, resolver.labels)

	// The create dropped the cached list, so the next read recomputes
	// and sees the new snippet.
	payload, fromCache, err = svc.ListSnippets(ctx, 7)
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, 1, payload.TotalSnippets)
}

func TestSnippetService_UpdateInvalidatesDetailCache(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	store := newFakeSnippetStore()
	resolver := &fakeTagResolver{}
	backend := db.NewMemoryCache()
	svc := newSnippetService(t, store, resolver, backend)

	created, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{Title: "before"})
	assert.NoError(t, err)

	// Warm the detail cache.
	got, fromCache, err := svc.GetSnippet(ctx, 7, created.ID)
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "before", got.Title)

	_, fromCache, err = svc.GetSnippet(ctx, 7, created.ID)
	assert.NoError(t, err)
	assert.True(t, fromCache)

	_, err = svc.UpdateSnippet(ctx, 7, created.ID, model.SnippetWriteRequest{
		Title:     "after",
		TagTitles: []string{"go", "redis"},
	})
	assert.NoError(t, err)

	got, fromCache, err = svc.GetSnippet(ctx, 7, created.ID)
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "after", got.Title)
}

func TestSnippetService_UpdateWithoutTagsKeepsAssociations(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	store := newFakeSnippetStore()
	resolver := &fakeTagResolver{}
	svc := newSnippetService(t, store, resolver, db.NewMemoryCache())

	created, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{Title: "v1", TagTitles: []string{"go"}})
	assert.NoError(t, err)

	// A nil TagTitles means "leave the tag set alone": the resolver
	// must not run again.
	_, err = svc.UpdateSnippet(ctx, 7, created.ID, model.SnippetWriteRequest{Title: "v2"})
	assert.NoError(t, err)
	assert.Len(t, resolver.labels, 1)

	// An explicit empty slice clears the tag set and does resolve.
	_, err = svc.UpdateSnippet(ctx, 7, created.ID, model.SnippetWriteRequest{Title: "v3", TagTitles: []string{}})
	assert.NoError(t, err)
	assert.Len(t, resolver.labels, 2)
}

func TestSnippetService_DeleteReturnsRemainingFromSameSnapshot(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	store := newFakeSnippetStore()
	resolver := &fakeTagResolver{}
	svc := newSnippetService(t, store, resolver, db.NewMemoryCache())

	first, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{Title: "keep"})
	assert.NoError(t, err)
	second, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{Title: "drop"})
	assert.NoError(t, err)

	payload, err := svc.DeleteSnippet(ctx, 7, second.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, payload.TotalSnippetsRemaining)
	assert.Len(t, payload.Snippets, 1)
	assert.Equal(t, first.ID, payload.Snippets[0].ID)

	_, err = svc.DeleteSnippet(ctx, 7, second.ID)
	assert.ErrorIs(t, err, apierrors.ErrSnippetNotFound)
}

func TestSnippetService_RejectsInvalidWrite(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	svc := newSnippetService(t, newFakeSnippetStore(), &fakeTagResolver{}, db.NewMemoryCache())

	_, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{Title: "   "})
	assert.ErrorIs(t, err, apierrors.ErrInvalidSnippetData)

	_, err = svc.UpdateSnippet(ctx, 7, 1, model.SnippetWriteRequest{Title: ""})
	assert.ErrorIs(t, err, apierrors.ErrInvalidSnippetData)
}

func TestSnippetService_ListIsOwnerScoped(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	store := newFakeSnippetStore()
	svc := newSnippetService(t, store, &fakeTagResolver{}, db.NewMemoryCache())

	_, err := svc.CreateSnippet(ctx, 7, model.SnippetWriteRequest{Title: "mine"})
	assert.NoError(t, err)

	payload, _, err := svc.ListSnippets(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, 0, payload.TotalSnippets)

	payload, _, err = svc.ListSnippets(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, 1, payload.TotalSnippets)
}
