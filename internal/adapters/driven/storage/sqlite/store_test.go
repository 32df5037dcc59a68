package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func testTrace(id string, intent domain.Intent, at time.Time) domain.Trace {
	return domain.Trace{
		ID:         id,
		Question:   "apps missing after role change",
		Locale:     domain.LocaleEN,
		Intent:     intent,
		Route:      domain.RouteRulesOnly,
		Confidence: 0.8,
		KBChunks:   3,
		Provider:   "mock",
		Model:      "mock",
		LatencyMs:  12,
		CreatedAt:  at,
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DefaultFileName), store.Path())
	assert.FileExists(t, store.Path())
}

func TestOpen_NestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "t.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, path)
}

func TestMigrate_RecordsVersionOnce(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count, version int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*), MAX(version) FROM schema_migrations").Scan(&count, &version))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, version)
}

func TestSaveAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, testTrace("a", domain.IntentAppsNotVisible, base)))
	require.NoError(t, store.Save(ctx, testTrace("b", domain.IntentCacheIndexing, base.Add(time.Minute))))
	require.NoError(t, store.Save(ctx, testTrace("c", domain.IntentAppsNotVisible, base.Add(2*time.Minute))))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, testTrace("a", domain.IntentAppsNotVisible, base), all[2])

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].ID)
}

func TestSave_ReplacesExistingID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, testTrace("a", domain.IntentCacheIndexing, at)))
	updated := testTrace("a", domain.IntentAuthorization, at)
	require.NoError(t, store.Save(ctx, updated))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.IntentAuthorization, all[0].Intent)
}

func TestSave_Validation(t *testing.T) {
	store := setupTestStore(t)

	err := store.Save(context.Background(), domain.Trace{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSave_DefaultsCreatedAt(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testTrace("a", domain.IntentCacheIndexing, time.Time{})))

	all, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].CreatedAt.IsZero())
}

func TestList_Empty(t *testing.T) {
	store := setupTestStore(t)

	all, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCountByIntent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, store.Save(ctx, testTrace("a", domain.IntentCacheIndexing, at)))
	require.NoError(t, store.Save(ctx, testTrace("b", domain.IntentCacheIndexing, at)))
	require.NoError(t, store.Save(ctx, testTrace("c", domain.IntentAuthorization, at)))

	counts, err := store.CountByIntent(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Intent]int{domain.IntentCacheIndexing: 2, domain.IntentAuthorization: 1}, counts)
}

func TestClosedStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Error(t, store.Save(context.Background(), testTrace("a", domain.IntentCacheIndexing, time.Now())))
	_, err = store.List(context.Background(), 0)
	assert.Error(t, err)
}
