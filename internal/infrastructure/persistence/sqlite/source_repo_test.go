package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/repository"
	"github.com/bnema/listnav/internal/infrastructure/persistence/sqlite"
)

func newSourceRepo(t *testing.T) repository.SourceRepository {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "listnav.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return sqlite.NewSourceRepository(lazy)
}

func treeItems() []entity.SourceItem {
	return []entity.SourceItem{
		{Item: entity.NewItem("src", "src")},
		{Item: entity.NewItem("main.go", "main.go"), Parent: "src"},
		{Item: entity.Item{ID: "vendor", Label: "vendor", Disabled: true}, Parent: "src"},
		{Item: entity.NewItem("README.md", "README.md")},
	}
}

func TestSourceRepository_SaveAndItems(t *testing.T) {
	ctx := testCtx()
	repo := newSourceRepo(t)

	src := &entity.Source{Name: "project", Description: "project files"}
	require.NoError(t, repo.Save(ctx, src, treeItems()))
	assert.Equal(t, entity.SourceUser, src.Kind)
	assert.Equal(t, 4, src.Count)
	assert.False(t, src.UpdatedAt.IsZero())

	items, err := repo.Items(ctx, "project")
	require.NoError(t, err)
	assert.Equal(t, treeItems(), items, "order, parents and disabled flags survive a round trip")

	roots := entity.BuildTree(items)
	require.Len(t, roots, 2)
	assert.Len(t, roots[0].Children, 2)
}

func TestSourceRepository_SaveReplacesItems(t *testing.T) {
	ctx := testCtx()
	repo := newSourceRepo(t)

	require.NoError(t, repo.Save(ctx, &entity.Source{Name: "fruits"}, []entity.SourceItem{
		{Item: entity.NewItem("apple", "Apple")},
		{Item: entity.NewItem("banana", "Banana")},
	}))
	require.NoError(t, repo.Save(ctx, &entity.Source{Name: "fruits", Description: "v2"}, []entity.SourceItem{
		{Item: entity.NewItem("cherry", "Cherry")},
	}))

	items, err := repo.Items(ctx, "fruits")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.ItemID("cherry"), items[0].ID)

	src, err := repo.Get(ctx, "fruits")
	require.NoError(t, err)
	require.NotNil(t, src)
	assert.Equal(t, "v2", src.Description)
	assert.Equal(t, 1, src.Count)
}

func TestSourceRepository_ListOrderedByName(t *testing.T) {
	ctx := testCtx()
	repo := newSourceRepo(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, repo.Save(ctx, &entity.Source{Name: name}, nil))
	}

	sources, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "alpha", sources[0].Name)
	assert.Equal(t, "mid", sources[1].Name)
	assert.Equal(t, "zeta", sources[2].Name)
	assert.Zero(t, sources[0].Count)
}

func TestSourceRepository_GetMissing(t *testing.T) {
	ctx := testCtx()
	repo := newSourceRepo(t)

	src, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, src)

	items, err := repo.Items(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSourceRepository_DeleteCascades(t *testing.T) {
	ctx := testCtx()
	repo := newSourceRepo(t)

	require.NoError(t, repo.Save(ctx, &entity.Source{Name: "project"}, treeItems()))
	require.NoError(t, repo.Delete(ctx, "project"))

	src, err := repo.Get(ctx, "project")
	require.NoError(t, err)
	assert.Nil(t, src)

	items, err := repo.Items(ctx, "project")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSourceRepository_RejectsInvalidName(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "listnav.sqlite")
	lazy := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewSourceRepository(lazy)

	err := repo.Save(ctx, &entity.Source{Name: "has space"}, nil)
	require.ErrorIs(t, err, entity.ErrInvalidSourceName)
	assert.False(t, lazy.IsInitialized(), "validation runs before the store opens")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "listnav.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlite.RunMigrations(ctx, db))

	version, err := sqlite.GetMigrationStatus(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.ErrorIs(t, err, sqlite.ErrEmptyPath)
}
