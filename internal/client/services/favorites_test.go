package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

func TestFavorites_ToggleTwiceIsIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewFavoritesService(storage.NewMemoryRepository(), logging.Nop())

	for _, id := range []string{"1", "3", "6"} {
		added, err := s.Toggle(ctx, id)
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, s.IsFavorite(id))

		added, err = s.Toggle(ctx, id)
		require.NoError(t, err)
		assert.False(t, added)
		assert.False(t, s.IsFavorite(id))
	}
	assert.Zero(t, s.Count())
}

func TestFavorites_PersistsWholeSet(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	s := NewFavoritesService(repo, logging.Nop())

	_, _ = s.Toggle(ctx, "2")
	_, _ = s.Toggle(ctx, "5")
	_, _ = s.Toggle(ctx, "1")

	v, err := repo.Get(ctx, storage.KeyFavorites)
	require.NoError(t, err)
	assert.JSONEq(t, `["2","5","1"]`, string(v))

	reloaded := NewFavoritesService(repo, logging.Nop())
	reloaded.Load(ctx)
	assert.Equal(t, []string{"2", "5", "1"}, reloaded.Favorites())
}

func TestFavorites_ClearAll(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	s := NewFavoritesService(repo, logging.Nop())

	_, _ = s.Toggle(ctx, "2")
	require.NoError(t, s.ClearAll(ctx))
	assert.Empty(t, s.Favorites())

	v, err := repo.Get(ctx, storage.KeyFavorites)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v))
}

func TestFavorites_WriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewFavoritesService(repo, logging.Nop())

	_, err := s.Toggle(ctx, "1")
	require.NoError(t, err)

	repo.fail("set")
	added, err := s.Toggle(ctx, "2")
	require.ErrorIs(t, err, errStorage)
	assert.False(t, added)
	assert.False(t, s.IsFavorite("2"))

	require.ErrorIs(t, s.ClearAll(ctx), errStorage)
	assert.True(t, s.IsFavorite("1"))
}

func TestFavorites_LoadDedupesAndSurvivesGarbage(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, storage.KeyFavorites, []byte(`["1","1","4"]`)))

	s := NewFavoritesService(repo, logging.Nop())
	s.Load(ctx)
	assert.Equal(t, []string{"1", "4"}, s.Favorites())

	require.NoError(t, repo.Set(ctx, storage.KeyFavorites, []byte(`{`)))
	s = NewFavoritesService(repo, logging.Nop())
	s.Load(ctx)
	assert.Zero(t, s.Count())
}

func TestFavorites_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	s := NewFavoritesService(storage.NewMemoryRepository(), logging.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Toggle(ctx, "7")
		}()
	}
	wg.Wait()

	assert.False(t, s.IsFavorite("7"))
}
