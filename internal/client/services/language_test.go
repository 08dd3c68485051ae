package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/i18n"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

func TestLanguage_DefaultsToRussian(t *testing.T) {
	s := NewLanguageService(storage.NewMemoryRepository(), logging.Nop())
	s.Load(context.Background())

	assert.Equal(t, i18n.Russian, s.Language())
	assert.Equal(t, "Язык", s.T().Language)
}

func TestLanguage_SetPersists(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	s := NewLanguageService(repo, logging.Nop())

	require.NoError(t, s.SetLanguage(ctx, "EN"))
	assert.Equal(t, i18n.English, s.Language())
	assert.Equal(t, "Language", s.T().Language)

	v, err := repo.Get(ctx, storage.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", string(v))

	reloaded := NewLanguageService(repo, logging.Nop())
	reloaded.Load(ctx)
	assert.Equal(t, i18n.English, reloaded.Language())
}

func TestLanguage_RejectsUnknown(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewLanguageService(repo, logging.Nop())

	require.ErrorIs(t, s.SetLanguage(ctx, "de"), i18n.ErrUnsupportedLanguage)
	assert.Equal(t, i18n.Russian, s.Language())
	assert.Zero(t, repo.writeCount())
}

func TestLanguage_WriteFailureKeepsLanguage(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewLanguageService(repo, logging.Nop())
	repo.fail("set")

	require.ErrorIs(t, s.SetLanguage(ctx, i18n.Tajik), errStorage)
	assert.Equal(t, i18n.Russian, s.Language())
}

func TestLanguage_LoadIgnoresGarbage(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, storage.KeyLanguage, []byte("klingon")))

	s := NewLanguageService(repo, logging.Nop())
	s.Load(ctx)
	assert.Equal(t, i18n.Russian, s.Language())

	require.NoError(t, repo.Set(ctx, storage.KeyLanguage, []byte(`"tg"`)))
	s.Load(ctx)
	assert.Equal(t, i18n.Tajik, s.Language())
}

func TestLanguage_LoadWithoutKeyResetsToDefault(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	s := NewLanguageService(repo, logging.Nop())

	require.NoError(t, s.SetLanguage(ctx, i18n.English))
	require.NoError(t, repo.Delete(ctx, storage.KeyLanguage))

	s.Load(ctx)
	assert.Equal(t, i18n.DefaultLanguage, s.Language())
}

func TestLanguage_LoadFailureKeepsLanguage(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	s := NewLanguageService(repo, logging.Nop())

	require.NoError(t, s.SetLanguage(ctx, i18n.English))
	repo.fail("get")

	s.Load(ctx)
	assert.Equal(t, i18n.English, s.Language())
}
