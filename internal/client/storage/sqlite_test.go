package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	r := openSQLite(t)
	// закрываем БД, чтобы получить ошибку драйвера
	require.NoError(t, r.Close())
	return r
}

func TestSQLite_ErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	r := closedRepo(t)

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set kv[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete kv[k]")

	err = r.Clear(ctx)
	require.ErrorContains(t, err, "failed to clear kv")

	_, err = r.Keys(ctx)
	require.ErrorContains(t, err, "failed to list kv keys")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list kv")

	err = r.DeleteMany(ctx, []string{"k"})
	require.Error(t, err)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "local.db")

	r, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, r.Set(ctx, KeyLanguage, []byte(`"en"`)))
	require.NoError(t, r.Close())

	r, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Get(ctx, KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"en"`), v)
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	r, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "dir", "x.db"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestOpen_BadPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := Open(context.Background(), filepath.Join(blocker, "x.db"))
	require.ErrorContains(t, err, "failed to prepare local database dir")
}
