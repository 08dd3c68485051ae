package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
)

var errStorage = errors.New("disk on fire")

// flakyRepo wraps a MemoryRepository and fails the operations named in
// failOn.
type flakyRepo struct {
	*storage.MemoryRepository

	mu     sync.Mutex
	failOn map[string]bool
	writes int
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{MemoryRepository: storage.NewMemoryRepository(), failOn: map[string]bool{}}
}

func (r *flakyRepo) fail(ops ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range ops {
		r.failOn[op] = true
	}
}

func (r *flakyRepo) shouldFail(op string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failOn[op]
}

func (r *flakyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.shouldFail("get") {
		return nil, errStorage
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *flakyRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.shouldFail("set") {
		return errStorage
	}
	r.mu.Lock()
	r.writes++
	r.mu.Unlock()
	return r.MemoryRepository.Set(ctx, key, value)
}

func (r *flakyRepo) Delete(ctx context.Context, key string) error {
	if r.shouldFail("delete") {
		return errStorage
	}
	return r.MemoryRepository.Delete(ctx, key)
}

func (r *flakyRepo) DeleteMany(ctx context.Context, keys []string) error {
	if r.shouldFail("delete") {
		return errStorage
	}
	return r.MemoryRepository.DeleteMany(ctx, keys)
}

func (r *flakyRepo) Clear(ctx context.Context) error {
	if r.shouldFail("clear") {
		return errStorage
	}
	return r.MemoryRepository.Clear(ctx)
}

func (r *flakyRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func rawJSON(t *testing.T, repo storage.Repository, key string) map[string]any {
	t.Helper()
	data, err := repo.Get(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, data, "key %s is absent", key)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func putJSON(t *testing.T, repo storage.Repository, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), key, data))
}
