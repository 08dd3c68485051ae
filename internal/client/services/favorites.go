package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

// FavoritesService is the set of favorite company ids. Every change
// rewrites storage.KeyFavorites in full.
type FavoritesService struct {
	repo storage.Repository
	log  logging.Logger

	mu  sync.RWMutex
	ids []string
}

func NewFavoritesService(repo storage.Repository, log logging.Logger) *FavoritesService {
	return &FavoritesService{repo: repo, log: log.With("store", "favorites")}
}

func (s *FavoritesService) Load(ctx context.Context) {
	var ids []string
	if _, err := readJSON(ctx, s.repo, storage.KeyFavorites, &ids); err != nil {
		s.log.Error(ctx, "failed to load favorites", "error", err)
		return
	}

	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(uniq, id) {
			uniq = append(uniq, id)
		}
	}

	s.mu.Lock()
	s.ids = uniq
	s.mu.Unlock()
}

// Toggle adds id when absent and removes it otherwise. It returns whether
// id is a favorite afterwards; on a storage error the set is unchanged.
func (s *FavoritesService) Toggle(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next []string
	added := !slices.Contains(s.ids, id)
	if added {
		next = append(slices.Clone(s.ids), id)
	} else {
		next = slices.DeleteFunc(slices.Clone(s.ids), func(v string) bool { return v == id })
	}

	if err := s.save(ctx, next); err != nil {
		return !added, err
	}
	s.ids = next
	return added, nil
}

func (s *FavoritesService) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, id)
}

func (s *FavoritesService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, []string{}); err != nil {
		return err
	}
	s.ids = nil
	return nil
}

// Favorites returns the ids in the order they were added.
func (s *FavoritesService) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *FavoritesService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *FavoritesService) save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	if err := writeJSON(ctx, s.repo, storage.KeyFavorites, ids); err != nil {
		s.log.Error(ctx, "failed to save favorites", "error", err)
		return err
	}
	return nil
}
