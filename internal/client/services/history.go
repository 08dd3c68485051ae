package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/droplogistics/internal/client/models"
	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
)

const (
	MaxHistoryItems    = 50
	DefaultRecentViews = 10
)

// HistoryService keeps recently viewed companies, newest first, one entry
// per company and at most MaxHistoryItems entries.
type HistoryService struct {
	repo storage.Repository
	log  logging.Logger
	now  func() time.Time

	mu      sync.RWMutex
	entries []models.HistoryEntry
}

func NewHistoryService(repo storage.Repository, log logging.Logger) *HistoryService {
	return &HistoryService{repo: repo, log: log.With("store", "history"), now: time.Now}
}

// Load reads the stored history and orders it newest first. The sorted
// list is not written back.
func (s *HistoryService) Load(ctx context.Context) {
	var entries []models.HistoryEntry
	if _, err := readJSON(ctx, s.repo, storage.KeyViewHistory, &entries); err != nil {
		s.log.Error(ctx, "failed to load view history", "error", err)
		return
	}

	slices.SortStableFunc(entries, func(a, b models.HistoryEntry) int {
		switch {
		case a.ViewedAt > b.ViewedAt:
			return -1
		case a.ViewedAt < b.ViewedAt:
			return 1
		}
		return 0
	})
	if len(entries) > MaxHistoryItems {
		entries = entries[:MaxHistoryItems]
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// Add moves companyID to the front with the current time.
func (s *HistoryService) Add(ctx context.Context, companyID, name, logo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now().UnixMilli()
	// keep timestamps strictly decreasing when views land in the same millisecond
	if len(s.entries) > 0 && ts <= s.entries[0].ViewedAt {
		ts = s.entries[0].ViewedAt + 1
	}

	next := make([]models.HistoryEntry, 0, len(s.entries)+1)
	next = append(next, models.HistoryEntry{
		CompanyID:   companyID,
		CompanyName: name,
		CompanyLogo: logo,
		ViewedAt:    ts,
	})
	for _, e := range s.entries {
		if e.CompanyID != companyID {
			next = append(next, e)
		}
	}
	if len(next) > MaxHistoryItems {
		next = next[:MaxHistoryItems]
	}

	return s.commit(ctx, next)
}

func (s *HistoryService) Remove(ctx context.Context, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.entries), func(e models.HistoryEntry) bool {
		return e.CompanyID == companyID
	})
	return s.commit(ctx, next)
}

// Clear empties the history and removes its storage key.
func (s *HistoryService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, storage.KeyViewHistory); err != nil {
		s.log.Error(ctx, "failed to clear view history", "error", err)
		return err
	}
	s.entries = nil
	return nil
}

// RecentViews returns up to limit newest entries; limit <= 0 means
// DefaultRecentViews.
func (s *HistoryService) RecentViews(limit int) []models.HistoryEntry {
	if limit <= 0 {
		limit = DefaultRecentViews
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(limit, len(s.entries))
	out := make([]models.HistoryEntry, n)
	copy(out, s.entries[:n])
	return out
}

func (s *HistoryService) History() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *HistoryService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *HistoryService) commit(ctx context.Context, next []models.HistoryEntry) error {
	if next == nil {
		next = []models.HistoryEntry{}
	}
	if err := writeJSON(ctx, s.repo, storage.KeyViewHistory, next); err != nil {
		s.log.Error(ctx, "failed to save view history", "error", err)
		return err
	}
	s.entries = next
	return nil
}
