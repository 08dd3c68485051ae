package shipments

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/droplogistics/internal/common"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

// MemoryRepository keeps shipments in a map keyed by the upper-cased
// tracking number. It is safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	byTN  map[string]shipment.Shipment
	order []string
}

// NewMemoryRepository stores a copy of seed. Later entries win on a
// duplicate tracking number.
func NewMemoryRepository(seed []shipment.Shipment) *MemoryRepository {
	r := &MemoryRepository{byTN: make(map[string]shipment.Shipment, len(seed))}
	for _, s := range seed {
		r.put(s)
	}
	return r
}

// Put adds or replaces s.
func (r *MemoryRepository) Put(s shipment.Shipment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(s)
}

func (r *MemoryRepository) put(s shipment.Shipment) {
	key := normalize(s.TrackingNumber)
	if _, ok := r.byTN[key]; !ok {
		r.order = append(r.order, key)
	}
	r.byTN[key] = clone(s)
}

func (r *MemoryRepository) FindByTrackingNumber(_ context.Context, trackingNumber string) (shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byTN[normalize(trackingNumber)]
	if !ok {
		return shipment.Shipment{}, common.ErrorNotFound
	}
	return clone(s), nil
}

func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]shipment.Shipment, 0)
	for _, key := range r.order {
		if s := r.byTN[key]; s.UserID == ownerID {
			result = append(result, clone(s))
		}
	}
	return result, nil
}

func normalize(trackingNumber string) string {
	return strings.ToUpper(strings.TrimSpace(trackingNumber))
}

func clone(s shipment.Shipment) shipment.Shipment {
	if s.CodAmount != nil {
		v := *s.CodAmount
		s.CodAmount = &v
	}
	return s
}
