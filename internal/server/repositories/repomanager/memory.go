package repomanager

import (
	"github.com/dmitrijs2005/droplogistics/internal/catalog"
	"github.com/dmitrijs2005/droplogistics/internal/server/repositories/shipments"
)

// MemoryRepositoryManager keeps everything in process memory. It is used
// when the server runs without a database DSN.
type MemoryRepositoryManager struct {
	shipments *shipments.MemoryRepository
}

// NewMemoryRepositoryManager returns a manager seeded with the catalog
// demo shipments.
func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{shipments: shipments.NewMemoryRepository(catalog.Shipments())}
}

func (m *MemoryRepositoryManager) Shipments() shipments.Repository {
	return m.shipments
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
