package repomanager

import (
	"github.com/dmitrijs2005/droplogistics/internal/server/repositories/shipments"
)

// RepositoryManager hands out the repositories of the tracking server and
// owns the resources behind them.
type RepositoryManager interface {
	Shipments() shipments.Repository
	Close() error
}
