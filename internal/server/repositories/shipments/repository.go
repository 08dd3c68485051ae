// Package shipments stores the shipments served by the tracking server.
package shipments

import (
	"context"

	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

// Repository looks shipments up. FindByTrackingNumber matches the number
// case-insensitively after trimming and fails with common.ErrorNotFound
// when nothing matches.
type Repository interface {
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (shipment.Shipment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]shipment.Shipment, error)
}
