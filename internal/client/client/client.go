package client

import (
	"context"

	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

type Client interface {
	Ping(ctx context.Context) error
	Track(ctx context.Context, trackingNumber string) (shipment.Shipment, error)
	ListShipments(ctx context.Context, accessToken string) ([]shipment.Shipment, error)
	Close() error
}
