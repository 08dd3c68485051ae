package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/droplogistics/internal/catalog"
	"github.com/dmitrijs2005/droplogistics/internal/client/client"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

var ErrShipmentNotFound = errors.New("shipment not found")

// Source tells where a tracking answer came from.
type Source string

const (
	SourceServer  Source = "server"
	SourceCatalog Source = "catalog"
)

// TrackingService answers shipment lookups from the tracking server while
// it is reachable and from the built-in catalog otherwise.
type TrackingService struct {
	client client.Client
	log    logging.Logger
	online atomic.Bool
}

// NewTrackingService binds the service to c. A nil client keeps the
// service on the catalog for good.
func NewTrackingService(c client.Client, log logging.Logger) *TrackingService {
	s := &TrackingService{client: c, log: log.With("service", "tracking")}
	s.online.Store(c != nil)
	return s
}

// SetOnline switches between the server and the catalog.
func (s *TrackingService) SetOnline(on bool) {
	s.online.Store(on && s.client != nil)
}

func (s *TrackingService) Online() bool {
	return s.online.Load()
}

// Ping checks the server. It fails with client.ErrUnavailable when no
// client is configured.
func (s *TrackingService) Ping(ctx context.Context) error {
	if s.client == nil {
		return client.ErrUnavailable
	}
	return s.client.Ping(ctx)
}

// Track finds the shipment with trackingNumber.
func (s *TrackingService) Track(ctx context.Context, trackingNumber string) (shipment.Shipment, Source, error) {
	if s.Online() {
		sh, err := s.client.Track(ctx, trackingNumber)
		switch {
		case err == nil:
			return sh, SourceServer, nil
		case errors.Is(err, client.ErrNotFound):
			return shipment.Shipment{}, SourceServer, ErrShipmentNotFound
		case !errors.Is(err, client.ErrUnavailable):
			return shipment.Shipment{}, SourceServer, err
		}
		s.log.Warn(ctx, "tracking server unavailable, using catalog", "error", err)
	}

	sh, ok := catalog.FindShipment(trackingNumber)
	if !ok {
		return shipment.Shipment{}, SourceCatalog, ErrShipmentNotFound
	}
	return sh, SourceCatalog, nil
}

// Shipments lists the shipments of the session owning accessToken. The
// catalog fallback attributes the demo shipments to whoever is signed in.
func (s *TrackingService) Shipments(ctx context.Context, accessToken string, f shipment.Filter) ([]shipment.Shipment, Source, error) {
	if s.Online() {
		items, err := s.client.ListShipments(ctx, accessToken)
		if err == nil {
			return f.Apply(items), SourceServer, nil
		}
		if !errors.Is(err, client.ErrUnavailable) {
			return nil, SourceServer, err
		}
		s.log.Warn(ctx, "tracking server unavailable, using catalog", "error", err)
	}

	return f.Apply(catalog.ShipmentsFor(catalog.DemoOwnerID)), SourceCatalog, nil
}
