package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/droplogistics/internal/api"
	"github.com/dmitrijs2005/droplogistics/internal/catalog"
	"github.com/dmitrijs2005/droplogistics/internal/common"
	"github.com/dmitrijs2005/droplogistics/internal/server/metrics"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "ok"}, nil
}

func (s *GRPCServer) Track(ctx context.Context, req *api.TrackRequest) (*api.TrackResponse, error) {

	tn := strings.TrimSpace(req.TrackingNumber)
	if tn == "" {
		return nil, status.Error(codes.InvalidArgument, "tracking number is required")
	}

	found, err := s.shipments.FindByTrackingNumber(ctx, tn)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			metrics.ShipmentLookups.WithLabelValues("not_found").Inc()
			return nil, status.Error(codes.NotFound, "shipment not found")
		}
		metrics.ShipmentLookups.WithLabelValues("error").Inc()
		s.logger.Error(ctx, "track failed", "tracking_number", tn, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	metrics.ShipmentLookups.WithLabelValues("found").Inc()
	return &api.TrackResponse{Shipment: found}, nil
}

// ListShipments returns the caller's shipments followed by the demo
// shipments every account can see.
func (s *GRPCServer) ListShipments(ctx context.Context, req *api.ListShipmentsRequest) (*api.ListShipmentsResponse, error) {

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	owners := []string{userID}
	if userID != catalog.DemoOwnerID {
		owners = append(owners, catalog.DemoOwnerID)
	}

	result := make([]shipment.Shipment, 0)
	for _, owner := range owners {
		items, err := s.shipments.ListByOwner(ctx, owner)
		if err != nil {
			s.logger.Error(ctx, "list shipments failed", "owner", owner, "error", err)
			return nil, status.Error(codes.Internal, "internal error")
		}
		result = append(result, items...)
	}

	return &api.ListShipmentsResponse{Shipments: result}, nil
}
