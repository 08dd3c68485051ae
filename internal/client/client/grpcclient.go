package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/droplogistics/internal/api"
	"github.com/dmitrijs2005/droplogistics/internal/common"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

// RequestTimeout bounds every call made by GRPCClient.
const RequestTimeout = 5 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.TrackingClient
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient prepares a lazy connection to endpointURL; nothing is
// dialed until the first call. Extra options are appended to the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}
	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      api.NewTrackingClient(conn),
	}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Track(ctx context.Context, trackingNumber string) (shipment.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	resp, err := s.client.Track(ctx, &api.TrackRequest{TrackingNumber: trackingNumber})
	if err != nil {
		return shipment.Shipment{}, s.mapError(err)
	}
	return resp.Shipment, nil
}

func (s *GRPCClient) ListShipments(ctx context.Context, accessToken string) ([]shipment.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	resp, err := s.client.ListShipments(withAccessToken(ctx, accessToken), &api.ListShipmentsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Shipments, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
