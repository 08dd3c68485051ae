package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "droplogistics.tracking.TrackingService"

const (
	FullMethodPing          = "/" + ServiceName + "/Ping"
	FullMethodTrack         = "/" + ServiceName + "/Track"
	FullMethodListShipments = "/" + ServiceName + "/ListShipments"
)

// TrackingServiceServer is implemented by the tracking server.
type TrackingServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Track(context.Context, *TrackRequest) (*TrackResponse, error)
	ListShipments(context.Context, *ListShipmentsRequest) (*ListShipmentsResponse, error)
}

// UnimplementedTrackingServiceServer answers every call with Unimplemented.
type UnimplementedTrackingServiceServer struct{}

func (UnimplementedTrackingServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedTrackingServiceServer) Track(context.Context, *TrackRequest) (*TrackResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Track not implemented")
}

func (UnimplementedTrackingServiceServer) ListShipments(context.Context, *ListShipmentsRequest) (*ListShipmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListShipments not implemented")
}

func RegisterTrackingServiceServer(s grpc.ServiceRegistrar, srv TrackingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(TrackingServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TrackingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TrackingServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes the tracking service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TrackingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    unaryHandler(FullMethodPing, TrackingServiceServer.Ping),
		},
		{
			MethodName: "Track",
			Handler:    unaryHandler(FullMethodTrack, TrackingServiceServer.Track),
		},
		{
			MethodName: "ListShipments",
			Handler:    unaryHandler(FullMethodListShipments, TrackingServiceServer.ListShipments),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tracking",
}

// TrackingClient is the client side of the tracking service.
type TrackingClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Track(ctx context.Context, in *TrackRequest, opts ...grpc.CallOption) (*TrackResponse, error)
	ListShipments(ctx context.Context, in *ListShipmentsRequest, opts ...grpc.CallOption) (*ListShipmentsResponse, error)
}

type trackingClient struct {
	cc grpc.ClientConnInterface
}

func NewTrackingClient(cc grpc.ClientConnInterface) TrackingClient {
	return &trackingClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackingClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, FullMethodPing, in, opts)
}

func (c *trackingClient) Track(ctx context.Context, in *TrackRequest, opts ...grpc.CallOption) (*TrackResponse, error) {
	return invoke[TrackResponse](ctx, c.cc, FullMethodTrack, in, opts)
}

func (c *trackingClient) ListShipments(ctx context.Context, in *ListShipmentsRequest, opts ...grpc.CallOption) (*ListShipmentsResponse, error) {
	return invoke[ListShipmentsResponse](ctx, c.cc, FullMethodListShipments, in, opts)
}
