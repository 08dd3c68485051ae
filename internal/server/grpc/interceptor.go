package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/droplogistics/internal/api"
	"github.com/dmitrijs2005/droplogistics/internal/auth"
	"github.com/dmitrijs2005/droplogistics/internal/common"
	"github.com/dmitrijs2005/droplogistics/internal/server/metrics"
)

type ctxKey string

const (
	UserIDKey    ctxKey = "userID"
	RequestIDKey ctxKey = "requestID"
)

// RequestIDHeader carries the request id back to the caller. An id sent by
// the caller under the same key is reused.
const RequestIDHeader = "x-request-id"

func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var requestID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// no stream in the context outside a real server; nothing to report then
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	s.logger.Debug(ctx, "request", "method", info.FullMethod, "request_id", requestID)

	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	metrics.ObserveRequest(info.FullMethod, status.Code(err).String(), time.Since(start))
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if info.FullMethod == api.FullMethodListShipments {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		ctx = context.WithValue(ctx, UserIDKey, userID)

	}

	return handler(ctx, req)
}
