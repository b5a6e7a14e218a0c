package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/blogauth/internal/api"
	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// loggingInterceptor tags each call with a request id (taken from the
// caller's metadata or generated), echoes it back in the response header
// and logs the outcome.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 {
			requestID = values[0]
		}
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	logger := s.logger.With("request_id", requestID, "method", info.FullMethod)

	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	logger.Info(ctx, "Request handled", "code", code.String(), "duration", time.Since(start))

	return resp, err
}

// recoveryInterceptor turns a handler panic into an Internal status.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "Panic in handler", "method", info.FullMethod, "panic", p)
			resp, err = nil, api.StatusFromError(common.ErrorInternal).Err()
		}
	}()
	return handler(ctx, req)
}
