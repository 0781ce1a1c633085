package server

import (
	"context"
	"time"

	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func loggingUnaryInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []interface{}{
			"method", info.FullMethod,
			"duration", time.Since(start),
			"code", status.Code(err).String(),
		}
		if err != nil {
			log.Warn("rpc failed", append(fields, "error", err)...)
		} else {
			log.Debug("rpc completed", fields...)
		}
		return resp, err
	}
}

// rateLimitUnaryInterceptor rejects calls once the token bucket is empty.
func rateLimitUnaryInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !limiter.Allow() {
			return nil, status.Errorf(codes.ResourceExhausted, "%s: %v", info.FullMethod, errors.ErrRateLimited)
		}
		return handler(ctx, req)
	}
}
