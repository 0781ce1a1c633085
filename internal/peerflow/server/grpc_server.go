package server

import (
	"fmt"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/peerflow/auth"
	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/internal/peerflow/connectors"
	"github.com/ehsaniara/peerflow/internal/peerflow/monitor"
	"github.com/ehsaniara/peerflow/internal/peerflow/workflow"
	"github.com/ehsaniara/peerflow/pkg/config"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
)

// Components are the long lived pieces the flow service works with.
type Components struct {
	Store    catalog.Store
	Monitor  *monitor.CatalogMirrorMonitor
	Registry *workflow.Registry
	Factory  connectors.Factory
}

// NewGRPCServer builds the flow gRPC server with the FlowService registered.
// The caller owns the listener and calls Serve.
func NewGRPCServer(cfg *config.Config, components Components) (*grpc.Server, error) {
	serverLogger := logger.WithField("component", "grpc-server")

	grpcOptions := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(int(cfg.GRPC.MaxRecvMsgSize)),
		grpc.MaxSendMsgSize(int(cfg.GRPC.MaxSendMsgSize)),
		grpc.MaxHeaderListSize(uint32(cfg.GRPC.MaxHeaderListSize)),
		grpc.MaxConcurrentStreams(cfg.GRPC.MaxConcurrentStreams),
		grpc.ConnectionTimeout(cfg.GRPC.ConnectionTimeout),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:                  cfg.GRPC.KeepAliveTime,
			Timeout:               cfg.GRPC.KeepAliveTimeout,
			MaxConnectionIdle:     cfg.GRPC.MaxConnectionIdle,
			MaxConnectionAge:      cfg.GRPC.MaxConnectionAge,
			MaxConnectionAgeGrace: cfg.GRPC.MaxConnectionAgeGrace,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             cfg.GRPC.KeepAliveTime / 2,
			PermitWithoutStream: true,
		}),
	}

	var authorization auth.GRPCAuthorization
	if cfg.Security.Insecure {
		serverLogger.Warn("running without TLS, every caller is treated as admin")
		authorization = auth.NewAllowAllAuthorization()
	} else {
		tlsConfig, err := cfg.GetServerTLSConfig()
		if err != nil {
			serverLogger.Error("failed to create TLS config from embedded certificates", "error", err)
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		grpcOptions = append(grpcOptions, grpc.Creds(credentials.NewTLS(tlsConfig)))
		authorization = auth.NewGRPCAuthorization()
	}

	interceptors := []grpc.UnaryServerInterceptor{loggingUnaryInterceptor(serverLogger)}
	if cfg.RateLimit.Enabled {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		interceptors = append(interceptors, rateLimitUnaryInterceptor(limiter))
		serverLogger.Info("rate limiting enabled",
			"requestsPerSecond", cfg.RateLimit.RequestsPerSecond, "burst", cfg.RateLimit.Burst)
	}
	grpcOptions = append(grpcOptions, grpc.ChainUnaryInterceptor(interceptors...))

	grpcServer := grpc.NewServer(grpcOptions...)

	flowService := NewFlowServiceServer(authorization, components, cfg.Validation)
	pb.RegisterFlowServiceServer(grpcServer, flowService)

	serverLogger.Info("gRPC server initialized", "address", cfg.GetServerAddress(), "insecure", cfg.Security.Insecure)
	return grpcServer, nil
}
