package modes

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/internal/peerflow/connectors"
	"github.com/ehsaniara/peerflow/internal/peerflow/monitor"
	"github.com/ehsaniara/peerflow/internal/peerflow/server"
	"github.com/ehsaniara/peerflow/internal/peerflow/workflow"
	"github.com/ehsaniara/peerflow/pkg/config"
	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"
	"github.com/ehsaniara/peerflow/pkg/version"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// RunServer starts the flow server and blocks until SIGINT or SIGTERM.
func RunServer(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, cfg, nil)
}

// Serve runs the flow server until ctx is done, then stops it within
// cfg.Server.ShutdownTimeout. When lis is nil it listens on the configured
// address.
func Serve(ctx context.Context, cfg *config.Config, lis net.Listener) error {
	log := logger.WithField("mode", "server")

	log.Info("starting peerflow server",
		"version", version.GetShortVersion(),
		"address", cfg.GetServerAddress(),
		"catalog", cfg.Catalog.Driver,
		"insecure", cfg.Security.Insecure)

	store, err := OpenCatalog(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Error("error closing catalog", "error", closeErr)
		}
	}()

	registry := workflow.NewRegistry()
	defer registry.Close()

	grpcServer, err := server.NewGRPCServer(cfg, server.Components{
		Store:    store,
		Monitor:  monitor.NewCatalogMirrorMonitor(store),
		Registry: registry,
		Factory:  connectors.NewFactory(),
	})
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}

	if lis == nil {
		lis, err = net.Listen("tcp", cfg.GetServerAddress())
		if err != nil {
			log.Error("failed to create listener", "address", cfg.GetServerAddress(), "error", err)
			return fmt.Errorf("failed to listen: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started successfully", "address", lis.Addr().String())
		if serveErr := grpcServer.Serve(lis); serveErr != nil && !stderrors.Is(serveErr, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server stopped with error: %w", serveErr)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("received shutdown signal, stopping server...")
		stopGracefully(grpcServer, cfg.Server.ShutdownTimeout)
		log.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// OpenCatalog opens the store selected by the catalog driver.
func OpenCatalog(ctx context.Context, cfg config.CatalogConfig) (catalog.Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return catalog.NewMemoryStore(), nil
	case "postgres":
		store, err := catalog.NewPostgresStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigError("catalog", "driver", fmt.Errorf("unknown driver %q", cfg.Driver))
	}
}

func stopGracefully(s *grpc.Server, timeout time.Duration) {
	if timeout <= 0 {
		s.GracefulStop()
		return
	}

	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		s.Stop()
		<-done
	}
}
