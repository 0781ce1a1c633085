// Package connectors validates peers and talks to them for connectivity
// checks and mirror cleanup.
package connectors

import (
	"context"
	"fmt"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/errors"
)

// CleanupOptions carries names a mirror was created with when they differ
// from the defaults derived from the flow job name.
type CleanupOptions struct {
	PublicationName     string
	ReplicationSlotName string
}

// Connector is an open connection to a peer.
type Connector interface {
	Ping(ctx context.Context) error
	// Cleanup removes whatever the mirror left behind on the peer.
	Cleanup(ctx context.Context, flowJobName string, opts CleanupOptions) error
	Close() error
}

type Factory interface {
	Open(ctx context.Context, peer *pb.Peer) (Connector, error)
}

type FactoryFunc func(ctx context.Context, peer *pb.Peer) (Connector, error)

func (f FactoryFunc) Open(ctx context.Context, peer *pb.Peer) (Connector, error) {
	return f(ctx, peer)
}

type defaultFactory struct{}

// NewFactory returns the factory for the peer types that can be reached
// directly: Postgres and Snowflake.
func NewFactory() Factory {
	return defaultFactory{}
}

func (defaultFactory) Open(ctx context.Context, peer *pb.Peer) (Connector, error) {
	if err := ValidatePeer(peer); err != nil {
		return nil, err
	}

	switch peer.GetType() {
	case pb.DBType_POSTGRES:
		return NewPostgresConnector(ctx, peer.GetName(), peer.GetPostgresConfig())
	case pb.DBType_SNOWFLAKE:
		return NewSnowflakeConnector(ctx, peer.GetName(), peer.GetSnowflakeConfig())
	default:
		return nil, errors.WrapPeerError(peer.GetName(), "open",
			fmt.Errorf("%w: no connector for %s", errors.ErrUnsupportedPeer, peer.GetType()))
	}
}
