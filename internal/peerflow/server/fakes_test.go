package server

import (
	"context"
	"fmt"
	"sync"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/peerflow/connectors"
	"github.com/ehsaniara/peerflow/pkg/errors"
)

type cleanupCall struct {
	flowJobName string
	opts        connectors.CleanupOptions
}

type fakeConnector struct {
	mu         sync.Mutex
	pingErr    error
	cleanupErr error
	cleanups   []cleanupCall
	closed     int
}

func (c *fakeConnector) Ping(context.Context) error {
	return c.pingErr
}

func (c *fakeConnector) Cleanup(_ context.Context, flowJobName string, opts connectors.CleanupOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cleanups = append(c.cleanups, cleanupCall{flowJobName: flowJobName, opts: opts})
	return c.cleanupErr
}

func (c *fakeConnector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

// fakeFactory hands out one connector per peer name. S3 peers behave like
// a peer type without a connector.
type fakeFactory struct {
	mu    sync.Mutex
	conns map[string]*fakeConnector
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{conns: make(map[string]*fakeConnector)}
}

func (f *fakeFactory) connector(name string) *fakeConnector {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.conns[name]
	if !ok {
		c = &fakeConnector{}
		f.conns[name] = c
	}
	return c
}

func (f *fakeFactory) Open(_ context.Context, peer *pb.Peer) (connectors.Connector, error) {
	if peer.GetType() == pb.DBType_S3 {
		return nil, errors.WrapPeerError(peer.GetName(), "open",
			fmt.Errorf("%w: no connector for %s", errors.ErrUnsupportedPeer, peer.GetType()))
	}
	return f.connector(peer.GetName()), nil
}

func postgresPeer(name string) *pb.Peer {
	return &pb.Peer{
		Name: name,
		Type: pb.DBType_POSTGRES,
		Config: &pb.Peer_PostgresConfig{PostgresConfig: &pb.PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "app",
		}},
	}
}

func s3Peer(name string) *pb.Peer {
	return &pb.Peer{
		Name:   name,
		Type:   pb.DBType_S3,
		Config: &pb.Peer_S3Config{S3Config: &pb.S3Config{Url: "s3://bucket/" + name}},
	}
}

func cdcConfig(name string) *pb.FlowConnectionConfigs {
	return &pb.FlowConnectionConfigs{
		FlowJobName: name,
		Source:      postgresPeer("pg_source"),
		Destination: postgresPeer("pg_target"),
		TableMappings: []*pb.TableMapping{
			{SourceTableIdentifier: "public.orders", DestinationTableIdentifier: "public.orders"},
		},
		PublicationName:     "pub_" + name,
		ReplicationSlotName: "slot_" + name,
	}
}

func qrepConfig(name string) *pb.QRepConfig {
	return &pb.QRepConfig{
		FlowJobName:                name,
		SourcePeer:                 postgresPeer("pg_source"),
		DestinationPeer:            s3Peer("lake"),
		DestinationTableIdentifier: "orders",
		Query:                      "SELECT * FROM orders WHERE id BETWEEN {{.start}} AND {{.end}}",
		WatermarkTable:             "orders",
		WatermarkColumn:            "id",
	}
}
