package connectors

import (
	"context"
	"fmt"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"github.com/jackc/pgx/v5"
)

const (
	defaultSlotPrefix        = "peerflow_slot_"
	defaultPublicationPrefix = "peerflow_pub_"
)

// PostgresConnector is a single pgx connection to a Postgres peer.
type PostgresConnector struct {
	peer   string
	conn   *pgx.Conn
	logger *logger.Logger
}

// PostgresConnConfig turns a peer config into a pgx connection config.
func PostgresConnConfig(cfg *pb.PostgresConfig) (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig("")
	if err != nil {
		return nil, err
	}
	connConfig.Host = cfg.GetHost()
	connConfig.Port = uint16(cfg.GetPort())
	connConfig.User = cfg.GetUser()
	connConfig.Password = cfg.GetPassword()
	connConfig.Database = cfg.GetDatabase()
	connConfig.RuntimeParams["application_name"] = "peerflow"
	return connConfig, nil
}

func NewPostgresConnector(ctx context.Context, peer string, cfg *pb.PostgresConfig) (*PostgresConnector, error) {
	connConfig, err := PostgresConnConfig(cfg)
	if err != nil {
		return nil, errors.WrapPeerError(peer, "configure", err)
	}

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, errors.WrapPeerError(peer, "connect", fmt.Errorf("%w: %v", errors.ErrPeerUnreachable, err))
	}

	return &PostgresConnector{
		peer:   peer,
		conn:   conn,
		logger: logger.WithFields("component", "postgres-connector", "peer", peer),
	}, nil
}

func (c *PostgresConnector) Ping(ctx context.Context) error {
	if err := c.conn.Ping(ctx); err != nil {
		return errors.WrapPeerError(c.peer, "ping", fmt.Errorf("%w: %v", errors.ErrPeerUnreachable, err))
	}
	return nil
}

// Cleanup drops the replication slot and publication the mirror pulled from.
func (c *PostgresConnector) Cleanup(ctx context.Context, flowJobName string, opts CleanupOptions) error {
	slot, publication := cleanupNames(flowJobName, opts)

	_, err := c.conn.Exec(ctx,
		"SELECT pg_drop_replication_slot(slot_name) FROM pg_replication_slots WHERE slot_name = $1",
		slot,
	)
	if err != nil {
		return errors.WrapPeerError(c.peer, "drop replication slot "+slot, err)
	}

	_, err = c.conn.Exec(ctx, "DROP PUBLICATION IF EXISTS "+pgx.Identifier{publication}.Sanitize())
	if err != nil {
		return errors.WrapPeerError(c.peer, "drop publication "+publication, err)
	}

	c.logger.Info("cleaned up source", "flowJobName", flowJobName, "slot", slot, "publication", publication)
	return nil
}

func (c *PostgresConnector) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	return c.conn.Close(ctx)
}

func cleanupNames(flowJobName string, opts CleanupOptions) (slot, publication string) {
	slot = opts.ReplicationSlotName
	if slot == "" {
		slot = defaultSlotPrefix + flowJobName
	}
	publication = opts.PublicationName
	if publication == "" {
		publication = defaultPublicationPrefix + flowJobName
	}
	return slot, publication
}
