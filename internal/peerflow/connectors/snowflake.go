package connectors

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"github.com/snowflakedb/gosnowflake"
)

const (
	closeTimeout = 5 * time.Second

	snowflakeInternalSchema = "_PEERDB_INTERNAL"
	snowflakeMirrorJobs     = "PEERDB_MIRROR_JOBS"
	snowflakeRawPrefix      = "_PEERDB_RAW_"
)

// SnowflakeConnector talks to a Snowflake peer with key-pair authentication.
type SnowflakeConnector struct {
	peer     string
	database string
	db       *sql.DB
	logger   *logger.Logger
}

// SnowflakeDriverConfig turns a peer config into a gosnowflake config.
func SnowflakeDriverConfig(cfg *pb.SnowflakeConfig) (*gosnowflake.Config, error) {
	privateKey, err := readPKCS8PrivateKey([]byte(cfg.GetPrivateKey()))
	if err != nil {
		return nil, err
	}

	return &gosnowflake.Config{
		Account:          cfg.GetAccountId(),
		User:             cfg.GetUsername(),
		Authenticator:    gosnowflake.AuthTypeJwt,
		PrivateKey:       privateKey,
		Database:         cfg.GetDatabase(),
		Warehouse:        cfg.GetWarehouse(),
		Role:             cfg.GetRole(),
		RequestTimeout:   time.Duration(cfg.GetQueryTimeout()) * time.Second,
		DisableTelemetry: true,
	}, nil
}

func NewSnowflakeConnector(ctx context.Context, peer string, cfg *pb.SnowflakeConfig) (*SnowflakeConnector, error) {
	driverConfig, err := SnowflakeDriverConfig(cfg)
	if err != nil {
		return nil, errors.NewInvalidPeerError(peer, err.Error())
	}

	dsn, err := gosnowflake.DSN(driverConfig)
	if err != nil {
		return nil, errors.WrapPeerError(peer, "configure", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, errors.WrapPeerError(peer, "open", err)
	}

	c := &SnowflakeConnector{
		peer:     peer,
		database: cfg.GetDatabase(),
		db:       db,
		logger:   logger.WithFields("component", "snowflake-connector", "peer", peer),
	}
	if err := c.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

func (c *SnowflakeConnector) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return errors.WrapPeerError(c.peer, "ping", fmt.Errorf("%w: %v", errors.ErrPeerUnreachable, err))
	}
	return nil
}

// Cleanup drops the mirror's raw table and forgets its sync state.
func (c *SnowflakeConnector) Cleanup(ctx context.Context, flowJobName string, _ CleanupOptions) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WrapPeerError(c.peer, "begin cleanup", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s.%s WHERE MIRROR_JOB_NAME = ?", snowflakeInternalSchema, snowflakeMirrorJobs),
		flowJobName,
	)
	if err != nil {
		return errors.WrapPeerError(c.peer, "delete mirror job", err)
	}

	_, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+snowflakeRawTable(flowJobName))
	if err != nil {
		return errors.WrapPeerError(c.peer, "drop raw table", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapPeerError(c.peer, "commit cleanup", err)
	}

	c.logger.Info("cleaned up destination", "flowJobName", flowJobName)
	return nil
}

func (c *SnowflakeConnector) Close() error {
	return c.db.Close()
}

func snowflakeRawTable(flowJobName string) string {
	ident := strings.ReplaceAll(snowflakeRawPrefix+flowJobName, `"`, `""`)
	return fmt.Sprintf(`%s."%s"`, snowflakeInternalSchema, strings.ToUpper(ident))
}
