package catalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/config"
	"github.com/ehsaniara/peerflow/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/protobuf/proto"
)

// PostgresStore persists the catalog in Postgres. Protobuf payloads are stored
// in their binary encoding.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg config.CatalogConfig) (*PostgresStore, error) {
	if cfg.DSN == "" {
		return nil, errors.NewConfigError("catalog", "dsn", stderrors.New("postgres DSN is required"))
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errors.NewConfigError("catalog", "dsn", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.WrapCatalogError("pool", "connect", fmt.Errorf("%w: %v", errors.ErrCatalogUnavailable, err))
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapCatalogError("pool", "ping", fmt.Errorf("%w: %v", errors.ErrCatalogUnavailable, err))
	}

	if cfg.Migrate {
		if err := runMigrations(pool); err != nil {
			pool.Close()
			return nil, errors.WrapCatalogError("migrations", "apply", err)
		}
	}

	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *PostgresStore) CreatePeer(ctx context.Context, peer *pb.Peer) error {
	if peer == nil || peer.GetName() == "" {
		return errors.NewInvalidPeerError("", "peer name is required")
	}
	options, err := proto.Marshal(peer)
	if err != nil {
		return errors.WrapPeerError(peer.GetName(), "encode", err)
	}

	_, err = p.pool.Exec(ctx,
		"INSERT INTO peerflow_peers (name, type, options) VALUES ($1, $2, $3)",
		peer.GetName(), int32(peer.GetType()), options,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WrapPeerError(peer.GetName(), "create", errors.ErrPeerAlreadyExists)
		}
		return errors.WrapCatalogError("peerflow_peers", "insert", err)
	}
	return nil
}

func (p *PostgresStore) GetPeer(ctx context.Context, name string) (*pb.Peer, error) {
	var options []byte
	err := p.pool.QueryRow(ctx, "SELECT options FROM peerflow_peers WHERE name = $1", name).Scan(&options)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewPeerNotFoundError(name)
		}
		return nil, errors.WrapCatalogError("peerflow_peers", "select", err)
	}
	return decodePeer(name, options)
}

func (p *PostgresStore) ListPeers(ctx context.Context) ([]*pb.Peer, error) {
	rows, err := p.pool.Query(ctx, "SELECT name, options FROM peerflow_peers ORDER BY name")
	if err != nil {
		return nil, errors.WrapCatalogError("peerflow_peers", "list", err)
	}
	defer rows.Close()

	peers := make([]*pb.Peer, 0)
	for rows.Next() {
		var name string
		var options []byte
		if err := rows.Scan(&name, &options); err != nil {
			return nil, errors.WrapCatalogError("peerflow_peers", "scan", err)
		}
		peer, err := decodePeer(name, options)
		if err != nil {
			return nil, err
		}
		peers = append(peers, peer)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapCatalogError("peerflow_peers", "iterate", err)
	}
	return peers, nil
}

func (p *PostgresStore) CreateFlow(ctx context.Context, flow Flow) error {
	if flow.Name == "" {
		return errors.NewInvalidFlowConfigError("", "flow job name is required")
	}
	if flow.State == "" {
		flow.State = FlowStateRunning
	}
	payload, err := encodeFlowConfig(flow)
	if err != nil {
		return errors.WrapFlowError(flow.Name, "encode", err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return errors.WrapCatalogError("peerflow_flows", "begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var state string
	err = tx.QueryRow(ctx, "SELECT state FROM peerflow_flows WHERE name = $1 FOR UPDATE", flow.Name).Scan(&state)
	switch {
	case err == nil:
		if !FlowState(state).Replaceable() {
			return errors.WrapFlowError(flow.Name, "create", errors.ErrFlowAlreadyExists)
		}
		if err := dropProgress(ctx, tx, flow.Name); err != nil {
			return err
		}
	case !stderrors.Is(err, pgx.ErrNoRows):
		return errors.WrapCatalogError("peerflow_flows", "select", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO peerflow_flows (name, kind, workflow_id, state, source_peer, destination_peer, config)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		flow.Name, string(flow.Kind), flow.WorkflowID, string(flow.State),
		emptyToNull(flow.SourcePeer), emptyToNull(flow.DestPeer), payload,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WrapFlowError(flow.Name, "create", errors.ErrFlowAlreadyExists)
		}
		return errors.WrapCatalogError("peerflow_flows", "insert", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.WrapCatalogError("peerflow_flows", "commit", err)
	}
	return nil
}

// dropProgress removes a replaced flow's row together with its CDC progress
// and QRep runs. Batches and partitions go with them through ON DELETE CASCADE.
func dropProgress(ctx context.Context, tx pgx.Tx, flowJobName string) error {
	statements := []struct {
		table string
		sql   string
	}{
		{"peerflow_cdc_flows", "DELETE FROM peerflow_cdc_flows WHERE flow_name = $1"},
		{"peerflow_qrep_runs", "DELETE FROM peerflow_qrep_runs WHERE flow_name = $1 OR parent_mirror = $1"},
		{"peerflow_flows", "DELETE FROM peerflow_flows WHERE name = $1"},
	}
	for _, st := range statements {
		if _, err := tx.Exec(ctx, st.sql, flowJobName); err != nil {
			return errors.WrapCatalogError(st.table, "delete", err)
		}
	}
	return nil
}

const flowColumns = "name, kind, workflow_id, state, source_peer, destination_peer, config, created_at, updated_at"

func (p *PostgresStore) GetFlow(ctx context.Context, name string) (*Flow, error) {
	row := p.pool.QueryRow(ctx, "SELECT "+flowColumns+" FROM peerflow_flows WHERE name = $1", name)
	flow, err := scanFlow(row)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewFlowNotFoundError(name)
		}
		return nil, errors.WrapCatalogError("peerflow_flows", "select", err)
	}
	return flow, nil
}

func (p *PostgresStore) ListFlows(ctx context.Context) ([]Flow, error) {
	rows, err := p.pool.Query(ctx, "SELECT "+flowColumns+" FROM peerflow_flows ORDER BY name")
	if err != nil {
		return nil, errors.WrapCatalogError("peerflow_flows", "list", err)
	}
	defer rows.Close()

	flows := make([]Flow, 0)
	for rows.Next() {
		flow, err := scanFlow(rows)
		if err != nil {
			return nil, errors.WrapCatalogError("peerflow_flows", "scan", err)
		}
		flows = append(flows, *flow)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapCatalogError("peerflow_flows", "iterate", err)
	}
	return flows, nil
}

func (p *PostgresStore) UpdateFlowState(ctx context.Context, name string, state FlowState) error {
	tag, err := p.pool.Exec(ctx,
		"UPDATE peerflow_flows SET state = $2, updated_at = now() WHERE name = $1",
		name, string(state),
	)
	if err != nil {
		return errors.WrapCatalogError("peerflow_flows", "update", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.NewFlowNotFoundError(name)
	}
	return nil
}

func (p *PostgresStore) InitializeCDCFlow(ctx context.Context, flowJobName string) error {
	_, err := p.pool.Exec(ctx,
		"INSERT INTO peerflow_cdc_flows (flow_name) VALUES ($1) ON CONFLICT (flow_name) DO NOTHING",
		flowJobName,
	)
	if err != nil {
		return errors.WrapCatalogError("peerflow_cdc_flows", "insert", err)
	}
	return nil
}

func (p *PostgresStore) GetCDCFlow(ctx context.Context, flowJobName string) (*CDCFlow, error) {
	cdc := &CDCFlow{FlowJobName: flowJobName}
	err := p.pool.QueryRow(ctx,
		"SELECT latest_lsn_at_source, latest_lsn_at_target FROM peerflow_cdc_flows WHERE flow_name = $1",
		flowJobName,
	).Scan(&cdc.LatestLSNAtSource, &cdc.LatestLSNAtTarget)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewFlowNotFoundError(flowJobName)
		}
		return nil, errors.WrapCatalogError("peerflow_cdc_flows", "select", err)
	}
	return cdc, nil
}

func (p *PostgresStore) AddCDCBatch(ctx context.Context, batch CDCBatch) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return errors.WrapCatalogError("peerflow_cdc_batches", "begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO peerflow_cdc_batches (flow_name, batch_id, rows_in_batch, batch_start_lsn, batch_end_lsn, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		batch.FlowJobName, batch.BatchID, int32(batch.RowsInBatch), batch.StartLSN, batch.EndLSN, batch.StartTime, batch.EndTime,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return errors.WrapFlowError(batch.FlowJobName, "add batch", errors.ErrFlowAlreadyExists)
		case isForeignKeyViolation(err):
			return errors.NewFlowNotFoundError(batch.FlowJobName)
		}
		return errors.WrapCatalogError("peerflow_cdc_batches", "insert", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE peerflow_cdc_flows
		 SET latest_lsn_at_source = GREATEST(latest_lsn_at_source, $2), updated_at = now()
		 WHERE flow_name = $1`,
		batch.FlowJobName, batch.EndLSN,
	)
	if err != nil {
		return errors.WrapCatalogError("peerflow_cdc_flows", "update", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.WrapCatalogError("peerflow_cdc_batches", "commit", err)
	}
	return nil
}

func (p *PostgresStore) UpdateCDCBatchEnd(ctx context.Context, flowJobName string, batchID int64, endTime time.Time) error {
	tag, err := p.pool.Exec(ctx,
		"UPDATE peerflow_cdc_batches SET end_time = $3 WHERE flow_name = $1 AND batch_id = $2",
		flowJobName, batchID, endTime,
	)
	if err != nil {
		return errors.WrapCatalogError("peerflow_cdc_batches", "update", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.WrapFlowError(flowJobName, "update batch", errors.ErrBatchNotFound)
	}
	return nil
}

func (p *PostgresStore) UpdateLatestLSNAtTarget(ctx context.Context, flowJobName string, lsn int64) error {
	tag, err := p.pool.Exec(ctx,
		"UPDATE peerflow_cdc_flows SET latest_lsn_at_target = $2, updated_at = now() WHERE flow_name = $1",
		flowJobName, lsn,
	)
	if err != nil {
		return errors.WrapCatalogError("peerflow_cdc_flows", "update", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.NewFlowNotFoundError(flowJobName)
	}
	return nil
}

func (p *PostgresStore) ListCDCBatches(ctx context.Context, flowJobName string) ([]CDCBatch, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT batch_id, rows_in_batch, batch_start_lsn, batch_end_lsn, start_time, end_time
		 FROM peerflow_cdc_batches WHERE flow_name = $1 ORDER BY batch_id`,
		flowJobName,
	)
	if err != nil {
		return nil, errors.WrapCatalogError("peerflow_cdc_batches", "list", err)
	}
	defer rows.Close()

	batches := make([]CDCBatch, 0)
	for rows.Next() {
		b := CDCBatch{FlowJobName: flowJobName}
		var rowsInBatch int32
		if err := rows.Scan(&b.BatchID, &rowsInBatch, &b.StartLSN, &b.EndLSN, &b.StartTime, &b.EndTime); err != nil {
			return nil, errors.WrapCatalogError("peerflow_cdc_batches", "scan", err)
		}
		b.RowsInBatch = uint32(rowsInBatch)
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapCatalogError("peerflow_cdc_batches", "iterate", err)
	}
	return batches, nil
}

func (p *PostgresStore) InitializeQRepRun(ctx context.Context, run QRepRun) error {
	if run.RunUUID == "" {
		return errors.NewInvalidFlowConfigError(run.FlowJobName, "run uuid is required")
	}
	var payload []byte
	if run.Config != nil {
		var err error
		if payload, err = proto.Marshal(run.Config); err != nil {
			return errors.WrapFlowError(run.FlowJobName, "encode", err)
		}
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return errors.WrapCatalogError("peerflow_qrep_runs", "begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO peerflow_qrep_runs (run_uuid, flow_name, parent_mirror, config, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.RunUUID, run.FlowJobName, emptyToNull(run.ParentMirror), payload, run.StartTime, run.EndTime,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.WrapFlowError(run.FlowJobName, "initialize run", errors.ErrFlowAlreadyExists)
		}
		return errors.WrapCatalogError("peerflow_qrep_runs", "insert", err)
	}

	batch := &pgx.Batch{}
	for _, part := range run.Partitions {
		batch.Queue(
			`INSERT INTO peerflow_qrep_partitions (run_uuid, partition_uuid, range_start, range_end, rows_in_partition)
			 VALUES ($1, $2, $3, $4, $5)`,
			run.RunUUID, part.PartitionID, part.RangeStart, part.RangeEnd, part.Rows,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return errors.WrapCatalogError("peerflow_qrep_partitions", "insert", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.WrapCatalogError("peerflow_qrep_runs", "commit", err)
	}
	return nil
}

func (p *PostgresStore) UpdateQRepRunStart(ctx context.Context, runUUID string, at time.Time) error {
	return p.execRun(ctx, "UPDATE peerflow_qrep_runs SET start_time = $2 WHERE run_uuid = $1", runUUID, at)
}

func (p *PostgresStore) UpdateQRepRunEnd(ctx context.Context, runUUID string, at time.Time) error {
	return p.execRun(ctx, "UPDATE peerflow_qrep_runs SET end_time = $2 WHERE run_uuid = $1", runUUID, at)
}

func (p *PostgresStore) UpdatePartitionStart(ctx context.Context, runUUID, partitionID string, at time.Time) error {
	return p.execRun(ctx,
		"UPDATE peerflow_qrep_partitions SET start_time = $3 WHERE run_uuid = $1 AND partition_uuid = $2",
		runUUID, partitionID, at)
}

func (p *PostgresStore) UpdatePartitionPull(ctx context.Context, runUUID, partitionID string, rows int64, at time.Time) error {
	return p.execRun(ctx,
		`UPDATE peerflow_qrep_partitions SET rows_in_partition = $3, pull_end_time = $4
		 WHERE run_uuid = $1 AND partition_uuid = $2`,
		runUUID, partitionID, rows, at)
}

func (p *PostgresStore) UpdatePartitionEnd(ctx context.Context, runUUID, partitionID string, at time.Time) error {
	return p.execRun(ctx,
		"UPDATE peerflow_qrep_partitions SET end_time = $3 WHERE run_uuid = $1 AND partition_uuid = $2",
		runUUID, partitionID, at)
}

func (p *PostgresStore) ListQRepRuns(ctx context.Context, flowJobName string) ([]QRepRun, error) {
	return p.listRuns(ctx, "flow_name = $1", flowJobName)
}

func (p *PostgresStore) ListCloneRuns(ctx context.Context, parentMirror string) ([]QRepRun, error) {
	return p.listRuns(ctx, "parent_mirror = $1", parentMirror)
}

func (p *PostgresStore) execRun(ctx context.Context, sql string, args ...any) error {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return errors.WrapCatalogError("peerflow_qrep_runs", "update", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.ErrRunNotFound
	}
	return nil
}

func (p *PostgresStore) listRuns(ctx context.Context, where string, arg string) ([]QRepRun, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT run_uuid, flow_name, parent_mirror, config, start_time, end_time, created_at
		 FROM peerflow_qrep_runs WHERE `+where+` ORDER BY start_time NULLS LAST, created_at, run_uuid`,
		arg,
	)
	if err != nil {
		return nil, errors.WrapCatalogError("peerflow_qrep_runs", "list", err)
	}

	runs := make([]QRepRun, 0)
	for rows.Next() {
		var run QRepRun
		var parent *string
		var payload []byte
		if err := rows.Scan(&run.RunUUID, &run.FlowJobName, &parent, &payload, &run.StartTime, &run.EndTime, &run.CreatedAt); err != nil {
			rows.Close()
			return nil, errors.WrapCatalogError("peerflow_qrep_runs", "scan", err)
		}
		if parent != nil {
			run.ParentMirror = *parent
		}
		if len(payload) > 0 {
			run.Config = &pb.QRepConfig{}
			if err := proto.Unmarshal(payload, run.Config); err != nil {
				rows.Close()
				return nil, errors.WrapFlowError(run.FlowJobName, "decode", err)
			}
		}
		runs = append(runs, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.WrapCatalogError("peerflow_qrep_runs", "iterate", err)
	}

	for i := range runs {
		parts, err := p.listPartitions(ctx, runs[i].RunUUID)
		if err != nil {
			return nil, err
		}
		runs[i].Partitions = parts
	}
	return runs, nil
}

func (p *PostgresStore) listPartitions(ctx context.Context, runUUID string) ([]QRepPartition, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT partition_uuid, range_start, range_end, rows_in_partition, start_time, pull_end_time, end_time
		 FROM peerflow_qrep_partitions WHERE run_uuid = $1 ORDER BY seq`,
		runUUID,
	)
	if err != nil {
		return nil, errors.WrapCatalogError("peerflow_qrep_partitions", "list", err)
	}
	defer rows.Close()

	parts := make([]QRepPartition, 0)
	for rows.Next() {
		part := QRepPartition{RunUUID: runUUID}
		if err := rows.Scan(&part.PartitionID, &part.RangeStart, &part.RangeEnd, &part.Rows,
			&part.StartTime, &part.PullEndTime, &part.EndTime); err != nil {
			return nil, errors.WrapCatalogError("peerflow_qrep_partitions", "scan", err)
		}
		parts = append(parts, part)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapCatalogError("peerflow_qrep_partitions", "iterate", err)
	}
	return parts, nil
}

func scanFlow(row pgx.Row) (*Flow, error) {
	var f Flow
	var kind, state string
	var source, dest *string
	var payload []byte

	if err := row.Scan(&f.Name, &kind, &f.WorkflowID, &state, &source, &dest, &payload, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.Kind = FlowKind(kind)
	f.State = FlowState(state)
	if source != nil {
		f.SourcePeer = *source
	}
	if dest != nil {
		f.DestPeer = *dest
	}
	if err := decodeFlowConfig(&f, payload); err != nil {
		return nil, err
	}
	return &f, nil
}

func encodeFlowConfig(f Flow) ([]byte, error) {
	switch f.Kind {
	case FlowKindCDC:
		if f.CDCConfig == nil {
			return nil, nil
		}
		return proto.Marshal(f.CDCConfig)
	case FlowKindQRep:
		if f.QRepConfig == nil {
			return nil, nil
		}
		return proto.Marshal(f.QRepConfig)
	default:
		return nil, fmt.Errorf("unknown flow kind %q", f.Kind)
	}
}

func decodeFlowConfig(f *Flow, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	switch f.Kind {
	case FlowKindCDC:
		f.CDCConfig = &pb.FlowConnectionConfigs{}
		return proto.Unmarshal(data, f.CDCConfig)
	case FlowKindQRep:
		f.QRepConfig = &pb.QRepConfig{}
		return proto.Unmarshal(data, f.QRepConfig)
	}
	return nil
}

func decodePeer(name string, options []byte) (*pb.Peer, error) {
	peer := &pb.Peer{}
	if err := proto.Unmarshal(options, peer); err != nil {
		return nil, errors.WrapPeerError(name, "decode", err)
	}
	return peer, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

func emptyToNull(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
