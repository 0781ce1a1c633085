// Package monitor records mirror progress in the catalog and turns it back
// into MirrorStatus responses.
package monitor

import (
	"context"
	"math"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"github.com/jackc/pglogrepl"
)

// CDCBatchInfo describes one pull of change records from the source.
type CDCBatchInfo struct {
	BatchID       int64
	RowsInBatch   uint32
	BatchStartLSN pglogrepl.LSN
	BatchEndLSN   pglogrepl.LSN
	StartTime     time.Time
}

// CatalogMirrorMonitor is how flow workers report progress. A monitor without
// a catalog is inactive and every call on it is a no-op.
type CatalogMirrorMonitor struct {
	store  catalog.Store
	logger *logger.Logger
	now    func() time.Time
}

func NewCatalogMirrorMonitor(store catalog.Store) *CatalogMirrorMonitor {
	return &CatalogMirrorMonitor{
		store:  store,
		logger: logger.WithField("component", "mirror-monitor"),
		now:    time.Now,
	}
}

// The catalog keeps LSNs in signed 64-bit columns.
const maxStoredLSN = pglogrepl.LSN(math.MaxInt64)

func checkStoredLSN(flowJobName string, lsn pglogrepl.LSN) error {
	if lsn > maxStoredLSN {
		return errors.NewInvalidFlowConfigError(flowJobName, "LSN "+lsn.String()+" is beyond the catalog range")
	}
	return nil
}

func (m *CatalogMirrorMonitor) IsActive() bool {
	return m != nil && m.store != nil
}

func (m *CatalogMirrorMonitor) InitializeCDCFlow(ctx context.Context, flowJobName string) error {
	if !m.IsActive() {
		return nil
	}
	if err := m.store.InitializeCDCFlow(ctx, flowJobName); err != nil {
		return errors.WrapFlowError(flowJobName, "initialize cdc flow", err)
	}
	return nil
}

func (m *CatalogMirrorMonitor) AddCDCBatchForFlow(ctx context.Context, flowJobName string, info CDCBatchInfo) error {
	if !m.IsActive() {
		return nil
	}
	if info.BatchEndLSN < info.BatchStartLSN {
		return errors.NewInvalidFlowConfigError(flowJobName, "batch end LSN "+info.BatchEndLSN.String()+
			" is before start LSN "+info.BatchStartLSN.String())
	}

	if err := checkStoredLSN(flowJobName, info.BatchEndLSN); err != nil {
		return err
	}

	err := m.store.AddCDCBatch(ctx, catalog.CDCBatch{
		FlowJobName: flowJobName,
		BatchID:     info.BatchID,
		RowsInBatch: info.RowsInBatch,
		StartLSN:    int64(info.BatchStartLSN),
		EndLSN:      int64(info.BatchEndLSN),
		StartTime:   info.StartTime,
	})
	if err != nil {
		return errors.WrapFlowError(flowJobName, "add cdc batch", err)
	}

	m.logger.Debug("recorded cdc batch", "flowJobName", flowJobName, "batchId", info.BatchID,
		"rows", info.RowsInBatch, "startLSN", info.BatchStartLSN.String(), "endLSN", info.BatchEndLSN.String())
	return nil
}

func (m *CatalogMirrorMonitor) UpdateEndTimeForCDCBatch(ctx context.Context, flowJobName string, batchID int64) error {
	if !m.IsActive() {
		return nil
	}
	if err := m.store.UpdateCDCBatchEnd(ctx, flowJobName, batchID, m.now()); err != nil {
		return errors.WrapFlowError(flowJobName, "update cdc batch end", err)
	}
	return nil
}

func (m *CatalogMirrorMonitor) UpdateLatestLSNAtTargetForCDCFlow(ctx context.Context, flowJobName string, lsn pglogrepl.LSN) error {
	if !m.IsActive() {
		return nil
	}
	if err := checkStoredLSN(flowJobName, lsn); err != nil {
		return err
	}
	if err := m.store.UpdateLatestLSNAtTarget(ctx, flowJobName, int64(lsn)); err != nil {
		return errors.WrapFlowError(flowJobName, "update target lsn", err)
	}
	return nil
}

// InitializeQRepRun records a run and its partitions. A run whose flow name
// starts with the clone prefix of a CDC mirror is linked to it as a snapshot clone.
func (m *CatalogMirrorMonitor) InitializeQRepRun(ctx context.Context, config *pb.QRepConfig, runUUID string, partitions []*pb.QRepPartition) error {
	if !m.IsActive() {
		return nil
	}
	if config == nil {
		return errors.NewInvalidFlowConfigError("", "qrep config is required")
	}

	run := catalog.QRepRun{
		FlowJobName:  config.GetFlowJobName(),
		RunUUID:      runUUID,
		ParentMirror: ParentMirror(config.GetFlowJobName()),
		Config:       config,
		Partitions:   make([]catalog.QRepPartition, 0, len(partitions)),
	}
	for _, p := range partitions {
		run.Partitions = append(run.Partitions, catalog.QRepPartition{
			RunUUID:     runUUID,
			PartitionID: p.GetPartitionId(),
			RangeStart:  p.GetRangeStart(),
			RangeEnd:    p.GetRangeEnd(),
		})
	}

	if err := m.store.InitializeQRepRun(ctx, run); err != nil {
		return errors.WrapFlowError(config.GetFlowJobName(), "initialize qrep run", err)
	}
	return nil
}

func (m *CatalogMirrorMonitor) UpdateStartTimeForQRepRun(ctx context.Context, runUUID string) error {
	if !m.IsActive() {
		return nil
	}
	return m.store.UpdateQRepRunStart(ctx, runUUID, m.now())
}

func (m *CatalogMirrorMonitor) UpdateEndTimeForQRepRun(ctx context.Context, runUUID string) error {
	if !m.IsActive() {
		return nil
	}
	return m.store.UpdateQRepRunEnd(ctx, runUUID, m.now())
}

func (m *CatalogMirrorMonitor) UpdateStartTimeForPartition(ctx context.Context, runUUID string, partition *pb.QRepPartition) error {
	if !m.IsActive() {
		return nil
	}
	return m.store.UpdatePartitionStart(ctx, runUUID, partition.GetPartitionId(), m.now())
}

func (m *CatalogMirrorMonitor) UpdatePullEndTimeAndRowsForPartition(ctx context.Context, runUUID string, partition *pb.QRepPartition, rows int64) error {
	if !m.IsActive() {
		return nil
	}
	return m.store.UpdatePartitionPull(ctx, runUUID, partition.GetPartitionId(), rows, m.now())
}

func (m *CatalogMirrorMonitor) UpdateEndTimeForPartition(ctx context.Context, runUUID string, partition *pb.QRepPartition) error {
	if !m.IsActive() {
		return nil
	}
	return m.store.UpdatePartitionEnd(ctx, runUUID, partition.GetPartitionId(), m.now())
}
