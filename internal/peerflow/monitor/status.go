package monitor

import (
	"context"
	"math"
	"strings"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/pkg/errors"

	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	clonePrefix    = "clone_"
	cloneSeparator = "__"
)

// CloneFlowJobName names the QRep run that snapshots table for a CDC mirror.
func CloneFlowJobName(parentMirror, table string) string {
	return clonePrefix + parentMirror + cloneSeparator + table
}

// ParentMirror returns the CDC mirror a clone run belongs to, or "" when the
// flow name is not a clone name.
func ParentMirror(flowJobName string) string {
	rest, ok := strings.CutPrefix(flowJobName, clonePrefix)
	if !ok {
		return ""
	}
	parent, table, ok := strings.Cut(rest, cloneSeparator)
	if !ok || parent == "" || table == "" {
		return ""
	}
	return parent
}

// MirrorStatus reports the state of a mirror. Domain failures, such as an
// unknown mirror, are returned in the response's error message; the error
// return is reserved for catalog failures.
func (m *CatalogMirrorMonitor) MirrorStatus(ctx context.Context, flowJobName string) (*pb.MirrorStatusResponse, error) {
	resp := &pb.MirrorStatusResponse{FlowJobName: flowJobName}
	if !m.IsActive() {
		resp.ErrorMessage = "mirror catalog is not configured"
		return resp, nil
	}

	flow, err := m.store.GetFlow(ctx, flowJobName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			resp.ErrorMessage = "mirror " + flowJobName + " not found"
			return resp, nil
		}
		return nil, err
	}

	switch flow.Kind {
	case catalog.FlowKindQRep:
		status, err := m.qrepStatus(ctx, flow)
		if err != nil {
			return nil, err
		}
		resp.Status = &pb.MirrorStatusResponse_QrepStatus{QrepStatus: status}
	case catalog.FlowKindCDC:
		status, err := m.cdcStatus(ctx, flow)
		if err != nil {
			return nil, err
		}
		resp.Status = &pb.MirrorStatusResponse_CdcStatus{CdcStatus: status}
	default:
		resp.ErrorMessage = "mirror " + flowJobName + " has unknown kind " + string(flow.Kind)
	}
	return resp, nil
}

func (m *CatalogMirrorMonitor) qrepStatus(ctx context.Context, flow *catalog.Flow) (*pb.QRepMirrorStatus, error) {
	runs, err := m.store.ListQRepRuns(ctx, flow.Name)
	if err != nil {
		return nil, err
	}

	status := &pb.QRepMirrorStatus{Config: flow.QRepConfig}
	for _, run := range runs {
		status.Partitions = append(status.Partitions, partitionStatuses(run)...)
	}
	return status, nil
}

func (m *CatalogMirrorMonitor) cdcStatus(ctx context.Context, flow *catalog.Flow) (*pb.CDCMirrorStatus, error) {
	status := &pb.CDCMirrorStatus{Config: flow.CDCConfig}

	clones, err := m.store.ListCloneRuns(ctx, flow.Name)
	if err != nil {
		return nil, err
	}
	if len(clones) > 0 {
		snapshot := &pb.SnapshotStatus{}
		for _, run := range clones {
			snapshot.Clones = append(snapshot.Clones, &pb.QRepMirrorStatus{
				Config:     run.Config,
				Partitions: partitionStatuses(run),
			})
		}
		status.SnapshotStatus = snapshot
	}

	batches, err := m.store.ListCDCBatches(ctx, flow.Name)
	if err != nil {
		return nil, err
	}
	for _, b := range batches {
		status.CdcSyncs = append(status.CdcSyncs, &pb.CDCSyncStatus{
			StartLsn:  b.StartLSN,
			EndLsn:    b.EndLSN,
			NumRows:   clampInt32(int64(b.RowsInBatch)),
			StartTime: toTimestamp(&b.StartTime),
			EndTime:   toTimestamp(b.EndTime),
		})
	}
	return status, nil
}

func partitionStatuses(run catalog.QRepRun) []*pb.PartitionStatus {
	out := make([]*pb.PartitionStatus, 0, len(run.Partitions))
	for _, p := range run.Partitions {
		out = append(out, &pb.PartitionStatus{
			PartitionId: p.PartitionID,
			StartTime:   toTimestamp(p.StartTime),
			EndTime:     toTimestamp(p.EndTime),
			NumRows:     clampInt32(p.Rows),
		})
	}
	return out
}

func toTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	return timestamppb.New(*t)
}

// num_rows is int32 on the wire
func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
