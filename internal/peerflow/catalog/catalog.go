// Package catalog records peers, mirrors and their replication progress.
package catalog

import (
	"context"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
)

type FlowKind string

const (
	FlowKindCDC  FlowKind = "cdc"
	FlowKindQRep FlowKind = "qrep"
)

type FlowState string

const (
	FlowStateRunning  FlowState = "running"
	FlowStateShutdown FlowState = "shutdown"
	FlowStateFailed   FlowState = "failed"
)

// Replaceable reports whether a flow in this state may be created again under
// the same name.
func (s FlowState) Replaceable() bool {
	return s == FlowStateShutdown || s == FlowStateFailed
}

// Flow is a mirror registered in the catalog. Exactly one of CDCConfig and
// QRepConfig is set, matching Kind.
type Flow struct {
	Name       string
	Kind       FlowKind
	WorkflowID string
	State      FlowState
	SourcePeer string
	DestPeer   string
	CDCConfig  *pb.FlowConnectionConfigs
	QRepConfig *pb.QRepConfig
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CDCFlow tracks how far a CDC mirror has got on both sides.
type CDCFlow struct {
	FlowJobName       string
	LatestLSNAtSource int64
	LatestLSNAtTarget int64
}

type CDCBatch struct {
	FlowJobName string
	BatchID     int64
	RowsInBatch uint32
	StartLSN    int64
	EndLSN      int64
	StartTime   time.Time
	EndTime     *time.Time
}

// QRepRun is one execution of a QRep mirror over a set of partitions.
// ParentMirror is set when the run is an initial snapshot clone of a CDC mirror.
type QRepRun struct {
	FlowJobName  string
	RunUUID      string
	ParentMirror string
	Config       *pb.QRepConfig
	StartTime    *time.Time
	EndTime      *time.Time
	CreatedAt    time.Time
	Partitions   []QRepPartition
}

type QRepPartition struct {
	RunUUID     string
	PartitionID string
	RangeStart  int64
	RangeEnd    int64
	Rows        int64
	StartTime   *time.Time
	PullEndTime *time.Time
	EndTime     *time.Time
}

// Store is implemented by MemoryStore and PostgresStore.
type Store interface {
	CreatePeer(ctx context.Context, peer *pb.Peer) error
	GetPeer(ctx context.Context, name string) (*pb.Peer, error)
	ListPeers(ctx context.Context) ([]*pb.Peer, error)

	// CreateFlow fails with ErrFlowAlreadyExists unless the existing flow of
	// that name is shut down or failed, in which case it is replaced and its
	// recorded progress dropped.
	CreateFlow(ctx context.Context, flow Flow) error
	GetFlow(ctx context.Context, name string) (*Flow, error)
	ListFlows(ctx context.Context) ([]Flow, error)
	UpdateFlowState(ctx context.Context, name string, state FlowState) error

	InitializeCDCFlow(ctx context.Context, flowJobName string) error
	GetCDCFlow(ctx context.Context, flowJobName string) (*CDCFlow, error)
	AddCDCBatch(ctx context.Context, batch CDCBatch) error
	UpdateCDCBatchEnd(ctx context.Context, flowJobName string, batchID int64, endTime time.Time) error
	UpdateLatestLSNAtTarget(ctx context.Context, flowJobName string, lsn int64) error
	ListCDCBatches(ctx context.Context, flowJobName string) ([]CDCBatch, error)

	InitializeQRepRun(ctx context.Context, run QRepRun) error
	UpdateQRepRunStart(ctx context.Context, runUUID string, at time.Time) error
	UpdateQRepRunEnd(ctx context.Context, runUUID string, at time.Time) error
	UpdatePartitionStart(ctx context.Context, runUUID, partitionID string, at time.Time) error
	UpdatePartitionPull(ctx context.Context, runUUID, partitionID string, rows int64, at time.Time) error
	UpdatePartitionEnd(ctx context.Context, runUUID, partitionID string, at time.Time) error
	ListQRepRuns(ctx context.Context, flowJobName string) ([]QRepRun, error)
	ListCloneRuns(ctx context.Context, parentMirror string) ([]QRepRun, error)

	Close() error
}
