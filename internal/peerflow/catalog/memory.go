package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/errors"

	"google.golang.org/protobuf/proto"
)

// MemoryStore keeps the catalog in process memory.
type MemoryStore struct {
	mu         sync.RWMutex
	peers      map[string]*pb.Peer
	flows      map[string]*Flow
	cdcFlows   map[string]*CDCFlow
	cdcBatches map[string][]CDCBatch
	runs       map[string]*QRepRun
	runOrder   []string
	now        func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		peers:      make(map[string]*pb.Peer),
		flows:      make(map[string]*Flow),
		cdcFlows:   make(map[string]*CDCFlow),
		cdcBatches: make(map[string][]CDCBatch),
		runs:       make(map[string]*QRepRun),
		now:        time.Now,
	}
}

func (m *MemoryStore) CreatePeer(_ context.Context, peer *pb.Peer) error {
	if peer == nil || peer.GetName() == "" {
		return errors.NewInvalidPeerError("", "peer name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.peers[peer.GetName()]; exists {
		return errors.WrapPeerError(peer.GetName(), "create", errors.ErrPeerAlreadyExists)
	}
	m.peers[peer.GetName()] = proto.Clone(peer).(*pb.Peer)
	return nil
}

func (m *MemoryStore) GetPeer(_ context.Context, name string) (*pb.Peer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	peer, exists := m.peers[name]
	if !exists {
		return nil, errors.NewPeerNotFoundError(name)
	}
	return proto.Clone(peer).(*pb.Peer), nil
}

func (m *MemoryStore) ListPeers(_ context.Context) ([]*pb.Peer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	peers := make([]*pb.Peer, 0, len(m.peers))
	for _, p := range m.peers {
		peers = append(peers, proto.Clone(p).(*pb.Peer))
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i].GetName() < peers[j].GetName() })
	return peers, nil
}

func (m *MemoryStore) CreateFlow(_ context.Context, flow Flow) error {
	if flow.Name == "" {
		return errors.NewInvalidFlowConfigError("", "flow job name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.flows[flow.Name]; exists {
		if !existing.State.Replaceable() {
			return errors.WrapFlowError(flow.Name, "create", errors.ErrFlowAlreadyExists)
		}
		m.dropProgress(flow.Name)
	}

	now := m.now()
	if flow.State == "" {
		flow.State = FlowStateRunning
	}
	flow.CreatedAt = now
	flow.UpdatedAt = now
	m.flows[flow.Name] = cloneFlow(&flow)
	return nil
}

func (m *MemoryStore) GetFlow(_ context.Context, name string) (*Flow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	flow, exists := m.flows[name]
	if !exists {
		return nil, errors.NewFlowNotFoundError(name)
	}
	return cloneFlow(flow), nil
}

func (m *MemoryStore) ListFlows(_ context.Context) ([]Flow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	flows := make([]Flow, 0, len(m.flows))
	for _, f := range m.flows {
		flows = append(flows, *cloneFlow(f))
	}
	sort.Slice(flows, func(i, j int) bool { return flows[i].Name < flows[j].Name })
	return flows, nil
}

func (m *MemoryStore) UpdateFlowState(_ context.Context, name string, state FlowState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	flow, exists := m.flows[name]
	if !exists {
		return errors.NewFlowNotFoundError(name)
	}
	flow.State = state
	flow.UpdatedAt = m.now()
	return nil
}

func (m *MemoryStore) InitializeCDCFlow(_ context.Context, flowJobName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.cdcFlows[flowJobName]; !exists {
		m.cdcFlows[flowJobName] = &CDCFlow{FlowJobName: flowJobName}
	}
	return nil
}

func (m *MemoryStore) GetCDCFlow(_ context.Context, flowJobName string) (*CDCFlow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cdc, exists := m.cdcFlows[flowJobName]
	if !exists {
		return nil, errors.NewFlowNotFoundError(flowJobName)
	}
	c := *cdc
	return &c, nil
}

func (m *MemoryStore) AddCDCBatch(_ context.Context, batch CDCBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cdc, exists := m.cdcFlows[batch.FlowJobName]
	if !exists {
		return errors.NewFlowNotFoundError(batch.FlowJobName)
	}
	for _, b := range m.cdcBatches[batch.FlowJobName] {
		if b.BatchID == batch.BatchID {
			return errors.WrapFlowError(batch.FlowJobName, "add batch", errors.ErrFlowAlreadyExists)
		}
	}

	batch.EndTime = cloneTime(batch.EndTime)
	m.cdcBatches[batch.FlowJobName] = append(m.cdcBatches[batch.FlowJobName], batch)
	if batch.EndLSN > cdc.LatestLSNAtSource {
		cdc.LatestLSNAtSource = batch.EndLSN
	}
	return nil
}

func (m *MemoryStore) UpdateCDCBatchEnd(_ context.Context, flowJobName string, batchID int64, endTime time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	batches := m.cdcBatches[flowJobName]
	for i := range batches {
		if batches[i].BatchID == batchID {
			t := endTime
			batches[i].EndTime = &t
			return nil
		}
	}
	return errors.WrapFlowError(flowJobName, "update batch", errors.ErrBatchNotFound)
}

func (m *MemoryStore) UpdateLatestLSNAtTarget(_ context.Context, flowJobName string, lsn int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cdc, exists := m.cdcFlows[flowJobName]
	if !exists {
		return errors.NewFlowNotFoundError(flowJobName)
	}
	cdc.LatestLSNAtTarget = lsn
	return nil
}

func (m *MemoryStore) ListCDCBatches(_ context.Context, flowJobName string) ([]CDCBatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.cdcBatches[flowJobName]
	batches := make([]CDCBatch, len(src))
	for i, b := range src {
		b.EndTime = cloneTime(b.EndTime)
		batches[i] = b
	}
	sort.SliceStable(batches, func(i, j int) bool { return batches[i].BatchID < batches[j].BatchID })
	return batches, nil
}

func (m *MemoryStore) InitializeQRepRun(_ context.Context, run QRepRun) error {
	if run.RunUUID == "" {
		return errors.NewInvalidFlowConfigError(run.FlowJobName, "run uuid is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.runs[run.RunUUID]; exists {
		return errors.WrapFlowError(run.FlowJobName, "initialize run", errors.ErrFlowAlreadyExists)
	}
	run.CreatedAt = m.now()
	m.runs[run.RunUUID] = cloneRun(&run)
	m.runOrder = append(m.runOrder, run.RunUUID)
	return nil
}

func (m *MemoryStore) UpdateQRepRunStart(_ context.Context, runUUID string, at time.Time) error {
	return m.updateRun(runUUID, func(r *QRepRun) { r.StartTime = &at })
}

func (m *MemoryStore) UpdateQRepRunEnd(_ context.Context, runUUID string, at time.Time) error {
	return m.updateRun(runUUID, func(r *QRepRun) { r.EndTime = &at })
}

func (m *MemoryStore) UpdatePartitionStart(_ context.Context, runUUID, partitionID string, at time.Time) error {
	return m.updatePartition(runUUID, partitionID, func(p *QRepPartition) { p.StartTime = &at })
}

func (m *MemoryStore) UpdatePartitionPull(_ context.Context, runUUID, partitionID string, rows int64, at time.Time) error {
	return m.updatePartition(runUUID, partitionID, func(p *QRepPartition) {
		p.Rows = rows
		p.PullEndTime = &at
	})
}

func (m *MemoryStore) UpdatePartitionEnd(_ context.Context, runUUID, partitionID string, at time.Time) error {
	return m.updatePartition(runUUID, partitionID, func(p *QRepPartition) { p.EndTime = &at })
}

func (m *MemoryStore) ListQRepRuns(_ context.Context, flowJobName string) ([]QRepRun, error) {
	return m.listRuns(func(r *QRepRun) bool { return r.FlowJobName == flowJobName }), nil
}

func (m *MemoryStore) ListCloneRuns(_ context.Context, parentMirror string) ([]QRepRun, error) {
	return m.listRuns(func(r *QRepRun) bool { return r.ParentMirror == parentMirror }), nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) updateRun(runUUID string, fn func(*QRepRun)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, exists := m.runs[runUUID]
	if !exists {
		return errors.ErrRunNotFound
	}
	fn(run)
	return nil
}

func (m *MemoryStore) updatePartition(runUUID, partitionID string, fn func(*QRepPartition)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, exists := m.runs[runUUID]
	if !exists {
		return errors.ErrRunNotFound
	}
	for i := range run.Partitions {
		if run.Partitions[i].PartitionID == partitionID {
			fn(&run.Partitions[i])
			return nil
		}
	}
	return errors.WrapFlowError(run.FlowJobName, "update partition "+partitionID, errors.ErrRunNotFound)
}

// dropProgress forgets the CDC progress and QRep runs of a flow, including
// the snapshot clones it is the parent of.
func (m *MemoryStore) dropProgress(flowJobName string) {
	delete(m.cdcFlows, flowJobName)
	delete(m.cdcBatches, flowJobName)

	order := m.runOrder[:0]
	for _, id := range m.runOrder {
		run := m.runs[id]
		if run.FlowJobName == flowJobName || run.ParentMirror == flowJobName {
			delete(m.runs, id)
			continue
		}
		order = append(order, id)
	}
	m.runOrder = order
}

// listRuns returns matching runs by start time. Runs that have not started
// come last, in the order they were initialised.
func (m *MemoryStore) listRuns(match func(*QRepRun) bool) []QRepRun {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var runs []QRepRun
	for _, id := range m.runOrder {
		if run := m.runs[id]; match(run) {
			runs = append(runs, *cloneRun(run))
		}
	}
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i].StartTime, runs[j].StartTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Before(*b)
	})
	return runs
}

func cloneFlow(f *Flow) *Flow {
	c := *f
	if f.CDCConfig != nil {
		c.CDCConfig = proto.Clone(f.CDCConfig).(*pb.FlowConnectionConfigs)
	}
	if f.QRepConfig != nil {
		c.QRepConfig = proto.Clone(f.QRepConfig).(*pb.QRepConfig)
	}
	return &c
}

func cloneRun(r *QRepRun) *QRepRun {
	c := *r
	if r.Config != nil {
		c.Config = proto.Clone(r.Config).(*pb.QRepConfig)
	}
	c.StartTime = cloneTime(r.StartTime)
	c.EndTime = cloneTime(r.EndTime)
	c.Partitions = make([]QRepPartition, len(r.Partitions))
	for i, p := range r.Partitions {
		p.StartTime = cloneTime(p.StartTime)
		p.PullEndTime = cloneTime(p.PullEndTime)
		p.EndTime = cloneTime(p.EndTime)
		c.Partitions[i] = p
	}
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
