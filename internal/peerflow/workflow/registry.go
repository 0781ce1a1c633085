// Package workflow keeps track of the workflows that drive mirrors.
package workflow

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCDC  Kind = "peerflow"
	KindQRep Kind = "qrepflow"
)

type Status string

const (
	StatusRunning    Status = "RUNNING"
	StatusTerminated Status = "TERMINATED"
)

// Workflow is a snapshot of a registered mirror workflow.
type Workflow struct {
	ID          string
	FlowJobName string
	Kind        Kind
	Status      Status
	StartedAt   time.Time
	EndedAt     *time.Time
}

type entry struct {
	Workflow
	ctx    context.Context
	cancel context.CancelFunc
}

// Registry tracks the workflows driving each mirror. At most one workflow
// per flow job name is running at a time.
type Registry struct {
	mu        sync.RWMutex
	workflows map[string]*entry
	running   map[string]string // flow job name -> workflow id
	logger    *logger.Logger
	now       func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		workflows: make(map[string]*entry),
		running:   make(map[string]string),
		logger:    logger.WithField("component", "workflow-registry"),
		now:       time.Now,
	}
}

// NewWorkflowID builds the id of a mirror workflow, e.g. "orders-peerflow-<uuid>".
func NewWorkflowID(flowJobName string, kind Kind) string {
	return flowJobName + "-" + string(kind) + "-" + uuid.NewString()
}

// Start registers a running workflow for flowJobName and returns it.
func (r *Registry) Start(flowJobName string, kind Kind) (Workflow, error) {
	if flowJobName == "" {
		return Workflow{}, errors.NewInvalidFlowConfigError("", "flow job name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.running[flowJobName]; ok {
		return Workflow{}, errors.WrapFlowError(flowJobName, "start workflow (running as "+existing+")",
			errors.ErrFlowAlreadyExists)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e := &entry{
		Workflow: Workflow{
			ID:          NewWorkflowID(flowJobName, kind),
			FlowJobName: flowJobName,
			Kind:        kind,
			Status:      StatusRunning,
			StartedAt:   r.now(),
		},
		ctx:    ctx,
		cancel: cancel,
	}
	r.workflows[e.ID] = e
	r.running[flowJobName] = e.ID

	r.logger.Info("workflow started", "workflowId", e.ID, "flowJobName", flowJobName, "kind", string(kind))
	return e.snapshot(), nil
}

func (r *Registry) Get(workflowID string) (Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.workflows[workflowID]
	if !ok {
		return Workflow{}, errors.ErrWorkflowNotFound
	}
	return e.snapshot(), nil
}

// GetByFlow returns the running workflow of a flow.
func (r *Registry) GetByFlow(flowJobName string) (Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.running[flowJobName]
	if !ok {
		return Workflow{}, errors.WrapFlowError(flowJobName, "lookup workflow", errors.ErrWorkflowNotFound)
	}
	return r.workflows[id].snapshot(), nil
}

// Done returns a channel closed when the workflow terminates.
func (r *Registry) Done(workflowID string) (<-chan struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.workflows[workflowID]
	if !ok {
		return nil, errors.ErrWorkflowNotFound
	}
	return e.ctx.Done(), nil
}

func (r *Registry) List() []Workflow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Workflow, 0, len(r.workflows))
	for _, e := range r.workflows {
		result = append(result, e.snapshot())
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result
}

// Terminate stops the workflow. Terminating an already terminated workflow is
// not an error.
func (r *Registry) Terminate(workflowID, flowJobName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.workflows[workflowID]
	if !ok {
		return errors.WrapFlowError(flowJobName, "terminate "+workflowID, errors.ErrWorkflowNotFound)
	}
	if flowJobName != "" && e.FlowJobName != flowJobName {
		return errors.WrapFlowError(flowJobName, "terminate "+workflowID, errors.ErrWorkflowMismatch)
	}
	if e.Status == StatusTerminated {
		return nil
	}

	now := r.now()
	e.Status = StatusTerminated
	e.EndedAt = &now
	e.cancel()
	if r.running[e.FlowJobName] == workflowID {
		delete(r.running, e.FlowJobName)
	}

	r.logger.Info("workflow terminated", "workflowId", workflowID, "flowJobName", e.FlowJobName)
	return nil
}

// Close terminates every running workflow.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, e := range r.workflows {
		if e.Status == StatusRunning {
			e.Status = StatusTerminated
			e.EndedAt = &now
			e.cancel()
		}
	}
	r.running = make(map[string]string)
}

func (e *entry) snapshot() Workflow {
	w := e.Workflow
	if e.EndedAt != nil {
		t := *e.EndedAt
		w.EndedAt = &t
	}
	return w
}
