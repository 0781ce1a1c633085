package server

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/peerflow/auth"
	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/internal/peerflow/connectors"
	"github.com/ehsaniara/peerflow/internal/peerflow/monitor"
	"github.com/ehsaniara/peerflow/internal/peerflow/workflow"
	"github.com/ehsaniara/peerflow/pkg/config"
	"github.com/ehsaniara/peerflow/pkg/errors"
	"github.com/ehsaniara/peerflow/pkg/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const defaultWaitBetweenBatchesSeconds = 5

// FlowServiceServer manages peers and mirrors.
type FlowServiceServer struct {
	pb.UnimplementedFlowServiceServer
	auth       auth.GRPCAuthorization
	store      catalog.Store
	monitor    *monitor.CatalogMirrorMonitor
	registry   *workflow.Registry
	factory    connectors.Factory
	validation config.ValidationConfig
	logger     *logger.Logger
}

func NewFlowServiceServer(auth auth.GRPCAuthorization, components Components, validation config.ValidationConfig) *FlowServiceServer {
	return &FlowServiceServer{
		auth:       auth,
		store:      components.Store,
		monitor:    components.Monitor,
		registry:   components.Registry,
		factory:    components.Factory,
		validation: validation,
		logger:     logger.WithField("component", "flow-grpc"),
	}
}

// convertErrorToGRPCStatus converts structured errors to appropriate gRPC status codes
func (s *FlowServiceServer) convertErrorToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsContextError(err) {
		return status.Errorf(codes.DeadlineExceeded, "operation timeout: %v", err)
	}

	switch {
	case errors.IsValidationError(err):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.IsNotFoundError(err):
		return status.Errorf(codes.NotFound, "%v", err)
	case errors.IsConflictError(err):
		return status.Errorf(codes.AlreadyExists, "%v", err)
	case errors.IsPermissionError(err):
		return status.Errorf(codes.PermissionDenied, "%v", err)
	case errors.IsConfigError(err):
		return status.Errorf(codes.InvalidArgument, "configuration error: %v", err)
	case errors.IsTimeoutError(err):
		return status.Errorf(codes.DeadlineExceeded, "%v", err)
	case errors.GetCategory(err) == errors.CategoryRateLimit:
		return status.Errorf(codes.ResourceExhausted, "%v", err)
	case errors.GetCategory(err) == errors.CategoryConnectivity:
		return status.Errorf(codes.Unavailable, "%v", err)
	default:
		switch errors.GetSeverity(err) {
		case errors.SeverityCritical:
			return status.Errorf(codes.Internal, "critical system error: %v", err)
		case errors.SeverityHigh:
			return status.Errorf(codes.Internal, "internal error: %v", err)
		default:
			return status.Errorf(codes.Internal, "%v", err)
		}
	}
}

func (s *FlowServiceServer) ValidatePeer(ctx context.Context, req *pb.ValidatePeerRequest) (*pb.ValidatePeerResponse, error) {
	log := s.logger.WithFields("operation", "ValidatePeer", "peer", req.GetPeer().GetName())

	if err := s.auth.Authorized(ctx, auth.ValidatePeerOp); err != nil {
		log.Warn("authorization failed", "error", err)
		return nil, err
	}

	if err := s.checkPeer(ctx, req.GetPeer()); err != nil {
		log.Info("peer is invalid", "error", err)
		return &pb.ValidatePeerResponse{
			Status:  pb.ValidatePeerStatus_INVALID,
			Message: err.Error(),
		}, nil
	}

	log.Debug("peer is valid")
	return &pb.ValidatePeerResponse{Status: pb.ValidatePeerStatus_VALID}, nil
}

func (s *FlowServiceServer) CreatePeer(ctx context.Context, req *pb.CreatePeerRequest) (*pb.CreatePeerResponse, error) {
	log := s.logger.WithFields("operation", "CreatePeer", "peer", req.GetPeer().GetName())

	if err := s.auth.Authorized(ctx, auth.CreatePeerOp); err != nil {
		log.Warn("authorization failed", "error", err)
		return nil, err
	}

	if err := s.checkPeer(ctx, req.GetPeer()); err != nil {
		log.Info("refusing invalid peer", "error", err)
		return &pb.CreatePeerResponse{Status: pb.CreatePeerStatus_FAILED, Message: err.Error()}, nil
	}

	if err := s.store.CreatePeer(ctx, req.GetPeer()); err != nil {
		errors.LogError(log, err, "failed to store peer")
		return &pb.CreatePeerResponse{Status: pb.CreatePeerStatus_FAILED, Message: err.Error()}, nil
	}

	log.Info("peer created", "type", req.GetPeer().GetType().String())
	return &pb.CreatePeerResponse{Status: pb.CreatePeerStatus_CREATED}, nil
}

func (s *FlowServiceServer) CreateCDCFlow(ctx context.Context, req *pb.CreateCDCFlowRequest) (*pb.CreateCDCFlowResponse, error) {
	cfg := req.GetConnectionConfigs()
	log := s.logger.WithFields("operation", "CreateCDCFlow", "flowJobName", cfg.GetFlowJobName())

	if err := s.auth.Authorized(ctx, auth.CreateCDCFlowOp); err != nil {
		log.Warn("authorization failed", "error", err)
		return nil, err
	}

	if err := validateCDCConfig(cfg); err != nil {
		log.Info("invalid cdc flow config", "error", err)
		return nil, s.convertErrorToGRPCStatus(err)
	}

	wf, err := s.registry.Start(cfg.GetFlowJobName(), workflow.KindCDC)
	if err != nil {
		log.Warn("failed to start workflow", "error", err)
		return nil, s.convertErrorToGRPCStatus(err)
	}

	if req.GetCreateCatalogEntry() {
		flow := catalog.Flow{
			Name:       cfg.GetFlowJobName(),
			Kind:       catalog.FlowKindCDC,
			WorkflowID: wf.ID,
			State:      catalog.FlowStateRunning,
			SourcePeer: cfg.GetSource().GetName(),
			DestPeer:   cfg.GetDestination().GetName(),
			CDCConfig:  cfg,
		}
		if err := s.recordFlow(ctx, flow); err != nil {
			s.abandonWorkflow(wf, log)
			log.Error("failed to record flow in catalog", "error", err)
			return nil, s.convertErrorToGRPCStatus(err)
		}
		if err := s.monitor.InitializeCDCFlow(ctx, flow.Name); err != nil {
			s.abandonWorkflow(wf, log)
			log.Error("failed to initialize cdc progress", "error", err)
			return nil, s.convertErrorToGRPCStatus(err)
		}
	}

	log.Info("cdc flow started", "workflowId", wf.ID, "catalogEntry", req.GetCreateCatalogEntry(),
		"tables", len(cfg.GetTableMappings()))
	return &pb.CreateCDCFlowResponse{WorflowId: wf.ID}, nil
}

func (s *FlowServiceServer) CreateQRepFlow(ctx context.Context, req *pb.CreateQRepFlowRequest) (*pb.CreateQRepFlowResponse, error) {
	log := s.logger.WithFields("operation", "CreateQRepFlow", "flowJobName", req.GetQrepConfig().GetFlowJobName())

	if err := s.auth.Authorized(ctx, auth.CreateQRepFlowOp); err != nil {
		log.Warn("authorization failed", "error", err)
		return nil, err
	}

	if err := validateQRepConfig(req.GetQrepConfig()); err != nil {
		log.Info("invalid qrep flow config", "error", err)
		return nil, s.convertErrorToGRPCStatus(err)
	}

	cfg := proto.Clone(req.GetQrepConfig()).(*pb.QRepConfig)
	if cfg.GetWaitBetweenBatchesSeconds() == 0 {
		cfg.WaitBetweenBatchesSeconds = defaultWaitBetweenBatchesSeconds
	}

	wf, err := s.registry.Start(cfg.GetFlowJobName(), workflow.KindQRep)
	if err != nil {
		log.Warn("failed to start workflow", "error", err)
		return nil, s.convertErrorToGRPCStatus(err)
	}

	if req.GetCreateCatalogEntry() {
		flow := catalog.Flow{
			Name:       cfg.GetFlowJobName(),
			Kind:       catalog.FlowKindQRep,
			WorkflowID: wf.ID,
			State:      catalog.FlowStateRunning,
			SourcePeer: cfg.GetSourcePeer().GetName(),
			DestPeer:   cfg.GetDestinationPeer().GetName(),
			QRepConfig: cfg,
		}
		if err := s.recordFlow(ctx, flow); err != nil {
			s.abandonWorkflow(wf, log)
			log.Error("failed to record flow in catalog", "error", err)
			return nil, s.convertErrorToGRPCStatus(err)
		}
	}

	log.Info("qrep flow started", "workflowId", wf.ID, "catalogEntry", req.GetCreateCatalogEntry(),
		"waitBetweenBatchesSeconds", cfg.GetWaitBetweenBatchesSeconds())
	return &pb.CreateQRepFlowResponse{WorflowId: wf.ID}, nil
}

// ShutdownFlow reports failures in the response body; only authorization
// failures are returned as RPC errors.
func (s *FlowServiceServer) ShutdownFlow(ctx context.Context, req *pb.ShutdownRequest) (*pb.ShutdownResponse, error) {
	log := s.logger.WithFields("operation", "ShutdownFlow",
		"workflowId", req.GetWorkflowId(), "flowJobName", req.GetFlowJobName())

	if err := s.auth.Authorized(ctx, auth.ShutdownFlowOp); err != nil {
		log.Warn("authorization failed", "error", err)
		return nil, err
	}

	flowJobName, flow, err := s.terminateWorkflow(ctx, req.GetWorkflowId(), req.GetFlowJobName())
	if err != nil {
		log.Warn("failed to terminate workflow", "error", err)
		return &pb.ShutdownResponse{Ok: false, ErrorMessage: err.Error()}, nil
	}
	log = log.WithField("flowJobName", flowJobName)

	opts := connectors.CleanupOptions{}
	if flow != nil && flow.CDCConfig != nil {
		opts.PublicationName = flow.CDCConfig.GetPublicationName()
		opts.ReplicationSlotName = flow.CDCConfig.GetReplicationSlotName()
	}

	var problems []string
	for _, p := range []*pb.Peer{req.GetSourcePeer(), req.GetDestinationPeer()} {
		if p == nil {
			continue
		}
		if err := s.cleanupPeer(ctx, p, flowJobName, opts); err != nil {
			log.Warn("cleanup failed", "peer", p.GetName(), "error", err)
			problems = append(problems, err.Error())
		}
	}

	if flow != nil {
		if err := s.store.UpdateFlowState(ctx, flow.Name, catalog.FlowStateShutdown); err != nil {
			log.Warn("failed to mark flow as shut down", "error", err)
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		return &pb.ShutdownResponse{Ok: false, ErrorMessage: strings.Join(problems, "; ")}, nil
	}

	log.Info("flow shut down")
	return &pb.ShutdownResponse{Ok: true}, nil
}

// terminateWorkflow stops the workflow and resolves the flow it runs, along
// with the flow's catalog entry when there is one. A workflow this process
// does not track, for instance after a restart, counts as already terminated
// when the catalog records it as the flow's workflow.
func (s *FlowServiceServer) terminateWorkflow(ctx context.Context, workflowID, flowJobName string) (string, *catalog.Flow, error) {
	err := s.registry.Terminate(workflowID, flowJobName)
	switch {
	case err == nil:
		if flowJobName == "" {
			wf, err := s.registry.Get(workflowID)
			if err != nil {
				return "", nil, err
			}
			flowJobName = wf.FlowJobName
		}
		flow, err := s.store.GetFlow(ctx, flowJobName)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				s.logger.Warn("failed to read flow from catalog", "flowJobName", flowJobName, "error", err)
			}
			return flowJobName, nil, nil
		}
		return flowJobName, flow, nil

	case stderrors.Is(err, errors.ErrWorkflowNotFound):
		flow, lookupErr := s.flowOfWorkflow(ctx, workflowID, flowJobName)
		if lookupErr != nil {
			s.logger.Warn("failed to read flow from catalog", "workflowId", workflowID, "error", lookupErr)
		}
		if flow == nil {
			return "", nil, err
		}
		s.logger.Info("workflow not tracked, using catalog entry", "workflowId", workflowID, "flowJobName", flow.Name)
		return flow.Name, flow, nil

	default:
		return "", nil, err
	}
}

// flowOfWorkflow returns the catalog flow whose recorded workflow is
// workflowID, or nil when there is none.
func (s *FlowServiceServer) flowOfWorkflow(ctx context.Context, workflowID, flowJobName string) (*catalog.Flow, error) {
	if workflowID == "" {
		return nil, nil
	}
	if flowJobName != "" {
		flow, err := s.store.GetFlow(ctx, flowJobName)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, nil
			}
			return nil, err
		}
		if flow.WorkflowID != workflowID {
			return nil, nil
		}
		return flow, nil
	}

	flows, err := s.store.ListFlows(ctx)
	if err != nil {
		return nil, err
	}
	for i := range flows {
		if flows[i].WorkflowID == workflowID {
			return &flows[i], nil
		}
	}
	return nil, nil
}

func (s *FlowServiceServer) MirrorStatus(ctx context.Context, req *pb.MirrorStatusRequest) (*pb.MirrorStatusResponse, error) {
	log := s.logger.WithFields("operation", "MirrorStatus", "flowJobName", req.GetFlowJobName())

	if err := s.auth.Authorized(ctx, auth.MirrorStatusOp); err != nil {
		log.Warn("authorization failed", "error", err)
		return nil, err
	}

	resp, err := s.monitor.MirrorStatus(ctx, req.GetFlowJobName())
	if err != nil {
		errors.LogError(log, err, "failed to read mirror status")
		return nil, s.convertErrorToGRPCStatus(err)
	}
	return resp, nil
}

// checkPeer validates the peer and, when enabled, probes it. Peer types
// without a connector pass on structure alone.
func (s *FlowServiceServer) checkPeer(ctx context.Context, peer *pb.Peer) error {
	if err := connectors.ValidatePeer(peer); err != nil {
		return err
	}
	if !s.validation.Connectivity || s.factory == nil {
		return nil
	}

	if s.validation.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.validation.Timeout)
		defer cancel()
	}

	conn, err := s.factory.Open(ctx, peer)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnsupportedPeer) {
			return nil
		}
		return err
	}
	defer func() { _ = conn.Close() }()

	return conn.Ping(ctx)
}

func (s *FlowServiceServer) cleanupPeer(ctx context.Context, peer *pb.Peer, flowJobName string, opts connectors.CleanupOptions) error {
	if s.factory == nil {
		return nil
	}
	conn, err := s.factory.Open(ctx, peer)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnsupportedPeer) {
			s.logger.Debug("no cleanup for peer type", "peer", peer.GetName(), "type", peer.GetType().String())
			return nil
		}
		return err
	}
	defer func() { _ = conn.Close() }()

	return conn.Cleanup(ctx, flowJobName, opts)
}

func (s *FlowServiceServer) recordFlow(ctx context.Context, flow catalog.Flow) error {
	return errors.WrapFlowError(flow.Name, "record", s.store.CreateFlow(ctx, flow))
}

func (s *FlowServiceServer) abandonWorkflow(wf workflow.Workflow, log *logger.Logger) {
	if err := s.registry.Terminate(wf.ID, wf.FlowJobName); err != nil {
		log.Warn("failed to terminate abandoned workflow", "workflowId", wf.ID, "error", err)
	}
}

func validateCDCConfig(cfg *pb.FlowConnectionConfigs) error {
	if cfg == nil {
		return errors.NewInvalidFlowConfigError("", "connection_configs is required")
	}
	name := cfg.GetFlowJobName()

	var problems []string
	if name == "" {
		problems = append(problems, "flow_job_name is required")
	}
	problems = append(problems, peerProblems("source", cfg.GetSource())...)
	problems = append(problems, peerProblems("destination", cfg.GetDestination())...)
	if len(cfg.GetTableMappings()) == 0 {
		problems = append(problems, "at least one table mapping is required")
	}
	for i, m := range cfg.GetTableMappings() {
		if m.GetSourceTableIdentifier() == "" || m.GetDestinationTableIdentifier() == "" {
			problems = append(problems, "table mapping "+strconv.Itoa(i)+" needs source and destination tables")
		}
	}

	if len(problems) > 0 {
		return errors.NewInvalidFlowConfigError(name, strings.Join(problems, "; "))
	}
	return nil
}

func validateQRepConfig(cfg *pb.QRepConfig) error {
	if cfg == nil {
		return errors.NewInvalidFlowConfigError("", "qrep_config is required")
	}
	name := cfg.GetFlowJobName()

	var problems []string
	if name == "" {
		problems = append(problems, "flow_job_name is required")
	}
	problems = append(problems, peerProblems("source_peer", cfg.GetSourcePeer())...)
	problems = append(problems, peerProblems("destination_peer", cfg.GetDestinationPeer())...)
	if strings.TrimSpace(cfg.GetQuery()) == "" {
		problems = append(problems, "query is required")
	}
	if cfg.GetDestinationTableIdentifier() == "" {
		problems = append(problems, "destination_table_identifier is required")
	}

	if len(problems) > 0 {
		return errors.NewInvalidFlowConfigError(name, strings.Join(problems, "; "))
	}
	return nil
}

func peerProblems(field string, peer *pb.Peer) []string {
	if peer == nil {
		return []string{field + " is required"}
	}
	if err := connectors.ValidatePeer(peer); err != nil {
		return []string{field + ": " + err.Error()}
	}
	return nil
}
