package server

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/peerflow/auth"
	"github.com/ehsaniara/peerflow/internal/peerflow/auth/authfakes"
	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/internal/peerflow/monitor"
	"github.com/ehsaniara/peerflow/internal/peerflow/workflow"
	"github.com/ehsaniara/peerflow/pkg/config"
	"github.com/ehsaniara/peerflow/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testEnv struct {
	server   *FlowServiceServer
	auth     *authfakes.FakeGRPCAuthorization
	store    *catalog.MemoryStore
	registry *workflow.Registry
	factory  *fakeFactory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		auth:     &authfakes.FakeGRPCAuthorization{},
		store:    catalog.NewMemoryStore(),
		registry: workflow.NewRegistry(),
		factory:  newFakeFactory(),
	}
	env.auth.AuthorizedReturns(nil)
	t.Cleanup(env.registry.Close)

	env.server = NewFlowServiceServer(env.auth, Components{
		Store:    env.store,
		Monitor:  monitor.NewCatalogMirrorMonitor(env.store),
		Registry: env.registry,
		Factory:  env.factory,
	}, config.ValidationConfig{Connectivity: true})
	return env
}

func TestNewFlowServiceServer(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, env.auth, env.server.auth)
	assert.Equal(t, env.registry, env.server.registry)
	assert.True(t, env.server.validation.Connectivity)
}

func TestValidatePeer(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		env := newTestEnv(t)
		resp, err := env.server.ValidatePeer(ctx, &pb.ValidatePeerRequest{Peer: postgresPeer("pg")})
		require.NoError(t, err)
		assert.Equal(t, pb.ValidatePeerStatus_VALID, resp.GetStatus())
		assert.Empty(t, resp.GetMessage())
		assert.Equal(t, 1, env.factory.connector("pg").closed)

		_, op := env.auth.AuthorizedArgsForCall(0)
		assert.Equal(t, auth.ValidatePeerOp, op)
	})

	t.Run("nil peer", func(t *testing.T) {
		env := newTestEnv(t)
		resp, err := env.server.ValidatePeer(ctx, &pb.ValidatePeerRequest{})
		require.NoError(t, err)
		assert.Equal(t, pb.ValidatePeerStatus_INVALID, resp.GetStatus())
		assert.Contains(t, resp.GetMessage(), "peer is required")
	})

	t.Run("unreachable", func(t *testing.T) {
		env := newTestEnv(t)
		env.factory.connector("pg").pingErr = errors.WrapPeerError("pg", "ping", errors.ErrPeerUnreachable)

		resp, err := env.server.ValidatePeer(ctx, &pb.ValidatePeerRequest{Peer: postgresPeer("pg")})
		require.NoError(t, err)
		assert.Equal(t, pb.ValidatePeerStatus_INVALID, resp.GetStatus())
		assert.Contains(t, resp.GetMessage(), "peer unreachable")
	})

	t.Run("no connector for type", func(t *testing.T) {
		env := newTestEnv(t)
		resp, err := env.server.ValidatePeer(ctx, &pb.ValidatePeerRequest{Peer: s3Peer("lake")})
		require.NoError(t, err)
		assert.Equal(t, pb.ValidatePeerStatus_VALID, resp.GetStatus())
	})

	t.Run("connectivity disabled", func(t *testing.T) {
		env := newTestEnv(t)
		env.server.validation.Connectivity = false
		env.factory.connector("pg").pingErr = errors.ErrPeerUnreachable

		resp, err := env.server.ValidatePeer(ctx, &pb.ValidatePeerRequest{Peer: postgresPeer("pg")})
		require.NoError(t, err)
		assert.Equal(t, pb.ValidatePeerStatus_VALID, resp.GetStatus())
	})

	t.Run("unauthorized", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.AuthorizedReturns(status.Error(codes.PermissionDenied, "nope"))

		_, err := env.server.ValidatePeer(ctx, &pb.ValidatePeerRequest{Peer: postgresPeer("pg")})
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestCreatePeer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.server.CreatePeer(ctx, &pb.CreatePeerRequest{Peer: postgresPeer("pg")})
	require.NoError(t, err)
	assert.Equal(t, pb.CreatePeerStatus_CREATED, resp.GetStatus())

	stored, err := env.store.GetPeer(ctx, "pg")
	require.NoError(t, err)
	assert.Equal(t, "localhost", stored.GetPostgresConfig().GetHost())

	resp, err = env.server.CreatePeer(ctx, &pb.CreatePeerRequest{Peer: postgresPeer("pg")})
	require.NoError(t, err)
	assert.Equal(t, pb.CreatePeerStatus_FAILED, resp.GetStatus())
	assert.Contains(t, resp.GetMessage(), "already exists")

	invalid := postgresPeer("broken")
	invalid.GetPostgresConfig().Host = ""
	resp, err = env.server.CreatePeer(ctx, &pb.CreatePeerRequest{Peer: invalid})
	require.NoError(t, err)
	assert.Equal(t, pb.CreatePeerStatus_FAILED, resp.GetStatus())
	assert.Contains(t, resp.GetMessage(), "host is required")

	_, err = env.store.GetPeer(ctx, "broken")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateCDCFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.GetWorflowId(), "orders-peerflow-"), resp.GetWorflowId())

	flow, err := env.store.GetFlow(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, catalog.FlowKindCDC, flow.Kind)
	assert.Equal(t, resp.GetWorflowId(), flow.WorkflowID)
	assert.Equal(t, "pg_source", flow.SourcePeer)
	assert.Equal(t, "pg_target", flow.DestPeer)

	_, err = env.store.GetCDCFlow(ctx, "orders")
	require.NoError(t, err)

	wf, err := env.registry.GetByFlow("orders")
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusRunning, wf.Status)

	_, err = env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{ConnectionConfigs: cdcConfig("orders")})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestCreateCDCFlow_WithoutCatalogEntry(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{ConnectionConfigs: cdcConfig("orders")})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetWorflowId())

	_, err = env.store.GetFlow(ctx, "orders")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateCDCFlow_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *pb.FlowConnectionConfigs
		errMsg string
	}{
		{"nil config", nil, "connection_configs is required"},
		{"missing name", func() *pb.FlowConnectionConfigs { c := cdcConfig(""); return c }(), "flow_job_name is required"},
		{"missing source", func() *pb.FlowConnectionConfigs { c := cdcConfig("m"); c.Source = nil; return c }(), "source is required"},
		{"no tables", func() *pb.FlowConnectionConfigs { c := cdcConfig("m"); c.TableMappings = nil; return c }(), "at least one table mapping"},
		{"half mapping", func() *pb.FlowConnectionConfigs {
			c := cdcConfig("m")
			c.TableMappings[0].DestinationTableIdentifier = ""
			return c
		}(), "table mapping 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.server.CreateCDCFlow(context.Background(), &pb.CreateCDCFlowRequest{ConnectionConfigs: tt.cfg})
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Contains(t, status.Convert(err).Message(), tt.errMsg)
			assert.Empty(t, env.registry.List())
		})
	}
}

func TestCreateCDCFlow_CatalogConflictReleasesWorkflow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.CreateFlow(ctx, catalog.Flow{Name: "orders", Kind: catalog.FlowKindCDC, WorkflowID: "old"}))

	_, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = env.registry.GetByFlow("orders")
	assert.True(t, errors.IsNotFoundError(err), "workflow should not stay running")
}

func TestCreateQRepFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.server.CreateQRepFlow(ctx, &pb.CreateQRepFlowRequest{
		QrepConfig:         qrepConfig("orders_copy"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.GetWorflowId(), "orders_copy-qrepflow-"), resp.GetWorflowId())

	flow, err := env.store.GetFlow(ctx, "orders_copy")
	require.NoError(t, err)
	assert.Equal(t, catalog.FlowKindQRep, flow.Kind)
	assert.Equal(t, uint32(5), flow.QRepConfig.GetWaitBetweenBatchesSeconds())

	cfg := qrepConfig("explicit_wait")
	cfg.WaitBetweenBatchesSeconds = 60
	_, err = env.server.CreateQRepFlow(ctx, &pb.CreateQRepFlowRequest{QrepConfig: cfg, CreateCatalogEntry: true})
	require.NoError(t, err)
	flow, err = env.store.GetFlow(ctx, "explicit_wait")
	require.NoError(t, err)
	assert.Equal(t, uint32(60), flow.QRepConfig.GetWaitBetweenBatchesSeconds())
}

func TestCreateQRepFlow_InvalidConfig(t *testing.T) {
	env := newTestEnv(t)

	cfg := qrepConfig("orders_copy")
	cfg.Query = "  "
	cfg.DestinationTableIdentifier = ""

	_, err := env.server.CreateQRepFlow(context.Background(), &pb.CreateQRepFlowRequest{QrepConfig: cfg})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "query is required")
	assert.Contains(t, status.Convert(err).Message(), "destination_table_identifier is required")
}

func TestShutdownFlow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)

	resp, err := env.server.ShutdownFlow(ctx, &pb.ShutdownRequest{
		WorkflowId:      created.GetWorflowId(),
		FlowJobName:     "orders",
		SourcePeer:      postgresPeer("pg_source"),
		DestinationPeer: s3Peer("lake"),
	})
	require.NoError(t, err)
	assert.True(t, resp.GetOk(), resp.GetErrorMessage())

	source := env.factory.connector("pg_source")
	require.Len(t, source.cleanups, 1)
	assert.Equal(t, "orders", source.cleanups[0].flowJobName)
	assert.Equal(t, "pub_orders", source.cleanups[0].opts.PublicationName)
	assert.Equal(t, "slot_orders", source.cleanups[0].opts.ReplicationSlotName)
	assert.Equal(t, 1, source.closed)

	wf, err := env.registry.Get(created.GetWorflowId())
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusTerminated, wf.Status)

	flow, err := env.store.GetFlow(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, catalog.FlowStateShutdown, flow.State)
}

func TestShutdownFlow_WithoutFlowName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)

	resp, err := env.server.ShutdownFlow(ctx, &pb.ShutdownRequest{
		WorkflowId: created.GetWorflowId(),
		SourcePeer: postgresPeer("pg_source"),
	})
	require.NoError(t, err)
	assert.True(t, resp.GetOk(), resp.GetErrorMessage())

	source := env.factory.connector("pg_source")
	require.Len(t, source.cleanups, 1)
	assert.Equal(t, "orders", source.cleanups[0].flowJobName)
	assert.Equal(t, "pub_orders", source.cleanups[0].opts.PublicationName)
	assert.Equal(t, "slot_orders", source.cleanups[0].opts.ReplicationSlotName)

	flow, err := env.store.GetFlow(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, catalog.FlowStateShutdown, flow.State)
}

// restartedServer serves the same catalog and peers with an empty workflow
// registry, the way a new server process would.
func restartedServer(t *testing.T, env *testEnv) *FlowServiceServer {
	t.Helper()
	registry := workflow.NewRegistry()
	t.Cleanup(registry.Close)
	return NewFlowServiceServer(env.auth, Components{
		Store:    env.store,
		Monitor:  monitor.NewCatalogMirrorMonitor(env.store),
		Registry: registry,
		Factory:  env.factory,
	}, config.ValidationConfig{})
}

func TestShutdownFlow_AfterRestart(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		flowJobName string
	}{
		{"with flow name", "orders"},
		{"without flow name", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			created, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
				ConnectionConfigs:  cdcConfig("orders"),
				CreateCatalogEntry: true,
			})
			require.NoError(t, err)

			restarted := restartedServer(t, env)
			resp, err := restarted.ShutdownFlow(ctx, &pb.ShutdownRequest{
				WorkflowId:  created.GetWorflowId(),
				FlowJobName: tt.flowJobName,
				SourcePeer:  postgresPeer("pg_source"),
			})
			require.NoError(t, err)
			assert.True(t, resp.GetOk(), resp.GetErrorMessage())

			source := env.factory.connector("pg_source")
			require.Len(t, source.cleanups, 1)
			assert.Equal(t, "orders", source.cleanups[0].flowJobName)
			assert.Equal(t, "slot_orders", source.cleanups[0].opts.ReplicationSlotName)

			flow, err := env.store.GetFlow(ctx, "orders")
			require.NoError(t, err)
			assert.Equal(t, catalog.FlowStateShutdown, flow.State)
		})
	}

	t.Run("workflow not recorded for the flow", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
			ConnectionConfigs:  cdcConfig("orders"),
			CreateCatalogEntry: true,
		})
		require.NoError(t, err)

		restarted := restartedServer(t, env)
		resp, err := restarted.ShutdownFlow(ctx, &pb.ShutdownRequest{
			WorkflowId:  "orders-peerflow-stale",
			FlowJobName: "orders",
			SourcePeer:  postgresPeer("pg_source"),
		})
		require.NoError(t, err)
		assert.False(t, resp.GetOk())
		assert.Contains(t, resp.GetErrorMessage(), "workflow not found")
		assert.Empty(t, env.factory.connector("pg_source").cleanups)

		flow, err := env.store.GetFlow(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, catalog.FlowStateRunning, flow.State)
	})
}

func TestCreateCDCFlow_AfterShutdown(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)

	resp, err := env.server.ShutdownFlow(ctx, &pb.ShutdownRequest{WorkflowId: first.GetWorflowId(), FlowJobName: "orders"})
	require.NoError(t, err)
	require.True(t, resp.GetOk(), resp.GetErrorMessage())

	second, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.GetWorflowId(), second.GetWorflowId())

	flow, err := env.store.GetFlow(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, second.GetWorflowId(), flow.WorkflowID)
	assert.Equal(t, catalog.FlowStateRunning, flow.State)
}

func TestShutdownFlow_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown workflow", func(t *testing.T) {
		env := newTestEnv(t)
		resp, err := env.server.ShutdownFlow(ctx, &pb.ShutdownRequest{WorkflowId: "missing", FlowJobName: "orders"})
		require.NoError(t, err)
		assert.False(t, resp.GetOk())
		assert.Contains(t, resp.GetErrorMessage(), "workflow not found")
	})

	t.Run("workflow of another flow", func(t *testing.T) {
		env := newTestEnv(t)
		created, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{ConnectionConfigs: cdcConfig("orders")})
		require.NoError(t, err)

		resp, err := env.server.ShutdownFlow(ctx, &pb.ShutdownRequest{WorkflowId: created.GetWorflowId(), FlowJobName: "users"})
		require.NoError(t, err)
		assert.False(t, resp.GetOk())
		assert.Contains(t, resp.GetErrorMessage(), "does not belong")
	})

	t.Run("cleanup error", func(t *testing.T) {
		env := newTestEnv(t)
		created, err := env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
			ConnectionConfigs:  cdcConfig("orders"),
			CreateCatalogEntry: true,
		})
		require.NoError(t, err)
		env.factory.connector("pg_target").cleanupErr = stderrors.New("raw table is locked")

		resp, err := env.server.ShutdownFlow(ctx, &pb.ShutdownRequest{
			WorkflowId:      created.GetWorflowId(),
			FlowJobName:     "orders",
			SourcePeer:      postgresPeer("pg_source"),
			DestinationPeer: postgresPeer("pg_target"),
		})
		require.NoError(t, err)
		assert.False(t, resp.GetOk())
		assert.Contains(t, resp.GetErrorMessage(), "raw table is locked")

		flow, err := env.store.GetFlow(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, catalog.FlowStateShutdown, flow.State)
	})
}

func TestMirrorStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.server.MirrorStatus(ctx, &pb.MirrorStatusRequest{FlowJobName: "missing"})
	require.NoError(t, err)
	assert.Equal(t, "missing", resp.GetFlowJobName())
	assert.Contains(t, resp.GetErrorMessage(), "not found")
	assert.Nil(t, resp.GetStatus())

	_, err = env.server.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cdcConfig("orders"),
		CreateCatalogEntry: true,
	})
	require.NoError(t, err)

	resp, err = env.server.MirrorStatus(ctx, &pb.MirrorStatusRequest{FlowJobName: "orders"})
	require.NoError(t, err)
	assert.Empty(t, resp.GetErrorMessage())
	require.NotNil(t, resp.GetCdcStatus())
	assert.Equal(t, "orders", resp.GetCdcStatus().GetConfig().GetFlowJobName())
	assert.Empty(t, resp.GetCdcStatus().GetCdcSyncs())
}

func TestConvertErrorToGRPCStatus(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"nil", nil, codes.OK},
		{"context", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"validation", errors.NewInvalidFlowConfigError("m", "bad"), codes.InvalidArgument},
		{"not found", errors.NewFlowNotFoundError("m"), codes.NotFound},
		{"conflict", errors.WrapFlowError("m", "start", errors.ErrFlowAlreadyExists), codes.AlreadyExists},
		{"permission", errors.ErrPermissionDenied, codes.PermissionDenied},
		{"rate limit", errors.ErrRateLimited, codes.ResourceExhausted},
		{"unreachable", errors.WrapPeerError("pg", "ping", errors.ErrPeerUnreachable), codes.Unavailable},
		{"catalog", errors.WrapCatalogError("flows", "insert", stderrors.New("reset")), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(env.server.convertErrorToGRPCStatus(tt.err)))
		})
	}
}
