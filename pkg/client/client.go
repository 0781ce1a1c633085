package client

import (
	"context"
	"fmt"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/config"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type FlowClient struct {
	flowClient pb.FlowServiceClient
	conn       *grpc.ClientConn
}

// NewFlowClient dials the node with mTLS, or in plaintext when the node is
// marked insecure.
func NewFlowClient(node *config.Node) (*FlowClient, error) {
	if node == nil {
		return nil, fmt.Errorf("node configuration cannot be nil")
	}

	var creds credentials.TransportCredentials
	if node.Insecure {
		creds = insecure.NewCredentials()
	} else {
		tlsConfig, err := node.GetClientTLSConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		creds = credentials.NewTLS(tlsConfig)
	}

	conn, err := grpc.NewClient(
		node.Address,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server %s: %w", node.Address, err)
	}

	return NewFlowClientFromConn(conn), nil
}

// NewFlowClientFromConn wraps an existing connection; the client takes ownership of conn.
func NewFlowClientFromConn(conn *grpc.ClientConn) *FlowClient {
	return &FlowClient{
		flowClient: pb.NewFlowServiceClient(conn),
		conn:       conn,
	}
}

func (c *FlowClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *FlowClient) ValidatePeer(ctx context.Context, peer *pb.Peer) (*pb.ValidatePeerResponse, error) {
	return c.flowClient.ValidatePeer(ctx, &pb.ValidatePeerRequest{Peer: peer})
}

func (c *FlowClient) CreatePeer(ctx context.Context, peer *pb.Peer) (*pb.CreatePeerResponse, error) {
	return c.flowClient.CreatePeer(ctx, &pb.CreatePeerRequest{Peer: peer})
}

func (c *FlowClient) CreateCDCFlow(ctx context.Context, cfg *pb.FlowConnectionConfigs, createCatalogEntry bool) (*pb.CreateCDCFlowResponse, error) {
	return c.flowClient.CreateCDCFlow(ctx, &pb.CreateCDCFlowRequest{
		ConnectionConfigs:  cfg,
		CreateCatalogEntry: createCatalogEntry,
	})
}

func (c *FlowClient) CreateQRepFlow(ctx context.Context, cfg *pb.QRepConfig, createCatalogEntry bool) (*pb.CreateQRepFlowResponse, error) {
	return c.flowClient.CreateQRepFlow(ctx, &pb.CreateQRepFlowRequest{
		QrepConfig:         cfg,
		CreateCatalogEntry: createCatalogEntry,
	})
}

func (c *FlowClient) ShutdownFlow(ctx context.Context, req *pb.ShutdownRequest) (*pb.ShutdownResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.flowClient.ShutdownFlow(ctx, req)
	if err != nil {
		if s, ok := status.FromError(err); ok && s.Code() == codes.DeadlineExceeded {
			return nil, fmt.Errorf("timeout while shutting down flow %s: server may still be processing the request", req.GetFlowJobName())
		}
		return nil, err
	}
	return resp, nil
}

func (c *FlowClient) MirrorStatus(ctx context.Context, flowJobName string) (*pb.MirrorStatusResponse, error) {
	return c.flowClient.MirrorStatus(ctx, &pb.MirrorStatusRequest{FlowJobName: flowJobName})
}
