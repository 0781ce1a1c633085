package auth

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ClientRole string

const (
	AdminRole   ClientRole = "admin"
	ViewerRole  ClientRole = "viewer"
	UnknownRole ClientRole = "unknown"
)

type Operation string

const (
	// Peer operations
	ValidatePeerOp Operation = "validate_peer"
	CreatePeerOp   Operation = "create_peer"

	// Mirror operations
	CreateCDCFlowOp  Operation = "create_cdc_flow"
	CreateQRepFlowOp Operation = "create_qrep_flow"
	ShutdownFlowOp   Operation = "shutdown_flow"
	MirrorStatusOp   Operation = "mirror_status"
)

//counterfeiter:generate . GRPCAuthorization
type GRPCAuthorization interface {
	Authorized(ctx context.Context, operation Operation) error
}

type grpcAuthorization struct {
}

// NewGRPCAuthorization derives the caller's role from the OU of its client certificate.
func NewGRPCAuthorization() GRPCAuthorization {
	return &grpcAuthorization{}
}

type allowAll struct{}

// NewAllowAllAuthorization is used when the server runs without TLS.
func NewAllowAllAuthorization() GRPCAuthorization {
	return allowAll{}
}

func (allowAll) Authorized(context.Context, Operation) error {
	return nil
}

func (s *grpcAuthorization) extractClientRole(ctx context.Context) (ClientRole, error) {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return UnknownRole, fmt.Errorf("no peer information found")
	}

	tlsInfo, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok {
		return UnknownRole, fmt.Errorf("no TLS information found")
	}

	if len(tlsInfo.State.PeerCertificates) == 0 {
		return UnknownRole, fmt.Errorf("no client certificate found")
	}

	clientCert := tlsInfo.State.PeerCertificates[0]

	for _, ou := range clientCert.Subject.OrganizationalUnit {
		switch strings.ToLower(ou) {
		case "admin":
			return AdminRole, nil
		case "viewer":
			return ViewerRole, nil
		}
	}

	return UnknownRole, nil
}

func (s *grpcAuthorization) isOperationAllowed(role ClientRole, operation Operation) bool {
	switch role {
	case AdminRole:
		return true
	case ViewerRole:
		// viewers may check peers and read mirror state, nothing that changes the catalog
		switch operation {
		case ValidatePeerOp, MirrorStatusOp:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

func (s *grpcAuthorization) Authorized(ctx context.Context, operation Operation) error {
	role, err := s.extractClientRole(ctx)
	if err != nil {
		return status.Errorf(codes.Unauthenticated, "failed to extract client role: %v", err)
	}

	if !s.isOperationAllowed(role, operation) {
		return status.Errorf(codes.PermissionDenied, "role %s is not allowed to perform operation %s", role, operation)
	}

	return nil
}
