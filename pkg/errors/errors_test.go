package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestPeerError(t *testing.T) {
	originalErr := errors.New("connection refused")
	peerErr := &PeerError{
		Peer:      "pg_prod",
		Operation: "validate",
		Err:       originalErr,
	}

	expectedMsg := "peer pg_prod: operation validate: connection refused"
	if peerErr.Error() != expectedMsg {
		t.Errorf("PeerError.Error() = %v, want %v", peerErr.Error(), expectedMsg)
	}
	if unwrapped := peerErr.Unwrap(); unwrapped != originalErr {
		t.Errorf("PeerError.Unwrap() = %v, want %v", unwrapped, originalErr)
	}
}

func TestFlowError(t *testing.T) {
	flowErr := &FlowError{
		FlowJobName: "orders_mirror",
		Operation:   "shutdown",
		Err:         ErrWorkflowNotFound,
	}

	expectedMsg := "flow orders_mirror: operation shutdown: workflow not found"
	if flowErr.Error() != expectedMsg {
		t.Errorf("FlowError.Error() = %v, want %v", flowErr.Error(), expectedMsg)
	}
	if !errors.Is(flowErr, ErrWorkflowNotFound) {
		t.Error("FlowError should wrap ErrWorkflowNotFound")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		expected string
	}{
		{"with field", &ConfigError{Component: "catalog", Field: "dsn", Err: ErrInvalidConfig}, "config catalog.dsn: invalid configuration"},
		{"without field", &ConfigError{Component: "server", Err: ErrInvalidConfig}, "config server: invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("ConfigError.Error() = %v, want %v", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestWrapReturnsNilForNil(t *testing.T) {
	if WrapPeerError("p", "op", nil) != nil {
		t.Error("WrapPeerError(nil) should be nil")
	}
	if WrapFlowError("f", "op", nil) != nil {
		t.Error("WrapFlowError(nil) should be nil")
	}
	if WrapCatalogError("peers", "op", nil) != nil {
		t.Error("WrapCatalogError(nil) should be nil")
	}
	if WrapConfigError("c", "f", nil) != nil {
		t.Error("WrapConfigError(nil) should be nil")
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"peer not found", NewPeerNotFoundError("pg"), true},
		{"flow not found", NewFlowNotFoundError("mirror"), true},
		{"wrapped workflow not found", fmt.Errorf("terminate: %w", ErrWorkflowNotFound), true},
		{"run not found", ErrRunNotFound, true},
		{"conflict", ErrPeerAlreadyExists, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsNotFoundError(tt.err); result != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewInvalidPeerError("pg", "host is required")) {
		t.Error("invalid peer should be a validation error")
	}
	if !IsValidationError(NewInvalidFlowConfigError("m", "source peer is required")) {
		t.Error("invalid flow config should be a validation error")
	}
	if IsValidationError(ErrPeerUnreachable) {
		t.Error("unreachable peer is not a validation error")
	}
}

func TestIsTimeoutAndContextErrors(t *testing.T) {
	if !IsTimeoutError(context.DeadlineExceeded) {
		t.Error("deadline exceeded should count as timeout")
	}
	if !IsContextError(fmt.Errorf("ping: %w", context.Canceled)) {
		t.Error("wrapped cancel should be a context error")
	}
	if IsContextError(ErrTimeout) {
		t.Error("ErrTimeout is not a context error")
	}
}

func TestGetPeerNameAndFlowJobName(t *testing.T) {
	err := fmt.Errorf("outer: %w", WrapPeerError("sf_wh", "connect", ErrPeerUnreachable))
	peer, ok := GetPeerName(err)
	if !ok || peer != "sf_wh" {
		t.Errorf("GetPeerName() = %q, %v", peer, ok)
	}
	if _, ok := GetFlowJobName(err); ok {
		t.Error("GetFlowJobName should not match a peer error")
	}

	flow, ok := GetFlowJobName(NewFlowNotFoundError("orders"))
	if !ok || flow != "orders" {
		t.Errorf("GetFlowJobName() = %q, %v", flow, ok)
	}
}

func TestErrorChain(t *testing.T) {
	inner := WrapCatalogError("flows", "insert", ErrFlowAlreadyExists)
	outer := WrapFlowError("orders", "create", inner)

	if !errors.Is(outer, ErrFlowAlreadyExists) {
		t.Error("error chain should reach the sentinel")
	}
	if !IsCatalogError(outer) || !IsFlowError(outer) {
		t.Error("both typed errors should be found in the chain")
	}
	if !IsConflictError(outer) {
		t.Error("duplicate flow should be a conflict")
	}
}

func BenchmarkIsNotFoundError(b *testing.B) {
	err := NewFlowNotFoundError("bench")
	for i := 0; i < b.N; i++ {
		_ = IsNotFoundError(err)
	}
}
