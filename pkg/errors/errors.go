// Package errors provides the error vocabulary shared by the flow service,
// the catalog and the CLI: sentinel errors, typed errors carrying the peer or
// flow they relate to, and classification helpers.
package errors

import (
	"context"
	"errors"
	"fmt"
)

var (
	// Peer errors
	ErrPeerNotFound      = errors.New("peer not found")
	ErrPeerAlreadyExists = errors.New("peer already exists")
	ErrInvalidPeer       = errors.New("invalid peer configuration")
	ErrPeerUnreachable   = errors.New("peer unreachable")
	ErrUnsupportedPeer   = errors.New("unsupported peer type")

	// Flow errors
	ErrFlowNotFound      = errors.New("flow not found")
	ErrFlowAlreadyExists = errors.New("flow already exists")
	ErrInvalidFlowConfig = errors.New("invalid flow configuration")
	ErrWorkflowNotFound  = errors.New("workflow not found")
	ErrWorkflowMismatch  = errors.New("workflow does not belong to flow")
	ErrRunNotFound       = errors.New("qrep run not found")
	ErrBatchNotFound     = errors.New("cdc batch not found")

	// Catalog errors
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// System errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrTimeout          = errors.New("operation timed out")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrRateLimited      = errors.New("rate limit exceeded")
)

// PeerError is an error related to a named peer
type PeerError struct {
	Peer      string
	Operation string
	Err       error
}

func (e *PeerError) Error() string {
	return fmt.Sprintf("peer %s: operation %s: %v", e.Peer, e.Operation, e.Err)
}

func (e *PeerError) Unwrap() error {
	return e.Err
}

// FlowError is an error related to a flow job
type FlowError struct {
	FlowJobName string
	Operation   string
	Err         error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("flow %s: operation %s: %v", e.FlowJobName, e.Operation, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// CatalogError is an error raised by a catalog backend
type CatalogError struct {
	Table     string
	Operation string
	Err       error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: operation %s: %v", e.Table, e.Operation, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Component string
	Field     string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s.%s: %v", e.Component, e.Field, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func WrapPeerError(peer, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &PeerError{Peer: peer, Operation: operation, Err: err}
}

func WrapFlowError(flowJobName, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &FlowError{FlowJobName: flowJobName, Operation: operation, Err: err}
}

func WrapCatalogError(table, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &CatalogError{Table: table, Operation: operation, Err: err}
}

func WrapConfigError(component, field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Component: component, Field: field, Err: err}
}

func IsPeerError(err error) bool {
	var pe *PeerError
	return errors.As(err, &pe)
}

func IsFlowError(err error) bool {
	var fe *FlowError
	return errors.As(err, &fe)
}

func IsCatalogError(err error) bool {
	var ce *CatalogError
	return errors.As(err, &ce)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPeer) ||
		errors.Is(err, ErrInvalidFlowConfig) ||
		errors.Is(err, ErrUnsupportedPeer) ||
		errors.Is(err, ErrWorkflowMismatch)
}

func IsConflictError(err error) bool {
	return errors.Is(err, ErrPeerAlreadyExists) || errors.Is(err, ErrFlowAlreadyExists)
}

func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrPeerNotFound) ||
		errors.Is(err, ErrFlowNotFound) ||
		errors.Is(err, ErrWorkflowNotFound) ||
		errors.Is(err, ErrRunNotFound) ||
		errors.Is(err, ErrBatchNotFound)
}

func IsPermissionError(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func GetPeerName(err error) (string, bool) {
	var pe *PeerError
	if errors.As(err, &pe) {
		return pe.Peer, true
	}
	return "", false
}

func GetFlowJobName(err error) (string, bool) {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.FlowJobName, true
	}
	return "", false
}

func NewPeerNotFoundError(peer string) error {
	return WrapPeerError(peer, "lookup", ErrPeerNotFound)
}

func NewFlowNotFoundError(flowJobName string) error {
	return WrapFlowError(flowJobName, "lookup", ErrFlowNotFound)
}

func NewInvalidPeerError(peer, reason string) error {
	return WrapPeerError(peer, "validate", fmt.Errorf("%w: %s", ErrInvalidPeer, reason))
}

func NewInvalidFlowConfigError(flowJobName, reason string) error {
	return WrapFlowError(flowJobName, "validate", fmt.Errorf("%w: %s", ErrInvalidFlowConfig, reason))
}

func NewConfigError(component, field string, err error) error {
	return WrapConfigError(component, field, fmt.Errorf("%w: %v", ErrInvalidConfig, err))
}

func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
