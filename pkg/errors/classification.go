package errors

import (
	"context"
	"errors"
)

// ErrorCategory groups errors by the kind of problem they represent.
type ErrorCategory string

const (
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryValidation    ErrorCategory = "validation"
	CategoryConnectivity  ErrorCategory = "connectivity"
	CategoryCatalog       ErrorCategory = "catalog"
	CategoryPermission    ErrorCategory = "permission"
	CategoryTimeout       ErrorCategory = "timeout"
	CategoryNotFound      ErrorCategory = "not_found"
	CategoryConflict      ErrorCategory = "conflict"
	CategoryRateLimit     ErrorCategory = "rate_limit"
	CategoryUnknown       ErrorCategory = "unknown"
)

type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "critical"
	SeverityHigh     ErrorSeverity = "high"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityLow      ErrorSeverity = "low"
)

// ClassifiedError carries the category, severity and retry hint of an error
// along with the message that is safe to hand back to a caller.
type ClassifiedError struct {
	Err       error
	Category  ErrorCategory
	Severity  ErrorSeverity
	Retryable bool
	UserMsg   string
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// ClassifyError classifies an error based on its type and wrapped sentinels.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryTimeout,
			Severity: SeverityLow,
			UserMsg:  "Operation was canceled.",
		}

	case IsTimeoutError(err):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryTimeout,
			Severity:  SeverityMedium,
			Retryable: true,
			UserMsg:   "Operation timed out. Please try again.",
		}

	case errors.Is(err, ErrRateLimited):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryRateLimit,
			Severity:  SeverityLow,
			Retryable: true,
			UserMsg:   "Too many requests. Please slow down.",
		}

	case IsNotFoundError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryNotFound,
			Severity: SeverityLow,
			UserMsg:  "Requested peer or flow not found.",
		}

	case IsConflictError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryConflict,
			Severity: SeverityLow,
			UserMsg:  "A peer or flow with that name already exists.",
		}

	case IsValidationError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryValidation,
			Severity: SeverityLow,
			UserMsg:  "The request is invalid. Please check the peer or flow configuration.",
		}

	case errors.Is(err, ErrPeerUnreachable):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryConnectivity,
			Severity:  SeverityMedium,
			Retryable: true,
			UserMsg:   "Could not reach the peer. Please check connectivity and credentials.",
		}

	case IsPermissionError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryPermission,
			Severity: SeverityHigh,
			UserMsg:  "Permission denied. Please check your access rights.",
		}

	case IsConfigError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryConfiguration,
			Severity: SeverityHigh,
			UserMsg:  "Configuration error. Please check your configuration settings.",
		}

	case IsCatalogError(err), errors.Is(err, ErrCatalogUnavailable):
		return &ClassifiedError{
			Err:       err,
			Category:  CategoryCatalog,
			Severity:  SeverityHigh,
			Retryable: true,
			UserMsg:   "Catalog operation failed. Please try again.",
		}

	default:
		return &ClassifiedError{
			Err:      err,
			Category: CategoryUnknown,
			Severity: SeverityMedium,
			UserMsg:  "An unexpected error occurred.",
		}
	}
}

func ShouldRetry(err error) bool {
	classified := ClassifyError(err)
	if classified == nil {
		return false
	}
	return classified.Retryable
}

func GetSeverity(err error) ErrorSeverity {
	classified := ClassifyError(err)
	if classified == nil {
		return SeverityLow
	}
	return classified.Severity
}

func GetCategory(err error) ErrorCategory {
	classified := ClassifyError(err)
	if classified == nil {
		return CategoryUnknown
	}
	return classified.Category
}

// GetUserMessage returns the caller-facing message for err.
func GetUserMessage(err error) string {
	classified := ClassifyError(err)
	if classified == nil {
		return "An error occurred."
	}
	return classified.UserMsg
}

// FormatErrorForLogging flattens err into key/value pairs for the structured logger.
func FormatErrorForLogging(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	classified := ClassifyError(err)
	result := map[string]interface{}{
		"error":     err.Error(),
		"category":  string(classified.Category),
		"severity":  string(classified.Severity),
		"retryable": classified.Retryable,
	}

	if peer, ok := GetPeerName(err); ok {
		result["peer"] = peer
	}
	if flow, ok := GetFlowJobName(err); ok {
		result["flow_job_name"] = flow
	}

	return result
}

// LogError logs err together with its classification
func LogError(logger interface{ Error(string, ...interface{}) }, err error, msg string) {
	if err == nil {
		return
	}

	logData := FormatErrorForLogging(err)
	args := make([]interface{}, 0, len(logData)*2)
	for k, v := range logData {
		args = append(args, k, v)
	}

	logger.Error(msg, args...)
}
