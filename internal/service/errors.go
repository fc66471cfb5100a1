package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is().
var (
	// ErrSeedUnavailable indicates the seed catalog could not be read
	// during bootstrap, so neither a snapshot nor a seed import could
	// populate the graph.
	ErrSeedUnavailable = errors.New("seed catalog unavailable")
)

// ServiceError wraps unexpected errors from a service operation with
// context about what failed.
type ServiceError struct {
	// Service is the service that failed (e.g. "catalog", "study")
	Service string
	// Operation is the operation that failed (e.g. "bootstrap", "record_review")
	Operation string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
