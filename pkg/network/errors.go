package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph operations.
var (
	ErrDuplicateElement = errors.New("duplicate element")
	ErrElementNotFound  = errors.New("element not found")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op    string // operation that failed, e.g. "AddElement"
	UID   string // offending element identifier
	Cause error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.UID, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *GraphError) Unwrap() error {
	return e.Cause
}
