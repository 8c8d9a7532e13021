package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity does not exist upstream.
var ErrNotFound = errors.New("not found")

// DataAccessError wraps a store-level failure. Callers match the kind,
// not the cause; the cause is kept for logs.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access failed: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError creates a DataAccessError for the given operation.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}
