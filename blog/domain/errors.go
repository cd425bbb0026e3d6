package domain

import (
	"errors"
	"fmt"
)

// DatabaseErrorKind classifies why a write could not be persisted.
type DatabaseErrorKind string

const (
	// ErrUnavailable means no usable connection exists: either no database
	// was configured, or the single connection attempt for this process
	// already failed.
	ErrUnavailable DatabaseErrorKind = "unavailable"

	// ErrWriteFailed means the store was reachable but the statement failed.
	ErrWriteFailed DatabaseErrorKind = "write_failed"

	// ErrNotFound means no row matched the requested identity.
	ErrNotFound DatabaseErrorKind = "not_found"
)

// DatabaseError is the typed outcome of a failed write. Callers branch on
// Kind, never on the error's text.
type DatabaseError struct {
	Kind DatabaseErrorKind
	Op   string
	Err  error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NewDatabaseError builds a DatabaseError for the given operation. err may
// be nil for kinds that carry no underlying cause.
func NewDatabaseError(kind DatabaseErrorKind, op string, err error) *DatabaseError {
	return &DatabaseError{Kind: kind, Op: op, Err: err}
}

// AsDatabaseError unwraps err into a *DatabaseError if one is present.
func AsDatabaseError(err error) (*DatabaseError, bool) {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr, true
	}
	return nil, false
}

// IsKind reports whether err is a DatabaseError of the given kind.
func IsKind(err error, kind DatabaseErrorKind) bool {
	dbErr, ok := AsDatabaseError(err)
	return ok && dbErr.Kind == kind
}
