package ingest

import (
	"errors"
	"fmt"
)

// Batch-fatal conditions. When one of these comes back the run produced no
// usable records at all, so the whole import aborts.
var (
	// ErrUnavailable means the remote source could not be reached or answered
	// with a non-2xx status.
	ErrUnavailable = errors.New("remote source unavailable")

	// ErrBadPayload means the top-level response was not an array of records.
	ErrBadPayload = errors.New("remote payload is not a record array")
)

// MappingError reports the first invalid field of a raw record. Recoverable
// per record.
type MappingError struct {
	Field  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("map field %q: %s", e.Field, e.Reason)
}

// ConflictError reports a unique-key violation, currently only the account
// email. Recoverable per record; the record is skipped as a duplicate.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

// ReferenceError reports a post whose owning account is not persisted.
// Recoverable per record.
type ReferenceError struct {
	AccountID int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("no persisted account with id %d", e.AccountID)
}
