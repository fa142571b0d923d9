package repository

import "errors"

var (
	// ErrNotRegistered: no binding exists for the record type. A wiring
	// bug, not a runtime condition; surfaces at executor construction.
	ErrNotRegistered = errors.New("repository: record type not registered")

	// ErrNotFound: an operation that needs an existing row (Update)
	// targeted an id that is absent in the requested scope. Single-item
	// reads do not use it; they return a nil record instead.
	ErrNotFound = errors.New("repository: record not found")

	// ErrConcurrencyConflict: the concurrency token on an incoming
	// update no longer matches the stored row. The caller's read is
	// stale; re-read and retry.
	ErrConcurrencyConflict = errors.New("repository: concurrency token mismatch")

	// ErrDuplicateKey: a unique index rejected the write (slug collision
	// race, duplicate RSVP pair). Retryable by the caller.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)
