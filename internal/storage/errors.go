package storage

import "errors"

var (
	// ErrDuplicateKey is returned when more than one row matches a natural key
	// expected to be unique, or when inserting a note whose key already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUpdateFailed is returned when an update did not affect exactly one row.
	ErrUpdateFailed = errors.New("update failed")
	// ErrDeleteFailed is returned when a delete did not affect exactly one row.
	ErrDeleteFailed = errors.New("delete failed")
	// ErrStorage wraps failures of the underlying database during inserts.
	ErrStorage = errors.New("storage failure")
)
