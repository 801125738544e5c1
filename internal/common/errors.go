package common

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports input or stored-row data that fails schema
// constraints. It is always distinguishable from storage failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageRequestError means the store accepted the connection but rejected
// the statement (constraint violation, bad reference, etc). Code carries the
// SQLSTATE when available.
type StorageRequestError struct {
	Code string
	Err  error
}

func (e *StorageRequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage request failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("storage request failed: %v", e.Err)
}

func (e *StorageRequestError) Unwrap() error { return e.Err }

// StorageConnectionError means the store could not be reached at all.
type StorageConnectionError struct {
	Err error
}

func (e *StorageConnectionError) Error() string {
	return fmt.Sprintf("storage connection failed: %v", e.Err)
}

func (e *StorageConnectionError) Unwrap() error { return e.Err }

// ClassifyStorageError maps a raw pgx error into the taxonomy. Missing rows
// become ErrNotFound so callers can branch on them without string matching.
func ClassifyStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StorageRequestError{Code: pgErr.Code, Err: err}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return &StorageConnectionError{Err: err}
	}
	return &StorageRequestError{Err: err}
}
