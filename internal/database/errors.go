package database

import (
	"errors"
	"fmt"
)

// Sentinel causes carried inside MappingError and StoreError
var (
	// ErrMissingColumn indicates a result set lacks a column the record shape needs
	ErrMissingColumn = errors.New("column missing from result set")

	// ErrNullValue indicates a required column held NULL
	ErrNullValue = errors.New("unexpected NULL value")

	// ErrBadValue indicates a value that cannot be coerced into the field type
	ErrBadValue = errors.New("value cannot be converted")

	// ErrAlreadyPersisted indicates an insert of a project that already has an id
	ErrAlreadyPersisted = errors.New("project already has an id")

	// ErrInvariantViolation indicates a keyed write touched more than one row
	ErrInvariantViolation = errors.New("more than one row affected by a keyed statement")
)

// ConnectionError reports that a database connection could not be established.
// It is returned before any transaction begins and is never retried.
type ConnectionError struct {
	Driver string
	Addr   string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to get %s connection at %s: %v", e.Driver, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// MappingError reports a result row that cannot be converted into its record shape.
// It usually means the schema drifted from what the store expects.
type MappingError struct {
	Shape  string
	Column string
	Err    error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("failed to map %s.%s: %v", e.Shape, e.Column, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// StoreError reports a failure inside a transaction boundary.
// The transaction has already been rolled back when a StoreError is returned.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
