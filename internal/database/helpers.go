package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// withTx executes fn inside one transaction on its own connection.
// The connection is released and the transaction rolled back on every exit
// path; fn's error comes back wrapped in a *StoreError after the rollback.
// Connection failures are returned as-is, before any transaction begins.
func withTx(ctx context.Context, c Connector, op string, opts *sql.TxOptions, fn func(*sql.Tx) error) error {
	conn, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("failed to release connection", "op", op, "error", err)
		}
	}()

	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return &StoreError{Op: op, Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "op", op, "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		slog.Debug("rolling back", "op", op, "error", err)
		return &StoreError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Op: op, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}

	return nil
}

// readOnly returns the options for a read-only transaction when the dialect supports them
func readOnly(d Dialect) *sql.TxOptions {
	if !d.readOnlyTx {
		return nil
	}
	return &sql.TxOptions{ReadOnly: true}
}

// exactlyOne interprets the affected-row count of a statement keyed by a unique id.
// Zero rows is a normal "not found" result; more than one is a broken schema.
func exactlyOne(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	switch {
	case n == 0:
		return false, nil
	case n == 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d rows", ErrInvariantViolation, n)
	}
}

// intPtrArg converts an optional int into a driver argument
func intPtrArg(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

// stringArg stores empty strings as NULL
func stringArg(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
