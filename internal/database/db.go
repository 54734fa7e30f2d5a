// Package database maps the projects schema onto Go values and owns every
// transaction boundary used by the application.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/projects/internal/config"
)

// Connector hands out one scoped connection per logical operation.
type Connector interface {
	Acquire(ctx context.Context) (*sql.Conn, error)
	Dialect() Dialect
}

// Provider opens database connections from fixed connection parameters.
// It keeps no idle connections: every Acquire opens a physical connection
// and closing the returned *sql.Conn releases it.
type Provider struct {
	db      *sql.DB
	dialect Dialect
	addr    string
}

// Open prepares a Provider for cfg. No connection is made until Acquire or Ping.
func Open(cfg config.DatabaseConfig) (*Provider, error) {
	dialect, driverName, dsn, addr, err := dialectFor(cfg)
	if err != nil {
		return nil, &ConnectionError{Driver: cfg.Driver, Addr: cfg.Host, Err: err}
	}

	if dialect.Name == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, &ConnectionError{Driver: dialect.Name, Addr: addr, Err: fmt.Errorf("failed to create directory: %w", err)}
		}
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, &ConnectionError{Driver: dialect.Name, Addr: addr, Err: err}
	}

	db.SetMaxIdleConns(0)
	if dialect.Name == config.DriverSQLite {
		db.SetMaxOpenConns(1) // SQLite benefits from a single writer connection
	}

	return &Provider{db: db, dialect: dialect, addr: addr}, nil
}

// Acquire opens a connection and applies the dialect's session settings.
// The caller must Close the connection on every exit path.
func (p *Provider) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		slog.Error("unable to get connection", "driver", p.dialect.Name, "addr", p.addr, "error", err)
		return nil, &ConnectionError{Driver: p.dialect.Name, Addr: p.addr, Err: err}
	}

	for _, stmt := range p.dialect.session {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			if closeErr := conn.Close(); closeErr != nil {
				slog.Error("error closing connection", "error", closeErr)
			}
			return nil, &ConnectionError{Driver: p.dialect.Name, Addr: p.addr, Err: fmt.Errorf("%s: %w", stmt, err)}
		}
	}

	slog.Debug("obtained connection", "driver", p.dialect.Name, "addr", p.addr)
	return conn, nil
}

// Ping verifies that a connection can be established
func (p *Provider) Ping(ctx context.Context) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("error closing connection", "error", err)
		}
	}()

	if err := conn.PingContext(ctx); err != nil {
		return &ConnectionError{Driver: p.dialect.Name, Addr: p.addr, Err: fmt.Errorf("database ping failed: %w", err)}
	}
	return nil
}

// Dialect returns the SQL dialect of the configured driver
func (p *Provider) Dialect() Dialect {
	return p.dialect
}

// Close releases the underlying handle
func (p *Provider) Close() error {
	return p.db.Close()
}
