package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/database"
	"github.com/thenoetrevino/projects/internal/models"
)

// SetupTestProvider opens a SQLite database file in a temp dir with the full
// schema loaded. The provider is closed when the test ends.
func SetupTestProvider(t *testing.T) *database.Provider {
	t.Helper()

	p, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "projects.db"),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	if err := database.EnsureSchema(context.Background(), p); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return p
}

// CreateTestProject inserts a project header and returns its ID
func CreateTestProject(t *testing.T, p *database.Provider, name string) int {
	t.Helper()

	project, err := database.NewProjectRepo(p).Insert(context.Background(), models.NewProject(name))
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return project.ProjectID
}

// CreateTestCategory inserts a category and returns its ID
func CreateTestCategory(t *testing.T, p *database.Provider, name string) int {
	t.Helper()

	res := Exec(t, p, "INSERT INTO category (category_name) VALUES (?)", name)
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get category ID: %v", err)
	}
	return int(id)
}

// CountRows counts the rows of table belonging to projectID
func CountRows(t *testing.T, p *database.Provider, table string, projectID int) int {
	t.Helper()

	conn, err := p.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire connection: %v", err)
	}
	defer func() { _ = conn.Close() }()

	var n int
	err = conn.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM "+table+" WHERE project_id = ?", projectID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
}

// Exec runs a raw statement on its own connection
func Exec(t *testing.T, p *database.Provider, query string, args ...any) sql.Result {
	t.Helper()

	conn, err := p.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire connection: %v", err)
	}
	defer func() { _ = conn.Close() }()

	res, err := conn.ExecContext(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("Failed to execute %q: %v", query, err)
	}
	return res
}
