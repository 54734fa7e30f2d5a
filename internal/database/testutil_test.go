package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/models"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestProvider opens a file-backed SQLite database with the schema
// loaded. In-memory databases are not usable because every Acquire opens a
// fresh connection.
func setupTestProvider(t *testing.T) *Provider {
	t.Helper()

	p, err := Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "projects.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	require.NoError(t, EnsureSchema(context.Background(), p))
	return p
}

// execSQL runs a statement outside the store, for fixtures and corruption
func execSQL(t *testing.T, p *Provider, query string, args ...any) {
	t.Helper()
	_, err := p.db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}

// countRows counts rows of table belonging to projectID
func countRows(t *testing.T, p *Provider, table string, projectID int) int {
	t.Helper()
	var n int
	err := p.db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM "+table+" WHERE project_id = ?", projectID).Scan(&n)
	require.NoError(t, err)
	return n
}

func createTestCategory(t *testing.T, p *Provider, name string) int {
	t.Helper()
	res, err := p.db.ExecContext(context.Background(), "INSERT INTO category (category_name) VALUES (?)", name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return int(id)
}

func intPtr(v int) *int {
	return &v
}

func buildShed() *models.Project {
	p := models.NewProject("Build shed")
	p.EstimatedHours = models.Hours(decimalFromString("12.5"))
	p.Difficulty = intPtr(3)
	p.Notes = "weekend job"
	return p
}
