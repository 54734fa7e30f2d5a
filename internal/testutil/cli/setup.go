package cli

import (
	"testing"

	"github.com/thenoetrevino/projects/internal/app"
	"github.com/thenoetrevino/projects/internal/database"
	"github.com/thenoetrevino/projects/internal/testutil"
)

// SetupCLITest creates a temp-file database and returns both the provider
// and an App built on it. This function is only for CLI tests and is
// isolated in a separate package to avoid import cycles when service
// tests import testutil.
func SetupCLITest(t *testing.T) (*database.Provider, *app.App) {
	t.Helper()
	p := testutil.SetupTestProvider(t)
	return p, app.New(p)
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, p *database.Provider, name string) int {
	t.Helper()
	return testutil.CreateTestProject(t, p, name)
}

// CreateTestCategory wraps testutil.CreateTestCategory for CLI tests
func CreateTestCategory(t *testing.T, p *database.Provider, name string) int {
	t.Helper()
	return testutil.CreateTestCategory(t, p, name)
}

// CountRows wraps testutil.CountRows for CLI tests
func CountRows(t *testing.T, p *database.Provider, table string, projectID int) int {
	t.Helper()
	return testutil.CountRows(t, p, table, projectID)
}
