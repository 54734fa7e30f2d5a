package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/database"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

func setupTestProvider(t *testing.T) *database.Provider {
	t.Helper()
	p, err := database.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "app.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.EnsureSchema(context.Background(), p); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return p
}

func TestNew(t *testing.T) {
	p := setupTestProvider(t)
	defer func() { _ = p.Close() }()

	app := New(p)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}

	if app.ProjectService == nil {
		t.Error("Expected ProjectService to be initialized")
	}

	if app.Provider() != p {
		t.Error("Expected Provider to return the provider passed to New")
	}

	projects, err := app.ProjectService.FetchAllProjects(context.Background())
	if err != nil {
		t.Fatalf("Expected FetchAllProjects to succeed, got error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected no projects, got %d", len(projects))
	}
}

func TestClose(t *testing.T) {
	p := setupTestProvider(t)

	app := New(p, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	err := app.Close()
	if err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}

	if _, err := app.ProjectService.FetchAllProjects(context.Background()); err == nil {
		t.Error("Expected an error after Close, got nil")
	}
}

func TestNew_WithProjectService(t *testing.T) {
	p := setupTestProvider(t)
	defer func() { _ = p.Close() }()

	svc := projectservice.NewService(database.NewProjectRepo(p))
	app := New(p, WithProjectService(svc))

	if app.ProjectService != svc {
		t.Error("Expected the injected ProjectService to be used")
	}
}
