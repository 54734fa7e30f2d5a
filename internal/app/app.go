package app

import (
	"log/slog"

	"github.com/thenoetrevino/projects/internal/database"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Connection provider shared by every store
	provider *database.Provider
	logger   *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(provider *database.Provider, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	svc := cfg.projectService
	if svc == nil {
		svc = projectservice.NewService(database.NewProjectRepo(provider))
	}

	return &App{
		provider:       provider,
		logger:         cfg.logger,
		ProjectService: svc,
	}
}

// Provider returns the connection provider, for schema management
func (a *App) Provider() *database.Provider {
	return a.provider
}

// Close releases the database handle
func (a *App) Close() error {
	a.logger.Debug("closing application")
	return a.provider.Close()
}
