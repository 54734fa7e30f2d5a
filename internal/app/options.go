package app

import (
	"log/slog"

	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// Option customizes how New assembles the App
type Option func(*appConfig)

type appConfig struct {
	logger         *slog.Logger
	projectService projectservice.Service
}

// WithLogger sets the logger used for application lifecycle messages
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithProjectService replaces the store-backed project service, for
// callers that decorate it or run without a real database
func WithProjectService(svc projectservice.Service) Option {
	return func(cfg *appConfig) {
		cfg.projectService = svc
	}
}
