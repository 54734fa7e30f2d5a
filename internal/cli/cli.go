package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/projects/internal/app"
	"github.com/thenoetrevino/projects/internal/cli/styles"
	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/database"
	"github.com/thenoetrevino/projects/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	logFile io.Closer
	// borrowed instances belong to the caller and are not closed here
	borrowed bool
}

// NewCLI loads configuration, starts logging and opens the database.
// The schema is created first when database.auto_migrate is on.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	styles.Init(cfg.Theme)

	provider, err := database.Open(cfg.Database)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(ctx, provider); err != nil {
			_ = provider.Close()
			_ = logFile.Close()
			return nil, err
		}
	}

	slog.Debug("cli initialized", "driver", cfg.Database.Driver)

	return &CLI{
		App:     app.New(provider, app.WithLogger(logging.Logger)),
		Config:  cfg,
		logFile: logFile,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	err := c.App.Close()
	if c.logFile != nil {
		if closeErr := c.logFile.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
