package cli

import (
	"context"

	"github.com/thenoetrevino/projects/internal/app"
	"github.com/thenoetrevino/projects/internal/cli/styles"
	"github.com/thenoetrevino/projects/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// WithApp stores an already-built App in ctx. Commands run with such a
// context use it instead of opening their own database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the command's context: the injected
// App when there is one, otherwise a freshly initialized CLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		cfg := config.Default()
		cfg.Theme.ApplyDefaults()
		styles.Init(cfg.Theme)
		return &CLI{App: a, Config: cfg, borrowed: true}, nil
	}
	return NewCLI(ctx)
}
