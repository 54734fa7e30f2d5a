package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"
)

//go:embed schema
var schemaFS embed.FS

// SchemaOptions controls LoadSchema
type SchemaOptions struct {
	// Reset drops all project tables before creating them
	Reset bool
	// Seed loads the sample projects after the tables exist
	Seed bool
}

// LoadSchema creates the project tables for the connector's dialect,
// optionally dropping them first and loading sample data afterwards.
// All statements run as one batch in a single transaction.
func LoadSchema(ctx context.Context, c Connector, opts SchemaOptions) error {
	dialect := c.Dialect()

	files := make([]string, 0, 3)
	if opts.Reset {
		files = append(files, path.Join("schema", dialect.Name, "drop.sql"))
	}
	files = append(files, path.Join("schema", dialect.Name, "schema.sql"))
	if opts.Seed {
		files = append(files, path.Join("schema", "seed.sql"))
	}

	var statements []string
	for _, file := range files {
		content, err := schemaFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		statements = append(statements, splitStatements(string(content))...)
	}

	err := withTx(ctx, c, "load schema", nil, func(tx *sql.Tx) error {
		return executeBatch(ctx, tx, statements)
	})
	if err != nil {
		return err
	}

	slog.Info("schema loaded", "driver", dialect.Name, "statements", len(statements), "reset", opts.Reset, "seed", opts.Seed)
	return nil
}

// EnsureSchema creates any missing project tables without touching data
func EnsureSchema(ctx context.Context, c Connector) error {
	return LoadSchema(ctx, c, SchemaOptions{})
}

func executeBatch(ctx context.Context, tx *sql.Tx, statements []string) error {
	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement %d (%.40s...): %w", i+1, stmt, err)
		}
	}
	return nil
}

var whitespace = regexp.MustCompile(`\s+`)

// splitStatements turns the content of a .sql file into individual
// statements: "-- " comments are removed, whitespace runs collapse to a
// single space and statements are split on semicolons.
func splitStatements(content string) []string {
	content = removeComments(content)
	content = whitespace.ReplaceAllString(content, " ")

	var statements []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// removeComments strips single-line "-- " comments through end of line
func removeComments(content string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		if idx := strings.Index(line, "-- "); idx >= 0 {
			b.WriteString(line[:idx])
			b.WriteString("\n")
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
