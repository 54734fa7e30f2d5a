// Package schema holds the cli commands that manage the database schema
//
// e.g., projects schema init --seed
package schema

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/database"
)

// SchemaCmd returns the schema parent command
func SchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(InitCmd())

	return cmd
}

// InitCmd returns the schema init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the project tables",
		Long: `Create the project, material, step, category and project_category tables
for the configured database driver.

Examples:
  # Create missing tables
  projects schema init

  # Drop everything, recreate and load sample projects
  projects schema init --reset --seed
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("reset", false, "Drop all project tables first (destroys data)")
	cmd.Flags().Bool("seed", false, "Load sample projects and categories")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reset, _ := cmd.Flags().GetBool("reset")
	seed, _ := cmd.Flags().GetBool("seed")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.NewOutputFormatter(jsonOutput, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	provider := cliInstance.App.Provider()
	if err := database.LoadSchema(ctx, provider, database.SchemaOptions{Reset: reset, Seed: seed}); err != nil {
		return formatter.Fail(err)
	}

	if jsonOutput {
		return formatter.EncodeJSON(map[string]any{
			"success": true,
			"driver":  provider.Dialect().Name,
			"reset":   reset,
			"seed":    seed,
		})
	}

	formatter.Println(fmt.Sprintf("✓ Schema ready (%s)", provider.Dialect().Name))
	if seed {
		formatter.Println("  Sample projects loaded")
	}
	return nil
}
