package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/cli/styles"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show project details",
		Long:  "Display a project with its materials, steps and categories.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	projectID, err := cli.ParseProjectID(args[0])
	if err != nil {
		return formatter.FailWithSuggestion(err, "Usage: projects project show <id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	project, err := cliInstance.App.ProjectService.FetchProjectByID(ctx, projectID)
	if err != nil {
		return formatter.FailWithSuggestion(err, "List project IDs with: projects project list")
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return formatter.EncodeJSON(map[string]any{
			"success": true,
			"project": projectJSON(project, true),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderProjectCard(project))
	return nil
}
