package project

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long: `Delete a project by ID together with its materials, steps and category links.
Requires confirmation unless --force, --json or --quiet is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	projectID, err := cli.ParseProjectID(args[0])
	if err != nil {
		return formatter.FailWithSuggestion(err, "Usage: projects project delete <id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	svc := cliInstance.App.ProjectService

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !formatter.Quiet && !formatter.JSON {
		project, err := svc.FetchProjectByID(ctx, projectID)
		if err != nil {
			return formatter.Fail(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Delete project #%d: '%s'? (y/N): ", projectID, project.ProjectName)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	if err := svc.DeleteProject(ctx, projectID); err != nil {
		return formatter.Fail(err)
	}

	// Output success
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.EncodeJSON(map[string]any{
			"success":    true,
			"project_id": projectID,
		})
	}

	formatter.Println(fmt.Sprintf("✓ Project %d deleted successfully", projectID))
	return nil
}
