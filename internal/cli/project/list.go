package project

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects ordered by name. Use 'show' to see materials, steps and categories.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	projects, err := cliInstance.App.ProjectService.FetchAllProjects(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	out := cmd.OutOrStdout()

	// Output in appropriate format
	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, p := range projects {
			fmt.Fprintf(out, "%d\n", p.ProjectID)
		}
		return nil
	}

	if formatter.JSON {
		list := make([]map[string]any, 0, len(projects))
		for _, p := range projects {
			list = append(list, projectJSON(p, false))
		}
		return formatter.EncodeJSON(map[string]any{
			"success":  true,
			"projects": list,
		})
	}

	// Human-readable output
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found")
		return nil
	}

	fmt.Fprintln(out, "Projects:")
	for _, p := range projects {
		fmt.Fprintf(out, "  %d: %s\n", p.ProjectID, p.ProjectName)
	}

	return nil
}
