package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update project details",
		Long: `Update the details of a project. Flags that are not given keep their
stored values; pass an empty string to clear an optional field.

Materials, steps and categories are not changed by this command.

Examples:
  projects project update 3 --actual-hours=5.5
  projects project update 3 --name="Build bigger shed" --notes=""
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("estimated-hours", "", "Estimated hours (rounded to 2 places)")
	cmd.Flags().String("actual-hours", "", "Actual hours (rounded to 2 places)")
	cmd.Flags().String("difficulty", "", "Difficulty from 1 to 5")
	cmd.Flags().String("notes", "", "Project notes (markdown)")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	projectID, err := cli.ParseProjectID(args[0])
	if err != nil {
		return formatter.FailWithSuggestion(err, "Usage: projects project update <id> [flags]")
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	svc := cliInstance.App.ProjectService
	project, err := svc.FetchProjectByID(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		project.ProjectName, _ = flags.GetString("name")
	}
	if flags.Changed("estimated-hours") {
		value, _ := flags.GetString("estimated-hours")
		if project.EstimatedHours, err = cli.ParseHours(value); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("actual-hours") {
		value, _ := flags.GetString("actual-hours")
		if project.ActualHours, err = cli.ParseHours(value); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("difficulty") {
		value, _ := flags.GetString("difficulty")
		if project.Difficulty, err = cli.ParseOptionalInt(value); err != nil {
			return formatter.Fail(err)
		}
	}
	if flags.Changed("notes") {
		project.Notes, _ = flags.GetString("notes")
	}

	if err := projectservice.Validate(project); err != nil {
		return formatter.Fail(err)
	}

	if err := svc.ModifyProjectDetails(ctx, project); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return formatter.Success(project)
	}

	if formatter.JSON {
		return formatter.EncodeJSON(map[string]any{
			"success": true,
			"project": projectJSON(project, false),
		})
	}

	formatter.Println(fmt.Sprintf("✓ Project %d updated successfully", projectID))
	return nil
}
