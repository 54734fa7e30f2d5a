package project

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/models"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  projects project create --name="Build shed"

  # JSON output for agents
  projects project create --name="Build shed" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(projects project create --name="Build shed" --quiet)

  # With details, steps and categories
  projects project create \
    --name="Hang a door" \
    --estimated-hours=4 --difficulty=3 \
    --notes="Use the door hangers" \
    --step="Align hangers" --step="Screw hangers into frame" \
    --category=1 --category=2
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("estimated-hours", "", "Estimated hours (rounded to 2 places)")
	cmd.Flags().String("actual-hours", "", "Actual hours (rounded to 2 places)")
	cmd.Flags().String("difficulty", "", "Difficulty from 1 to 5")
	cmd.Flags().String("notes", "", "Project notes (markdown)")
	cmd.Flags().StringArray("step", nil, "Step text, repeat in order")
	cmd.Flags().IntSlice("category", nil, "Category ID to link, repeatable")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	project, err := projectFromFlags(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := projectservice.Validate(project); err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	created, err := cliInstance.App.ProjectService.AddProject(ctx, project)
	if err != nil {
		return formatter.FailWithSuggestion(err, "List category IDs with: projects category list")
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.Success(created)
	}

	if formatter.JSON {
		return formatter.EncodeJSON(map[string]any{
			"success": true,
			"project": projectJSON(created, true),
		})
	}

	formatter.Println(fmt.Sprintf("✓ Project '%s' created successfully (ID: %d)", created.ProjectName, created.ProjectID))
	return nil
}

// projectFromFlags builds a new project from the create flags
func projectFromFlags(cmd *cobra.Command) (*models.Project, error) {
	name, _ := cmd.Flags().GetString("name")
	estimated, _ := cmd.Flags().GetString("estimated-hours")
	actual, _ := cmd.Flags().GetString("actual-hours")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	notes, _ := cmd.Flags().GetString("notes")
	steps, _ := cmd.Flags().GetStringArray("step")
	categories, _ := cmd.Flags().GetIntSlice("category")

	project := models.NewProject(name)
	project.Notes = notes

	var err error
	if project.EstimatedHours, err = cli.ParseHours(estimated); err != nil {
		return nil, err
	}
	if project.ActualHours, err = cli.ParseHours(actual); err != nil {
		return nil, err
	}
	if project.Difficulty, err = cli.ParseOptionalInt(difficulty); err != nil {
		return nil, err
	}

	for i, text := range steps {
		project.Steps = append(project.Steps, &models.Step{StepText: text, StepOrder: i + 1})
	}
	for _, id := range categories {
		project.Categories = append(project.Categories, &models.Category{CategoryID: id})
	}
	return project, nil
}
