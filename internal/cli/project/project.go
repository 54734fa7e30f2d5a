// Package project holds all cli commands related to projects
//
// e.g., projects project ...
package project

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/models"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags shared by every subcommand
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return cli.NewOutputFormatter(jsonOutput, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// openCLI initializes the CLI for cmd; the returned func releases it
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.Fail(err)
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}, nil
}

// projectJSON is the JSON shape of a project. Child collections are only
// included for a detail fetch.
func projectJSON(p *models.Project, withChildren bool) map[string]any {
	out := map[string]any{
		"id":              p.ProjectID,
		"name":            p.ProjectName,
		"estimated_hours": nullable(models.FormatHours(p.EstimatedHours)),
		"actual_hours":    nullable(models.FormatHours(p.ActualHours)),
		"difficulty":      p.Difficulty,
		"notes":           p.Notes,
	}
	if !withChildren {
		return out
	}

	materials := make([]map[string]any, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, map[string]any{
			"id":           m.MaterialID,
			"name":         m.MaterialName,
			"num_required": m.NumRequired,
			"cost":         nullable(models.FormatHours(m.Cost)),
		})
	}
	steps := make([]map[string]any, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, map[string]any{
			"id":    s.StepID,
			"order": s.StepOrder,
			"text":  s.StepText,
		})
	}
	categories := make([]map[string]any, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, map[string]any{
			"id":   c.CategoryID,
			"name": c.CategoryName,
		})
	}

	out["materials"] = materials
	out["steps"] = steps
	out["categories"] = categories
	return out
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
