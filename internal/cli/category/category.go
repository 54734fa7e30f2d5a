// Package category holds the cli commands for project categories
//
// e.g., projects category ...
package category

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
)

// CategoryCmd returns the category parent command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Browse project categories",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  "List every category with the ID used by 'projects project create --category'.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	categories, err := cliInstance.App.ProjectService.FetchAllCategories(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	out := cmd.OutOrStdout()

	if quietMode {
		for _, c := range categories {
			fmt.Fprintf(out, "%d\n", c.CategoryID)
		}
		return nil
	}

	if jsonOutput {
		list := make([]map[string]any, 0, len(categories))
		for _, c := range categories {
			list = append(list, map[string]any{"id": c.CategoryID, "name": c.CategoryName})
		}
		return formatter.EncodeJSON(map[string]any{
			"success":    true,
			"categories": list,
		})
	}

	if len(categories) == 0 {
		fmt.Fprintln(out, "No categories found")
		return nil
	}

	fmt.Fprintln(out, "Categories:")
	for _, c := range categories {
		fmt.Fprintf(out, "  %d: %s\n", c.CategoryID, c.CategoryName)
	}
	return nil
}
