package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli/category"
	"github.com/thenoetrevino/projects/internal/cli/menu"
	"github.com/thenoetrevino/projects/internal/cli/project"
	"github.com/thenoetrevino/projects/internal/cli/schema"
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "projects",
		Short: "Projects - track DIY projects, materials and steps",
		Long: `Projects keeps track of DIY projects: estimated and actual hours,
difficulty, notes, the materials to buy, the steps to follow and the
categories each project belongs to.

Run 'projects menu' for the interactive menu, or use the project and
category subcommands from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(menu.MenuCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(category.CategoryCmd())
	rootCmd.AddCommand(schema.SchemaCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
