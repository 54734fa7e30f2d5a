package menu

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/cli"
)

// MenuCmd returns the interactive menu command
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Manage projects from an interactive menu",
		Long: `Start a numbered menu on the terminal to add, list, select, update and
delete projects. Press Enter on an empty line to quit.`,
		Args: cobra.NoArgs,
		RunE: runMenu,
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(false, false, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	m := New(cliInstance.App.ProjectService, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := m.Run(ctx); err != nil {
		return formatter.Fail(err)
	}
	return nil
}
