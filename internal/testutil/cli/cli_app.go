package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projects/internal/app"
	appcli "github.com/thenoetrevino/projects/internal/cli"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so the command never
// opens the user's real database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()
	stdout, _, err := execute(t, context.Background(), testApp, cmd, args, strings.NewReader(input))
	return stdout, err
}

// ExecuteCLICommandCapturingStderr returns stdout and stderr separately
func ExecuteCLICommandCapturingStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	return execute(t, context.Background(), testApp, cmd, args, strings.NewReader(""))
}

func execute(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string, in io.Reader) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	SetupCobraCommand(cmd, args)
	cmd.SetIn(in)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(appcli.WithApp(ctx, testApp))
	return stdout.String(), stderr.String(), err
}
