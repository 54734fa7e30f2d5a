package menu

import (
	"strings"
	"testing"

	testutilcli "github.com/thenoetrevino/projects/internal/testutil/cli"
)

func TestMenuCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	testutilcli.CreateTestProject(t, db, "Build shed")

	output, err := testutilcli.ExecuteCLICommandWithInput(t, app, MenuCmd(), nil, "2\n\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output, "   1) Add a project\n") {
		t.Errorf("Expected the operations list, got:\n%s", output)
	}
	if !strings.Contains(output, ": Build shed\n") {
		t.Errorf("Expected the project list, got:\n%s", output)
	}
	if !strings.HasSuffix(output, "Exiting the menu.\n") {
		t.Errorf("Expected the menu to exit, got:\n%s", output)
	}
}
