package project

import (
	"strconv"
	"strings"
	"testing"

	testutilcli "github.com/thenoetrevino/projects/internal/testutil/cli"
)

func TestListProjectsCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	shed := testutilcli.CreateTestProject(t, db, "Build shed")
	door := testutilcli.CreateTestProject(t, db, "Anchor a door")

	t.Run("human output ordered by name", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := "Projects:\n  " + strconv.Itoa(door) + ": Anchor a door\n  " + strconv.Itoa(shed) + ": Build shed\n"
		if output != want {
			t.Errorf("Output = %q, want %q", output, want)
		}
	})

	t.Run("quiet prints ids", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		ids := strings.Fields(output)
		if len(ids) != 2 || ids[0] != strconv.Itoa(door) {
			t.Errorf("Unexpected ids: %v", ids)
		}
	})

	t.Run("json omits children", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		result := testutilcli.ParseJSON(t, output)
		projects := result["projects"].([]any)
		if len(projects) != 2 {
			t.Fatalf("Expected 2 projects, got %d", len(projects))
		}
		first := projects[0].(map[string]any)
		if first["name"] != "Anchor a door" {
			t.Errorf("First project = %v", first["name"])
		}
		if _, ok := first["materials"]; ok {
			t.Error("List output should not include materials")
		}
	})
}

func TestListProjectsCommand_Empty(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output != "No projects found\n" {
		t.Errorf("Output = %q", output)
	}
}
