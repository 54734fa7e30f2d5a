package category

import (
	"strconv"
	"strings"
	"testing"

	testutilcli "github.com/thenoetrevino/projects/internal/testutil/cli"
)

func TestListCategoriesCommand(t *testing.T) {
	db, app := testutilcli.SetupCLITest(t)
	repairs := testutilcli.CreateTestCategory(t, db, "Repairs")
	gardening := testutilcli.CreateTestCategory(t, db, "Gardening")

	t.Run("human", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, CategoryCmd(), []string{"list"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := "Categories:\n  " + strconv.Itoa(gardening) + ": Gardening\n  " + strconv.Itoa(repairs) + ": Repairs\n"
		if output != want {
			t.Errorf("Output = %q, want %q", output, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		categories := testutilcli.ParseJSON(t, output)["categories"].([]any)
		if len(categories) != 2 || categories[0].(map[string]any)["name"] != "Gardening" {
			t.Errorf("Unexpected categories: %v", categories)
		}
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ids := strings.Fields(output); len(ids) != 2 || ids[1] != strconv.Itoa(repairs) {
			t.Errorf("Unexpected ids: %v", ids)
		}
	})
}

func TestListCategoriesCommand_Empty(t *testing.T) {
	_, app := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, app, ListCmd(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output != "No categories found\n" {
		t.Errorf("Output = %q", output)
	}
}
