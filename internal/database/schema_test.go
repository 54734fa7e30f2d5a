package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/config"
)

func TestSplitStatements(t *testing.T) {
	content := `
-- leading comment
CREATE TABLE a (
  id INT, -- trailing comment
  name TEXT
);

INSERT INTO a (id, name) VALUES (1, 'x');
;
`
	got := splitStatements(content)
	assert.Equal(t, []string{
		"CREATE TABLE a ( id INT, name TEXT )",
		"INSERT INTO a (id, name) VALUES (1, 'x')",
	}, got)

	assert.Empty(t, splitStatements("-- nothing here\n"))
}

func TestEmbeddedSchemaForEveryDriver(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverMySQL, config.DriverPostgres} {
		for _, file := range []string{"schema.sql", "drop.sql"} {
			content, err := schemaFS.ReadFile("schema/" + driver + "/" + file)
			require.NoError(t, err, "%s/%s", driver, file)
			assert.NotEmpty(t, splitStatements(string(content)))
		}
	}
}

func TestLoadSchema_SeedAndReset(t *testing.T) {
	p := setupTestProvider(t)
	repo := NewProjectRepo(p)
	ctx := context.Background()

	require.NoError(t, LoadSchema(ctx, p, SchemaOptions{Seed: true}))

	projects, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Build a raised garden bed", projects[0].ProjectName)
	assert.Equal(t, "Hang a door", projects[1].ProjectName)

	door, found, err := repo.FetchByID(ctx, projects[1].ProjectID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, door.Materials, 3)
	assert.Len(t, door.Steps, 2)
	require.Len(t, door.Categories, 2)
	assert.Equal(t, "Doors and Windows", door.Categories[0].CategoryName)
	assert.Equal(t, "4.00", door.EstimatedHours.Decimal.StringFixed(2))

	// creating again is harmless
	require.NoError(t, EnsureSchema(ctx, p))

	require.NoError(t, LoadSchema(ctx, p, SchemaOptions{Reset: true}))
	projects, err = repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestLoadSchema_FailureRollsBack(t *testing.T) {
	p := setupTestProvider(t)
	repo := NewProjectRepo(p)
	ctx := context.Background()

	require.NoError(t, LoadSchema(ctx, p, SchemaOptions{Seed: true}))

	// a second seed collides on the project_category primary key
	err := LoadSchema(ctx, p, SchemaOptions{Seed: true})
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "load schema", storeErr.Op)

	projects, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}
