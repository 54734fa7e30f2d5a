package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Tree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"menu"},
		{"project", "create"},
		{"project", "list"},
		{"project", "show"},
		{"project", "update"},
		{"project", "delete"},
		{"category", "list"},
		{"schema", "init"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}
