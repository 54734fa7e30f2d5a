package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/database"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"not found", &projectservice.NotFoundError{ProjectID: 3}, "PROJECT_NOT_FOUND", ExitNotFound},
		{"invalid input", fmt.Errorf("%w: bad id", ErrInvalidInput), "INVALID_INPUT", ExitUsage},
		{"validation", projectservice.ErrInvalidDifficulty, "VALIDATION_ERROR", ExitValidation},
		{"already persisted", fmt.Errorf("%w: 3", database.ErrAlreadyPersisted), "VALIDATION_ERROR", ExitValidation},
		{"connection", &database.ConnectionError{Driver: "sqlite", Addr: "x", Err: errors.New("refused")}, "CONNECTION_ERROR", ExitError},
		{"mapping", &database.StoreError{Op: "fetch project", Err: &database.MappingError{Shape: "project", Column: "difficulty", Err: database.ErrBadValue}}, "DATA_ERROR", ExitDataErr},
		{"store", &database.StoreError{Op: "delete project", Err: errors.New("locked")}, "STORE_ERROR", ExitError},
		{"other", errors.New("boom"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := classify(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

func TestFail(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	cause := &projectservice.NotFoundError{ProjectID: 9}

	err := f.FailWithSuggestion(cause, "run list")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, ExitNotFound, cmdErr.Code)
	assert.ErrorIs(t, err, projectservice.ErrProjectNotFound)

	errData := decode(t, out)["error"].(map[string]any)
	assert.Equal(t, "Project with project ID=9 does not exist.", errData["message"])
	assert.Equal(t, "run list", errData["suggestion"])
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitValidation, ExitCode(fmt.Errorf("wrapped: %w", NewCommandError(ExitValidation, errors.New("x")))))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, "exit status 4", NewCommandError(ExitDataErr, nil).Error())
}
