package cli

import (
	"errors"
	"log/slog"

	"github.com/thenoetrevino/projects/internal/database"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

// ErrInvalidInput marks user input that could not be parsed
var ErrInvalidInput = errors.New("invalid input")

// classify maps an error onto its machine-readable code and exit code
func classify(err error) (string, int) {
	var (
		connErr  *database.ConnectionError
		mapErr   *database.MappingError
		storeErr *database.StoreError
	)

	switch {
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return "PROJECT_NOT_FOUND", ExitNotFound
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT", ExitUsage
	case errors.Is(err, projectservice.ErrEmptyName),
		errors.Is(err, projectservice.ErrNameTooLong),
		errors.Is(err, projectservice.ErrInvalidDifficulty),
		errors.Is(err, projectservice.ErrNegativeHours),
		errors.Is(err, database.ErrAlreadyPersisted):
		return "VALIDATION_ERROR", ExitValidation
	case errors.As(err, &connErr):
		return "CONNECTION_ERROR", ExitError
	case errors.As(err, &mapErr):
		return "DATA_ERROR", ExitDataErr
	case errors.As(err, &storeErr):
		return "STORE_ERROR", ExitError
	}
	return "ERROR", ExitError
}

// Fail reports err through the formatter and returns the *CommandError the
// command should return.
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	code, exitCode := classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return NewCommandError(exitCode, err)
}
