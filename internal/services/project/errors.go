package project

import (
	"errors"
	"fmt"
)

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName         = errors.New("project name cannot be empty")
	ErrNameTooLong       = errors.New("project name cannot exceed 128 characters")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
	ErrNegativeHours     = errors.New("hours cannot be negative")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)

// NotFoundError reports that an operation requiring an existing project
// found no row with that id. errors.Is(err, ErrProjectNotFound) holds.
type NotFoundError struct {
	ProjectID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Project with project ID=%d does not exist.", e.ProjectID)
}

// Is lets callers match any NotFoundError against ErrProjectNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrProjectNotFound
}
