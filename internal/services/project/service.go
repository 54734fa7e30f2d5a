package project

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/models"
)

// MaxNameLength matches the width of project.project_name
const MaxNameLength = 128

// Service defines all project-related business operations
type Service interface {
	// Read operations
	FetchAllProjects(ctx context.Context) ([]*models.Project, error)
	FetchProjectByID(ctx context.Context, id int) (*models.Project, error)
	FetchAllCategories(ctx context.Context) ([]*models.Category, error)

	// Write operations
	AddProject(ctx context.Context, project *models.Project) (*models.Project, error)
	ModifyProjectDetails(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id int) error
}

// store defines the data access methods needed by the project service.
// Absence is reported as false, never as an error.
type store interface {
	Insert(ctx context.Context, project *models.Project) (*models.Project, error)
	FetchAll(ctx context.Context) ([]*models.Project, error)
	FetchByID(ctx context.Context, id int) (*models.Project, bool, error)
	Update(ctx context.Context, project *models.Project) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

// service implements Service on top of a private store
type service struct {
	store store
}

// NewService creates a new project service
func NewService(store store) Service {
	return &service{store: store}
}

// AddProject stores a new project and returns it with its generated id
func (s *service) AddProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	return s.store.Insert(ctx, project)
}

// FetchAllProjects returns every project header; child collections are empty
func (s *service) FetchAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.store.FetchAll(ctx)
}

// FetchProjectByID returns the full aggregate or a *NotFoundError
func (s *service) FetchProjectByID(ctx context.Context, id int) (*models.Project, error) {
	project, found, err := s.store.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{ProjectID: id}
	}
	return project, nil
}

// ModifyProjectDetails rewrites the scalar fields of an existing project
func (s *service) ModifyProjectDetails(ctx context.Context, project *models.Project) error {
	updated, err := s.store.Update(ctx, project)
	if err != nil {
		return err
	}
	if !updated {
		return &NotFoundError{ProjectID: project.ProjectID}
	}
	return nil
}

// DeleteProject removes a project together with its children
func (s *service) DeleteProject(ctx context.Context, id int) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &NotFoundError{ProjectID: id}
	}
	slog.Info("project deleted", "project_id", id)
	return nil
}

// FetchAllCategories returns every category ordered by name
func (s *service) FetchAllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.store.ListCategories(ctx)
}

// Validate checks the user-editable fields of a project before it is
// submitted. The store itself accepts any difficulty.
func Validate(project *models.Project) error {
	name := strings.TrimSpace(project.ProjectName)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if d := project.Difficulty; d != nil && (*d < 1 || *d > 5) {
		return ErrInvalidDifficulty
	}
	for _, hours := range []decimal.NullDecimal{project.EstimatedHours, project.ActualHours} {
		if hours.Valid && hours.Decimal.IsNegative() {
			return ErrNegativeHours
		}
	}
	return nil
}
