package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/projects/internal/models"
)

const (
	insertProjectSQL = `INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes) VALUES (?, ?, ?, ?, ?)`

	selectProjectColumns = `SELECT project_id, project_name, estimated_hours, actual_hours, difficulty, notes FROM project`

	selectAllProjectsSQL = selectProjectColumns + ` ORDER BY project_name`
	selectProjectSQL     = selectProjectColumns + ` WHERE project_id = ?`

	selectMaterialsSQL  = `SELECT material_id, project_id, material_name, num_required, cost FROM material WHERE project_id = ? ORDER BY material_id`
	selectStepsSQL      = `SELECT step_id, project_id, step_text, step_order FROM step WHERE project_id = ? ORDER BY step_order, step_id`
	selectCategoriesSQL = `SELECT category_id, category_name FROM category
		WHERE category_id IN (SELECT category_id FROM project_category WHERE project_id = ?)
		ORDER BY category_name`
	selectAllCategoriesSQL = `SELECT category_id, category_name FROM category ORDER BY category_name`

	insertMaterialSQL        = `INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)`
	insertStepSQL            = `INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)`
	insertProjectCategorySQL = `INSERT INTO project_category (project_id, category_id) VALUES (?, ?)`

	updateProjectSQL = `UPDATE project SET project_name = ?, estimated_hours = ?, actual_hours = ?, difficulty = ?, notes = ? WHERE project_id = ?`
	deleteProjectSQL = `DELETE FROM project WHERE project_id = ?`
)

// ProjectRepo handles all project-related database operations.
// Every exported method is exactly one transaction on its own connection.
type ProjectRepo struct {
	conns   Connector
	dialect Dialect
}

// NewProjectRepo creates a project store on top of a connection provider
func NewProjectRepo(conns Connector) *ProjectRepo {
	return &ProjectRepo{conns: conns, dialect: conns.Dialect()}
}

// Insert writes the project header, plus any materials, steps and category
// links carried on it, and sets the generated ProjectID on the input.
// Nothing is persisted unless every statement succeeds. A project that
// already carries an id is rejected before any connection is made.
func (r *ProjectRepo) Insert(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.ProjectID != 0 {
		return nil, fmt.Errorf("%w: %d", ErrAlreadyPersisted, project.ProjectID)
	}

	var projectID int
	err := withTx(ctx, r.conns, "insert project", nil, func(tx *sql.Tx) error {
		id, err := r.insertReturningID(ctx, tx, insertProjectSQL, "project_id",
			project.ProjectName,
			models.NormalizeHours(project.EstimatedHours),
			models.NormalizeHours(project.ActualHours),
			intPtrArg(project.Difficulty),
			stringArg(project.Notes),
		)
		if err != nil {
			return fmt.Errorf("failed to insert project '%s': %w", project.ProjectName, err)
		}
		projectID = id

		for _, m := range project.Materials {
			materialID, err := r.insertReturningID(ctx, tx, insertMaterialSQL, "material_id",
				id, m.MaterialName, intPtrArg(m.NumRequired), models.NormalizeHours(m.Cost))
			if err != nil {
				return fmt.Errorf("failed to insert material '%s' for project %d: %w", m.MaterialName, id, err)
			}
			m.MaterialID = materialID
		}

		for _, s := range project.Steps {
			stepID, err := r.insertReturningID(ctx, tx, insertStepSQL, "step_id", id, s.StepText, s.StepOrder)
			if err != nil {
				return fmt.Errorf("failed to insert step %d for project %d: %w", s.StepOrder, id, err)
			}
			s.StepID = stepID
		}

		for _, c := range project.Categories {
			if _, err := tx.ExecContext(ctx, r.dialect.Rebind(insertProjectCategorySQL), id, c.CategoryID); err != nil {
				return fmt.Errorf("failed to link category %d to project %d: %w", c.CategoryID, id, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// only assign once the transaction committed
	project.ProjectID = projectID
	project.EstimatedHours = models.NormalizeHours(project.EstimatedHours)
	project.ActualHours = models.NormalizeHours(project.ActualHours)
	ensureChildren(project)
	for _, m := range project.Materials {
		m.ProjectID = projectID
		m.Cost = models.NormalizeHours(m.Cost)
	}
	for _, s := range project.Steps {
		s.ProjectID = projectID
	}

	slog.Debug("project inserted", "project_id", projectID, "name", project.ProjectName)
	return project, nil
}

// FetchAll returns every project header ordered by name. Child collections are left empty.
func (r *ProjectRepo) FetchAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := withTx(ctx, r.conns, "fetch all projects", readOnly(r.dialect), func(tx *sql.Tx) error {
		records, err := r.query(ctx, tx, shapeProject, selectAllProjectsSQL)
		if err != nil {
			return fmt.Errorf("failed to query all projects: %w", err)
		}
		projects, err = decodeAll(records, decodeProject)
		return err
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchByID loads a project and all three child collections from one
// transaction. The bool is false, with a nil error, when no project has that id.
func (r *ProjectRepo) FetchByID(ctx context.Context, id int) (*models.Project, bool, error) {
	var project *models.Project
	err := withTx(ctx, r.conns, "fetch project", readOnly(r.dialect), func(tx *sql.Tx) error {
		records, err := r.query(ctx, tx, shapeProject, selectProjectSQL, id)
		if err != nil {
			return fmt.Errorf("failed to get project %d: %w", id, err)
		}
		if len(records) == 0 {
			return nil
		}

		p, err := decodeProject(records[0])
		if err != nil {
			return err
		}

		if p.Materials, err = fetchChildren(ctx, r, tx, shapeMaterial, selectMaterialsSQL, id, decodeMaterial); err != nil {
			return err
		}
		if p.Steps, err = fetchChildren(ctx, r, tx, shapeStep, selectStepsSQL, id, decodeStep); err != nil {
			return err
		}
		if p.Categories, err = fetchChildren(ctx, r, tx, shapeCategory, selectCategoriesSQL, id, decodeCategory); err != nil {
			return err
		}

		project = p
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return project, project != nil, nil
}

// Update rewrites the scalar fields of a project keyed by ProjectID.
// Child collections are not touched. Returns false when no row matched.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) (bool, error) {
	var updated bool
	err := withTx(ctx, r.conns, "update project", nil, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, r.dialect.Rebind(updateProjectSQL),
			project.ProjectName,
			models.NormalizeHours(project.EstimatedHours),
			models.NormalizeHours(project.ActualHours),
			intPtrArg(project.Difficulty),
			stringArg(project.Notes),
			project.ProjectID,
		)
		if err != nil {
			return fmt.Errorf("failed to update project %d: %w", project.ProjectID, err)
		}
		updated, err = exactlyOne(result)
		return err
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// Delete removes a project; foreign keys cascade to its materials, steps
// and category links. Returns false when no row matched.
func (r *ProjectRepo) Delete(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := withTx(ctx, r.conns, "delete project", nil, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteProjectSQL), id)
		if err != nil {
			return fmt.Errorf("failed to delete project %d: %w", id, err)
		}
		deleted, err = exactlyOne(result)
		return err
	})
	if err != nil {
		return false, err
	}
	if deleted {
		slog.Debug("project deleted", "project_id", id)
	}
	return deleted, nil
}

// ListCategories returns every category ordered by name
func (r *ProjectRepo) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := withTx(ctx, r.conns, "list categories", readOnly(r.dialect), func(tx *sql.Tx) error {
		records, err := r.query(ctx, tx, shapeCategory, selectAllCategoriesSQL)
		if err != nil {
			return fmt.Errorf("failed to query categories: %w", err)
		}
		categories, err = decodeAll(records, decodeCategory)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// query runs a SELECT inside tx and drains it into records
func (r *ProjectRepo) query(ctx context.Context, tx *sql.Tx, shape, query string, args ...any) ([]record, error) {
	rows, err := tx.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows, shape)
}

// insertReturningID executes an INSERT and reports the generated key, read
// back inside the same transaction.
func (r *ProjectRepo) insertReturningID(ctx context.Context, tx *sql.Tx, query, keyColumn string, args ...any) (int, error) {
	if r.dialect.returningKey {
		var id int64
		if err := tx.QueryRowContext(ctx, r.dialect.Rebind(query+" RETURNING "+keyColumn), args...).Scan(&id); err != nil {
			return 0, err
		}
		return int(id), nil
	}

	result, err := tx.ExecContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generated %s: %w", keyColumn, err)
	}
	return int(id), nil
}

func fetchChildren[T any](ctx context.Context, r *ProjectRepo, tx *sql.Tx, shape, query string, projectID int, decode func(record) (T, error)) ([]T, error) {
	records, err := r.query(ctx, tx, shape, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s rows for project %d: %w", shape, projectID, err)
	}
	return decodeAll(records, decode)
}

// ensureChildren replaces nil child collections with empty ones
func ensureChildren(p *models.Project) {
	if p.Materials == nil {
		p.Materials = []*models.Material{}
	}
	if p.Steps == nil {
		p.Steps = []*models.Step{}
	}
	if p.Categories == nil {
		p.Categories = []*models.Category{}
	}
}
