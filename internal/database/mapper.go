package database

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/models"
)

// Record shapes, used in mapping errors
const (
	shapeProject  = "project"
	shapeMaterial = "material"
	shapeStep     = "step"
	shapeCategory = "category"
)

// record is one result row keyed by lower-cased column name.
// Values are whatever the driver produced: int64, float64, string, []byte or nil.
type record struct {
	shape  string
	values map[string]any
}

// scanRecords drains rows into records. It closes rows.
func scanRecords(rows *sql.Rows, shape string) ([]record, error) {
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", shape, err)
	}

	records := make([]record, 0, 8)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", shape, err)
		}

		rec := record{shape: shape, values: make(map[string]any, len(columns))}
		for i, col := range columns {
			rec.values[strings.ToLower(col)] = values[i]
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", shape, err)
	}
	return records, nil
}

func (r record) fail(column string, err error) error {
	return &MappingError{Shape: r.shape, Column: column, Err: err}
}

func (r record) badValue(column string, v any, want string) error {
	return r.fail(column, fmt.Errorf("%w: %v (%T) is not %s", ErrBadValue, v, v, want))
}

func (r record) raw(column string) (any, error) {
	v, ok := r.values[column]
	if !ok {
		return nil, r.fail(column, ErrMissingColumn)
	}
	return v, nil
}

// optionalInt returns nil for NULL
func (r record) optionalInt(column string) (*int, error) {
	v, err := r.raw(column)
	if err != nil {
		return nil, err
	}

	var n int
	switch x := v.(type) {
	case nil:
		return nil, nil
	case int64:
		n = int(x)
	case int32:
		n = int(x)
	case int:
		n = x
	case float64:
		// NaN fails the Trunc comparison; ±Inf fails the range check
		if x != math.Trunc(x) || x < math.MinInt || x >= math.MaxInt {
			return nil, r.badValue(column, v, "an integer")
		}
		n = int(x)
	case []byte:
		if n, err = strconv.Atoi(strings.TrimSpace(string(x))); err != nil {
			return nil, r.badValue(column, string(x), "an integer")
		}
	case string:
		if n, err = strconv.Atoi(strings.TrimSpace(x)); err != nil {
			return nil, r.badValue(column, x, "an integer")
		}
	default:
		return nil, r.badValue(column, v, "an integer")
	}
	return &n, nil
}

func (r record) requiredInt(column string) (int, error) {
	n, err := r.optionalInt(column)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, r.fail(column, ErrNullValue)
	}
	return *n, nil
}

// optionalString returns "" for NULL
func (r record) optionalString(column string) (string, error) {
	v, err := r.raw(column)
	if err != nil {
		return "", err
	}

	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	default:
		return "", r.badValue(column, v, "text")
	}
}

func (r record) requiredString(column string) (string, error) {
	v, err := r.raw(column)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", r.fail(column, ErrNullValue)
	}
	return r.optionalString(column)
}

// optionalDecimal returns an invalid NullDecimal for NULL and
// normalizes everything else to two fractional digits
func (r record) optionalDecimal(column string) (decimal.NullDecimal, error) {
	v, err := r.raw(column)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	var d decimal.Decimal
	switch x := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case int64:
		d = decimal.NewFromInt(x)
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return decimal.NullDecimal{}, r.badValue(column, v, "a finite decimal")
		}
		d = decimal.NewFromFloat(x)
	case []byte:
		if d, err = decimal.NewFromString(strings.TrimSpace(string(x))); err != nil {
			return decimal.NullDecimal{}, r.badValue(column, string(x), "a decimal")
		}
	case string:
		if d, err = decimal.NewFromString(strings.TrimSpace(x)); err != nil {
			return decimal.NullDecimal{}, r.badValue(column, x, "a decimal")
		}
	default:
		return decimal.NullDecimal{}, r.badValue(column, v, "a decimal")
	}
	return models.Hours(d), nil
}

// ============================================================================
// SHAPE DECODERS
// ============================================================================

func decodeProject(r record) (*models.Project, error) {
	p := models.NewProject("")
	var err error

	if p.ProjectID, err = r.requiredInt("project_id"); err != nil {
		return nil, err
	}
	if p.ProjectName, err = r.requiredString("project_name"); err != nil {
		return nil, err
	}
	if p.EstimatedHours, err = r.optionalDecimal("estimated_hours"); err != nil {
		return nil, err
	}
	if p.ActualHours, err = r.optionalDecimal("actual_hours"); err != nil {
		return nil, err
	}
	if p.Difficulty, err = r.optionalInt("difficulty"); err != nil {
		return nil, err
	}
	if p.Notes, err = r.optionalString("notes"); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeMaterial(r record) (*models.Material, error) {
	m := &models.Material{}
	var err error

	if m.MaterialID, err = r.requiredInt("material_id"); err != nil {
		return nil, err
	}
	if m.ProjectID, err = r.requiredInt("project_id"); err != nil {
		return nil, err
	}
	if m.MaterialName, err = r.requiredString("material_name"); err != nil {
		return nil, err
	}
	if m.NumRequired, err = r.optionalInt("num_required"); err != nil {
		return nil, err
	}
	if m.Cost, err = r.optionalDecimal("cost"); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeStep(r record) (*models.Step, error) {
	s := &models.Step{}
	var err error

	if s.StepID, err = r.requiredInt("step_id"); err != nil {
		return nil, err
	}
	if s.ProjectID, err = r.requiredInt("project_id"); err != nil {
		return nil, err
	}
	if s.StepText, err = r.requiredString("step_text"); err != nil {
		return nil, err
	}
	if s.StepOrder, err = r.requiredInt("step_order"); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeCategory(r record) (*models.Category, error) {
	c := &models.Category{}
	var err error

	if c.CategoryID, err = r.requiredInt("category_id"); err != nil {
		return nil, err
	}
	if c.CategoryName, err = r.requiredString("category_name"); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeAll applies decode to every record, stopping at the first failure
func decodeAll[T any](records []record, decode func(record) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
