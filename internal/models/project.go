package models

import "github.com/shopspring/decimal"

// Project is the aggregate root of the projects schema.
// Materials, Steps and Categories are only filled in by a detail fetch;
// list results carry empty (non-nil) slices.
type Project struct {
	ProjectID      int
	ProjectName    string
	EstimatedHours decimal.NullDecimal
	ActualHours    decimal.NullDecimal
	Difficulty     *int
	Notes          string

	Materials  []*Material
	Steps      []*Step
	Categories []*Category
}

// NewProject returns a project header with empty child collections.
func NewProject(name string) *Project {
	return &Project{
		ProjectName: name,
		Materials:   []*Material{},
		Steps:       []*Step{},
		Categories:  []*Category{},
	}
}

// GetID lets output formatters print just the id in quiet mode
func (p *Project) GetID() int {
	return p.ProjectID
}

// HasChildren reports whether any child collection is non-empty
func (p *Project) HasChildren() bool {
	return len(p.Materials) > 0 || len(p.Steps) > 0 || len(p.Categories) > 0
}
