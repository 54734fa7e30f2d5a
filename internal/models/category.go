package models

// Category tags projects through the project_category join table.
// Categories are shared between projects; only the association is owned.
type Category struct {
	CategoryID   int
	CategoryName string
}
