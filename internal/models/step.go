package models

// Step is one ordered instruction of a project
type Step struct {
	StepID    int
	ProjectID int
	StepText  string
	StepOrder int
}
