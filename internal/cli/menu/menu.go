// Package menu implements the line-based interactive project menu
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/cli"
	"github.com/thenoetrevino/projects/internal/models"
	projectservice "github.com/thenoetrevino/projects/internal/services/project"
)

var operations = []string{
	"1) Add a project",
	"2) List projects",
	"3) Select a project",
	"4) Update project details",
	"5) Delete a project",
}

// ErrNoProjectSelected is reported by operations that need a current project
var ErrNoProjectSelected = errors.New("no project is selected, select a project first")

// Menu drives the project service from line-oriented input. Every failure
// is reported and the loop keeps going; blank input or end of input exits.
type Menu struct {
	svc     projectservice.Service
	in      *bufio.Scanner
	out     io.Writer
	current *models.Project
}

// New creates a menu reading selections from in and writing to out
func New(svc projectservice.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Current returns the selected project, or nil
func (m *Menu) Current() *models.Project {
	return m.current
}

// Run processes selections until the user quits
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printOperations()

		selection, ok, err := m.intInput("Enter a menu selection")
		if err != nil {
			if errors.Is(err, cli.ErrInvalidInput) {
				m.fail(err)
				continue
			}
			return err
		}
		if !ok {
			m.println("Exiting the menu.")
			return nil
		}

		switch *selection {
		case 1:
			err = m.createProject(ctx)
		case 2:
			err = m.listProjects(ctx)
		case 3:
			err = m.selectProject(ctx)
		case 4:
			err = m.updateProjectDetails(ctx)
		case 5:
			err = m.deleteProject(ctx)
		default:
			m.printf("\n%d is not a valid selection. Try again.\n", *selection)
		}

		if err != nil {
			if readErr := m.in.Err(); readErr != nil {
				return readErr
			}
			slog.Debug("menu operation failed", "selection", *selection, "error", err)
			m.fail(err)
		}
	}
}

func (m *Menu) createProject(ctx context.Context) error {
	name, _ := m.stringInput("Enter the project name")
	estimated, err := m.decimalInput("Enter the estimated hours")
	if err != nil {
		return err
	}
	actual, err := m.decimalInput("Enter the actual hours")
	if err != nil {
		return err
	}
	difficulty, _, err := m.intInput("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	notes, _ := m.stringInput("Enter the project notes")

	project := models.NewProject(name)
	project.EstimatedHours = estimated
	project.ActualHours = actual
	project.Difficulty = difficulty
	project.Notes = notes

	if err := projectservice.Validate(project); err != nil {
		return err
	}

	created, err := m.svc.AddProject(ctx, project)
	if err != nil {
		return err
	}
	m.printf("You have successfully created project: %s\n", created)
	return nil
}

func (m *Menu) listProjects(ctx context.Context) error {
	projects, err := m.svc.FetchAllProjects(ctx)
	if err != nil {
		return err
	}

	m.println("\nProjects:")
	for _, p := range projects {
		m.printf("   %d: %s\n", p.ProjectID, p.ProjectName)
	}
	return nil
}

func (m *Menu) selectProject(ctx context.Context) error {
	if err := m.listProjects(ctx); err != nil {
		return err
	}

	projectID, err := m.requiredID("Enter a project ID to select a project")
	if err != nil {
		return err
	}

	// unselect first so a failed lookup leaves nothing selected
	m.current = nil
	m.current, err = m.svc.FetchProjectByID(ctx, projectID)
	return err
}

func (m *Menu) updateProjectDetails(ctx context.Context) error {
	if m.current == nil {
		return ErrNoProjectSelected
	}
	cur := m.current

	name, _ := m.stringInput(fmt.Sprintf("Enter the project name [%s]", cur.ProjectName))
	estimated, err := m.decimalInput(fmt.Sprintf("Enter the estimated hours [%s]", models.FormatHours(cur.EstimatedHours)))
	if err != nil {
		return err
	}
	actual, err := m.decimalInput(fmt.Sprintf("Enter the actual hours [%s]", models.FormatHours(cur.ActualHours)))
	if err != nil {
		return err
	}
	difficulty, _, err := m.intInput(fmt.Sprintf("Enter the project difficulty (1-5) [%s]", models.FormatInt(cur.Difficulty)))
	if err != nil {
		return err
	}
	notes, _ := m.stringInput(fmt.Sprintf("Enter the project notes [%s]", cur.Notes))

	project := models.NewProject(keepString(name, cur.ProjectName))
	project.ProjectID = cur.ProjectID
	project.EstimatedHours = keepDecimal(estimated, cur.EstimatedHours)
	project.ActualHours = keepDecimal(actual, cur.ActualHours)
	project.Difficulty = cur.Difficulty
	if difficulty != nil {
		project.Difficulty = difficulty
	}
	project.Notes = keepString(notes, cur.Notes)

	if err := projectservice.Validate(project); err != nil {
		return err
	}
	if err := m.svc.ModifyProjectDetails(ctx, project); err != nil {
		// the selection was deleted elsewhere
		if errors.Is(err, projectservice.ErrProjectNotFound) {
			m.current = nil
		}
		return err
	}

	m.current, err = m.svc.FetchProjectByID(ctx, cur.ProjectID)
	return err
}

func (m *Menu) deleteProject(ctx context.Context) error {
	if err := m.listProjects(ctx); err != nil {
		return err
	}

	projectID, err := m.requiredID("Enter the ID of the project to delete")
	if err != nil {
		return err
	}

	if err := m.svc.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	m.printf("Project %d was deleted successfully.\n", projectID)

	if m.current != nil && m.current.ProjectID == projectID {
		m.current = nil
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════
// INPUT
// ═══════════════════════════════════════════════════════════════════

// stringInput prompts and reads one trimmed line. ok is false for blank
// input and at end of input.
func (m *Menu) stringInput(prompt string) (string, bool) {
	m.printf("%s: ", prompt)
	if !m.in.Scan() {
		return "", false
	}
	input := strings.TrimSpace(m.in.Text())
	return input, input != ""
}

func (m *Menu) intInput(prompt string) (*int, bool, error) {
	input, ok := m.stringInput(prompt)
	if !ok {
		return nil, false, m.in.Err()
	}
	n, err := cli.ParseOptionalInt(input)
	if err != nil {
		return nil, false, err
	}
	return n, true, nil
}

func (m *Menu) decimalInput(prompt string) (decimal.NullDecimal, error) {
	input, _ := m.stringInput(prompt)
	return cli.ParseHours(input)
}

func (m *Menu) requiredID(prompt string) (int, error) {
	input, ok := m.stringInput(prompt)
	if !ok {
		return 0, fmt.Errorf("%w: a project ID is required", cli.ErrInvalidInput)
	}
	return cli.ParseProjectID(input)
}

// ═══════════════════════════════════════════════════════════════════
// OUTPUT
// ═══════════════════════════════════════════════════════════════════

func (m *Menu) printOperations() {
	m.println("\nThese are the available selections. Press the Enter key to quit:")
	for _, line := range operations {
		m.println("   " + line)
	}

	if m.current == nil {
		m.println("\nYou are not working with a project.")
	} else {
		m.printf("\nYou are working with project: %s\n", m.current)
	}
}

func (m *Menu) fail(err error) {
	msg := err.Error()
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	m.printf("\nError: %s Try again.\n", msg)
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(m.out, format, a...)
}

func keepString(input, current string) string {
	if input == "" {
		return current
	}
	return input
}

func keepDecimal(input, current decimal.NullDecimal) decimal.NullDecimal {
	if !input.Valid {
		return current
	}
	return input
}
