package models

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the full aggregate, one field per line, for the menu
func (p *Project) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n   ID=%d", p.ProjectID)
	fmt.Fprintf(&b, "\n   name=%s", p.ProjectName)
	fmt.Fprintf(&b, "\n   estimatedHours=%s", orNull(FormatHours(p.EstimatedHours)))
	fmt.Fprintf(&b, "\n   actualHours=%s", orNull(FormatHours(p.ActualHours)))
	fmt.Fprintf(&b, "\n   difficulty=%s", FormatInt(p.Difficulty))
	fmt.Fprintf(&b, "\n   notes=%s", orNull(p.Notes))

	b.WriteString("\n   Materials:")
	for _, m := range p.Materials {
		b.WriteString("\n      " + m.String())
	}
	b.WriteString("\n   Steps:")
	for _, s := range p.Steps {
		b.WriteString("\n      " + s.String())
	}
	b.WriteString("\n   Categories:")
	for _, c := range p.Categories {
		b.WriteString("\n      " + c.String())
	}

	return b.String()
}

func (m *Material) String() string {
	return fmt.Sprintf("ID=%d, materialName=%s, numRequired=%s, cost=%s",
		m.MaterialID, m.MaterialName, FormatInt(m.NumRequired), orNull(FormatHours(m.Cost)))
}

func (s *Step) String() string {
	return fmt.Sprintf("ID=%d, stepOrder=%d, stepText=%s", s.StepID, s.StepOrder, s.StepText)
}

func (c *Category) String() string {
	return fmt.Sprintf("ID=%d, categoryName=%s", c.CategoryID, c.CategoryName)
}

// FormatInt renders an optional integer, or "null"
func FormatInt(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}

func orNull(s string) string {
	if s == "" {
		return "null"
	}
	return s
}
