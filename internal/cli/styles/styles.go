// Package styles holds the lipgloss styles shared by the human-readable
// project output
package styles

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/projects/internal/config"
	"github.com/thenoetrevino/projects/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Difficulty:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Materials", "Steps"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	plainNotes bool
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	plainNotes = colors.Preset == "monochrome"
}

// ═══════════════════════════════════════════════════════════════════
// NOTES RENDERING
// ═══════════════════════════════════════════════════════════════════

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	key := width
	if plainNotes {
		key = -width
	}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := glamour.WithAutoStyle()
	if plainNotes {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderNotes renders project notes as markdown, falling back to the raw
// text when rendering fails
func RenderNotes(notes string, width int) string {
	if notes == "" {
		return SubtitleStyle.Italic(true).Render("No notes")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return notes
	}
	rendered, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(rendered)
}

// ═══════════════════════════════════════════════════════════════════
// PROJECT CARD
// ═══════════════════════════════════════════════════════════════════

// RenderProjectCard renders the full aggregate inside a bordered card
func RenderProjectCard(p *models.Project) string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", p.ProjectID, p.ProjectName)))
	content.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			value = SubtitleStyle.Render("-")
		} else {
			value = ValueStyle.Render(value)
		}
		content.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render(label), value))
	}
	field("Estimated hours:", models.FormatHours(p.EstimatedHours))
	field("Actual hours:", models.FormatHours(p.ActualHours))
	difficulty := ""
	if p.Difficulty != nil {
		difficulty = fmt.Sprintf("%d / 5", *p.Difficulty)
	}
	field("Difficulty:", difficulty)

	content.WriteString(SectionStyle.Render("Notes"))
	content.WriteString("\n")
	content.WriteString(RenderNotes(p.Notes, CardWidth-8))
	content.WriteString("\n")

	if len(p.Materials) > 0 {
		content.WriteString(SectionStyle.Render("Materials"))
		content.WriteString("\n")
		for _, m := range p.Materials {
			line := "• " + m.MaterialName
			if m.NumRequired != nil {
				line += fmt.Sprintf(" ×%d", *m.NumRequired)
			}
			if m.Cost.Valid {
				line += " @ " + models.FormatHours(m.Cost)
			}
			content.WriteString("  " + ValueStyle.Render(line) + "\n")
		}
	}

	if len(p.Steps) > 0 {
		content.WriteString(SectionStyle.Render("Steps"))
		content.WriteString("\n")
		for _, s := range p.Steps {
			content.WriteString(fmt.Sprintf("  %s %s\n", LabelStyle.Render(fmt.Sprintf("%d.", s.StepOrder)), ValueStyle.Render(s.StepText)))
		}
	}

	if len(p.Categories) > 0 {
		content.WriteString(SectionStyle.Render("Categories"))
		content.WriteString("\n")
		chips := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			chips = append(chips, LabelStyle.Render("["+c.CategoryName+"]"))
		}
		content.WriteString("  " + strings.Join(chips, " ") + "\n")
	}

	return CardStyle.Render(strings.TrimRight(content.String(), "\n"))
}
