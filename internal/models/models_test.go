package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// ============================================================================
// Hours Tests
// ============================================================================

func TestHours_RoundsToTwoPlaces(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12.5", "12.50"},
		{"4", "4.00"},
		{"3.456", "3.46"},
		{"0.004", "0.00"},
	}

	for _, tt := range tests {
		got := Hours(decimal.RequireFromString(tt.input))
		if !got.Valid {
			t.Fatalf("Hours(%s) should be valid", tt.input)
		}
		if got.Decimal.Exponent() != -HoursScale {
			t.Errorf("Hours(%s) exponent = %d, want %d", tt.input, got.Decimal.Exponent(), -HoursScale)
		}
		if s := FormatHours(got); s != tt.expected {
			t.Errorf("FormatHours(Hours(%s)) = %q, want %q", tt.input, s, tt.expected)
		}
	}
}

func TestNormalizeHours_KeepsNull(t *testing.T) {
	got := NormalizeHours(decimal.NullDecimal{})
	if got.Valid {
		t.Error("NULL hours should stay NULL")
	}
	if FormatHours(got) != "" {
		t.Errorf("FormatHours(NULL) = %q, want empty", FormatHours(got))
	}
}

// ============================================================================
// Project Tests
// ============================================================================

func TestNewProject_EmptyChildren(t *testing.T) {
	p := NewProject("Build shed")

	if p.Materials == nil || p.Steps == nil || p.Categories == nil {
		t.Fatal("child collections should be empty, not nil")
	}
	if p.HasChildren() {
		t.Error("new project should have no children")
	}
	if p.GetID() != 0 {
		t.Errorf("new project id = %d, want 0", p.GetID())
	}
}

func TestProjectString(t *testing.T) {
	difficulty := 3
	p := NewProject("Hang a door")
	p.ProjectID = 1
	p.EstimatedHours = Hours(decimal.RequireFromString("4"))
	p.Difficulty = &difficulty
	p.Steps = append(p.Steps, &Step{StepID: 2, StepOrder: 1, StepText: "Screw hangers into frame"})
	p.Categories = append(p.Categories, &Category{CategoryID: 5, CategoryName: "Repairs"})

	s := p.String()

	for _, want := range []string{
		"ID=1",
		"name=Hang a door",
		"estimatedHours=4.00",
		"actualHours=null",
		"difficulty=3",
		"notes=null",
		"stepOrder=1, stepText=Screw hangers into frame",
		"categoryName=Repairs",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	if !p.HasChildren() {
		t.Error("project with steps should report children")
	}
}
