package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/models"
)

// ParseProjectID parses a positive project id
func ParseProjectID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: project ID must be a positive integer, got %q", ErrInvalidInput, s)
	}
	return id, nil
}

// ParseHours parses an optional decimal and rounds it to two places.
// Blank input means no value.
func ParseHours(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s is not a valid decimal number", ErrInvalidInput, s)
	}
	return models.Hours(d), nil
}

// ParseOptionalInt parses an optional integer. Blank input means no value.
func ParseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid number", ErrInvalidInput, s)
	}
	return &n, nil
}
