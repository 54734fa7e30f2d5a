package models

import "github.com/shopspring/decimal"

// HoursScale is the number of fractional digits kept for hours and costs
const HoursScale = 2

// Hours normalizes a decimal to two fractional digits.
func Hours(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d.Round(HoursScale), Valid: true}
}

// NormalizeHours rounds a nullable decimal to two fractional digits, keeping NULL as NULL.
func NormalizeHours(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return Hours(d.Decimal)
}

// FormatHours renders a nullable decimal with exactly two fractional digits, or "" when NULL.
func FormatHours(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(HoursScale)
}
