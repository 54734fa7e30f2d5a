package models

import "github.com/shopspring/decimal"

// Material is something a project needs to buy or gather.
type Material struct {
	MaterialID   int
	ProjectID    int
	MaterialName string
	NumRequired  *int
	Cost         decimal.NullDecimal
}
