package models

import (
	"strings"

	"github.com/billtrail/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category in one period.
//
// Several budgets for the same category and period are allowed.
type Budget struct {
	DefaultModel
	Category string          `json:"category" example:"Utilities"`
	Amount   decimal.Decimal `json:"amount" example:"5000"`
	Period   types.Period    `json:"period" example:"monthly"`
}

func (b *Budget) Normalize() {
	b.Category = strings.TrimSpace(b.Category)
}

// Validate checks the invariants of a budget.
func (b Budget) Validate() error {
	if b.Category == "" {
		return ErrCategoryEmpty
	}

	if err := ValidateAmount(b.Amount); err != nil {
		return err
	}

	if !b.Period.Valid() {
		return types.ErrInvalidPeriod
	}

	return b.Timestamps.validate()
}
