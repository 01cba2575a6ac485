package analytics

import (
	"fmt"

	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status is how much of a budget has been used.
type Status string

const (
	StatusUnder Status = "under"
	StatusNear  Status = "near"
	StatusOver  Status = "over"
)

// Analytics compares a budget to what has been spent in its category.
type Analytics struct {
	Category  string          `json:"category" example:"Utilities"`
	Budgeted  decimal.Decimal `json:"budgeted" example:"5000"`
	Spent     decimal.Decimal `json:"spent" example:"850"`
	Remaining decimal.Decimal `json:"remaining" example:"4150"`
	Status    Status          `json:"status" example:"under"`
}

var (
	nearNumerator   = decimal.NewFromInt(8)
	nearDenominator = decimal.NewFromInt(10)
)

// status returns over when spent is at least budgeted, near when it is
// at least 80% of budgeted, and under otherwise. A zero budget is always under.
func status(budgeted, spent decimal.Decimal) Status {
	if budgeted.IsZero() {
		return StatusUnder
	}

	if spent.GreaterThanOrEqual(budgeted) {
		return StatusOver
	}

	if spent.Mul(nearDenominator).GreaterThanOrEqual(budgeted.Mul(nearNumerator)) {
		return StatusNear
	}

	return StatusUnder
}

type options struct {
	windowed bool
	today    types.Date
}

// Option configures BudgetAnalytics.
type Option func(*options)

// Windowed only counts paid bills whose due date falls into the period
// of the budget that contains today, e.g. the current calendar month for
// monthly budgets.
//
// Without it, every paid bill of the category counts, regardless of
// when it was due.
func Windowed(today types.Date) Option {
	return func(o *options) {
		o.windowed = true
		o.today = today
	}
}

// BudgetAnalytics returns one entry per budget of the given period, in
// budget order.
//
// Spent is the sum of all paid bills in the budget's category. Budgets
// for the same category and period are not merged.
func BudgetAnalytics(budgets []models.Budget, bills []models.Bill, period types.Period, opts ...Option) ([]Analytics, error) {
	if !period.Valid() {
		return nil, types.ErrInvalidPeriod
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	spent := make(map[string]decimal.Decimal)
	for _, bill := range bills {
		if err := checkAmount(bill); err != nil {
			return nil, err
		}

		if bill.Status != models.BillStatusPaid {
			continue
		}

		if o.windowed && !period.Contains(o.today, bill.DueDate) {
			continue
		}

		spent[bill.Category] = spent[bill.Category].Add(bill.Amount)
	}

	result := []Analytics{}
	for _, budget := range budgets {
		if budget.Period != period {
			continue
		}

		if budget.Amount.IsNegative() {
			return nil, fmt.Errorf("%w, budget for %q has %s", models.ErrAmountNotPositive, budget.Category, budget.Amount)
		}

		s := spent[budget.Category]
		result = append(result, Analytics{
			Category:  budget.Category,
			Budgeted:  budget.Amount,
			Spent:     s,
			Remaining: budget.Amount.Sub(s),
			Status:    status(budget.Amount, s),
		})
	}

	return result, nil
}

// PercentUsed returns the share of the budget that has been spent, in
// percent rounded to the nearest integer. It is zero for a zero budget.
func (a Analytics) PercentUsed() int64 {
	if a.Budgeted.IsZero() {
		return 0
	}

	return a.Spent.Mul(decimal.NewFromInt(100)).Div(a.Budgeted).Round(0).IntPart()
}
