// Package analytics computes derived views over bills and budgets.
//
// All functions are pure. They never modify their input and return the
// same result for the same input.
package analytics

import (
	"fmt"

	"github.com/billtrail/backend/internal/models"
	"github.com/shopspring/decimal"
)

// StatusCounts counts bills per status.
type StatusCounts struct {
	Paid     int `json:"paid" example:"1"`
	Overdue  int `json:"overdue" example:"1"`
	Upcoming int `json:"upcoming" example:"2"`
	DueSoon  int `json:"due_soon" example:"2"`
}

// Summary holds totals over a collection of bills.
type Summary struct {
	TotalBills int             `json:"totalBills" example:"6"`
	AmountPaid decimal.Decimal `json:"amountPaid" example:"850"`
	AmountDue  decimal.Decimal `json:"amountDue" example:"29050"`

	// BillsByCategory counts bills by status, not by category. The name is
	// kept for compatibility with existing clients. See CategoryBreakdown
	// for totals per category.
	BillsByCategory StatusCounts `json:"billsByCategory"`
}

// checkAmount rejects amounts that are not positive.
func checkAmount(bill models.Bill) error {
	if !bill.Amount.IsPositive() {
		return fmt.Errorf("%w, bill %q has %s", models.ErrAmountNotPositive, bill.Name, bill.Amount)
	}

	return nil
}

// Summarize counts the bills and sums their amounts by payment state.
func Summarize(bills []models.Bill) (Summary, error) {
	s := Summary{
		TotalBills: len(bills),
		AmountPaid: decimal.Zero,
		AmountDue:  decimal.Zero,
	}

	for _, bill := range bills {
		if err := checkAmount(bill); err != nil {
			return Summary{}, err
		}

		if bill.Status == models.BillStatusPaid {
			s.AmountPaid = s.AmountPaid.Add(bill.Amount)
		} else {
			s.AmountDue = s.AmountDue.Add(bill.Amount)
		}

		switch bill.Status {
		case models.BillStatusPaid:
			s.BillsByCategory.Paid++
		case models.BillStatusOverdue:
			s.BillsByCategory.Overdue++
		case models.BillStatusUpcoming:
			s.BillsByCategory.Upcoming++
		case models.BillStatusDueSoon:
			s.BillsByCategory.DueSoon++
		}
	}

	return s, nil
}
