package analytics

import (
	"github.com/billtrail/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RecentPayments returns up to n paid bills, most recently updated first.
// n <= 0 returns all paid bills.
func RecentPayments(bills []models.Bill, n int) []models.Bill {
	paid := []models.Bill{}
	for _, bill := range bills {
		if bill.Status == models.BillStatusPaid {
			paid = append(paid, bill)
		}
	}

	slices.SortStableFunc(paid, func(a, b models.Bill) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	if n > 0 && len(paid) > n {
		paid = paid[:n]
	}

	return paid
}

// Upcoming returns all bills that are not paid, sorted by due date.
func Upcoming(bills []models.Bill) []models.Bill {
	open := []models.Bill{}
	for _, bill := range bills {
		if bill.Status != models.BillStatusPaid {
			open = append(open, bill)
		}
	}

	SortByDueDate(open)
	return open
}

// SortByDueDate sorts bills by due date, earliest first. Bills due on the
// same day keep their order.
func SortByDueDate(bills []models.Bill) {
	slices.SortStableFunc(bills, func(a, b models.Bill) int {
		return a.DueDate.Compare(b.DueDate)
	})
}
