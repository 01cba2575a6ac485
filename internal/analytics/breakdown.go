package analytics

import (
	"github.com/billtrail/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the number and sum of bills in one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Utilities"`
	Count    int             `json:"count" example:"4"`
	Total    decimal.Decimal `json:"total" example:"4300"`
	Paid     decimal.Decimal `json:"paid" example:"850"`
	Due      decimal.Decimal `json:"due" example:"3450"`
}

// CategoryBreakdown totals bills per category. Categories are sorted by name.
func CategoryBreakdown(bills []models.Bill) ([]CategoryTotal, error) {
	index := make(map[string]int)
	totals := []CategoryTotal{}

	for _, bill := range bills {
		if err := checkAmount(bill); err != nil {
			return nil, err
		}

		i, ok := index[bill.Category]
		if !ok {
			i = len(totals)
			index[bill.Category] = i
			totals = append(totals, CategoryTotal{
				Category: bill.Category,
				Total:    decimal.Zero,
				Paid:     decimal.Zero,
				Due:      decimal.Zero,
			})
		}

		t := &totals[i]
		t.Count++
		t.Total = t.Total.Add(bill.Amount)
		if bill.Status == models.BillStatusPaid {
			t.Paid = t.Paid.Add(bill.Amount)
		} else {
			t.Due = t.Due.Add(bill.Amount)
		}
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		switch {
		case a.Category < b.Category:
			return -1
		case a.Category > b.Category:
			return 1
		}
		return 0
	})

	return totals, nil
}
