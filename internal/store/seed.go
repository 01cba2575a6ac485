package store

import (
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DemoBills returns the demo bills relative to today.
func DemoBills(today types.Date) []models.Bill {
	bill := func(name string, amount int64, due int, category string, status models.BillStatus, method string, created, updated int) models.Bill {
		return models.Bill{
			Name:          name,
			Amount:        decimal.NewFromInt(amount),
			DueDate:       today.AddDays(due),
			Category:      category,
			Status:        status,
			PaymentMethod: method,
			CreatedAt:     today.AddDays(-created),
			UpdatedAt:     today.AddDays(-updated),
		}
	}

	return []models.Bill{
		bill("Electricity Bill", 1500, 5, "Utilities", models.BillStatusDueSoon, "Credit Card", 10, 10),
		bill("Water Bill", 750, 12, "Utilities", models.BillStatusUpcoming, "Bank Transfer", 8, 8),
		bill("Internet Bill", 1200, -2, "Utilities", models.BillStatusOverdue, "UPI", 32, 32),
		bill("Phone Bill", 850, -5, "Utilities", models.BillStatusPaid, "UPI", 35, 5),
		bill("House Rent", 25000, 3, "Housing", models.BillStatusDueSoon, "Bank Transfer", 7, 7),
		bill("DTH Subscription", 600, 15, "Entertainment", models.BillStatusUpcoming, "Credit Card", 15, 15),
	}
}
