package models

import (
	"errors"
	"strings"

	"github.com/billtrail/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillStatus is the payment state of a bill. Callers set it explicitly,
// it is never derived from the due date.
type BillStatus string

const (
	BillStatusPaid     BillStatus = "paid"
	BillStatusOverdue  BillStatus = "overdue"
	BillStatusUpcoming BillStatus = "upcoming"
	BillStatusDueSoon  BillStatus = "due_soon"
)

// BillStatuses lists all statuses in display order.
var BillStatuses = []BillStatus{BillStatusPaid, BillStatusOverdue, BillStatusUpcoming, BillStatusDueSoon}

var ErrBillStatusInvalid = errors.New("the bill status must be one of paid, overdue, upcoming or due_soon")

// Valid reports if s is a known status.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPaid, BillStatusOverdue, BillStatusUpcoming, BillStatusDueSoon:
		return true
	}

	return false
}

// UnknownBill is the name used when a reference points to a bill that
// does not exist.
const UnknownBill = "Unknown bill"

// Bill is a payment obligation of the user.
type Bill struct {
	ID            uuid.UUID       `json:"id" example:"0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`
	Name          string          `json:"name" example:"Electricity Bill"`
	Amount        decimal.Decimal `json:"amount" example:"1500"`
	DueDate       types.Date      `json:"dueDate" example:"2024-06-05"`
	Category      string          `json:"category" example:"Utilities"`
	Status        BillStatus      `json:"status" example:"upcoming"`
	PaymentMethod string          `json:"paymentMethod,omitempty" example:"UPI"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     types.Date      `json:"createdAt" example:"2024-05-20"`
	UpdatedAt     types.Date      `json:"updatedAt" example:"2024-05-20"`
}

// Normalize trims whitespace from all free text fields.
func (b *Bill) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Category = strings.TrimSpace(b.Category)
	b.PaymentMethod = strings.TrimSpace(b.PaymentMethod)
	b.Description = strings.TrimSpace(b.Description)
}

// Validate checks the invariants of a bill.
func (b Bill) Validate() error {
	if b.Name == "" {
		return ErrNameEmpty
	}

	if err := ValidateAmount(b.Amount); err != nil {
		return err
	}

	if !b.Status.Valid() {
		return ErrBillStatusInvalid
	}

	if b.DueDate.IsZero() {
		return ErrDueDateMissing
	}

	if b.UpdatedAt.Before(b.CreatedAt) {
		return ErrTimestampsOutOfOrder
	}

	return nil
}

// FindBill returns the bill with the given ID and whether it was found.
func FindBill(bills []Bill, id uuid.UUID) (Bill, bool) {
	for _, b := range bills {
		if b.ID == id {
			return b, true
		}
	}

	return Bill{}, false
}

// BillName resolves a soft reference to a bill to its name.
// Dangling references resolve to UnknownBill.
func BillName(bills []Bill, id uuid.UUID) string {
	b, ok := FindBill(bills, id)
	if !ok {
		return UnknownBill
	}

	return b.Name
}
