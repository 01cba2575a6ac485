package v1

import (
	"fmt"
	"strings"

	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BillEditable struct {
	Name          string            `json:"name" example:"Electricity Bill"`                                  // Name of the bill
	Amount        decimal.Decimal   `json:"amount" example:"1500" minimum:"1"`                                // Amount to pay, a positive whole number
	DueDate       types.Date        `json:"dueDate" example:"2024-06-05"`                                     // Date the bill is due
	Category      string            `json:"category" example:"Utilities"`                                     // Category of the bill. Guessed from the name when empty on creation
	Status        models.BillStatus `json:"status" example:"upcoming" enums:"paid,overdue,upcoming,due_soon"` // Payment status. Defaults to upcoming on creation
	PaymentMethod string            `json:"paymentMethod,omitempty" example:"UPI"`                            // How the bill is paid
	Description   string            `json:"description,omitempty" example:"Flat 4B"`                          // A longer description of the bill
}

// model returns the bill for the editable fields
func (editable BillEditable) model() models.Bill {
	return models.Bill{
		Name:          editable.Name,
		Amount:        editable.Amount,
		DueDate:       editable.DueDate,
		Category:      editable.Category,
		Status:        editable.Status,
		PaymentMethod: editable.PaymentMethod,
		Description:   editable.Description,
	}
}

type BillLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/bills/0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`                           // The bill itself
	Reminders      string `json:"reminders" example:"https://example.com/api/v1/reminders?bill=0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`             // Reminders for the bill
	SmartReminders string `json:"smartReminders" example:"https://example.com/api/v1/bills/0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f/smart-reminders"` // Endpoint to schedule reminders ahead of the due date
}

// Bill is the API v1 representation of a bill.
type Bill struct {
	models.Bill
	Links BillLinks `json:"links"`
}

func newBill(c *gin.Context, model models.Bill) Bill {
	url := httputil.APIURL(c)

	return Bill{
		Bill: model,
		Links: BillLinks{
			Self:           fmt.Sprintf("%s/v1/bills/%s", url, model.ID),
			Reminders:      fmt.Sprintf("%s/v1/reminders?bill=%s", url, model.ID),
			SmartReminders: fmt.Sprintf("%s/v1/bills/%s/smart-reminders", url, model.ID),
		},
	}
}

func newBills(c *gin.Context, bills []models.Bill) []Bill {
	apiResources := make([]Bill, 0, len(bills))
	for _, m := range bills {
		apiResources = append(apiResources, newBill(c, m))
	}

	return apiResources
}

type BillListResponse struct {
	Data       []Bill      `json:"data"`                                                          // List of bills
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BillCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BillResponse `json:"data"`                                                          // List of created bills
}

func (b *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BillResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Data  *Bill   `json:"data"`                                                          // Data for the bill
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this bill
}

type BillStatusEditable struct {
	Status models.BillStatus `json:"status" example:"paid" enums:"paid,overdue,upcoming,due_soon"` // The new payment status
}

type BillQueryFilter struct {
	Status   string `form:"status"`   // By payment status
	Category string `form:"category"` // By category
	Search   string `form:"search"`   // By string in name or description, case insensitive
	Offset   uint   `form:"offset"`   // The offset of the first bill returned. Defaults to 0.
	Limit    int    `form:"limit"`    // Maximum number of bills to return. Defaults to 50.
}

// matches reports if the bill passes the filter.
func (f BillQueryFilter) matches(bill models.Bill) bool {
	if f.Status != "" && bill.Status != models.BillStatus(f.Status) {
		return false
	}

	if f.Category != "" && bill.Category != f.Category {
		return false
	}

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(bill.Name), search) && !strings.Contains(strings.ToLower(bill.Description), search) {
			return false
		}
	}

	return true
}
