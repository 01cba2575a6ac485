package v1

import (
	"fmt"

	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string          `json:"category" example:"Utilities"`                           // Category the budget applies to
	Amount   decimal.Decimal `json:"amount" example:"5000" minimum:"1"`                      // Spending ceiling, a positive whole number
	Period   types.Period    `json:"period" example:"monthly" enums:"weekly,monthly,yearly"` // Period the budget applies to
}

// model returns the budget for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
		Period:   editable.Period,
	}
}

// apply sets the fields of the budget that are named in fields.
func (editable BudgetEditable) apply(m *models.Budget, fields []string) {
	for _, field := range fields {
		switch field {
		case "category":
			m.Category = editable.Category
		case "amount":
			m.Amount = editable.Amount
		case "period":
			m.Period = editable.Period
		}
	}
}

type BudgetLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
	Analytics string `json:"analytics" example:"https://example.com/api/v1/budget-analytics?period=monthly"`         // Analytics for all budgets of the same period
}

// Budget is the API v1 representation of a budget.
type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := httputil.APIURL(c)

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self:      fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Analytics: fmt.Sprintf("%s/v1/budget-analytics?period=%s", url, model.Period),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
}

type BudgetQueryFilter struct {
	Category string `form:"category"` // By category
	Period   string `form:"period"`   // By period
	Offset   uint   `form:"offset"`   // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit"`    // Maximum number of budgets to return. Defaults to 50.
}
