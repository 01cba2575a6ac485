package v1

import (
	"net/http"

	"github.com/billtrail/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetRoot)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", co.OptionsRoot)

	co.RegisterBillRoutes(r.Group("/bills"))
	co.RegisterReminderRoutes(r.Group("/reminders"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterHistoryRoutes(r.Group("/history"))
	co.RegisterProfileRoutes(r.Group("/profile"))
	co.RegisterFeedbackRoutes(r.Group("/feedbacks"))
	co.RegisterChatRoutes(r.Group("/chat"))
	co.RegisterExportRoutes(r.Group("/export"))
	co.RegisterAnalyticsRoutes(r)
	co.RegisterImportRoutes(r)
}

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Bills             string `json:"bills" example:"https://example.com/api/v1/bills"`                      // URL of Bill collection endpoint
	Reminders         string `json:"reminders" example:"https://example.com/api/v1/reminders"`              // URL of Reminder collection endpoint
	Budgets           string `json:"budgets" example:"https://example.com/api/v1/budgets"`                  // URL of Budget collection endpoint
	Summary           string `json:"summary" example:"https://example.com/api/v1/summary"`                  // URL of the dashboard summary
	BudgetAnalytics   string `json:"budgetAnalytics" example:"https://example.com/api/v1/budget-analytics"` // URL of the budget analytics
	Insights          string `json:"insights" example:"https://example.com/api/v1/insights"`                // URL of the spending insights
	CategoryBreakdown string `json:"categoryBreakdown" example:"https://example.com/api/v1/categories"`     // URL of the spending per category
	Payments          string `json:"payments" example:"https://example.com/api/v1/payments"`                // URL of recent and upcoming payments
	History           string `json:"history" example:"https://example.com/api/v1/history"`                  // URL of the bill history
	Classify          string `json:"classify" example:"https://example.com/api/v1/classify"`                // URL of the classification endpoint
	Uploads           string `json:"uploads" example:"https://example.com/api/v1/uploads"`                  // URL of the document upload endpoint
	EmailImport       string `json:"emailImport" example:"https://example.com/api/v1/email-import"`         // URL of the email import endpoint
	Profile           string `json:"profile" example:"https://example.com/api/v1/profile"`                  // URL of the profile
	Feedbacks         string `json:"feedbacks" example:"https://example.com/api/v1/feedbacks"`              // URL of Feedback collection endpoint
	Chat              string `json:"chat" example:"https://example.com/api/v1/chat"`                        // URL of the support chat
	Export            string `json:"export" example:"https://example.com/api/v1/export"`                    // URL of the data export
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func (co Controller) GetRoot(c *gin.Context) {
	url := httputil.APIURL(c) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Bills:             url + "/bills",
			Reminders:         url + "/reminders",
			Budgets:           url + "/budgets",
			Summary:           url + "/summary",
			BudgetAnalytics:   url + "/budget-analytics",
			Insights:          url + "/insights",
			CategoryBreakdown: url + "/categories",
			Payments:          url + "/payments",
			History:           url + "/history",
			Classify:          url + "/classify",
			Uploads:           url + "/uploads",
			EmailImport:       url + "/email-import",
			Profile:           url + "/profile",
			Feedbacks:         url + "/feedbacks",
			Chat:              url + "/chat",
			Export:            url + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all bills, reminders, budgets, feedbacks and the profile
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	if err := co.Store.Reset(c); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
