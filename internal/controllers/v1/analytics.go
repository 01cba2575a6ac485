package v1

import (
	"net/http"

	"github.com/billtrail/backend/internal/analytics"
	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/insights"
	"github.com/billtrail/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterAnalyticsRoutes registers the routes for computed views over
// bills and budgets with the RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", co.OptionsAnalytics)
	r.GET("/summary", co.GetSummary)
	r.OPTIONS("/budget-analytics", co.OptionsAnalytics)
	r.GET("/budget-analytics", co.GetBudgetAnalytics)
	r.OPTIONS("/insights", co.OptionsAnalytics)
	r.GET("/insights", co.GetInsights)
	r.OPTIONS("/categories", co.OptionsAnalytics)
	r.GET("/categories", co.GetCategoryBreakdown)
	r.OPTIONS("/payments", co.OptionsAnalytics)
	r.GET("/payments", co.GetPayments)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/summary [options]
// @Router			/v1/budget-analytics [options]
// @Router			/v1/insights [options]
// @Router			/v1/categories [options]
// @Router			/v1/payments [options]
func (co Controller) OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Bill summary
// @Description	Returns the number of bills, the amounts paid and due and the number of bills per status
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	bills, err := co.Store.Bills().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary, err := analytics.Summarize(bills)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, SummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// budgetAnalytics computes the analytics for the query of the request.
func (co Controller) budgetAnalytics(c *gin.Context) ([]analytics.Analytics, int, error) {
	var query AnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, http.StatusBadRequest, httputil.ErrInvalidQuery
	}

	period := types.PeriodMonthly
	if slices.Contains(httputil.GetURLFields(c.Request.URL, query), "Period") {
		p, err := types.ParsePeriod(query.Period)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		period = p
	}

	budgets, err := co.Store.Budgets().List(c)
	if err != nil {
		return nil, status(err), err
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		return nil, status(err), err
	}

	var opts []analytics.Option
	if query.Windowed {
		opts = append(opts, analytics.Windowed(co.today()))
	}

	result, err := analytics.BudgetAnalytics(budgets, bills, period, opts...)
	if err != nil {
		// The period is valid, so this is about stored data
		return nil, http.StatusInternalServerError, err
	}

	return result, http.StatusOK, nil
}

// @Summary		Budget analytics
// @Description	Compares every budget of the period to the paid bills of its category
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	BudgetAnalyticsResponse
// @Failure		400			{object}	BudgetAnalyticsResponse
// @Failure		500			{object}	BudgetAnalyticsResponse
// @Param			period		query		string	false	"Period of the budgets, one of weekly, monthly or yearly. Defaults to monthly."
// @Param			windowed	query		bool	false	"Only count paid bills due in the current period"
// @Router			/v1/budget-analytics [get]
func (co Controller) GetBudgetAnalytics(c *gin.Context) {
	result, code, err := co.budgetAnalytics(c)
	if err != nil {
		e := err.Error()
		c.JSON(code, BudgetAnalyticsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetAnalyticsResponse{Data: result})
}

// @Summary		Insights
// @Description	Returns advice based on the budget analytics. Always returns at least three entries.
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	InsightsResponse
// @Failure		400			{object}	InsightsResponse
// @Failure		500			{object}	InsightsResponse
// @Param			period		query		string	false	"Period of the budgets, one of weekly, monthly or yearly. Defaults to monthly."
// @Param			windowed	query		bool	false	"Only count paid bills due in the current period"
// @Router			/v1/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	result, code, err := co.budgetAnalytics(c)
	if err != nil {
		e := err.Error()
		c.JSON(code, InsightsResponse{Error: &e})
		return
	}

	formatter, err := co.formatter(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InsightsResponse{Error: &e})
		return
	}

	generator := insights.Generator{
		Source:    co.Source,
		Formatter: formatter,
	}

	c.JSON(http.StatusOK, InsightsResponse{Data: generator.Generate(result)})
}

// @Summary		Category breakdown
// @Description	Returns the number of bills and the amounts per category
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	CategoryBreakdownResponse
// @Failure		500	{object}	CategoryBreakdownResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	bills, err := co.Store.Bills().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryBreakdownResponse{Error: &e})
		return
	}

	breakdown, err := analytics.CategoryBreakdown(bills)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, CategoryBreakdownResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryBreakdownResponse{Data: breakdown})
}

// @Summary		Payments
// @Description	Returns the most recent payments and all bills that still need to be paid
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	PaymentsResponse
// @Failure		400		{object}	PaymentsResponse
// @Failure		500		{object}	PaymentsResponse
// @Param			limit	query		int	false	"Maximum number of recent payments. Defaults to 10."
// @Router			/v1/payments [get]
func (co Controller) GetPayments(c *gin.Context) {
	var query PaymentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, PaymentsResponse{Error: &e})
		return
	}

	limit := defaultPaymentsLimit
	if slices.Contains(httputil.GetURLFields(c.Request.URL, query), "Limit") {
		limit = query.Limit
	}

	bills, err := co.Store.Bills().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, PaymentsResponse{
		Data: &Payments{
			Recent:   newBills(c, analytics.RecentPayments(bills, limit)),
			Upcoming: newBills(c, analytics.Upcoming(bills)),
		},
	})
}
