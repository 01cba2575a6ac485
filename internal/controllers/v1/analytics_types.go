package v1

import (
	"github.com/billtrail/backend/internal/analytics"
)

type SummaryResponse struct {
	Data  *analytics.Summary `json:"data"`                                                                          // Totals over all bills
	Error *string            `json:"error" example:"stored data is malformed: bills: unexpected end of JSON input"` // The error, if any occurred
}

type BudgetAnalyticsResponse struct {
	Data  []analytics.Analytics `json:"data"`                                                                // One entry per budget of the period
	Error *string               `json:"error" example:"the period must be one of weekly, monthly or yearly"` // The error, if any occurred
}

type InsightsResponse struct {
	Data  []string `json:"data"`                                                                // Advice for the user
	Error *string  `json:"error" example:"the period must be one of weekly, monthly or yearly"` // The error, if any occurred
}

type CategoryBreakdownResponse struct {
	Data  []analytics.CategoryTotal `json:"data"`                                                                          // Totals per category, sorted by category
	Error *string                   `json:"error" example:"stored data is malformed: bills: unexpected end of JSON input"` // The error, if any occurred
}

// AnalyticsQuery selects the budgets and bills that analytics are computed for.
type AnalyticsQuery struct {
	Period   string `form:"period" example:"monthly"` // Period of the budgets. Defaults to monthly
	Windowed bool   `form:"windowed" example:"true"`  // Only count bills due in the current period
}

type Payments struct {
	Recent   []Bill `json:"recent"`   // Paid bills, most recently updated first
	Upcoming []Bill `json:"upcoming"` // Bills that are not paid, sorted by due date
}

type PaymentsResponse struct {
	Data  *Payments `json:"data"`                                                                          // Payment overview
	Error *string   `json:"error" example:"stored data is malformed: bills: unexpected end of JSON input"` // The error, if any occurred
}

type PaymentsQuery struct {
	Limit int `form:"limit" example:"10"` // Maximum number of recent payments. Defaults to 10, 0 or less returns all
}

// defaultPaymentsLimit is the number of recent payments returned when no limit is set.
const defaultPaymentsLimit = 10
