package v1_test

import (
	"net/http"
	"testing"

	"github.com/billtrail/backend/internal/analytics"
	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/insights"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createAnalyticsFixtures creates two paid utility bills in different
// months, an upcoming and an overdue bill and budgets for utilities and
// housing.
func (suite *TestSuiteStandard) createAnalyticsFixtures() {
	_ = suite.createTestBill(v1.BillEditable{Name: "Electricity Bill", Amount: decimal.NewFromInt(1500), Category: "Utilities", Status: models.BillStatusPaid, DueDate: types.NewDate(2024, 5, 10)})
	_ = suite.createTestBill(v1.BillEditable{Name: "Water Bill", Amount: decimal.NewFromInt(750), Category: "Utilities", Status: models.BillStatusPaid, DueDate: types.NewDate(2024, 4, 10)})
	_ = suite.createTestBill(v1.BillEditable{Name: "Rent", Amount: decimal.NewFromInt(25000), Category: "Housing", DueDate: types.NewDate(2024, 6, 1)})
	_ = suite.createTestBill(v1.BillEditable{Name: "Internet", Amount: decimal.NewFromInt(999), Category: "Utilities", Status: models.BillStatusOverdue, DueDate: types.NewDate(2024, 5, 1)})

	_ = suite.createTestBudget(v1.BudgetEditable{Category: "Utilities", Amount: decimal.NewFromInt(2000)})
	_ = suite.createTestBudget(v1.BudgetEditable{Category: "Housing", Amount: decimal.NewFromInt(50000)})
	_ = suite.createTestBudget(v1.BudgetEditable{Category: "Utilities", Amount: decimal.NewFromInt(20000), Period: types.PeriodYearly})
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.createAnalyticsFixtures()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(4, response.Data.TotalBills)
	suite.Assert().True(decimal.NewFromInt(2250).Equal(response.Data.AmountPaid), response.Data.AmountPaid.String())
	suite.Assert().True(decimal.NewFromInt(25999).Equal(response.Data.AmountDue), response.Data.AmountDue.String())
	suite.Assert().Equal(analytics.StatusCounts{Paid: 2, Overdue: 1, Upcoming: 1}, response.Data.BillsByCategory)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(0, response.Data.TotalBills)
	suite.Assert().True(response.Data.AmountPaid.IsZero())
	suite.Assert().True(response.Data.AmountDue.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetAnalytics() {
	suite.createAnalyticsFixtures()

	tests := []struct {
		name     string
		query    string
		expected []analytics.Analytics
	}{
		{
			"Default period",
			"",
			[]analytics.Analytics{
				{Category: "Utilities", Budgeted: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(2250), Remaining: decimal.NewFromInt(-250), Status: analytics.StatusOver},
				{Category: "Housing", Budgeted: decimal.NewFromInt(50000), Spent: decimal.Zero, Remaining: decimal.NewFromInt(50000), Status: analytics.StatusUnder},
			},
		},
		{
			"Windowed",
			"period=monthly&windowed=true",
			[]analytics.Analytics{
				{Category: "Utilities", Budgeted: decimal.NewFromInt(2000), Spent: decimal.NewFromInt(1500), Remaining: decimal.NewFromInt(500), Status: analytics.StatusUnder},
				{Category: "Housing", Budgeted: decimal.NewFromInt(50000), Spent: decimal.Zero, Remaining: decimal.NewFromInt(50000), Status: analytics.StatusUnder},
			},
		},
		{
			"Yearly",
			"period=yearly",
			[]analytics.Analytics{
				{Category: "Utilities", Budgeted: decimal.NewFromInt(20000), Spent: decimal.NewFromInt(2250), Remaining: decimal.NewFromInt(17750), Status: analytics.StatusUnder},
			},
		},
		{
			"Weekly without budgets",
			"period=weekly",
			[]analytics.Analytics{},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/budget-analytics?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetAnalyticsResponse
			test.DecodeResponse(t, &r, &response)

			if !assert.Len(t, response.Data, len(tt.expected)) {
				return
			}

			for i, expected := range tt.expected {
				got := response.Data[i]
				assert.Equal(t, expected.Category, got.Category)
				assert.Equal(t, expected.Status, got.Status)
				assert.True(t, expected.Budgeted.Equal(got.Budgeted), "budgeted: %s", got.Budgeted)
				assert.True(t, expected.Spent.Equal(got.Spent), "spent: %s", got.Spent)
				assert.True(t, expected.Remaining.Equal(got.Remaining), "remaining: %s", got.Remaining)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetAnalyticsInvalid() {
	for _, query := range []string{"period=daily", "period=", "windowed=often"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/budget-analytics?"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestInsights() {
	suite.createAnalyticsFixtures()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	expected := append([]string{
		"You've exceeded your Utilities budget by ₹250.",
		"You've only used 0% of your Housing budget.",
	}, insights.Tips...)
	suite.Assert().Equal(expected, response.Data)
}

func (suite *TestSuiteStandard) TestInsightsEmpty() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(insights.Tips, response.Data)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/insights?period=daily", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(types.ErrInvalidPeriod.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	suite.createAnalyticsFixtures()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryBreakdownResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	housing, utilities := response.Data[0], response.Data[1]
	suite.Assert().Equal("Housing", housing.Category)
	suite.Assert().Equal(1, housing.Count)
	suite.Assert().True(decimal.NewFromInt(25000).Equal(housing.Due))

	suite.Assert().Equal("Utilities", utilities.Category)
	suite.Assert().Equal(3, utilities.Count)
	suite.Assert().True(decimal.NewFromInt(3249).Equal(utilities.Total))
	suite.Assert().True(decimal.NewFromInt(2250).Equal(utilities.Paid))
	suite.Assert().True(decimal.NewFromInt(999).Equal(utilities.Due))
}

func (suite *TestSuiteStandard) TestPayments() {
	suite.createAnalyticsFixtures()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/payments", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	names := func(bills []v1.Bill) []string {
		n := []string{}
		for _, b := range bills {
			n = append(n, b.Name)
		}
		return n
	}

	suite.Assert().Equal([]string{"Electricity Bill", "Water Bill"}, names(response.Data.Recent))
	suite.Assert().Equal([]string{"Internet", "Rent"}, names(response.Data.Upcoming))

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/payments?limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal([]string{"Electricity Bill"}, names(response.Data.Recent))

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/payments?limit=some", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAnalyticsOptions() {
	for _, path := range []string{"summary", "budget-analytics", "insights", "categories", "payments"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodOptions, "http://example.com/v1/"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}
