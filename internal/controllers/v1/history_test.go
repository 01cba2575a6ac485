package v1_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createHistoryFixtures creates two bills on the first day and pays one
// of them two days later, when a third bill is created.
func (suite *TestSuiteStandard) createHistoryFixtures() {
	_ = suite.createTestBill(v1.BillEditable{Name: "Electricity Bill", Amount: decimal.NewFromInt(1500), Category: "Utilities"})
	water := suite.createTestBill(v1.BillEditable{Name: "Water Bill", Amount: decimal.NewFromInt(750), Category: "Utilities"})

	suite.advance(48 * time.Hour)

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, water.Links.Self, v1.BillStatusEditable{Status: models.BillStatusPaid})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestBill(v1.BillEditable{Name: "Rent", Amount: decimal.NewFromInt(25000), Category: "Housing"})
}

func (suite *TestSuiteStandard) TestHistory() {
	suite.createHistoryFixtures()

	tests := []struct {
		name    string
		query   string
		details []string
	}{
		{"Newest first", "", []string{"Bill paid - Water Bill (750)", "Bill created - Rent (25000)", "Bill created - Electricity Bill (1500)", "Bill created - Water Bill (750)"}},
		{"Oldest first", "sort=asc", []string{"Bill created - Electricity Bill (1500)", "Bill created - Water Bill (750)", "Bill paid - Water Bill (750)", "Bill created - Rent (25000)"}},
		{"Search", "search=WATER", []string{"Bill paid - Water Bill (750)", "Bill created - Water Bill (750)"}},
		{"Status", "status=upcoming", []string{"Bill created - Rent (25000)", "Bill created - Electricity Bill (1500)"}},
		{"Category", "category=Housing", []string{"Bill created - Rent (25000)"}},
		{"No match", "search=gas", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/history?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.HistoryResponse
			test.DecodeResponse(t, &r, &response)

			details := []string{}
			for _, event := range response.Data {
				details = append(details, event.Details)
			}
			assert.Equal(t, tt.details, details)
		})
	}
}

func (suite *TestSuiteStandard) TestHistoryEvents() {
	suite.createHistoryFixtures()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/history?search=water", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HistoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	paid, created := response.Data[0], response.Data[1]
	suite.Assert().Equal("paid", string(paid.Action))
	suite.Assert().Equal("2024-05-22", paid.Timestamp.String())
	suite.Assert().Equal("created", string(created.Action))
	suite.Assert().Equal("2024-05-20", created.Timestamp.String())
	suite.Assert().Equal(paid.BillID, created.BillID)
	suite.Assert().Equal("create-"+created.BillID.String(), created.ID)
	suite.Assert().NotEqual(paid.ID, created.ID)
}

func (suite *TestSuiteStandard) TestHistoryInvalidQuery() {
	tests := []struct {
		query string
		err   string
	}{
		{"sort=newest", "the sort parameter must be asc or desc"},
		{"status=unpaid", models.ErrBillStatusInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/history?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))

			r = test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/history/csv?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestHistoryCSV() {
	suite.createHistoryFixtures()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/history/csv?sort=asc&category=Utilities", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="bill-history.csv"`, r.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(r.Body.String()), "\n")
	suite.Assert().Equal([]string{
		"Date,Bill,Amount,Action,Details,Category,Status",
		"20/05/2024,Electricity Bill,1500,created,Bill created - Electricity Bill (1500),Utilities,upcoming",
		"20/05/2024,Water Bill,750,created,Bill created - Water Bill (750),Utilities,paid",
		"22/05/2024,Water Bill,750,paid,Bill paid - Water Bill (750),Utilities,paid",
	}, lines)
}

func (suite *TestSuiteStandard) TestHistoryCSVEmpty() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/history/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("Date,Bill,Amount,Action,Details,Category,Status\n", r.Body.String())
}
