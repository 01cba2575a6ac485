package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/test"
)

func (suite *TestSuiteStandard) TestExport() {
	bill := suite.createTestBill(v1.BillEditable{Name: "Rent"})
	_ = suite.createTestBudget(v1.BudgetEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("0.0.0", response.Version)
	suite.Assert().Equal("GNU Terry Pratchett", response.Clacks)
	suite.Assert().True(start.Equal(response.CreationTime))

	// Only collections that have been written are exported
	suite.Assert().Contains(response.Data, models.CollectionBills)
	suite.Assert().Contains(response.Data, models.CollectionBudgets)
	suite.Assert().NotContains(response.Data, models.CollectionReminders)

	var bills []models.Bill
	suite.Require().Nil(json.Unmarshal(response.Data[models.CollectionBills], &bills))
	suite.Require().Len(bills, 1)
	suite.Assert().Equal(bill.ID, bills[0].ID)
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}
