package v1_test

import (
	"net/http"

	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestBill(editable v1.BillEditable, expectedStatus ...int) v1.Bill {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	if editable.Name == "" {
		editable.Name = "Electricity Bill"
	}

	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromInt(1500)
	}

	if editable.DueDate.IsZero() {
		editable.DueDate = types.NewDate(2024, 6, 5)
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/bills", []v1.BillEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.BillCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code != http.StatusCreated {
		return v1.Bill{}
	}

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) createTestBudget(editable v1.BudgetEditable, expectedStatus ...int) v1.Budget {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	if editable.Category == "" {
		editable.Category = "Utilities"
	}

	if editable.Amount.IsZero() {
		editable.Amount = decimal.NewFromInt(5000)
	}

	if editable.Period == "" {
		editable.Period = types.PeriodMonthly
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code != http.StatusCreated {
		return v1.Budget{}
	}

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) createTestReminder(editable v1.ReminderEditable, expectedStatus ...int) v1.Reminder {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	if editable.Title == "" {
		editable.Title = "Pay the electricity bill"
	}

	if editable.Time == "" {
		editable.Time = "09:00"
	}

	if editable.Frequency == "" {
		editable.Frequency = models.FrequencyOnce
	}

	if editable.Date.IsZero() {
		editable.Date = types.NewDate(2024, 6, 1)
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/reminders", []v1.ReminderEditable{editable})
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.ReminderCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code != http.StatusCreated {
		return v1.Reminder{}
	}

	return *response.Data[0].Data
}
