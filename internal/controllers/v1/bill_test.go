package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBillsCreate() {
	bill := suite.createTestBill(v1.BillEditable{
		Name:          "  Rent  ",
		Amount:        decimal.NewFromInt(25000),
		DueDate:       types.NewDate(2024, 6, 1),
		Category:      "Housing",
		PaymentMethod: "Bank Transfer",
	})

	suite.Assert().Equal("Rent", bill.Name)
	suite.Assert().True(bill.Amount.Equal(decimal.NewFromInt(25000)))
	suite.Assert().Equal(types.NewDate(2024, 6, 1), bill.DueDate)
	suite.Assert().Equal("Housing", bill.Category)
	suite.Assert().Equal(models.BillStatusUpcoming, bill.Status, "Status must default to upcoming")
	suite.Assert().Equal(types.NewDate(2024, 5, 20), bill.CreatedAt)
	suite.Assert().Equal(bill.CreatedAt, bill.UpdatedAt)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/bills/%s", bill.ID), bill.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/reminders?bill=%s", bill.ID), bill.Links.Reminders)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/bills/%s/smart-reminders", bill.ID), bill.Links.SmartReminders)
}

func (suite *TestSuiteStandard) TestBillsCreateClassifies() {
	tests := []struct {
		name     string
		category string
	}{
		{"Monthly power statement", "Utilities"},
		{"Wifi May", "Utilities"},
		{"House rent June", "Housing"},
		{"Car Insurance", "Insurance"},
		{"Gym membership", "Others"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			bill := suite.createTestBill(v1.BillEditable{Name: tt.name})
			assert.Equal(t, tt.category, bill.Category)
			assert.Equal(t, tt.name, bill.Name, "The name must not be replaced by the guessed title")
		})
	}
}

func (suite *TestSuiteStandard) TestBillsCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `[{"name": "Rent"`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"Not an array", `{"name": "Rent"}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/bills", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBillsCreatePartialFailure() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/bills", []v1.BillEditable{
		{Name: "Water Bill", Amount: decimal.NewFromInt(750), DueDate: types.NewDate(2024, 6, 10), Category: "Utilities"},
		{Name: "Phone Bill", Amount: decimal.NewFromInt(-10)},
		{Name: "", Amount: decimal.NewFromInt(10)},
		{Name: "Rent", Amount: decimal.NewFromFloat(10.5)},
		{Name: "DTH", Amount: decimal.NewFromInt(400), Status: "forgotten"},
		{Name: "Water Bill", Amount: decimal.NewFromInt(750)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BillCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 6)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[1].Error, models.ErrAmountNotPositive.Error())
	suite.Assert().Equal(models.ErrNameEmpty.Error(), *response.Data[2].Error)
	suite.Assert().Contains(*response.Data[3].Error, models.ErrAmountNotWhole.Error())
	suite.Assert().Equal(models.ErrBillStatusInvalid.Error(), *response.Data[4].Error)
	suite.Assert().Equal(models.ErrDueDateMissing.Error(), *response.Data[5].Error)

	// Only the valid bill is stored
	bills, err := suite.controller.Store.Bills().List(suite.T().Context())
	suite.Require().Nil(err)
	suite.Assert().Len(bills, 1)
}

func (suite *TestSuiteStandard) TestBillsList() {
	_ = suite.createTestBill(v1.BillEditable{Name: "Rent", Category: "Housing", DueDate: types.NewDate(2024, 6, 1), Amount: decimal.NewFromInt(25000)})
	_ = suite.createTestBill(v1.BillEditable{Name: "Water Bill", Category: "Utilities", DueDate: types.NewDate(2024, 5, 12), Status: models.BillStatusPaid, Description: "Municipal water"})
	_ = suite.createTestBill(v1.BillEditable{Name: "Phone Bill", Category: "Utilities", DueDate: types.NewDate(2024, 5, 24), Status: models.BillStatusDueSoon})

	tests := []struct {
		name  string
		query string
		names []string
		total int
	}{
		{"All, by due date", "", []string{"Water Bill", "Phone Bill", "Rent"}, 3},
		{"Status", "status=paid", []string{"Water Bill"}, 1},
		{"Category", "category=Utilities", []string{"Water Bill", "Phone Bill"}, 2},
		{"Search name", "search=rEnT", []string{"Rent"}, 1},
		{"Search description", "search=municipal", []string{"Water Bill"}, 1},
		{"Limit", "limit=2", []string{"Water Bill", "Phone Bill"}, 3},
		{"Offset", "offset=2", []string{"Rent"}, 3},
		{"Limit zero", "limit=0", []string{}, 3},
		{"Limit negative", "limit=-1", []string{"Water Bill", "Phone Bill", "Rent"}, 3},
		{"Offset past end", "offset=10", []string{}, 3},
		{"Offset at uint maximum", "offset=18446744073709551615", []string{}, 3},
		{"Limit at int maximum", "offset=1&limit=9223372036854775807", []string{"Phone Bill", "Rent"}, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/bills?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BillListResponse
			test.DecodeResponse(t, &r, &response)

			names := []string{}
			for _, b := range response.Data {
				names = append(names, b.Name)
			}

			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.names), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestBillsListInvalidQuery() {
	for _, query := range []string{"status=lost", "offset=-1", "limit=many"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/bills?"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBillsGet() {
	bill := suite.createTestBill(v1.BillEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, bill.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(bill.ID, response.Data.ID)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/bills/1f1d0b74-8d5a-4e52-9bf4-0f5ab7d2c0d1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no bill matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/bills/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBillsReplace() {
	bill := suite.createTestBill(v1.BillEditable{Name: "Rent", Category: "Housing", Amount: decimal.NewFromInt(25000)})

	r := test.Request(suite.controller, suite.T(), http.MethodPut, bill.Links.Self, v1.BillEditable{
		Name:     "Rent June",
		Amount:   decimal.NewFromInt(26000),
		DueDate:  types.NewDate(2024, 6, 3),
		Category: "Housing",
		Status:   models.BillStatusDueSoon,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(bill.ID, response.Data.ID)
	suite.Assert().Equal("Rent June", response.Data.Name)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(26000)))
	suite.Assert().Equal(models.BillStatusDueSoon, response.Data.Status)
	suite.Assert().Equal(bill.CreatedAt, response.Data.CreatedAt)

	// Invalid replacements leave the bill untouched
	r = test.Request(suite.controller, suite.T(), http.MethodPut, bill.Links.Self, v1.BillEditable{Name: "Rent"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/bills/1f1d0b74-8d5a-4e52-9bf4-0f5ab7d2c0d1", v1.BillEditable{
		Name:   "Rent",
		Amount: decimal.NewFromInt(1),
		Status: models.BillStatusPaid,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBillsUpdateStatus() {
	bill := suite.createTestBill(v1.BillEditable{})

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, bill.Links.Self, v1.BillStatusEditable{Status: models.BillStatusPaid})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.BillStatusPaid, response.Data.Status)

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, bill.Links.Self, `{"status": "forgotten"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrBillStatusInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, "http://example.com/v1/bills/1f1d0b74-8d5a-4e52-9bf4-0f5ab7d2c0d1", v1.BillStatusEditable{Status: models.BillStatusPaid})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBillsSmartReminders() {
	bill := suite.createTestBill(v1.BillEditable{
		Name:     "Rent",
		Amount:   decimal.NewFromInt(25000),
		DueDate:  types.NewDate(2024, 6, 5),
		Category: "Housing",
	})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, bill.Links.SmartReminders, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ReminderListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Nil(response.Pagination)

	dates := []types.Date{types.NewDate(2024, 5, 29), types.NewDate(2024, 6, 2), types.NewDate(2024, 6, 4)}
	for i, reminder := range response.Data {
		suite.Assert().Equal(dates[i], reminder.Date)
		suite.Assert().Equal(bill.ID, reminder.BillID)
		suite.Assert().Equal("Rent", reminder.BillName)
		suite.Assert().True(reminder.IsActive)
		suite.Assert().Equal("09:00", reminder.Time)
	}

	suite.Assert().Equal("Rent - 7 day reminder", response.Data[0].Title)
	suite.Assert().Equal("Your Rent payment of ₹25,000 is due in 7 days.", response.Data[0].Message)
	suite.Assert().Equal("Urgent: Your Rent payment of ₹25,000 is due tomorrow!", response.Data[2].Message)

	// The reminders are stored
	r = test.Request(suite.controller, suite.T(), http.MethodGet, bill.Links.Reminders, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.ReminderListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 3)
}

func (suite *TestSuiteStandard) TestBillsSmartRemindersPast() {
	bill := suite.createTestBill(v1.BillEditable{DueDate: types.NewDate(2024, 5, 21)})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, bill.Links.SmartReminders, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ReminderListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/bills/1f1d0b74-8d5a-4e52-9bf4-0f5ab7d2c0d1/smart-reminders", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBillsSmartRemindersProfileCurrency() {
	profile := models.DefaultProfile()
	profile.Currency = "USD"
	_, err := suite.controller.Store.Profile().Save(suite.T().Context(), profile)
	suite.Require().Nil(err)

	bill := suite.createTestBill(v1.BillEditable{Name: "Rent", Amount: decimal.NewFromInt(1200), DueDate: types.NewDate(2024, 6, 5)})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, bill.Links.SmartReminders, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ReminderListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotEmpty(response.Data)
	suite.Assert().Contains(response.Data[0].Message, "$1,200")
}
