package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProfileDefault() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.DefaultProfile(), *response.Data)
}

func (suite *TestSuiteStandard) TestProfileReplace() {
	profile := models.Profile{
		Name:                 "  Asha  ",
		Mobile:               "+91 9000000000",
		Currency:             "usd",
		Language:             "HI",
		ReminderDays:         []int{1, 7, 3, 7},
		NotificationChannels: []models.NotificationChannel{models.NotificationSMS},
		DarkMode:             true,
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPut, "http://example.com/v1/profile", profile)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	expected := models.Profile{
		Name:                 "Asha",
		Mobile:               "+91 9000000000",
		Currency:             "USD",
		Language:             "hi",
		ReminderDays:         []int{7, 3, 1},
		NotificationChannels: []models.NotificationChannel{models.NotificationSMS},
		DarkMode:             true,
	}

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(expected, *response.Data)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(expected, *response.Data)
}

func (suite *TestSuiteStandard) TestProfileReplaceInvalid() {
	valid := models.DefaultProfile()

	tests := []struct {
		name   string
		modify func(*models.Profile)
		err    error
	}{
		{"Name", func(p *models.Profile) { p.Name = " " }, models.ErrProfileNameEmpty},
		{"Language", func(p *models.Profile) { p.Language = "fr" }, models.ErrLanguageUnsupported},
		{"Currency", func(p *models.Profile) { p.Currency = "RUPEES" }, models.ErrCurrencyInvalid},
		{"Reminder day", func(p *models.Profile) { p.ReminderDays = []int{31} }, models.ErrReminderDayInvalid},
		{"Channel", func(p *models.Profile) { p.NotificationChannels = []models.NotificationChannel{"fax"} }, models.ErrNotificationChannelInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			profile := valid
			profile.ReminderDays = append([]int{}, valid.ReminderDays...)
			tt.modify(&profile)

			r := test.Request(suite.controller, t, http.MethodPut, "http://example.com/v1/profile", profile)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestFeedbacks() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/feedbacks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.FeedbackListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/feedbacks", v1.FeedbackEditable{Rating: 5, Comment: " Reminders saved me a late fee "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.FeedbackResponse
	test.DecodeResponse(suite.T(), &r, &created)
	suite.Assert().Equal(5, created.Data.Rating)
	suite.Assert().Equal("Reminders saved me a late fee", created.Data.Comment)
	suite.Assert().True(start.Equal(created.Data.Date))

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/feedbacks", "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(created.Data.ID, list.Data[0].ID)
}

func (suite *TestSuiteStandard) TestFeedbacksInvalid() {
	for _, rating := range []int{0, 6} {
		r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/feedbacks", v1.FeedbackEditable{Rating: rating})
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Equal(models.ErrRatingOutOfRange.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}
