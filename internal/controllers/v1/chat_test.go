package v1_test

import (
	"net/http"
	"testing"

	"github.com/billtrail/backend/internal/chat"
	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestChat() {
	tests := []struct {
		message string
		intent  chat.Intent
	}{
		{"How do I add bill photos?", chat.IntentAddBill},
		{"Can you notify me before rent is due?", chat.IntentReminder},
		{"Is my data secure?", chat.IntentDataSafe},
		{"I want a CSV", chat.IntentExport},
		{"Hey there", chat.IntentGreeting},
		{"Thanks a lot", chat.IntentThanks},
		{"What is the weather like?", chat.IntentNotUnderstood},
	}

	for _, tt := range tests {
		suite.T().Run(tt.message, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/chat", v1.ChatMessage{Message: tt.message})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ChatResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.intent, response.Data.Intent)
			assert.Equal(t, chat.Reply(tt.intent), response.Data.Reply)
		})
	}
}

func (suite *TestSuiteStandard) TestChatEmpty() {
	for _, body := range []any{v1.ChatMessage{Message: " "}, ""} {
		r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/chat", body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}
