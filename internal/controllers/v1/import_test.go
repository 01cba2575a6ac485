package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/billtrail/backend/internal/classifier"
	v1 "github.com/billtrail/backend/internal/controllers/v1"
	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestClassify() {
	tests := []struct {
		fileName string
		guess    classifier.Guess
	}{
		{"electricity_may.pdf", classifier.Guess{Title: "Electricity Bill", Category: "Utilities"}},
		{"Water Bill Payment", classifier.Guess{Title: "Water Bill", Category: "Utilities"}},
		{"HOUSE-RENT.jpg", classifier.Guess{Title: "House Rent", Category: "Housing"}},
		{"scan_0042.png", classifier.Unknown},
	}

	for _, tt := range tests {
		suite.T().Run(tt.fileName, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/classify", v1.ClassifyRequest{FileName: tt.fileName})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ClassifyResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.guess, *response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestClassifyInvalid() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/classify", v1.ClassifyRequest{FileName: "  "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the fileName must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/classify", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// multipartBody returns a body with one part in the file field per file name.
func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for name, content := range files {
		fw, err := mw.CreateFormFile("file", name)
		assert.Nil(t, err)

		_, err = fw.Write([]byte(content))
		assert.Nil(t, err)
	}
	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

func (suite *TestSuiteStandard) TestUploads() {
	body, headers := multipartBody(suite.T(), map[string]string{"water_may.pdf": "hello"})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/uploads", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)

	processed := response.Data[0]
	suite.Assert().Equal("Water Bill", processed.Title)
	suite.Assert().Equal("Utilities", processed.Category)
	suite.Assert().Equal("water_may.pdf", processed.FileName)
	suite.Assert().Equal("application/octet-stream", processed.FileType)
	suite.Assert().Equal(0, processed.FileSize)
	suite.Assert().Equal("2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", processed.Checksum)
	suite.Assert().True(start.Equal(processed.UploadedAt))

	// The fixed source draws the lowest amount and the earliest due date
	suite.Assert().True(decimal.NewFromInt(500).Equal(processed.Amount))
	suite.Assert().Equal(types.NewDate(2024, 5, 21), processed.DueDate)

	// The bill has been created
	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/bills/"+processed.BillID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var bill v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &bill)
	suite.Assert().Equal("Water Bill", bill.Data.Name)
	suite.Assert().Equal("upcoming", string(bill.Data.Status))
}

func (suite *TestSuiteStandard) TestUploadsMultiple() {
	body, headers := multipartBody(suite.T(), map[string]string{
		"electricity.pdf": "a",
		"netflix.png":     "b",
		"credit_card.pdf": "c",
	})

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/uploads", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 3)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/bills", "")
	var bills v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &bills)
	suite.Assert().Len(bills.Data, 3)
}

func (suite *TestSuiteStandard) TestUploadsNoFile() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/uploads", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("you must send at least one file in the file field to this endpoint", test.DecodeError(suite.T(), r.Body.Bytes()))

	body, headers := multipartBody(suite.T(), map[string]string{})
	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/uploads", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEmailScan() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/email-import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EmailScanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)

	attachment := response.Data[0]
	suite.Assert().Equal("Bill_0.pdf", attachment.Name)
	suite.Assert().Equal(100, attachment.Size)
	suite.Assert().Equal(types.NewDate(2024, 5, 20), attachment.Date)
	suite.Assert().Equal("Your Monthly Electricity Bill", attachment.Subject)
	suite.Assert().Equal("Utilities", attachment.Category)
	suite.Assert().Equal("application/pdf", attachment.Type)
}

func (suite *TestSuiteStandard) TestEmailImport() {
	id := uuid.New()

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/email-import", v1.EmailImportRequest{
		Attachments: []classifier.Attachment{
			{ID: id, Name: "Bill_417.pdf", Size: 412, Subject: "Water Bill Payment", Category: "Utilities"},
			{Name: "statement.pdf", Subject: "Your insurance renewal"},
			{Name: "misc.pdf", Type: "image/png"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 3)

	water, insurance, misc := response.Data[0], response.Data[1], response.Data[2]

	suite.Assert().Equal(id, water.ID)
	suite.Assert().Equal("Water Bill Payment", water.Title)
	suite.Assert().Equal(412, water.FileSize)
	suite.Assert().Equal("application/pdf", water.FileType)
	suite.Assert().Empty(water.Checksum)

	suite.Assert().NotEqual(uuid.Nil, insurance.ID)
	suite.Assert().Equal("Insurance", insurance.Category)

	suite.Assert().Equal("Email Bill", misc.Title)
	suite.Assert().Equal("Others", misc.Category)
	suite.Assert().Equal("image/png", misc.FileType)
}

func (suite *TestSuiteStandard) TestEmailImportInvalid() {
	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/email-import", v1.EmailImportRequest{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("at least one attachment must be sent", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/email-import", `{"attachments": "none"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
