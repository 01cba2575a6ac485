package v1

import (
	"github.com/billtrail/backend/internal/classifier"
	"github.com/billtrail/backend/internal/importer"
)

type ClassifyRequest struct {
	FileName string `json:"fileName" example:"electricity_may.pdf"` // File name or email subject to classify
}

type ClassifyResponse struct {
	Data  *classifier.Guess `json:"data"`                                           // The guessed title and category
	Error *string           `json:"error" example:"the fileName must not be empty"` // The error, if any occurred
}

type ImportResponse struct {
	Data  []importer.ProcessedFile `json:"data"`                                                                               // The processed documents and the bills created for them
	Error *string                  `json:"error" example:"you must send at least one file in the file field to this endpoint"` // The error, if any occurred
}

type EmailScanResponse struct {
	Data  []classifier.Attachment `json:"data"`                                                                            // Bills found in the mailbox
	Error *string                 `json:"error" example:"stored data is malformed: profile: unexpected end of JSON input"` // The error, if any occurred
}

type EmailImportRequest struct {
	Attachments []classifier.Attachment `json:"attachments"` // Attachments to import, as returned by the scan
}
