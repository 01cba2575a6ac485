package v1

import (
	"errors"
	"net/http"

	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/store"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, store.ErrMalformedCollection) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// History errors
var (
	errSortInvalid = errors.New("the sort parameter must be asc or desc")
)

// Import errors
var (
	errNoFilePost       = errors.New("you must send at least one file in the file field to this endpoint")
	errFileUnreadable   = errors.New("an uploaded file could not be read")
	errNoAttachments    = errors.New("at least one attachment must be sent")
	errFileNameEmpty    = errors.New("the fileName must not be empty")
	errChatMessageEmpty = errors.New("the message must not be empty")
)
