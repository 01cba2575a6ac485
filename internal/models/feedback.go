package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrRatingOutOfRange = errors.New("the rating must be between 1 and 5")

// Feedback is a rating submitted through the support page.
type Feedback struct {
	ID      uuid.UUID `json:"id" example:"4e1a8a3c-1d4f-4bde-9a4e-0c6d1d0f8a21"`
	Rating  int       `json:"rating" example:"5"`
	Comment string    `json:"comment" example:"Reminders saved me a late fee"`
	Date    time.Time `json:"date" example:"2024-05-21T10:04:00Z"`
}

func (f *Feedback) Normalize() {
	f.Comment = strings.TrimSpace(f.Comment)
}

func (f Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return ErrRatingOutOfRange
	}

	return nil
}
