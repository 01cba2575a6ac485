package classifier

import (
	"fmt"

	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/internal/variability"
	"github.com/google/uuid"
)

// subjects of the simulated mailbox
var subjects = []string{
	"Your Monthly Electricity Bill",
	"Water Bill Payment",
	"Internet Service Invoice",
	"Mobile Phone Statement",
	"Credit Card Bill",
	"Insurance Premium",
	"Subscription Renewal",
	"Utility Bill",
}

// Attachment is a bill found in the mailbox.
type Attachment struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name" example:"Bill_417.pdf"`
	Size     int        `json:"size" example:"412"` // Size in KB
	Date     types.Date `json:"date" example:"2024-05-18"`
	Subject  string     `json:"subject" example:"Water Bill Payment"`
	Type     string     `json:"type" example:"application/pdf"`
	Category string     `json:"category" example:"Utilities"`
}

// EmailScanner simulates a scan of the user's mailbox for bills.
type EmailScanner struct {
	Source variability.Source
}

// Scan returns between 1 and 5 attachments received in the 10 days up to today.
func (s EmailScanner) Scan(today types.Date) []Attachment {
	count := 1 + s.Source.IntN(5)
	attachments := make([]Attachment, 0, count)

	for range count {
		date := today.AddDays(-s.Source.IntN(10))
		name := fmt.Sprintf("Bill_%d.pdf", s.Source.IntN(1000))
		size := 100 + s.Source.IntN(900)
		subject := subjects[s.Source.IntN(len(subjects))]

		attachments = append(attachments, Attachment{
			ID:       uuid.New(),
			Name:     name,
			Size:     size,
			Date:     date,
			Subject:  subject,
			Type:     "application/pdf",
			Category: Classify(subject).Category,
		})
	}

	return attachments
}
