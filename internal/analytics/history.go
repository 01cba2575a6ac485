package analytics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Action is what happened to a bill in a history event.
type Action string

const (
	ActionCreated Action = "created"
	ActionPaid    Action = "paid"
	ActionUpdated Action = "updated"
)

// Event is one entry of the bill history.
type Event struct {
	ID        string      `json:"id" example:"create-0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`
	BillID    uuid.UUID   `json:"billId"`
	BillName  string      `json:"billName" example:"Water Bill"`
	Action    Action      `json:"action" example:"created"`
	Timestamp types.Date  `json:"timestamp" example:"2024-05-12"`
	Details   string      `json:"details" example:"Bill created - Water Bill (750)"`
	Bill      models.Bill `json:"-"`
}

// HistoryFilter narrows down the bill history.
type HistoryFilter struct {
	Search    string            // Case insensitive substring of the bill name
	Status    models.BillStatus // Current status of the bill
	Category  string            // Category of the bill
	Ascending bool              // Oldest events first
}

func (f HistoryFilter) matches(bill models.Bill) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(bill.Name), strings.ToLower(f.Search)) {
		return false
	}

	if f.Status != "" && bill.Status != f.Status {
		return false
	}

	if f.Category != "" && bill.Category != f.Category {
		return false
	}

	return true
}

// History derives events from the bills. Every bill has a creation event.
// Bills that were changed after their creation also have a paid event if
// they are paid, or an updated event otherwise.
// Timestamps are calendar dates, so a change on the day of creation
// produces no second event.
//
// Events are sorted by timestamp, newest first unless the filter
// asks for ascending order.
func History(bills []models.Bill, filter HistoryFilter) []Event {
	events := []Event{}

	for _, bill := range bills {
		if !filter.matches(bill) {
			continue
		}

		events = append(events, Event{
			ID:        fmt.Sprintf("create-%s", bill.ID),
			BillID:    bill.ID,
			BillName:  bill.Name,
			Action:    ActionCreated,
			Timestamp: bill.CreatedAt,
			Details:   fmt.Sprintf("Bill created - %s (%s)", bill.Name, bill.Amount),
			Bill:      bill,
		})

		if bill.UpdatedAt.Equal(bill.CreatedAt) {
			continue
		}

		action, verb := ActionUpdated, "updated"
		if bill.Status == models.BillStatusPaid {
			action, verb = ActionPaid, "paid"
		}

		events = append(events, Event{
			ID:        fmt.Sprintf("update-%s-%s", bill.ID, bill.UpdatedAt),
			BillID:    bill.ID,
			BillName:  bill.Name,
			Action:    action,
			Timestamp: bill.UpdatedAt,
			Details:   fmt.Sprintf("Bill %s - %s (%s)", verb, bill.Name, bill.Amount),
			Bill:      bill,
		})
	}

	slices.SortStableFunc(events, func(a, b Event) int {
		if filter.Ascending {
			return a.Timestamp.Compare(b.Timestamp)
		}
		return b.Timestamp.Compare(a.Timestamp)
	})

	return events
}

var historyHeader = []string{"Date", "Bill", "Amount", "Action", "Details", "Category", "Status"}

// WriteHistoryCSV writes the events as CSV with a header row.
func WriteHistoryCSV(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(historyHeader); err != nil {
		return err
	}

	for _, e := range events {
		err := cw.Write([]string{
			e.Timestamp.Time().Format("02/01/2006"),
			e.BillName,
			e.Bill.Amount.String(),
			string(e.Action),
			e.Details,
			e.Bill.Category,
			string(e.Bill.Status),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
