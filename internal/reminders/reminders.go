// Package reminders schedules reminders ahead of a bill's due date.
package reminders

import (
	"fmt"

	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/money"
	"github.com/billtrail/backend/internal/types"
)

// Offsets are the days before the due date at which reminders are scheduled.
var Offsets = []int{7, 3, 1}

// Time is the time of day of scheduled reminders.
const Time = "09:00"

// Scheduler creates reminders for bills.
type Scheduler struct {
	Formatter money.Formatter
}

// Smart schedules reminders for a bill with the default formatter.
func Smart(bill models.Bill, today types.Date) []models.Reminder {
	return Scheduler{Formatter: money.Default()}.Smart(bill, today)
}

// Smart returns one reminder for each offset whose date lies strictly after
// today, in offset order. The reminders have no ID or timestamps yet.
func (s Scheduler) Smart(bill models.Bill, today types.Date) []models.Reminder {
	reminders := []models.Reminder{}
	amount := s.Formatter.Format(bill.Amount)

	for _, days := range Offsets {
		date := bill.DueDate.AddDays(-days)
		if !date.After(today) {
			continue
		}

		message := fmt.Sprintf("Your %s payment of %s is due in %d days.", bill.Name, amount, days)
		if days == 1 {
			message = fmt.Sprintf("Urgent: Your %s payment of %s is due tomorrow!", bill.Name, amount)
		}

		reminders = append(reminders, models.Reminder{
			BillID:    bill.ID,
			Title:     fmt.Sprintf("%s - %d day reminder", bill.Name, days),
			Message:   message,
			Date:      date,
			Time:      Time,
			Frequency: models.FrequencyOnce,
			Channels:  []models.Channel{models.ChannelInApp, models.ChannelEmail},
			IsActive:  true,
		})
	}

	return reminders
}
