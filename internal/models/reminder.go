package models

import (
	"errors"
	"strings"
	"time"

	"github.com/billtrail/backend/internal/types"
	"github.com/google/uuid"
)

// Frequency is recorded on a reminder. It does not generate occurrences.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Channel is a label for where a reminder should be shown.
type Channel string

const (
	ChannelInApp Channel = "in-app"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// ReminderTimeLayout is the format of Reminder.Time.
const ReminderTimeLayout = "15:04"

var (
	ErrFrequencyInvalid = errors.New("the frequency must be one of once, daily, weekly or monthly")
	ErrChannelInvalid   = errors.New("channels must be one of in-app, email or sms")
	ErrTimeInvalid      = errors.New("the time must be in HH:MM format")
	ErrTitleEmpty       = errors.New("the title must not be empty")
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}

	return false
}

func (c Channel) Valid() bool {
	switch c {
	case ChannelInApp, ChannelEmail, ChannelSMS:
		return true
	}

	return false
}

// Reminder is a nudge for a bill.
//
// BillID is a soft reference, it may point to a bill that does not exist.
type Reminder struct {
	DefaultModel
	BillID    uuid.UUID  `json:"billId" example:"0f2d3c4e-5b6a-4f7e-8d9c-0a1b2c3d4e5f"`
	Title     string     `json:"title" example:"Electricity Bill - 3 day reminder"`
	Message   string     `json:"message" example:"Your Electricity Bill payment of ₹1500 is due in 3 days."`
	Date      types.Date `json:"date" example:"2024-06-02"`
	Time      string     `json:"time" example:"09:00"`
	Frequency Frequency  `json:"frequency" example:"once"`
	Channels  []Channel  `json:"channels"`
	IsActive  bool       `json:"isActive" example:"true"`
}

func (r *Reminder) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Message = strings.TrimSpace(r.Message)
	r.Time = strings.TrimSpace(r.Time)
}

// Validate checks the invariants of a reminder. An empty channel list
// is tolerated.
func (r Reminder) Validate() error {
	if r.Title == "" {
		return ErrTitleEmpty
	}

	if _, err := time.Parse(ReminderTimeLayout, r.Time); err != nil {
		return ErrTimeInvalid
	}

	if !r.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	for _, c := range r.Channels {
		if !c.Valid() {
			return ErrChannelInvalid
		}
	}

	if r.Date.IsZero() {
		return ErrDateMissing
	}

	return r.Timestamps.validate()
}
