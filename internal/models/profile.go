package models

import (
	"errors"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Languages are the interface languages a profile can select.
var Languages = []language.Tag{
	language.English,
	language.Hindi,
	language.Telugu,
	language.Tamil,
	language.Kannada,
	language.Malayalam,
}

// NotificationChannel is a channel a user wants reminders on.
type NotificationChannel string

const (
	NotificationPush  NotificationChannel = "push"
	NotificationEmail NotificationChannel = "email"
	NotificationSMS   NotificationChannel = "sms"
)

var (
	ErrLanguageUnsupported         = errors.New("the language must be one of en, hi, te, ta, kn or ml")
	ErrCurrencyInvalid             = errors.New("the currency must be an ISO 4217 currency code")
	ErrReminderDayInvalid          = errors.New("reminder days must be between 1 and 30")
	ErrNotificationChannelInvalid  = errors.New("notification channels must be one of push, email or sms")
	ErrProfileNameEmpty            = errors.New("the profile name must not be empty")
	ErrNotificationChannelRepeated = errors.New("notification channels must not repeat")
)

// Profile holds the preferences of the single user.
type Profile struct {
	Name                 string                `json:"name" example:"User"`
	Mobile               string                `json:"mobile" example:"+91 9876543210"`
	Currency             string                `json:"currency" example:"INR"`
	Language             string                `json:"language" example:"en"`
	ReminderDays         []int                 `json:"reminderDays"`
	NotificationChannels []NotificationChannel `json:"notificationChannels"`
	DarkMode             bool                  `json:"darkMode" example:"false"`
}

// DefaultProfile is used until the user saves a profile.
func DefaultProfile() Profile {
	return Profile{
		Name:                 "User",
		Mobile:               "+91 9876543210",
		Currency:             "INR",
		Language:             "en",
		ReminderDays:         []int{7, 3, 1},
		NotificationChannels: []NotificationChannel{NotificationPush, NotificationEmail},
	}
}

func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Mobile = strings.TrimSpace(p.Mobile)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.Language = strings.ToLower(strings.TrimSpace(p.Language))

	// Reminder days are kept in descending order, without duplicates
	slices.Sort(p.ReminderDays)
	p.ReminderDays = slices.Compact(p.ReminderDays)
	slices.Reverse(p.ReminderDays)
}

// Tag returns the language tag of the profile.
func (p Profile) Tag() language.Tag {
	tag, err := language.Parse(p.Language)
	if err != nil {
		return language.English
	}

	return tag
}

// Unit returns the currency unit of the profile.
func (p Profile) Unit() currency.Unit {
	unit, err := currency.ParseISO(p.Currency)
	if err != nil {
		return currency.INR
	}

	return unit
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return ErrProfileNameEmpty
	}

	tag, err := language.Parse(p.Language)
	if err != nil || !slices.Contains(Languages, tag) {
		return ErrLanguageUnsupported
	}

	if _, err := currency.ParseISO(p.Currency); err != nil {
		return ErrCurrencyInvalid
	}

	for _, d := range p.ReminderDays {
		if d < 1 || d > 30 {
			return ErrReminderDayInvalid
		}
	}

	seen := make([]NotificationChannel, 0, len(p.NotificationChannels))
	for _, c := range p.NotificationChannels {
		switch c {
		case NotificationPush, NotificationEmail, NotificationSMS:
		default:
			return ErrNotificationChannelInvalid
		}

		if slices.Contains(seen, c) {
			return ErrNotificationChannelRepeated
		}
		seen = append(seen, c)
	}

	return nil
}
