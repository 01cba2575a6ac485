package types

import (
	"errors"
	"time"
)

// Period is the granularity a budget applies to.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

var ErrInvalidPeriod = errors.New("the period must be one of weekly, monthly or yearly")

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", ErrInvalidPeriod
	}

	return p, nil
}

// Valid reports if p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}

	return false
}

// Window returns the period that contains d as the half-open
// interval [start, end).
//
// Weeks start on Monday.
func (p Period) Window(d Date) (start, end Date) {
	t := time.Time(d)

	switch p {
	case PeriodWeekly:
		// Sunday is 0, shift so that Monday is the first day
		offset := (int(t.Weekday()) + 6) % 7
		start = d.AddDays(-offset)
		return start, start.AddDays(7)
	case PeriodYearly:
		start = NewDate(t.Year(), time.January, 1)
		return start, NewDate(t.Year()+1, time.January, 1)
	default:
		start = NewDate(t.Year(), t.Month(), 1)
		return start, Date(time.Time(start).AddDate(0, 1, 0))
	}
}

// Contains reports whether d lies in the window of the period around ref.
func (p Period) Contains(ref, d Date) bool {
	start, end := p.Window(ref)
	return !d.Before(start) && d.Before(end)
}
