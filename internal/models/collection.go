package models

import "time"

// Collection names.
const (
	CollectionBills     = "bills"
	CollectionBudgets   = "budgets"
	CollectionReminders = "reminders"
	CollectionProfile   = "profile"
	CollectionFeedbacks = "feedbacks"
)

// Collections lists every collection name.
var Collections = []string{
	CollectionBills,
	CollectionBudgets,
	CollectionReminders,
	CollectionProfile,
	CollectionFeedbacks,
}

// Collection is one stored collection. Value holds the full collection
// as a JSON document.
type Collection struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
