package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultModel is the base for records that carry full timestamps.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps contains the creation and modification times of a record.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// Touch sets the timestamps for a modification at now. The creation
// time is only set if it is not set yet.
func (t *Timestamps) Touch(now time.Time) {
	now = now.In(time.UTC)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

func (t Timestamps) validate() error {
	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrTimestampsOutOfOrder
	}

	return nil
}
