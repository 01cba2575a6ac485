package store

import (
	"context"

	"github.com/billtrail/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Reminders is the repository for reminders.
//
// The bill a reminder refers to is not checked. Reminders for bills
// that do not exist are stored as they are.
type Reminders struct {
	s *Store
}

func (s *Store) Reminders() Reminders {
	return Reminders{s}
}

func (r Reminders) List(ctx context.Context) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	_, err := load(ctx, r.s, models.CollectionReminders, &reminders)
	return reminders, err
}

// ForBill returns all reminders for a bill.
func (r Reminders) ForBill(ctx context.Context, billID uuid.UUID) ([]models.Reminder, error) {
	reminders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []models.Reminder{}
	for _, reminder := range reminders {
		if reminder.BillID == billID {
			filtered = append(filtered, reminder)
		}
	}

	return filtered, nil
}

func (r Reminders) Get(ctx context.Context, id uuid.UUID) (models.Reminder, error) {
	reminders, err := r.List(ctx)
	if err != nil {
		return models.Reminder{}, err
	}

	i := slices.IndexFunc(reminders, func(m models.Reminder) bool { return m.ID == id })
	if i == -1 {
		return models.Reminder{}, notFound("reminder")
	}

	return reminders[i], nil
}

func (r Reminders) Add(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	added, err := r.AddMany(ctx, []models.Reminder{reminder})
	if err != nil {
		return models.Reminder{}, err
	}

	return added[0], nil
}

// AddMany stores all reminders in one write. Either all reminders are
// added or none.
func (r Reminders) AddMany(ctx context.Context, reminders []models.Reminder) ([]models.Reminder, error) {
	now := r.s.timestamp()
	added := make([]models.Reminder, 0, len(reminders))

	for _, reminder := range reminders {
		reminder.Normalize()
		reminder.ID = uuid.New()
		reminder.Timestamps = models.Timestamps{}
		reminder.Touch(now)

		if err := reminder.Validate(); err != nil {
			return nil, err
		}
		added = append(added, reminder)
	}

	err := update(ctx, r.s, models.CollectionReminders, func(stored *[]models.Reminder) error {
		*stored = append(*stored, added...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// Update applies a change to a reminder. The ID and creation time are kept.
func (r Reminders) Update(ctx context.Context, id uuid.UUID, apply func(*models.Reminder)) (models.Reminder, error) {
	var updated models.Reminder

	err := update(ctx, r.s, models.CollectionReminders, func(reminders *[]models.Reminder) error {
		i := slices.IndexFunc(*reminders, func(m models.Reminder) bool { return m.ID == id })
		if i == -1 {
			return notFound("reminder")
		}

		reminder := (*reminders)[i]
		apply(&reminder)
		reminder.Normalize()
		reminder.DefaultModel = (*reminders)[i].DefaultModel
		reminder.Touch(r.s.timestamp())

		if err := reminder.Validate(); err != nil {
			return err
		}

		(*reminders)[i] = reminder
		updated = reminder
		return nil
	})

	return updated, err
}

// Toggle flips whether a reminder is active.
func (r Reminders) Toggle(ctx context.Context, id uuid.UUID) (models.Reminder, error) {
	return r.Update(ctx, id, func(m *models.Reminder) {
		m.IsActive = !m.IsActive
	})
}

func (r Reminders) Delete(ctx context.Context, id uuid.UUID) error {
	return update(ctx, r.s, models.CollectionReminders, func(reminders *[]models.Reminder) error {
		i := slices.IndexFunc(*reminders, func(m models.Reminder) bool { return m.ID == id })
		if i == -1 {
			return notFound("reminder")
		}

		*reminders = slices.Delete(*reminders, i, i+1)
		return nil
	})
}
