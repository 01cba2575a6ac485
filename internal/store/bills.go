package store

import (
	"context"

	"github.com/billtrail/backend/internal/models"
	"github.com/google/uuid"
)

// Bills is the repository for bills. Bills are never deleted.
type Bills struct {
	s *Store
}

func (s *Store) Bills() Bills {
	return Bills{s}
}

// List returns all bills in stored order.
func (r Bills) List(ctx context.Context) ([]models.Bill, error) {
	bills := []models.Bill{}
	_, err := load(ctx, r.s, models.CollectionBills, &bills)
	return bills, err
}

func (r Bills) Get(ctx context.Context, id uuid.UUID) (models.Bill, error) {
	bills, err := r.List(ctx)
	if err != nil {
		return models.Bill{}, err
	}

	bill, ok := models.FindBill(bills, id)
	if !ok {
		return models.Bill{}, notFound("bill")
	}

	return bill, nil
}

// prepare assigns an ID and timestamps to a new bill and validates it.
func (r Bills) prepare(bill *models.Bill) error {
	bill.Normalize()

	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}

	today := r.s.today()
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = today
	}

	if bill.UpdatedAt.IsZero() {
		bill.UpdatedAt = bill.CreatedAt
	}

	return bill.Validate()
}

func (r Bills) Add(ctx context.Context, bill models.Bill) (models.Bill, error) {
	added, err := r.AddMany(ctx, []models.Bill{bill})
	if err != nil {
		return models.Bill{}, err
	}

	return added[0], nil
}

// AddMany appends bills in one write. Either all bills are added or none.
func (r Bills) AddMany(ctx context.Context, bills []models.Bill) ([]models.Bill, error) {
	added := make([]models.Bill, 0, len(bills))

	for _, bill := range bills {
		if err := r.prepare(&bill); err != nil {
			return nil, err
		}
		added = append(added, bill)
	}

	err := update(ctx, r.s, models.CollectionBills, func(stored *[]models.Bill) error {
		*stored = append(*stored, added...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// UpdateStatus sets the status of a bill and advances its update date.
func (r Bills) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BillStatus) (models.Bill, error) {
	if !status.Valid() {
		return models.Bill{}, models.ErrBillStatusInvalid
	}

	var updated models.Bill
	err := update(ctx, r.s, models.CollectionBills, func(bills *[]models.Bill) error {
		for i := range *bills {
			if (*bills)[i].ID != id {
				continue
			}

			b := &(*bills)[i]
			b.Status = status
			b.UpdatedAt = r.s.today()
			if b.UpdatedAt.Before(b.CreatedAt) {
				b.UpdatedAt = b.CreatedAt
			}

			updated = *b
			return nil
		}

		return notFound("bill")
	})

	return updated, err
}

// Replace replaces all fields of a bill except its ID and creation date.
func (r Bills) Replace(ctx context.Context, id uuid.UUID, bill models.Bill) (models.Bill, error) {
	bill.Normalize()

	var updated models.Bill
	err := update(ctx, r.s, models.CollectionBills, func(bills *[]models.Bill) error {
		for i := range *bills {
			if (*bills)[i].ID != id {
				continue
			}

			bill.ID = id
			bill.CreatedAt = (*bills)[i].CreatedAt
			bill.UpdatedAt = r.s.today()
			if bill.UpdatedAt.Before(bill.CreatedAt) {
				bill.UpdatedAt = bill.CreatedAt
			}

			if err := bill.Validate(); err != nil {
				return err
			}

			(*bills)[i] = bill
			updated = bill
			return nil
		}

		return notFound("bill")
	})

	return updated, err
}

// Seed stores bills if the bills collection has never been written.
// It reports whether the bills were stored.
func (r Bills) Seed(ctx context.Context, bills []models.Bill) (bool, error) {
	lock := r.s.locks[models.CollectionBills]
	lock.Lock()
	defer lock.Unlock()

	_, found, err := r.s.raw(ctx, models.CollectionBills)
	if err != nil || found {
		return false, err
	}

	seed := make([]models.Bill, len(bills))
	copy(seed, bills)
	for i := range seed {
		if err := r.prepare(&seed[i]); err != nil {
			return false, err
		}
	}

	if err := save(ctx, r.s, models.CollectionBills, seed); err != nil {
		return false, err
	}

	return true, nil
}
