package store

import (
	"context"

	"github.com/billtrail/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Budgets is the repository for budgets.
type Budgets struct {
	s *Store
}

func (s *Store) Budgets() Budgets {
	return Budgets{s}
}

func (r Budgets) List(ctx context.Context) ([]models.Budget, error) {
	budgets := []models.Budget{}
	_, err := load(ctx, r.s, models.CollectionBudgets, &budgets)
	return budgets, err
}

func (r Budgets) Get(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	budgets, err := r.List(ctx)
	if err != nil {
		return models.Budget{}, err
	}

	i := slices.IndexFunc(budgets, func(b models.Budget) bool { return b.ID == id })
	if i == -1 {
		return models.Budget{}, notFound("budget")
	}

	return budgets[i], nil
}

// Add stores a new budget. Budgets for the same category and period
// are not deduplicated.
func (r Budgets) Add(ctx context.Context, budget models.Budget) (models.Budget, error) {
	budget.Normalize()
	budget.ID = uuid.New()
	budget.Timestamps = models.Timestamps{}
	budget.Touch(r.s.timestamp())

	if err := budget.Validate(); err != nil {
		return models.Budget{}, err
	}

	err := update(ctx, r.s, models.CollectionBudgets, func(budgets *[]models.Budget) error {
		*budgets = append(*budgets, budget)
		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Update applies a change to a budget. The ID and creation time are kept.
func (r Budgets) Update(ctx context.Context, id uuid.UUID, apply func(*models.Budget)) (models.Budget, error) {
	var updated models.Budget

	err := update(ctx, r.s, models.CollectionBudgets, func(budgets *[]models.Budget) error {
		i := slices.IndexFunc(*budgets, func(b models.Budget) bool { return b.ID == id })
		if i == -1 {
			return notFound("budget")
		}

		budget := (*budgets)[i]
		apply(&budget)
		budget.Normalize()
		budget.DefaultModel = (*budgets)[i].DefaultModel
		budget.Touch(r.s.timestamp())

		if err := budget.Validate(); err != nil {
			return err
		}

		(*budgets)[i] = budget
		updated = budget
		return nil
	})

	return updated, err
}

func (r Budgets) Delete(ctx context.Context, id uuid.UUID) error {
	return update(ctx, r.s, models.CollectionBudgets, func(budgets *[]models.Budget) error {
		i := slices.IndexFunc(*budgets, func(b models.Budget) bool { return b.ID == id })
		if i == -1 {
			return notFound("budget")
		}

		*budgets = slices.Delete(*budgets, i, i+1)
		return nil
	})
}
