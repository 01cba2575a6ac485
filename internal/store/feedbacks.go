package store

import (
	"context"

	"github.com/billtrail/backend/internal/models"
	"github.com/google/uuid"
)

// Feedbacks is the repository for feedback entries.
type Feedbacks struct {
	s *Store
}

func (s *Store) Feedbacks() Feedbacks {
	return Feedbacks{s}
}

func (r Feedbacks) List(ctx context.Context) ([]models.Feedback, error) {
	feedbacks := []models.Feedback{}
	_, err := load(ctx, r.s, models.CollectionFeedbacks, &feedbacks)
	return feedbacks, err
}

func (r Feedbacks) Add(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	feedback.Normalize()
	feedback.ID = uuid.New()
	feedback.Date = r.s.timestamp()

	if err := feedback.Validate(); err != nil {
		return models.Feedback{}, err
	}

	err := update(ctx, r.s, models.CollectionFeedbacks, func(feedbacks *[]models.Feedback) error {
		*feedbacks = append(*feedbacks, feedback)
		return nil
	})
	if err != nil {
		return models.Feedback{}, err
	}

	return feedback, nil
}
