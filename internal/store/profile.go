package store

import (
	"context"

	"github.com/billtrail/backend/internal/models"
)

// Profile is the repository for the user profile.
type Profile struct {
	s *Store
}

func (s *Store) Profile() Profile {
	return Profile{s}
}

// Get returns the stored profile, or the default profile if none has been saved.
func (r Profile) Get(ctx context.Context) (models.Profile, error) {
	profile := models.DefaultProfile()
	_, err := load(ctx, r.s, models.CollectionProfile, &profile)
	return profile, err
}

func (r Profile) Save(ctx context.Context, profile models.Profile) (models.Profile, error) {
	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return models.Profile{}, err
	}

	err := update(ctx, r.s, models.CollectionProfile, func(stored *models.Profile) error {
		*stored = profile
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}
