// Package v1 implements the v1 HTTP API of Billtrail.
package v1

import (
	"context"
	"time"

	"github.com/billtrail/backend/internal/money"
	"github.com/billtrail/backend/internal/store"
	"github.com/billtrail/backend/internal/types"
	"github.com/billtrail/backend/internal/variability"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	Store   *store.Store
	Source  variability.Source // Randomness for simulated extraction, insights and mailbox scans
	Now     func() time.Time
	Version string // Version of the backend, reported in exports
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}

	return co.Now()
}

func (co Controller) today() types.Date {
	return types.DateOf(co.now())
}

// formatter returns the money formatter for the language and currency
// of the user's profile.
func (co Controller) formatter(ctx context.Context) (money.Formatter, error) {
	profile, err := co.Store.Profile().Get(ctx)
	if err != nil {
		return money.Formatter{}, err
	}

	return money.ForProfile(profile), nil
}
