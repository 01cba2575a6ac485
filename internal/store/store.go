// Package store keeps the Billtrail collections.
//
// Every collection is stored as one JSON document in the collections table.
// Reading a collection returns the whole document, writing one replaces it.
// Writes to the same collection are serialized: each mutation reads,
// modifies and writes the document while holding the collection's lock, so
// concurrent mutations never overwrite each other.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/billtrail/backend/internal/models"
	"github.com/billtrail/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMalformedCollection is returned when a stored collection cannot be parsed.
var ErrMalformedCollection = errors.New("stored data is malformed")

// Store gives access to the repositories of all collections.
type Store struct {
	db    *gorm.DB
	now   func() time.Time
	locks map[string]*sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns a Store backed by db.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:    db,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex, len(models.Collections)),
	}

	for _, key := range models.Collections {
		s.locks[key] = &sync.Mutex{}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open connects to the SQLite database at dsn and returns a Store for it.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := models.Connect(dsn)
	if err != nil {
		return nil, err
	}

	return New(db, opts...), nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (s *Store) today() types.Date {
	return types.DateOf(s.now())
}

func (s *Store) timestamp() time.Time {
	return s.now().In(time.UTC)
}

// raw returns the stored document for key. found is false if the
// collection has never been written.
func (s *Store) raw(ctx context.Context, key string) (value string, found bool, err error) {
	var c models.Collection
	err = s.db.WithContext(ctx).Where(&models.Collection{Key: key}).First(&c).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return c.Value, true, nil
}

// load reads the collection stored under key into dst. dst is left
// untouched when the collection does not exist.
func load[T any](ctx context.Context, s *Store, key string, dst *T) (bool, error) {
	value, found, err := s.raw(ctx, key)
	if err != nil || !found {
		return found, err
	}

	err = json.Unmarshal([]byte(value), dst)
	if err != nil {
		log.Error().Str("collection", key).Err(err).Msg("Failed to parse stored collection")
		return true, fmt.Errorf("%w: %s: %s", ErrMalformedCollection, key, err)
	}

	return true, nil
}

// save replaces the collection stored under key with v.
func save[T any](ctx context.Context, s *Store, key string, v T) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", key, err)
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&models.Collection{
		Key:   key,
		Value: string(value),
	}).Error
}

// update runs fn on the current contents of the collection and stores the
// result. The collection's lock is held for the whole read-modify-write.
// If fn returns an error, nothing is written.
func update[T any](ctx context.Context, s *Store, key string, fn func(*T) error) error {
	lock := s.locks[key]
	lock.Lock()
	defer lock.Unlock()

	var v T
	if _, err := load(ctx, s, key, &v); err != nil {
		return err
	}

	if err := fn(&v); err != nil {
		return err
	}

	return save(ctx, s, key, v)
}

func notFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

// Export returns the raw documents of all collections that have been written.
func (s *Store) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	export := make(map[string]json.RawMessage, len(models.Collections))

	for _, key := range models.Collections {
		value, found, err := s.raw(ctx, key)
		if err != nil {
			return nil, err
		}

		if !found {
			continue
		}

		if !json.Valid([]byte(value)) {
			return nil, fmt.Errorf("%w: %s", ErrMalformedCollection, key)
		}

		export[key] = json.RawMessage(value)
	}

	return export, nil
}

// Reset deletes all collections.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range models.Collections {
		s.locks[key].Lock()
		defer s.locks[key].Unlock()
	}

	return s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Collection{}).Error
}
