// Package store persists the four calendar records as JSON documents in a
// key-value backend. Every save writes a record's entire current value.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/existflow/shootcal/internal/logger"
)

// Record keys
const (
	KeyProjects             = "projects-by-date"
	KeyPayments             = "payments"
	KeyShootStatusReminders = "shoot-status-reminders"
	KeyUserProfile          = "user-profile"
)

// Keys lists every record key
var Keys = []string{KeyProjects, KeyPayments, KeyShootStatusReminders, KeyUserProfile}

// Backend is durable key-value storage for serialized records
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store reads and writes calendar records through a Backend
type Store struct {
	backend Backend
	loc     *time.Location
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithLocation sets the zone that decoded timestamps are converted into
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock sets the time source used when a stored timestamp is unreadable
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store over backend
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		loc:     time.Local,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the zone decoded timestamps are expressed in
func (s *Store) Location() *time.Location {
	return s.loc
}

// Load decodes the record under key. It reports false when the record is
// absent or unreadable; unreadable records are logged, never returned as errors.
func Load[T any](s *Store, key string) (T, bool) {
	var value T

	raw, ok, err := s.backend.Get(key)
	if err != nil {
		logger.Error("Failed to read record", logger.F("key", key), logger.F("error", err))
		return value, false
	}
	if !ok {
		return value, false
	}

	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		logger.Error("Discarding malformed record", logger.F("key", key), logger.F("error", err))
		var zero T
		return zero, false
	}
	return value, true
}

// Save encodes value and writes it under key
func Save[T any](s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	logger.Debug("Record saved", logger.F("key", key), logger.F("bytes", len(data)))
	return nil
}
