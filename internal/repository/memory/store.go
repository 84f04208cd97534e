// Package memory provides an in-process repository.Store.
package memory

import (
	"context"
)

// Store keeps values in a map. Reads and writes can be made to fail,
// which lets callers exercise their storage error paths.
type Store struct {
	values   map[string]string
	readErr  error
	writeErr error
	writes   int
}

// New creates an empty store
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// NewWithValues creates a store seeded with a copy of values
func NewWithValues(values map[string]string) *Store {
	s := New()
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get returns the value for key
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if s.readErr != nil {
		return "", false, s.readErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.writeErr != nil {
		return s.writeErr
	}
	s.values[key] = value
	s.writes++
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}

// FailReads makes every subsequent Get return err; nil restores normal reads
func (s *Store) FailReads(err error) {
	s.readErr = err
}

// FailWrites makes every subsequent Set return err; nil restores normal writes
func (s *Store) FailWrites(err error) {
	s.writeErr = err
}

// Writes returns the number of successful Set calls
func (s *Store) Writes() int {
	return s.writes
}

// Value returns the raw stored value without going through Get
func (s *Store) Value(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}
