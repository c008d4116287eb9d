// Package memory provides an in-process URL store.
// Nothing survives a restart; it backs tests and SNIP_STORE_BACKEND=memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/store"
)

// Store keeps records in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	records map[string]domain.Record // ID -> Record
	opts    store.Options
}

var _ store.Store = (*Store)(nil)

// New creates an empty memory store
func New(opts ...store.Option) *Store {
	return &Store{
		records: make(map[string]domain.Record),
		opts:    store.BuildOptions(opts...),
	}
}

// Count returns the number of records
func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.records)), nil
}

// Insert adds a record, refusing to overwrite an existing id
func (s *Store) Insert(_ context.Context, url string, title, description *string) (string, error) {
	rec, err := domain.NewRecord(s.opts.IDs.Generate(), url, title, description, s.opts.Now())
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return "", fmt.Errorf("duplicate id %s", rec.ID)
	}
	s.records[rec.ID] = rec

	return rec.ID, nil
}

// GetInfo returns a copy of the descriptive fields
func (s *Store) GetInfo(_ context.Context, id string) (domain.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Info{}, domain.ErrNotFound
	}
	return rec.Info(), nil
}

// GetURL returns the target URL
func (s *Store) GetURL(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return rec.URL, nil
}

// Ping always succeeds
func (s *Store) Ping(_ context.Context) error { return nil }

// Close drops all records
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]domain.Record)
	return nil
}
