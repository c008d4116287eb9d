// Package store defines the URL store contract shared by every backend.
package store

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/snip/internal/domain"
)

// Store owns the persisted URL records.
//
// Implementations must be safe for concurrent use. Insert is atomic: either
// the full record is written or nothing is. A record is visible to every
// read that starts after Insert has returned.
//
// Recognized outcomes are reported as domain.ErrNotFound and
// domain.ErrTitleRequired. Any other error is an engine fault.
type Store interface {
	// Count returns the number of persisted records.
	Count(ctx context.Context) (int64, error)

	// Insert persists a new record and returns its generated id.
	// A nil or empty title yields domain.ErrTitleRequired and writes nothing.
	Insert(ctx context.Context, url string, title, description *string) (string, error)

	// GetInfo returns the descriptive fields of the record.
	GetInfo(ctx context.Context, id string) (domain.Info, error)

	// GetURL returns only the target URL of the record.
	GetURL(ctx context.Context, id string) (string, error)

	// Ping checks that the storage engine is reachable.
	Ping(ctx context.Context) error

	// Close releases the engine handle.
	Close() error
}

// Options are shared by all backends.
type Options struct {
	IDs domain.IDGenerator // defaults to domain.UUIDGenerator
	Now func() time.Time   // defaults to time.Now
}

// Option customizes Options.
type Option func(*Options)

// WithIDGenerator overrides the identifier generator (tests use it to force collisions).
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(o *Options) { o.IDs = g }
}

// WithClock overrides the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.Now = now }
}

// BuildOptions applies opts on top of the defaults.
func BuildOptions(opts ...Option) Options {
	o := Options{
		IDs: domain.UUIDGenerator{},
		Now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
