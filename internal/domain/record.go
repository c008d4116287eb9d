package domain

import (
	"errors"
	"time"
)

// Domain outcomes. Callers branch on these with errors.Is; anything else a
// store returns is an engine fault.
var (
	// ErrNotFound is returned by lookups for an id that was never inserted.
	ErrNotFound = errors.New("not found")

	// ErrTitleRequired is returned by Insert when the title is absent or empty.
	// Nothing is written in that case.
	ErrTitleRequired = errors.New("title is required")
)

// ErrURLRequired is returned by Insert when the target URL is empty.
// It is NOT a domain outcome: the dispatcher treats it as malformed input.
var ErrURLRequired = errors.New("url is required")

// Record is a stored short link.
//
// Every field is immutable once the record has been persisted.
// Stores hand out copies, never pointers into their own state.
type Record struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is the opaque token used as primary key and as the short path segment.
	ID string

	// ─────────────────────────────
	// Payload
	// ─────────────────────────────

	// URL is the redirect target. Never empty.
	URL string

	// Title is a human-readable label. Never empty.
	Title string

	// Description is optional free text.
	// nil means absent, which is not the same thing as "".
	Description *string

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is assigned by the store at insert time.
	CreatedAt time.Time
}

// Info is the descriptive projection of a Record returned by GetInfo.
type Info struct {
	URL         string
	Title       string
	Description *string
}

// Info returns the descriptive projection of r.
func (r Record) Info() Info {
	return Info{
		URL:         r.URL,
		Title:       r.Title,
		Description: CloneString(r.Description),
	}
}

// NewRecord validates the insert input and builds the record to persist.
// The title check runs first so a missing title is always reported as
// ErrTitleRequired, whatever else is wrong with the input.
func NewRecord(id, url string, title, description *string, now time.Time) (Record, error) {
	if title == nil || *title == "" {
		return Record{}, ErrTitleRequired
	}
	if url == "" {
		return Record{}, ErrURLRequired
	}

	return Record{
		ID:          id,
		URL:         url,
		Title:       *title,
		Description: CloneString(description),
		CreatedAt:   now.UTC(),
	}, nil
}

// CloneString returns a copy of s so the caller cannot alias stored state.
func CloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr is a small helper for optional fields.
func StringPtr(s string) *string { return &s }
