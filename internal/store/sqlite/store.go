// Package sqlite is the default, file-backed URL store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/store"
)

// Store is a store.Store backed by a SQLite database.
//
// There is no application-level lock: every write is a single INSERT and
// SQLite serializes writers itself (WAL journal + busy timeout).
type Store struct {
	db   *sql.DB
	opts store.Options
}

// compile-time assertion that we implement store.Store
var _ store.Store = (*Store)(nil)

// Config describes how to open the database.
type Config struct {
	Path        string        // database file (ex: "urls.db")
	BusyTimeout time.Duration // how long a writer waits on a locked database
}

// Open opens (creating if needed) the database at cfg.Path and applies the schema.
func Open(ctx context.Context, cfg Config, opts ...store.Option) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path must not be empty")
	}

	db, err := sql.Open("sqlite3", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("could not open SQLite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not apply SQLite schema: %w", err)
	}

	return &Store{
		db:   db,
		opts: store.BuildOptions(opts...),
	}, nil
}

// dsn builds a go-sqlite3 connection string.
func dsn(cfg Config) string {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_foreign_keys", "on")
	if cfg.BusyTimeout > 0 {
		q.Set("_busy_timeout", fmt.Sprintf("%d", cfg.BusyTimeout.Milliseconds()))
	}
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Count returns the number of rows in the url table.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, queryCount).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting urls in database: %w", err)
	}
	return n, nil
}

// Insert validates the input, then writes the record in a single statement.
func (s *Store) Insert(ctx context.Context, u string, title, description *string) (string, error) {
	rec, err := domain.NewRecord(s.opts.IDs.Generate(), u, title, description, s.opts.Now())
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx, queryInsert,
		rec.ID,
		rec.URL,
		rec.Title,
		rec.Description, // nil *string is stored as NULL
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("error adding url %s to database: %w", rec.ID, err)
	}

	return rec.ID, nil
}

// GetInfo returns url, title and description for id.
func (s *Store) GetInfo(ctx context.Context, id string) (domain.Info, error) {
	var (
		info domain.Info
		desc sql.NullString
	)

	err := s.db.QueryRowContext(ctx, queryGetInfo, id).Scan(&info.URL, &info.Title, &desc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Info{}, domain.ErrNotFound
		}
		return domain.Info{}, fmt.Errorf("error resolving info for %s in database: %w", id, err)
	}

	if desc.Valid {
		info.Description = domain.StringPtr(desc.String)
	}
	return info, nil
}

// GetURL returns the target URL for id.
func (s *Store) GetURL(ctx context.Context, id string) (string, error) {
	var longURL string

	err := s.db.QueryRowContext(ctx, queryGetURL, id).Scan(&longURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("error resolving id %s to url in database: %w", id, err)
	}

	return longURL, nil
}

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
