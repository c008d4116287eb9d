package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/store"
)

// insertScript writes the record hash and registers its id in one atomic step.
// It refuses to overwrite an existing id and returns 0 in that case.
//
// KEYS[1] record hash, KEYS[2] id set
// ARGV[1] id, ARGV[2..] field/value pairs
var insertScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], unpack(ARGV, 2))
redis.call("SADD", KEYS[2], ARGV[1])
return 1
`)

// Store handles Redis operations for url records
type Store struct {
	client *redis.Client
	opts   store.Options
}

var _ store.Store = (*Store)(nil)

// NewStore creates a new Redis store on an already connected client
func NewStore(client *redis.Client, opts ...store.Option) *Store {
	return &Store{
		client: client,
		opts:   store.BuildOptions(opts...),
	}
}

// Count returns the cardinality of the id set
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, AllURLsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count urls: %w", err)
	}
	return n, nil
}

// Insert stores a new record. The description field is only written when
// present so that absence survives a round trip.
func (s *Store) Insert(ctx context.Context, url string, title, description *string) (string, error) {
	rec, err := domain.NewRecord(s.opts.IDs.Generate(), url, title, description, s.opts.Now())
	if err != nil {
		return "", err
	}

	args := []interface{}{
		rec.ID,
		fieldURL, rec.URL,
		fieldTitle, rec.Title,
		fieldCreatedAt, rec.CreatedAt.Format(time.RFC3339Nano),
	}
	if rec.Description != nil {
		args = append(args, fieldDescription, *rec.Description)
	}

	created, err := insertScript.Run(ctx, s.client, []string{URLKey(rec.ID), AllURLsKey()}, args...).Int()
	if err != nil {
		return "", fmt.Errorf("failed to save url: %w", err)
	}
	if created == 0 {
		return "", fmt.Errorf("failed to save url: id %s already exists", rec.ID)
	}

	return rec.ID, nil
}

// GetInfo retrieves url, title and description of a record
func (s *Store) GetInfo(ctx context.Context, id string) (domain.Info, error) {
	vals, err := s.client.HMGet(ctx, URLKey(id), fieldURL, fieldTitle, fieldDescription).Result()
	if err != nil {
		return domain.Info{}, fmt.Errorf("failed to get url info: %w", err)
	}

	u, ok := vals[0].(string)
	if !ok {
		return domain.Info{}, domain.ErrNotFound
	}

	info := domain.Info{URL: u}
	if title, ok := vals[1].(string); ok {
		info.Title = title
	}
	if desc, ok := vals[2].(string); ok {
		info.Description = domain.StringPtr(desc)
	}
	return info, nil
}

// GetURL retrieves only the url field of a record
func (s *Store) GetURL(ctx context.Context, id string) (string, error) {
	u, err := s.client.HGet(ctx, URLKey(id), fieldURL).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to get url: %w", err)
	}
	return u, nil
}

// Ping checks the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}
