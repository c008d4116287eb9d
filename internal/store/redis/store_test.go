package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/store"
	"github.com/MrSnakeDoc/snip/internal/store/storetest"
)

func newTestStore(t *testing.T, opts ...store.Option) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s := NewStore(client, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T, opts ...store.Option) store.Store {
		s, _ := newTestStore(t, opts...)
		return s
	})
}

func TestInsertLayout(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	id, err := s.Insert(ctx, "https://example.com", domain.StringPtr("Example"), nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", mr.HGet(URLKey(id), fieldURL))
	assert.Equal(t, "Example", mr.HGet(URLKey(id), fieldTitle))
	assert.NotEmpty(t, mr.HGet(URLKey(id), fieldCreatedAt))

	keys, err := mr.HKeys(URLKey(id))
	require.NoError(t, err)
	assert.NotContains(t, keys, fieldDescription, "absent description must not be written")

	ok, err := mr.SIsMember(AllURLsKey(), id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngineFaultPropagates(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)
	mr.Close()

	_, err := s.Insert(ctx, "https://example.com", domain.StringPtr("Example"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTitleRequired)

	_, err = s.GetURL(ctx, "anything")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	assert.Error(t, s.Ping(ctx))
}
