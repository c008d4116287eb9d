// Package storetest holds the behavioural suite every store.Store backend must pass.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/store"
)

// Factory returns a fresh, empty store. It should register its own cleanup.
type Factory func(t *testing.T, opts ...store.Option) store.Store

// Run executes the whole suite against the backend built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("insert then lookup", func(t *testing.T) { testInsertThenLookup(t, newStore) })
	t.Run("description absence is preserved", func(t *testing.T) { testDescription(t, newStore) })
	t.Run("title is required", func(t *testing.T) { testTitleRequired(t, newStore) })
	t.Run("url is required", func(t *testing.T) { testURLRequired(t, newStore) })
	t.Run("unknown id is not found", func(t *testing.T) { testNotFound(t, newStore) })
	t.Run("count follows successful inserts", func(t *testing.T) { testCount(t, newStore) })
	t.Run("concurrent inserts", func(t *testing.T) { testConcurrentInserts(t, newStore) })
	t.Run("duplicate id is a fault", func(t *testing.T) { testDuplicateID(t, newStore) })
	t.Run("lookups return copies", func(t *testing.T) { testCopies(t, newStore) })
	t.Run("ping", func(t *testing.T) { require.NoError(t, newStore(t).Ping(context.Background())) })
}

func testInsertThenLookup(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	id, err := s.Insert(ctx, "https://example.com", domain.StringPtr("Example"), nil)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	u, err := s.GetURL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", u)

	info, err := s.GetInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", info.URL)
	assert.Equal(t, "Example", info.Title)
	assert.Nil(t, info.Description)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func testDescription(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	tests := []struct {
		name        string
		description *string
	}{
		{name: "absent", description: nil},
		{name: "empty", description: domain.StringPtr("")},
		{name: "text", description: domain.StringPtr("a longer description")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := s.Insert(ctx, "https://example.com/"+tt.name, domain.StringPtr("t"), tt.description)
			require.NoError(t, err)

			info, err := s.GetInfo(ctx, id)
			require.NoError(t, err)
			if tt.description == nil {
				assert.Nil(t, info.Description)
				return
			}
			require.NotNil(t, info.Description)
			assert.Equal(t, *tt.description, *info.Description)
		})
	}
}

func testTitleRequired(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	for _, title := range []*string{nil, domain.StringPtr("")} {
		id, err := s.Insert(ctx, "https://example.com", title, domain.StringPtr("desc"))
		assert.ErrorIs(t, err, domain.ErrTitleRequired)
		assert.Empty(t, id)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testURLRequired(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Insert(ctx, "", domain.StringPtr("Example"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrURLRequired)
	assert.NotErrorIs(t, err, domain.ErrTitleRequired)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testNotFound(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Insert(ctx, "https://example.com", domain.StringPtr("Example"), nil)
	require.NoError(t, err)

	_, err = s.GetInfo(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.GetURL(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testCount(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	var ok int64
	for i := 0; i < 10; i++ {
		var title *string
		if i%3 != 0 {
			title = domain.StringPtr(fmt.Sprintf("title %d", i))
		}
		if _, err := s.Insert(ctx, fmt.Sprintf("https://example.com/%d", i), title, nil); err == nil {
			ok++
		}
	}

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, ok, n)
	assert.EqualValues(t, 6, n)
}

func testConcurrentInserts(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	const workers = 16

	ids := make([]string, workers)

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		eg.Go(func() error {
			id, err := s.Insert(ctx,
				fmt.Sprintf("https://example.com/%d", i),
				domain.StringPtr(fmt.Sprintf("title %d", i)),
				nil)
			ids[i] = id
			return err
		})
	}
	require.NoError(t, eg.Wait())

	seen := make(map[string]bool, workers)
	for i := 0; i < workers; i++ {
		require.False(t, seen[ids[i]], "duplicate id %s", ids[i])
		seen[ids[i]] = true

		u, err := s.GetURL(ctx, ids[i])
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), u)

		info, err := s.GetInfo(ctx, ids[i])
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("title %d", i), info.Title)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, workers, n)
}

func testDuplicateID(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t, store.WithIDGenerator(domain.GeneratorFunc(func() string { return "fixed" })))

	id, err := s.Insert(ctx, "https://first.example.com", domain.StringPtr("first"), nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)

	_, err = s.Insert(ctx, "https://second.example.com", domain.StringPtr("second"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTitleRequired)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	u, err := s.GetURL(ctx, "fixed")
	require.NoError(t, err)
	assert.Equal(t, "https://first.example.com", u, "first record must not be overwritten")

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func testCopies(t *testing.T, newStore Factory) {
	ctx := context.Background()
	s := newStore(t)

	desc := "original"
	id, err := s.Insert(ctx, "https://example.com", domain.StringPtr("Example"), &desc)
	require.NoError(t, err)
	desc = "changed by caller"

	info, err := s.GetInfo(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, info.Description)
	assert.Equal(t, "original", *info.Description)

	*info.Description = "changed by reader"

	again, err := s.GetInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "original", *again.Description)
}
