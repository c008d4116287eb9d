package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/logger"
	"github.com/MrSnakeDoc/snip/internal/store/memory"
)

func TestImport(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	log := logger.New("error", false)

	f := File{Links: []Link{
		{URL: "https://go.dev", Title: domain.StringPtr("Go"), Description: domain.StringPtr("The Go website")},
		{URL: "https://example.com"},
		{URL: "", Title: domain.StringPtr("No url")},
		{URL: "https://pkg.go.dev", Title: domain.StringPtr("Packages")},
	}}

	res, err := Import(ctx, s, f, log)
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: 2, Skipped: 2}, res)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestImportSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	log := logger.New("error", false)

	_, err := s.Insert(ctx, "https://existing.example", domain.StringPtr("Existing"), nil)
	require.NoError(t, err)

	res, err := Import(ctx, s, File{Links: []Link{
		{URL: "https://go.dev", Title: domain.StringPtr("Go")},
	}}, log)
	require.NoError(t, err)
	assert.Zero(t, res.Inserted)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestImportFile(t *testing.T) {
	ctx := context.Background()
	log := logger.New("error", false)

	t.Run("empty path", func(t *testing.T) {
		res, err := ImportFile(ctx, memory.New(), "", log)
		require.NoError(t, err)
		assert.Equal(t, Result{}, res)
	})

	t.Run("from disk", func(t *testing.T) {
		s := memory.New()
		path := writeSeed(t, `links:
  - url: https://go.dev
    title: Go
`)
		res, err := ImportFile(ctx, s, path, log)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Inserted)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ImportFile(ctx, memory.New(), "/nonexistent/seed.yaml", log)
		assert.Error(t, err)
	})
}
