package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/logger"
	"github.com/MrSnakeDoc/snip/internal/store"
)

// Result summarizes an import run.
type Result struct {
	Inserted int
	Skipped  int
}

// Import inserts every link of f into s, but only when s is empty.
// Links failing validation are logged and skipped; engine faults abort.
func Import(ctx context.Context, s store.Store, f File, log logger.Logger) (Result, error) {
	var res Result

	n, err := s.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: count: %w", err)
	}
	if n > 0 {
		log.Info("store not empty, skipping seed import", logger.Int64("count", n))
		return res, nil
	}

	for i, link := range f.Links {
		id, err := s.Insert(ctx, link.URL, link.Title, link.Description)
		switch {
		case errors.Is(err, domain.ErrTitleRequired), errors.Is(err, domain.ErrURLRequired):
			res.Skipped++
			log.Warn("skipping seed entry",
				logger.Int("index", i),
				logger.String("url", link.URL),
				logger.Error(err))
			continue
		case err != nil:
			return res, fmt.Errorf("seed: insert entry %d: %w", i, err)
		}

		res.Inserted++
		log.Debug("seeded url",
			logger.String("id", id),
			logger.String("url", link.URL))
	}

	log.Info("seed import done",
		logger.Int("inserted", res.Inserted),
		logger.Int("skipped", res.Skipped))

	return res, nil
}

// ImportFile loads path and imports it. An empty path is a no-op.
func ImportFile(ctx context.Context, s store.Store, path string, log logger.Logger) (Result, error) {
	if path == "" {
		return Result{}, nil
	}

	f, err := NewLoader(path).Load()
	if err != nil {
		return Result{}, err
	}

	return Import(ctx, s, f, log)
}
