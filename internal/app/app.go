package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/snip/internal/config"
	"github.com/MrSnakeDoc/snip/internal/httpserver"
	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
	"github.com/MrSnakeDoc/snip/internal/sources/seed"
	"github.com/MrSnakeDoc/snip/internal/store"
	"github.com/MrSnakeDoc/snip/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
	store  store.Store
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the store early - fail fast if it is unusable.
	ctx := context.Background()
	storeLogger := loggerClient.With(logger.String("backend", cfg.StoreBackend))
	st, err := openStore(ctx, cfg, storeLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	storeLogger.Info("store initialized")

	if cfg.SeedFile != "" {
		seedLogger := storeLogger.With(logger.String("seed_file", cfg.SeedFile))
		seedLogger.Info("seed file configured")
		if _, err := seed.ImportFile(ctx, st, cfg.SeedFile, seedLogger); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("failed to import seed file: %w", err)
		}
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Store:        st,
		StoreBackend: cfg.StoreBackend,
		StrictStatus: cfg.StrictStatus,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: httpserver.New(cfg, loggerClient, d),
		store:  st,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)
	a.logger.Info("dispatcher settings",
		logger.Bool("strict_status", a.cfg.StrictStatus),
		logger.Bool("trust_proxy", a.cfg.TrustProxy),
		logger.Int64("max_body_bytes", a.cfg.MaxBodyBytes),
		logger.Duration("request_timeout", a.cfg.RequestTimeout))
	defer a.closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Stops the server on a signal, or when Start fails.
	eg.Go(func() error {
		<-ctx.Done()
		a.logger.Info("⏳ Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := a.server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	a.logger.Info("✅ snip stopped cleanly")
	_ = a.logger.Sync()
	return nil
}

// closeStore runs after the server stopped accepting requests.
func (a *App) closeStore() {
	if err := a.store.Close(); err != nil {
		a.logger.Warnf("failed to close %s store: %v", a.cfg.StoreBackend, err)
		return
	}
	a.logger.Info("✅ store closed cleanly", logger.String("backend", a.cfg.StoreBackend))
}
