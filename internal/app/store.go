package app

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/snip/internal/config"
	"github.com/MrSnakeDoc/snip/internal/logger"
	"github.com/MrSnakeDoc/snip/internal/redis"
	"github.com/MrSnakeDoc/snip/internal/store"
	"github.com/MrSnakeDoc/snip/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/snip/internal/store/redis"
	"github.com/MrSnakeDoc/snip/internal/store/sqlite"
)

// openStore builds the single store shared by every request.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		log.Info("opening sqlite store",
			logger.String("path", cfg.SQLitePath),
			logger.Duration("busy_timeout", cfg.SQLiteBusyTimeout))
		s, err := sqlite.Open(ctx, sqlite.Config{
			Path:        cfg.SQLitePath,
			BusyTimeout: cfg.SQLiteBusyTimeout,
		})
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.BackendRedis:
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, err
		}
		return redisstore.NewStore(client), nil

	case config.BackendMemory:
		log.Warn("using in-memory store, records are lost on restart")
		return memory.New(), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
