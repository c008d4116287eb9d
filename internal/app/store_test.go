package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/snip/internal/config"
	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

func TestOpenStore(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "sqlite",
			cfg: config.Config{
				StoreBackend:      config.BackendSQLite,
				SQLitePath:        filepath.Join(t.TempDir(), "urls.db"),
				SQLiteBusyTimeout: time.Second,
			},
		},
		{
			name: "redis",
			cfg: config.Config{
				StoreBackend:        config.BackendRedis,
				RedisAddr:           mr.Addr(),
				RedisDT:             time.Second,
				RedisRT:             time.Second,
				RedisWT:             time.Second,
				RedisPoolSize:       2,
				RedisConnectTimeout: 2 * time.Second,
				RedisRetryInterval:  50 * time.Millisecond,
				RedisMaxWait:        200 * time.Millisecond,
				RedisPingTimeout:    time.Second,
				RedisWarnThreshold:  3,
			},
		},
		{
			name: "memory",
			cfg:  config.Config{StoreBackend: config.BackendMemory},
		},
	}

	log := logger.New("error", false)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			st, err := openStore(ctx, &tt.cfg, log)
			require.NoError(t, err)
			t.Cleanup(func() { _ = st.Close() })

			require.NoError(t, st.Ping(ctx))

			id, err := st.Insert(ctx, "https://example.com", domain.StringPtr("Example"), nil)
			require.NoError(t, err)

			got, err := st.GetURL(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", got)
		})
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := openStore(context.Background(), &config.Config{StoreBackend: "etcd"}, logger.New("error", false))
	assert.Error(t, err)
}
