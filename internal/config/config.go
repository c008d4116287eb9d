package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by SNIP_STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":3001"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request deadline (ex: 2s)
	MaxBodyBytes    int64         // cap on POST /new bodies
	StrictStatus    bool          // true => 404/422 for domain errors, false => 200 + error body

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend      string        // "sqlite" | "redis" | "memory"
	SQLitePath        string        // path to the SQLite database file
	SQLiteBusyTimeout time.Duration // how long a writer waits for the lock
	SeedFile          string        // optional links.yaml imported into an empty store

	// Redis (only read when StoreBackend == "redis")
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict /healthz and /readyz to specific IPs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SNIP_LISTEN_PORT", ":3001"),
		ShutdownTimeout: mustDuration("SNIP_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("SNIP_REQUEST_TIMEOUT", 2*time.Second),
		MaxBodyBytes:    getenvInt64("SNIP_MAX_BODY_BYTES", 1<<20),
		StrictStatus:    mustBool("SNIP_STRICT_STATUS", false),

		// Logging
		LogLevel:  getenv("SNIP_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SNIP_PRETTY_LOG", true),

		// Storage
		StoreBackend:      strings.ToLower(getenv("SNIP_STORE_BACKEND", BackendSQLite)),
		SQLitePath:        getenv("SNIP_SQLITE_PATH", "urls.db"),
		SQLiteBusyTimeout: mustDuration("SNIP_SQLITE_BUSY_TIMEOUT", 5*time.Second),
		SeedFile:          getenv("SNIP_SEED_FILE", ""), // Optional, empty = no seeding

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("SNIP_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("SNIP_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("SNIP_TRUST_PROXY", false),
	}

	switch cfg.StoreBackend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		loadRedis(cfg)
	default:
		panic(fmt.Sprintf("❌ FATAL: SNIP_STORE_BACKEND must be one of %s, %s, %s (got %q)",
			BackendSQLite, BackendRedis, BackendMemory, cfg.StoreBackend))
	}

	if cfg.MaxBodyBytes <= 0 {
		panic(fmt.Sprintf("❌ FATAL: SNIP_MAX_BODY_BYTES must be > 0, got %d", cfg.MaxBodyBytes))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// loadRedis fills the Redis section; it is only called for the redis backend
// so sqlite deployments need no Redis variables at all.
func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("SNIP_REDIS_ADDR")
	cfg.RedisUser = getenv("SNIP_REDIS_USERNAME", "default")
	cfg.RedisPasswordRequired = mustBool("SNIP_REDIS_PASSWORD_REQUIRED", true)
	cfg.RedisPassword = getenv("SNIP_REDIS_PASSWORD", "")
	cfg.RedisDB = getenvInt("SNIP_REDIS_DB", 0)
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
	cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: SNIP_REDIS_PASSWORD is required when SNIP_REDIS_PASSWORD_REQUIRED=true")
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %s must be an integer, got %q", key, v))
	}
	return i
}

func getenvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %s must be an integer, got %q", key, v))
	}
	return i
}

func mustBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %s must be a boolean (true/false), got %q", key, v))
	}
	return b
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: %s must be a duration (ex: 5s), got %q", key, v))
	}
	return d
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
