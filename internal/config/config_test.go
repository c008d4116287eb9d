package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenvInt64(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int64
		expected int64
	}{
		{name: "valid", value: "2048", def: 1, expected: 2048},
		{name: "missing uses default", value: "", def: 9, expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT64", tt.value)

			if got := getenvInt64("TEST_INT64", tt.def); got != tt.expected {
				t.Errorf("getenvInt64() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{name: "empty", value: "", expected: nil},
		{name: "single value", value: "value1", expected: []string{"value1"}},
		{name: "multiple values", value: "value1, value2 ,value3", expected: []string{"value1", "value2", "value3"}},
		{name: "quoted values", value: `"a.example.com", 'b.example.com'`, expected: []string{"a.example.com", "b.example.com"}},
		{name: "blank entries dropped", value: "a,, ,b", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.value)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestInvalidValuesPanic(t *testing.T) {
	tests := []struct {
		name  string
		value string
		parse func(key string)
	}{
		{name: "bool", value: "yes", parse: func(k string) { mustBool(k, false) }},
		{name: "duration", value: "invalid", parse: func(k string) { mustDuration(k, time.Second) }},
		{name: "int", value: "lots", parse: func(k string) { getenvInt(k, 1) }},
		{name: "int64", value: "lots", parse: func(k string) { getenvInt64(k, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INVALID", tt.value)

			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s parser should have panicked on %q", tt.name, tt.value)
				}
			}()
			tt.parse("TEST_INVALID")
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SNIP_STORE_BACKEND", "SNIP_LISTEN_PORT", "SNIP_STRICT_STATUS", "SNIP_SEED_FILE", "SNIP_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.ListenPort != ":3001" {
		t.Errorf("ListenPort = %q, want :3001", cfg.ListenPort)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendSQLite)
	}
	if cfg.SQLitePath != "urls.db" {
		t.Errorf("SQLitePath = %q, want urls.db", cfg.SQLitePath)
	}
	if cfg.StrictStatus {
		t.Error("StrictStatus should default to false")
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty for sqlite backend", cfg.RedisAddr)
	}
}

func TestLoadRedisBackend(t *testing.T) {
	t.Setenv("SNIP_STORE_BACKEND", "Redis")
	t.Setenv("SNIP_REDIS_ADDR", "localhost:6379")
	t.Setenv("SNIP_REDIS_PASSWORD_REQUIRED", "false")
	t.Setenv("SNIP_REDIS_DB", "2")
	t.Setenv("SNIP_LOG_LEVEL", "")

	cfg := Load()

	if cfg.StoreBackend != BackendRedis {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendRedis)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Errorf("redis settings = %q db %d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.RedisConnectTimeout != 30*time.Second {
		t.Errorf("RedisConnectTimeout = %v, want 30s", cfg.RedisConnectTimeout)
	}
}

func TestLoadPanics(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown backend",
			env:  map[string]string{"SNIP_STORE_BACKEND": "postgres"},
		},
		{
			name: "redis without address",
			env:  map[string]string{"SNIP_STORE_BACKEND": "redis", "SNIP_REDIS_ADDR": ""},
		},
		{
			name: "redis password required but missing",
			env: map[string]string{
				"SNIP_STORE_BACKEND":           "redis",
				"SNIP_REDIS_ADDR":              "localhost:6379",
				"SNIP_REDIS_PASSWORD_REQUIRED": "true",
				"SNIP_REDIS_PASSWORD":          "",
			},
		},
		{
			name: "strict status not a boolean",
			env:  map[string]string{"SNIP_STORE_BACKEND": "memory", "SNIP_STRICT_STATUS": "yes"},
		},
		{
			name: "non positive body limit",
			env:  map[string]string{"SNIP_STORE_BACKEND": "memory", "SNIP_MAX_BODY_BYTES": "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Load() should have panicked")
				}
			}()
			Load()
		})
	}
}
