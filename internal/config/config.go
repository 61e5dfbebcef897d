package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	CartFile        string
	RedisAddr       string
	RedisPassword   string
	MockDelay       time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr: envOrDefault("HTTP_ADDR", ":8080"),
		// Empty means no database: the API serves the generated mock
		// catalog instead.
		DBConnString:    envOrDefault("DB_DSN", ""),
		CartFile:        envOrDefault("CART_FILE", "data/cart.json"),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		RedisPassword:   envOrDefault("REDIS_PASS", ""),
		MockDelay:       envMillis("MOCK_DELAY_MS", -1),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

// envMillis returns def when the variable is unset or unparsable. A value of
// 0 is meaningful (no artificial delay), so def must be distinguishable; -1
// means "use the repository's own default".
func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
