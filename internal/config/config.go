package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile     string   // optional path to a seed YAML file; empty = built-in defaults
	AllowedHosts []string // optional, restrict access to specific Host headers

	// Enrichment
	MetadataEndpoint   string        // metadata-extraction endpoint (social-preview images)
	ScreenshotEndpoint string        // screenshot-rendering endpoint
	ScreenshotKey      string        // access key for the screenshot endpoint (empty = stage disabled)
	EnrichTimeout      time.Duration // per-stage HTTP timeout
	BackfillInterval   time.Duration // interval for the enrichment backfill pass

	// Persistence
	PersistTimeout time.Duration // upper bound for a single slot write

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // ex: 5s
	RedisReadTimeout    time.Duration // ex: 3s
	RedisWriteTimeout   time.Duration // ex: 3s
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries
	RedisPingTimeout    time.Duration // timeout per ping attempt
}

func Load() *Config {
	return &Config{
		ListenPort:      getenv("MARQUE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MARQUE_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("MARQUE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MARQUE_PRETTY_LOG", true),

		SeedFile:     getenv("MARQUE_SEED_FILE", ""),
		AllowedHosts: splitAndTrim(getenv("MARQUE_ALLOWED_HOSTS", "")),

		MetadataEndpoint:   getenv("MARQUE_METADATA_ENDPOINT", "https://api.microlink.io"),
		ScreenshotEndpoint: getenv("MARQUE_SCREENSHOT_ENDPOINT", "https://api.apiflash.com/v1/urltoimage"),
		ScreenshotKey:      getenv("MARQUE_SCREENSHOT_KEY", ""),
		EnrichTimeout:      mustDuration("MARQUE_ENRICH_TIMEOUT", 10*time.Second),
		BackfillInterval:   mustDuration("MARQUE_BACKFILL_INTERVAL", 24*time.Hour),

		PersistTimeout: mustDuration("MARQUE_PERSIST_TIMEOUT", 3*time.Second),

		RedisAddr:           requireEnv("MARQUE_REDIS_ADDR"),
		RedisUser:           getenv("MARQUE_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("MARQUE_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("MARQUE_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("MARQUE_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("MARQUE_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("MARQUE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("MARQUE_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("MARQUE_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("MARQUE_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("MARQUE_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("MARQUE_REDIS_PING_TIMEOUT", 5*time.Second),
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
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
