package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	ServerPort      string
	LogLevel        string
	CacheBackend    string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTL        time.Duration
	RateLimitTokens int
	RateLimitWindow time.Duration
}

// Load reads an optional .env file at path and then the process environment.
// A missing file is not an error; variables already set win over the file.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	return Config{
		ServerPort:      GetEnv("SERVER_PORT", "8080"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		CacheBackend:    GetEnv("CACHE_BACKEND", CacheBackendMemory),
		RedisAddr:       GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   GetEnv("REDIS_PASSWORD", ""),
		RedisDB:         GetEnvInt("REDIS_DB", 0),
		CacheTTL:        time.Duration(GetEnvInt("CACHE_TTL_MINUTES", 60)) * time.Minute,
		RateLimitTokens: GetEnvInt("RATE_LIMIT_CAPACITY", 60),
		RateLimitWindow: time.Duration(GetEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetEnvInt returns fallback when key is unset or not an integer.
func GetEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
