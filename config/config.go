package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything main needs to wire the service together.
type Config struct {
	Port           string
	Environment    string
	Domain         string
	CORSOrigin     string
	JWTSecret      string
	RedisAddress   string
	RedisPassword  string
	MockLatency    time.Duration
	SeedCount      int
	SeedFile       string
	IssueRateLimit int
}

// Load reads configuration from the environment. godotenv is loaded by main
// before this runs, so .env values are already visible here.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("GO_ENV", "development"),
		Domain:         getEnv("DOMAIN", ""),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		RedisAddress:   getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		MockLatency:    time.Duration(getEnvInt("MOCK_LATENCY_MS", 1000)) * time.Millisecond,
		SeedCount:      getEnvInt("SEED_COUNT", 25),
		SeedFile:       getEnv("SEED_FILE", ""),
		IssueRateLimit: getEnvInt("ISSUE_RATE_LIMIT", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
