// package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// storage
	StoreURL string // sqlite file path or postgres:// URL

	// nats (optional - empty disables event publishing)
	NatsURL string

	// server
	APIPort int
	WebPort int

	// skill extraction
	SkillsFile string // optional YAML override for the skill tables

	// digest
	DigestSize int

	// rate limiting for analyze endpoint
	AnalyzeRPS   float64
	AnalyzeBurst int

	// logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		StoreURL:     getEnv("STORE_URL", "./data/careerdesk.db"),
		NatsURL:      getEnv("NATS_URL", ""),
		APIPort:      getEnvInt("API_PORT", 3200),
		WebPort:      getEnvInt("WEB_PORT", 3201),
		SkillsFile:   getEnv("SKILLS_FILE", ""),
		DigestSize:   getEnvInt("DIGEST_SIZE", 10),
		AnalyzeRPS:   getEnvFloat("ANALYZE_RPS", 2.0),
		AnalyzeBurst: getEnvInt("ANALYZE_BURST", 5),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", "./logs/app.log"),
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
