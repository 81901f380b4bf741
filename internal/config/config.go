package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Upstream API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Output artifacts
	OutputPath string
	ReportPath string

	// Local response cache (empty = disabled)
	CachePath string

	// Request pacing
	FetchDelay time.Duration

	// Translation sources (0 = not requested)
	EnglishTranslationID    int
	IndonesianTranslationID int

	// Application
	LogLevel string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIBaseURL:  getEnv("QURAN_API_BASE_URL", "https://api.quran.com/api/v4"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),

		OutputPath: getEnv("OUTPUT_PATH", "juz_amma_data.json"),
		ReportPath: getEnv("REPORT_PATH", ""),
		CachePath:  getEnv("CACHE_PATH", ""),

		FetchDelay: getEnvDuration("FETCH_DELAY", 500*time.Millisecond),

		EnglishTranslationID:    getEnvInt("ENGLISH_TRANSLATION_ID", 0),
		IndonesianTranslationID: getEnvInt("INDONESIAN_TRANSLATION_ID", 0),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("QURAN_API_BASE_URL is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.FetchDelay < 0 {
		return fmt.Errorf("FETCH_DELAY must not be negative")
	}
	if c.EnglishTranslationID < 0 || c.IndonesianTranslationID < 0 {
		return fmt.Errorf("translation ids must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
