package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Parser ParserConfig
	Fuzzy  FuzzyConfig
	Log    LogConfig
}

// ParserConfig holds parsing thresholds
type ParserConfig struct {
	MerchantScanLines int
}

// FuzzyConfig holds fuzzy-merge behavior
type FuzzyConfig struct {
	SimilarityThreshold float64
}

// LogConfig holds logging behavior
type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // json | text
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MerchantScanLines: getEnvAsInt("MERCHANT_SCAN_LINES", 5),
		},
		Fuzzy: FuzzyConfig{
			SimilarityThreshold: getEnvAsFloat64("SIMILARITY_THRESHOLD", 0.85),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Fuzzy.SimilarityThreshold < 0 || c.Fuzzy.SimilarityThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "SIMILARITY_THRESHOLD must be in [0,1]", ErrInvalidInput)
	}
	if c.Parser.MerchantScanLines < 1 {
		return NewAppError("CONFIG_ERROR", "MERCHANT_SCAN_LINES must be >= 1", ErrInvalidInput)
	}
	return nil
}
