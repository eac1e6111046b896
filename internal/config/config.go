// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Ingestion pipeline
	PipelineAPIKey  string
	ProviderBaseURL string
	FetchTimeout    time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "quantboard"),
		DBPassword: getEnv("DB_PASSWORD", "quantboard"),
		DBName:     getEnv("DB_NAME", "quantboard"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Ingestion pipeline
		PipelineAPIKey:  getEnv("PIPELINE_API_KEY", ""),
		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com"),
	}

	// Parse per-request provider fetch timeout
	timeoutStr := getEnv("FETCH_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid FETCH_TIMEOUT value '%s', falling back to 30s\n", timeoutStr)
		timeout = 30 * time.Second
	}
	config.FetchTimeout = timeout

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
