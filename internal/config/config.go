package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port          string
	Env           string
	AllowedOrigin string

	// Gemini AI
	GoogleAPIKey string
	GeminiModel  string

	// External catalog service
	CatalogBaseURL string

	// Tracing
	TracingEnabled  bool
	TracingProject  string
	TracingEndpoint string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "*"),

		GoogleAPIKey: mustGetEnv("GOOGLE_API_KEY"),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		CatalogBaseURL: getEnvOrDefault("CATALOG_BASE_URL", "https://fakestoreapi.com"),

		TracingEnabled:  getEnvAsBoolOrDefault("TRACING_ENABLED", false),
		TracingProject:  getEnvOrDefault("TRACING_PROJECT", "default"),
		TracingEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultVal
}
