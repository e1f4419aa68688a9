package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	CORSOrigins   []string

	// Graph source
	GraphMLPath string // optional GraphML file ingested at startup

	// Layout
	CanvasWidth    float64
	CanvasHeight   float64
	LayoutSeed     int64
	SearchHopDepth int

	// View settings (runtime-changeable, see watcher.go)
	ViewSettingsPath string

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   splitEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		GraphMLPath: getEnv("GRAPHML_PATH", ""),

		CanvasWidth:    getEnvFloat("CANVAS_WIDTH", 1200),
		CanvasHeight:   getEnvFloat("CANVAS_HEIGHT", 800),
		LayoutSeed:     int64(getEnvInt("LAYOUT_SEED", 42)),
		SearchHopDepth: getEnvInt("SEARCH_HOP_DEPTH", 1),

		ViewSettingsPath: getEnv("VIEW_SETTINGS_PATH", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %gx%g", c.CanvasWidth, c.CanvasHeight)
	}
	if c.SearchHopDepth < 1 || c.SearchHopDepth > 5 {
		return fmt.Errorf("SEARCH_HOP_DEPTH must be between 1 and 5, got %d", c.SearchHopDepth)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// splitEnv gets a comma-separated environment variable as a slice
func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
