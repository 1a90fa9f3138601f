// Package config provides configuration for the recipe finder.
// Settings come from environment variables (optionally via a .env file) and
// fall back to sensible defaults; nothing here is required to start the app.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// UI color constants for the TUI (Terminal User Interface)
const (
	// MainColorForeground is the primary text color (ANSI color code)
	MainColorForeground = "205"
	// MainColorBackground is the primary background color (ANSI color code)
	MainColorBackground = "16"
	// MainColorBackgroundMute is a muted background color (ANSI color code)
	MainColorBackgroundMute = "241"
)

// Default configuration values
const (
	// Default directory name for application data (logs, history database)
	defaultDataDir = ".recipefinder"
	// Default URL for the Ollama API server
	defaultAPIURL = "http://localhost:11434"
	// Default model used to generate recipe suggestions
	defaultModel = "gemma3:1b"
	// Default model used for ingredient embeddings
	defaultEmbedModel = "mxbai-embed-large"
	// Default Qdrant gRPC address
	defaultQdrantAddr = "localhost:6334"
	// Default temperature for recipe generation
	defaultTemp = 0.7
)

// Config holds all settings the application needs at startup.
type Config struct {
	DataDir     string
	APIURL      string
	Model       string
	EmbedModel  string
	QdrantAddr  string
	Temperature float64

	// Initial is the optional ingredient list the picker starts with.
	// Empty by default.
	Initial []string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	return &Config{
		DataDir:     DataDir(),
		APIURL:      getEnvWithDefault("OLLAMA_API_URL", defaultAPIURL),
		Model:       getEnvWithDefault("OLLAMA_MODEL", defaultModel),
		EmbedModel:  getEnvWithDefault("OLLAMA_EMBED_MODEL", defaultEmbedModel),
		QdrantAddr:  getEnvWithDefault("QDRANT_ADDR", defaultQdrantAddr),
		Temperature: temperature(),
		Initial:     InitialIngredients(),
	}
}

// DataDir returns the path to the application's data directory.
// It checks the RECIPEFINDER_HOME environment variable first, then falls back
// to ~/.recipefinder (or ./.recipefinder when the home dir is unknown).
func DataDir() string {
	if v := os.Getenv("RECIPEFINDER_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./" + defaultDataDir
	}
	return filepath.Join(home, defaultDataDir)
}

// InitialIngredients parses the optional RECIPEFINDER_INGREDIENTS variable,
// a comma-separated list used to seed the picker. Blank entries are dropped;
// the picker applies its own trim/dedupe rules on top.
func InitialIngredients() []string {
	raw := os.Getenv("RECIPEFINDER_INGREDIENTS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	initial := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			initial = append(initial, name)
		}
	}
	return initial
}

func temperature() float64 {
	if v := os.Getenv("OLLAMA_TEMPERATURE"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			return t
		}
	}
	return defaultTemp
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
