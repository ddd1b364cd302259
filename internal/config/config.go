package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Storage   StorageConfig
	USDA      USDAConfig
	Assistant AssistantConfig
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is "file" (default) or "sqlite".
	Backend string
	// DataDir overrides the default state directory.
	DataDir string
}

// USDAConfig holds FoodData Central credentials.
type USDAConfig struct {
	APIKey string
}

// AssistantConfig holds settings for the AI food assistant.
type AssistantConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Load reads environment variables, optionally seeded from the provided
// .env file. A missing file is not an error; missing API keys only disable
// the features that need them.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	cfg := Config{
		Storage: StorageConfig{
			Backend: strings.ToLower(strings.TrimSpace(os.Getenv("NOURISH_STORAGE"))),
			DataDir: strings.TrimSpace(os.Getenv("NOURISH_DATA_DIR")),
		},
		USDA: USDAConfig{
			APIKey: strings.TrimSpace(os.Getenv("USDA_API_KEY")),
		},
		Assistant: AssistantConfig{
			APIKey:  strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
			Model:   strings.TrimSpace(os.Getenv("NOURISH_AI_MODEL")),
			BaseURL: strings.TrimSpace(os.Getenv("NOURISH_AI_BASE_URL")),
		},
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	return cfg, nil
}
