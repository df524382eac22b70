package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	// OpenAIEnabled gates the outbound completion call; when false the
	// prompt endpoint serves the static fallback schema.
	OpenAIEnabled bool
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// Load reads environment variables, optionally from a .env file if present.
// Values are read once at startup and passed into constructors.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		OpenAIEnabled: os.Getenv("OPEN_AI_ENABLED") == "true",
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
