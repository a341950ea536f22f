package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string

	// Database
	MongoURI string

	// CORS
	Origin string

	// Gemini AI
	GeminiAPIKey string
}

// Load reads configuration from the environment. Values are taken as-is:
// a missing MONGO_URI or GEMINI_API_KEY surfaces later as a connection or
// auth failure on the first request that needs it, not at load time.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:         getEnvOrDefault("PORT", "8000"),
		MongoURI:     os.Getenv("MONGO_URI"),
		Origin:       os.Getenv("ORIGIN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
