package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("ORIGIN")
	os.Unsetenv("GEMINI_API_KEY")

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %q", cfg.Port)
	}
	// Absent values load as empty and fail downstream, not here
	if cfg.MongoURI != "" || cfg.Origin != "" || cfg.GeminiAPIKey != "" {
		t.Errorf("Expected empty values for unset vars, got %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	vars := map[string]string{
		"PORT":           "9001",
		"MONGO_URI":      "mongodb://localhost:27017/chatbot",
		"ORIGIN":         "http://localhost:3000",
		"GEMINI_API_KEY": "test-key",
	}
	for k, v := range vars {
		os.Setenv(k, v)
		defer os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.Port != "9001" {
		t.Errorf("Expected port 9001, got %q", cfg.Port)
	}
	if cfg.MongoURI != vars["MONGO_URI"] {
		t.Errorf("Expected MongoURI %q, got %q", vars["MONGO_URI"], cfg.MongoURI)
	}
	if cfg.Origin != vars["ORIGIN"] {
		t.Errorf("Expected Origin %q, got %q", vars["ORIGIN"], cfg.Origin)
	}
	if cfg.GeminiAPIKey != vars["GEMINI_API_KEY"] {
		t.Errorf("Expected GeminiAPIKey %q, got %q", vars["GEMINI_API_KEY"], cfg.GeminiAPIKey)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}
