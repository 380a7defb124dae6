package config

import (
	"os"
	"testing"
)

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

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsFloatOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal float32
		expected   float32
	}{
		{"parses float", "TEST_FLOAT_1", "0.7", 0.3, 0.7},
		{"uses default for empty", "TEST_FLOAT_2", "", 0.3, 0.3},
		{"uses default for non-numeric", "TEST_FLOAT_3", "warm", 0.3, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsFloatOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	os.Setenv("TEST_REQUIRED", "value123")
	defer os.Unsetenv("TEST_REQUIRED")

	result := mustGetEnv("TEST_REQUIRED")
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost:5432/chatbot_test")
	defer os.Unsetenv("DATABASE_URL")

	cfg := Load()

	if cfg.GeneratorProvider != "openai" {
		t.Errorf("Expected provider 'openai', got %q", cfg.GeneratorProvider)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("Expected model 'gpt-4o-mini', got %q", cfg.ChatModel)
	}
	if cfg.HistoryWindow != 20 {
		t.Errorf("Expected history window 20, got %d", cfg.HistoryWindow)
	}
	if cfg.ChatTemperature != 0.3 {
		t.Errorf("Expected temperature 0.3, got %v", cfg.ChatTemperature)
	}
	if cfg.SystemPrompt != DefaultSystemPrompt {
		t.Errorf("Expected default system prompt, got %q", cfg.SystemPrompt)
	}
}

func TestLoad_GeminiModelDefault(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://localhost:5432/chatbot_test")
	os.Setenv("GENERATOR_PROVIDER", "gemini")
	defer os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("GENERATOR_PROVIDER")

	cfg := Load()

	if cfg.ChatModel != "gemini-3-flash-preview" {
		t.Errorf("Expected gemini default model, got %q", cfg.ChatModel)
	}
}
