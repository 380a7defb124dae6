package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSystemPrompt is the standing instruction prepended to every
// generator call unless SYSTEM_PROMPT overrides it.
const DefaultSystemPrompt = "You are a helpful, concise assistant. Keep replies short unless asked for detail."

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis (rate limiting); optional — empty disables the limiter
	RedisURL string

	// Generator
	GeneratorProvider string // "openai" or "gemini"
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	GeminiAPIKey      string
	ChatModel         string
	ChatTemperature   float32

	// Chat core
	HistoryWindow int
	SystemPrompt  string
	ChatRateLimit int // requests per minute per IP on /chat

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	provider := getEnvOrDefault("GENERATOR_PROVIDER", "openai")

	defaultModel := "gpt-4o-mini"
	if provider == "gemini" {
		defaultModel = "gemini-3-flash-preview"
	}

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		RedisURL:    getEnvOrDefault("REDIS_URL", ""),

		GeneratorProvider: provider,
		OpenAIAPIKey:      getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnvOrDefault("OPENAI_BASE_URL", ""),
		GeminiAPIKey:      getEnvOrDefault("GEMINI_API_KEY", ""),
		ChatModel:         getEnvOrDefault("CHAT_MODEL", defaultModel),
		ChatTemperature:   getEnvAsFloatOrDefault("CHAT_TEMPERATURE", 0.3),

		HistoryWindow: getEnvAsIntOrDefault("HISTORY_WINDOW", 20),
		SystemPrompt:  getEnvOrDefault("SYSTEM_PROMPT", DefaultSystemPrompt),
		ChatRateLimit: getEnvAsIntOrDefault("CHAT_RATE_LIMIT_PER_MINUTE", 30),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
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

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float32) float32 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return defaultVal
	}
	return float32(f)
}
