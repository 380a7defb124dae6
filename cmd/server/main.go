package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"chatbot-backend/internal/config"
	"chatbot-backend/internal/database"
	"chatbot-backend/internal/handlers"
	"chatbot-backend/internal/middleware"
	"chatbot-backend/internal/repository"
	"chatbot-backend/internal/router"
	"chatbot-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Chatbot Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis (optional, rate limiting) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		log.Println("✓ Redis connected")
	} else {
		log.Println("  Redis not configured, chat rate limiting disabled")
	}

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	conversationRepo := repository.NewConversationRepo(pool)
	messageRepo := repository.NewMessageRepo(pool)

	// ──── Step 5: Initialize Generator ────
	var generator services.Generator
	switch cfg.GeneratorProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatalf("✗ OPENAI_API_KEY is required with GENERATOR_PROVIDER=openai")
		}
		generator = services.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ChatModel, cfg.ChatTemperature)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatalf("✗ GEMINI_API_KEY is required with GENERATOR_PROVIDER=gemini")
		}
		geminiGenerator, err := services.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.ChatModel, cfg.ChatTemperature)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer geminiGenerator.Close()
		generator = geminiGenerator
	default:
		log.Fatalf("✗ Unknown GENERATOR_PROVIDER %q", cfg.GeneratorProvider)
	}
	log.Printf("✓ Generator initialized (%s, model %s)", cfg.GeneratorProvider, cfg.ChatModel)

	// ──── Initialize Services ────
	chatService := services.NewChatService(conversationRepo, messageRepo, generator, cfg.HistoryWindow, cfg.SystemPrompt)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(chatService)
	conversationHandler := handlers.NewConversationHandler(conversationRepo, messageRepo)

	// ──── Step 6: Start HTTP Server ────
	chatLimiter := middleware.NewRateLimiter(redisClient, cfg.ChatRateLimit, time.Minute)

	r := router.New(chatHandler, conversationHandler, chatLimiter, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Generator calls dominate request latency; give writes room.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chatbot Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
