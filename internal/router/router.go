package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"chatbot-backend/internal/handlers"
	"chatbot-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	conversationHandler *handlers.ConversationHandler,
	chatLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Service banner + health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"chatbot-backend"}`))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chat ────
	r.Group(func(r chi.Router) {
		r.Use(chatLimiter.Middleware)
		r.Post("/chat", chatHandler.Chat)
	})

	// ──── Conversations ────
	r.Route("/conversations", func(r chi.Router) {
		r.Get("/", conversationHandler.List)
		r.Get("/{id}/messages", conversationHandler.Messages)
	})

	return r
}
