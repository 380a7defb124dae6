package services

import (
	"context"

	"chatbot-backend/internal/models"
)

// Generator produces one assistant completion for an ordered,
// role-tagged context. Implementations wrap a hosted model API; the
// chat service only sees this interface so tests can substitute a
// canned generator.
type Generator interface {
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}
