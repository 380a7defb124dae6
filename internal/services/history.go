package services

import (
	"context"
	"fmt"

	"chatbot-backend/internal/models"
)

type recentLister interface {
	ListRecent(ctx context.Context, conversationID int64, limit int) ([]*models.Message, error)
}

// historyWindow selects the bounded slice of prior messages used as
// generator context. The limit caps payload size and cost per turn;
// older history simply falls out of the window.
type historyWindow struct {
	messages     recentLister
	limit        int
	systemPrompt string
}

func newHistoryWindow(messages recentLister, limit int, systemPrompt string) *historyWindow {
	return &historyWindow{
		messages:     messages,
		limit:        limit,
		systemPrompt: systemPrompt,
	}
}

// Build returns the system prompt followed by the most recent messages
// in chronological order. At most limit+1 entries come back.
func (w *historyWindow) Build(ctx context.Context, conversationID int64) ([]models.ChatMessage, error) {
	recent, err := w.messages.ListRecent(ctx, conversationID, w.limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	window := make([]models.ChatMessage, 0, len(recent)+1)
	window = append(window, models.ChatMessage{
		Role:    models.RoleSystem,
		Content: w.systemPrompt,
	})

	// ListRecent is newest first; walk backwards for oldest → newest.
	for i := len(recent) - 1; i >= 0; i-- {
		window = append(window, models.ChatMessage{
			Role:    recent[i].Role,
			Content: recent[i].Content,
		})
	}

	return window, nil
}
