package services

import (
	"context"
	"errors"
	"fmt"

	"chatbot-backend/internal/models"
	"chatbot-backend/internal/repository"
)

type conversationStore interface {
	Create(ctx context.Context, userID *string) (*models.Conversation, error)
	GetByID(ctx context.Context, id int64) (*models.Conversation, error)
}

type messageStore interface {
	Append(ctx context.Context, conversationID int64, role, content string) (*models.Message, error)
	ListRecent(ctx context.Context, conversationID int64, limit int) ([]*models.Message, error)
}

// ChatService runs one chat turn: resolve or create the conversation,
// record the user message, send the windowed history to the generator,
// record the reply. The two appends commit independently — a failed
// generation leaves the user message behind as an unanswered turn.
type ChatService struct {
	conversations conversationStore
	messages      messageStore
	generator     Generator
	history       *historyWindow
}

func NewChatService(
	conversations conversationStore,
	messages messageStore,
	generator Generator,
	historyWindowSize int,
	systemPrompt string,
) *ChatService {
	return &ChatService{
		conversations: conversations,
		messages:      messages,
		generator:     generator,
		history:       newHistoryWindow(messages, historyWindowSize, systemPrompt),
	}
}

func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	// 1) Find or create the conversation
	var conv *models.Conversation
	var err error
	if req.ConversationID == nil {
		conv, err = s.conversations.Create(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("create conversation: %w", err)
		}
	} else {
		conv, err = s.conversations.GetByID(ctx, *req.ConversationID)
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, &NotFoundError{Message: "Conversation not found"}
		}
		if err != nil {
			return nil, fmt.Errorf("load conversation: %w", err)
		}
	}

	// 2) Persist the user message
	if _, err := s.messages.Append(ctx, conv.ID, models.RoleUser, req.Message); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, &NotFoundError{Message: "Conversation not found"}
		}
		return nil, fmt.Errorf("record user message: %w", err)
	}

	// 3) Build the windowed history (includes the message just written)
	window, err := s.history.Build(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	// 4) Call the generator
	reply, err := s.generator.Complete(ctx, window)
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}

	// 5) Persist the assistant reply
	if _, err := s.messages.Append(ctx, conv.ID, models.RoleAssistant, reply); err != nil {
		return nil, fmt.Errorf("record assistant message: %w", err)
	}

	return &models.ChatResponse{
		ConversationID: conv.ID,
		Reply:          reply,
	}, nil
}
