package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chatbot-backend/internal/models"
)

type conversationLister interface {
	List(ctx context.Context, userID *string) ([]*models.Conversation, error)
}

type messageLister interface {
	ListByConversation(ctx context.Context, conversationID int64) ([]*models.Message, error)
}

type ConversationHandler struct {
	conversations conversationLister
	messages      messageLister
}

func NewConversationHandler(conversations conversationLister, messages messageLister) *ConversationHandler {
	return &ConversationHandler{
		conversations: conversations,
		messages:      messages,
	}
}

func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	var userID *string
	if v := r.URL.Query().Get("user_id"); v != "" {
		userID = &v
	}

	conversations, err := h.conversations.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if conversations == nil {
		conversations = []*models.Conversation{}
	}
	writeJSON(w, http.StatusOK, conversations)
}

// Messages returns the conversation transcript oldest first. An
// unknown id yields an empty list, not a 404.
func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid conversation ID", r))
		return
	}

	messages, err := h.messages.ListByConversation(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if messages == nil {
		messages = []*models.Message{}
	}
	writeJSON(w, http.StatusOK, models.MessageList{
		ConversationID: id,
		Messages:       messages,
	})
}
