package models

// ChatMessage is a single role-tagged entry sent to the generator.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to POST /chat. ConversationID is
// optional; omitting it starts a new conversation.
type ChatRequest struct {
	UserID         *string `json:"user_id"`
	ConversationID *int64  `json:"conversation_id"`
	Message        string  `json:"message"`
}

// ChatResponse is the reply for one chat turn.
type ChatResponse struct {
	ConversationID int64  `json:"conversation_id"`
	Reply          string `json:"reply"`
}

// MessageList is the response for GET /conversations/{id}/messages.
type MessageList struct {
	ConversationID int64      `json:"conversation_id"`
	Messages       []*Message `json:"messages"`
}

// API Error response
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
