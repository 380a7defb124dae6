package models

import "time"

// Message roles. Roles are stored as plain text so the schema stays
// readable; the CHECK constraint in the messages table enforces the set.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is a thread of messages, optionally owned by a user.
// Title is reserved for future use and never set by current logic.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    *string   `json:"user_id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is one turn inside a conversation. Messages are immutable
// once written; ordering within a conversation is created_at ascending
// with id as the tiebreak.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}
