package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chatbot-backend/internal/models"
)

// ErrConversationNotFound is returned when a referenced conversation
// does not exist, both on direct lookup and on message appends that
// hit the foreign key.
var ErrConversationNotFound = errors.New("conversation not found")

type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

func (r *ConversationRepo) Create(ctx context.Context, userID *string) (*models.Conversation, error) {
	conv := &models.Conversation{UserID: userID}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO conversations (user_id)
		VALUES ($1)
		RETURNING id, created_at
	`, userID).Scan(&conv.ID, &conv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	return conv, nil
}

func (r *ConversationRepo) GetByID(ctx context.Context, id int64) (*models.Conversation, error) {
	conv := &models.Conversation{ID: id}

	err := r.pool.QueryRow(ctx, `
		SELECT user_id, title, created_at
		FROM conversations
		WHERE id = $1
	`, id).Scan(&conv.UserID, &conv.Title, &conv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation %d: %w", id, err)
	}

	return conv, nil
}

// List returns conversations most recent first, optionally filtered by
// exact user_id match.
func (r *ConversationRepo) List(ctx context.Context, userID *string) ([]*models.Conversation, error) {
	query := `
		SELECT id, user_id, title, created_at
		FROM conversations
	`
	args := []interface{}{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		conv := &models.Conversation{}
		if err := rows.Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		conversations = append(conversations, conv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	return conversations, nil
}
