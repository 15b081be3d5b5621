package repository

import (
	"context"

	"flameo-chatbot/internal/models"
)

// HistoryStore is the append-only log of chat exchanges.
// List returns records in insertion order; a store that does not exist yet is empty.
type HistoryStore interface {
	Append(ctx context.Context, record *models.ChatRecord) error
	List(ctx context.Context) ([]*models.ChatRecord, error)
	Clear(ctx context.Context) error
}

const historyTable = "chat_history"

var historyColumns = []string{"id", "user_message", "bot_response", "created_at"}
