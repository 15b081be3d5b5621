package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRecord is one user message and the answer returned for it.
type ChatRecord struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserMessage string    `db:"user_message" json:"user_message"`
	BotResponse string    `db:"bot_response" json:"bot_response"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// NewChatRecord stamps a new record with a fresh id and the current time.
func NewChatRecord(userMessage, botResponse string) *ChatRecord {
	return &ChatRecord{
		ID:          uuid.New(),
		UserMessage: userMessage,
		BotResponse: botResponse,
		CreatedAt:   time.Now().UTC(),
	}
}
