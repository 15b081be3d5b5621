package mcp

import (
	"context"

	"flameo-chatbot/internal/models"
)

// Responder answers a message and records the exchange.
type Responder interface {
	Respond(ctx context.Context, rawInput string) (string, error)
	ListQuestions() []string
}

// HistoryReader lists recorded exchanges.
type HistoryReader interface {
	List(ctx context.Context) ([]*models.ChatRecord, error)
}

// Ports aggregates the services the MCP server calls into. History is optional.
type Ports struct {
	Chat    Responder
	History HistoryReader
}

func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingResponder
	}
	return nil
}
