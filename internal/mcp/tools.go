package mcp

import (
	"context"
	"errors"

	"flameo-chatbot/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

type AskInput struct {
	Message string `json:"message" jsonschema:"the user's question in free text"`
}

type AskOutput struct {
	Response string `json:"response"`
}

type ListQuestionsInput struct{}

type ListQuestionsOutput struct {
	Questions []string `json:"questions"`
	Count     int      `json:"count"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from the Flameo FAQ corpus; the exchange is recorded in the chat history",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_questions",
		Description: "List the normalized questions the FAQ corpus can answer",
	}, s.handleListQuestions)
}

func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Chat.Respond(ctx, input.Message)
	if err != nil {
		if !errors.Is(err, service.ErrHistoryUnavailable) {
			return nil, AskOutput{}, err
		}
		s.logger.Warn("Failed to record chat exchange", zap.Error(err))
	}
	return nil, AskOutput{Response: answer}, nil
}

func (s *Server) handleListQuestions(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListQuestionsInput,
) (*mcp.CallToolResult, ListQuestionsOutput, error) {
	questions := s.ports.Chat.ListQuestions()
	return nil, ListQuestionsOutput{Questions: questions, Count: len(questions)}, nil
}
