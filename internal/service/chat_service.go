package service

import (
	"context"
	"errors"
	"fmt"

	"flameo-chatbot/internal/corpus"
	"flameo-chatbot/internal/models"
	"flameo-chatbot/internal/repository"
	"flameo-chatbot/internal/similarity"
	"flameo-chatbot/internal/textnorm"
	"flameo-chatbot/pkg/config"

	"go.uber.org/zap"
)

// ErrHistoryUnavailable marks a failed history write. The answer is still valid.
var ErrHistoryUnavailable = errors.New("chat history unavailable")

type ChatService struct {
	index    *corpus.Index
	engine   *similarity.Engine
	history  repository.HistoryStore
	fallback string
	logger   *zap.Logger
}

func NewChatService(index *corpus.Index, history repository.HistoryStore, cfg *config.ChatConfig, logger *zap.Logger) *ChatService {
	fallback := config.DefaultFallbackAnswer
	if cfg != nil && cfg.FallbackAnswer != "" {
		fallback = cfg.FallbackAnswer
	}
	return &ChatService{
		index:    index,
		engine:   similarity.NewEngine(),
		history:  history,
		fallback: fallback,
		logger:   logger,
	}
}

// Answer picks the corpus answer whose question is most similar to rawInput.
// It has no side effects.
func (s *ChatService) Answer(rawInput string) string {
	questions := s.index.Questions()
	if len(questions) == 0 {
		return s.fallback
	}

	query := textnorm.Normalize(rawInput)
	match, err := s.engine.Rank(query, questions)
	if err != nil {
		s.logger.Warn("Similarity ranking failed", zap.Error(err))
		return s.fallback
	}

	answer, ok := s.index.Answer(questions[match.Index])
	if !ok {
		return s.fallback
	}

	s.logger.Debug("Matched question",
		zap.String("query", query),
		zap.String("question", questions[match.Index]),
		zap.Float64("score", match.Score),
	)
	return answer
}

// Respond answers rawInput and records the exchange. The answer is returned even
// when recording fails; the error then wraps ErrHistoryUnavailable.
func (s *ChatService) Respond(ctx context.Context, rawInput string) (string, error) {
	answer := s.Answer(rawInput)

	record := models.NewChatRecord(rawInput, answer)
	if err := s.history.Append(ctx, record); err != nil {
		return answer, fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}
	return answer, nil
}

// ListQuestions returns the normalized corpus questions in source order.
func (s *ChatService) ListQuestions() []string {
	return s.index.Questions()
}

// CorpusSize is the number of indexed question/answer pairs.
func (s *ChatService) CorpusSize() int {
	return s.index.Len()
}
