package service

import (
	"context"
	"fmt"

	"flameo-chatbot/internal/models"
	"flameo-chatbot/internal/repository"

	"go.uber.org/zap"
)

type HistoryService struct {
	store  repository.HistoryStore
	logger *zap.Logger
}

func NewHistoryService(store repository.HistoryStore, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		store:  store,
		logger: logger,
	}
}

func (s *HistoryService) List(ctx context.Context) ([]*models.ChatRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return records, nil
}

func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	s.logger.Info("Chat history cleared")
	return nil
}
