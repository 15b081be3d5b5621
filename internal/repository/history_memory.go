package repository

import (
	"context"
	"sync"

	"flameo-chatbot/internal/models"
)

var _ HistoryStore = (*MemoryHistoryStore)(nil)

// MemoryHistoryStore keeps the log in process memory.
type MemoryHistoryStore struct {
	mu      sync.RWMutex
	records []models.ChatRecord
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{}
}

func (s *MemoryHistoryStore) Append(_ context.Context, record *models.ChatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

func (s *MemoryHistoryStore) List(_ context.Context) ([]*models.ChatRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ChatRecord, len(s.records))
	for i := range s.records {
		rec := s.records[i]
		out[i] = &rec
	}
	return out, nil
}

func (s *MemoryHistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
