package service

import (
	"sync"

	"flameo-chatbot/internal/models"
)

// MaxAccessEntries caps the in-memory access log.
const MaxAccessEntries = 100

// AccessLogService keeps the most recent requests, oldest first.
type AccessLogService struct {
	mu      sync.Mutex
	entries []models.AccessEntry
	limit   int
}

func NewAccessLogService(limit int) *AccessLogService {
	if limit <= 0 {
		limit = MaxAccessEntries
	}
	return &AccessLogService{limit: limit}
}

func (s *AccessLogService) Record(entry models.AccessEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if over := len(s.entries) - s.limit; over > 0 {
		s.entries = append(s.entries[:0:0], s.entries[over:]...)
	}
}

func (s *AccessLogService) List() []models.AccessEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AccessEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *AccessLogService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
