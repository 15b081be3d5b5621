package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"flameo-chatbot/internal/models"

	"go.uber.org/zap"
)

var _ HistoryStore = (*FileHistoryStore)(nil)

// FileHistoryStore keeps the log as a JSON array in a single file. Every operation is a
// read-modify-write under an in-process mutex and an advisory lock on "<path>.lock", so
// concurrent writers, including other processes, never lose or interleave records.
type FileHistoryStore struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func NewFileHistoryStore(path string, logger *zap.Logger) *FileHistoryStore {
	return &FileHistoryStore{
		path:   path,
		logger: logger,
	}
}

// Path returns the history file location.
func (s *FileHistoryStore) Path() string { return s.path }

func (s *FileHistoryStore) Append(_ context.Context, record *models.ChatRecord) error {
	return s.withLock(func() error {
		records, err := s.read()
		if err != nil {
			return err
		}
		records = append(records, record)
		return s.write(records)
	})
}

func (s *FileHistoryStore) List(_ context.Context) ([]*models.ChatRecord, error) {
	var records []*models.ChatRecord
	err := s.withLock(func() error {
		var err error
		records, err = s.read()
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *FileHistoryStore) Clear(_ context.Context) error {
	return s.withLock(func() error {
		return s.write([]*models.ChatRecord{})
	})
}

func (s *FileHistoryStore) withLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	lock, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history lock: %w", err)
	}
	defer lock.Close()

	if err := lockExclusive(lock); err != nil {
		return fmt.Errorf("failed to lock history: %w", err)
	}
	defer func() {
		if err := unlockFile(lock); err != nil {
			s.logger.Warn("Failed to unlock history", zap.String("path", s.path), zap.Error(err))
		}
	}()

	return fn()
}

func (s *FileHistoryStore) read() ([]*models.ChatRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*models.ChatRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	records := []*models.ChatRecord{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return records, nil
}

// write replaces the file through a temp file and rename so readers never see a
// partially written array.
func (s *FileHistoryStore) write(records []*models.ChatRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create history temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close history temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
