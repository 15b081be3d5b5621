package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flameo-chatbot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

var _ HistoryStore = (*SQLiteHistoryStore)(nil)

const sqliteHistorySchema = `
CREATE TABLE IF NOT EXISTS chat_history (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT NOT NULL UNIQUE,
	user_message TEXT NOT NULL,
	bot_response TEXT NOT NULL,
	created_at   TEXT NOT NULL
)`

// SQLiteHistoryStore keeps the log in a local SQLite database (pure Go driver, WAL mode).
type SQLiteHistoryStore struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

func NewSQLiteHistoryStore(path string, logger *zap.Logger) (*SQLiteHistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(sqliteHistorySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}
	logger.Info("SQLite history store ready", zap.String("path", path))
	return &SQLiteHistoryStore{db: db, path: path, logger: logger}, nil
}

func (s *SQLiteHistoryStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteHistoryStore) Append(ctx context.Context, record *models.ChatRecord) error {
	query := squirrel.Insert(historyTable).
		Columns(historyColumns...).
		Values(record.ID.String(), record.UserMessage, record.BotResponse, record.CreatedAt.UTC().Format(time.RFC3339Nano)).
		PlaceholderFormat(squirrel.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) List(ctx context.Context) ([]*models.ChatRecord, error) {
	sqlStr, args, err := squirrel.Select(historyColumns...).
		From(historyTable).
		OrderBy("seq ASC").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	records := []*models.ChatRecord{}
	for rows.Next() {
		var (
			rec       models.ChatRecord
			id        string
			createdAt string
		)
		if err := rows.Scan(&id, &rec.UserMessage, &rec.BotResponse, &createdAt); err != nil {
			return nil, err
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid history id %q: %w", id, err)
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("invalid history timestamp %q: %w", createdAt, err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (s *SQLiteHistoryStore) Clear(ctx context.Context) error {
	sqlStr, args, err := squirrel.Delete(historyTable).ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
