package repository

import (
	"context"
	"fmt"

	"flameo-chatbot/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var _ HistoryStore = (*PostgresHistoryStore)(nil)

const postgresHistorySchema = `
CREATE TABLE IF NOT EXISTS chat_history (
	seq          BIGSERIAL PRIMARY KEY,
	id           UUID NOT NULL UNIQUE,
	user_message TEXT NOT NULL,
	bot_response TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresHistoryStore struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresHistoryStore(db *pgxpool.Pool, logger *zap.Logger) *PostgresHistoryStore {
	return &PostgresHistoryStore{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the history table when it is missing.
func (r *PostgresHistoryStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, postgresHistorySchema); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

func (r *PostgresHistoryStore) Append(ctx context.Context, record *models.ChatRecord) error {
	sql, args, err := appendHistoryQuery(record).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PostgresHistoryStore) List(ctx context.Context) ([]*models.ChatRecord, error) {
	sql, args, err := listHistoryQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.ChatRecord{}
	for rows.Next() {
		var rec models.ChatRecord
		if err := rows.Scan(&rec.ID, &rec.UserMessage, &rec.BotResponse, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *PostgresHistoryStore) Clear(ctx context.Context) error {
	sql, args, err := squirrel.Delete(historyTable).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func appendHistoryQuery(record *models.ChatRecord) squirrel.InsertBuilder {
	return squirrel.Insert(historyTable).
		Columns(historyColumns...).
		Values(record.ID, sanitizeUTF8(record.UserMessage), sanitizeUTF8(record.BotResponse), record.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func listHistoryQuery() squirrel.SelectBuilder {
	return squirrel.Select(historyColumns...).
		From(historyTable).
		OrderBy("seq ASC").
		PlaceholderFormat(squirrel.Dollar)
}
