package repository

import (
	"context"
	"database/sql"
	"fmt"

	"flameo-chatbot/internal/corpus"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const corpusTable = "qa_corpus"

// corpusInsertBatchSize keeps each INSERT well under the 65535 bind parameter limit
// of PostgreSQL (three parameters per row).
const corpusInsertBatchSize = 1000

const corpusSchema = `
CREATE TABLE IF NOT EXISTS qa_corpus (
	position INTEGER PRIMARY KEY,
	question TEXT,
	answer   TEXT
)`

// CorpusRepository stores the authored question/answer table in PostgreSQL.
type CorpusRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCorpusRepository(db *pgxpool.Pool, logger *zap.Logger) *CorpusRepository {
	return &CorpusRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CorpusRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, corpusSchema); err != nil {
		return fmt.Errorf("failed to create corpus table: %w", err)
	}
	return nil
}

// ListRows returns the stored rows ordered by position. NULL cells come back blank,
// so the index drops them like any other incomplete row.
func (r *CorpusRepository) ListRows(ctx context.Context) ([]corpus.Row, error) {
	sqlStr, args, err := listCorpusQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus: %w", err)
	}
	defer rows.Close()

	var out []corpus.Row
	for rows.Next() {
		var question, answer sql.NullString
		if err := rows.Scan(&question, &answer); err != nil {
			return nil, err
		}
		out = append(out, corpus.Row{Question: question.String, Answer: answer.String})
	}
	return out, rows.Err()
}

// Load builds the corpus index from the table.
func (r *CorpusRepository) Load(ctx context.Context) (*corpus.Index, error) {
	rows, err := r.ListRows(ctx)
	if err != nil {
		return nil, err
	}
	idx := corpus.NewIndex(rows)
	r.logger.Info("Corpus loaded",
		zap.String("location", corpusTable),
		zap.Int("entries", idx.Len()),
		zap.Int("dropped", idx.Dropped()),
	)
	return idx, nil
}

// ReplaceAll swaps the table contents for rows in a single transaction.
func (r *CorpusRepository) ReplaceAll(ctx context.Context, rows []corpus.Row) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM "+corpusTable); err != nil {
		return fmt.Errorf("failed to clear corpus: %w", err)
	}

	for _, query := range insertCorpusBatches(rows, corpusInsertBatchSize) {
		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("failed to insert corpus rows: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit corpus: %w", err)
	}
	r.logger.Info("Corpus replaced", zap.Int("rows", len(rows)))
	return nil
}

func listCorpusQuery() squirrel.SelectBuilder {
	return squirrel.Select("question", "answer").
		From(corpusTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// insertCorpusBatches splits rows into INSERT statements of at most size rows each.
// Positions stay global so the source order survives batching.
func insertCorpusBatches(rows []corpus.Row, size int) []squirrel.InsertBuilder {
	var batches []squirrel.InsertBuilder
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		batches = append(batches, insertCorpusQuery(rows[start:end], start))
	}
	return batches
}

func insertCorpusQuery(rows []corpus.Row, offset int) squirrel.InsertBuilder {
	query := squirrel.Insert(corpusTable).
		Columns("position", "question", "answer").
		PlaceholderFormat(squirrel.Dollar)
	for i, row := range rows {
		query = query.Values(offset+i, nullable(row.Question), nullable(row.Answer))
	}
	return query
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

