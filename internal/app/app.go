// Package app wires configuration into the corpus, history store and services
// shared by the server, the CLI and the MCP server.
package app

import (
	"context"
	"fmt"

	"flameo-chatbot/internal/corpus"
	"flameo-chatbot/internal/repository"
	"flameo-chatbot/internal/service"
	"flameo-chatbot/pkg/config"
	"flameo-chatbot/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type App struct {
	Index   *corpus.Index
	Store   repository.HistoryStore
	Chat    *service.ChatService
	History *service.HistoryService

	db      *pgxpool.Pool
	closers []func() error
	logger  *zap.Logger
}

// New loads the corpus and opens the history store. Any error is fatal for the caller.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	if cfg.NeedsDatabase() {
		db, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
		a.closers = append(a.closers, func() error { db.Close(); return nil })
	}

	index, err := a.loadCorpus(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Index = index

	store, err := a.openHistory(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	a.Chat = service.NewChatService(index, store, &cfg.Chat, logger)
	a.History = service.NewHistoryService(store, logger)
	return a, nil
}

func (a *App) loadCorpus(ctx context.Context, cfg *config.Config) (*corpus.Index, error) {
	if cfg.Corpus.Source == config.CorpusSourcePostgres {
		repo := repository.NewCorpusRepository(a.db, a.logger)
		index, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus from database: %w", err)
		}
		return index, nil
	}

	loader := corpus.NewLoader(corpus.Columns{
		Question: cfg.Corpus.QuestionColumn,
		Answer:   cfg.Corpus.AnswerColumn,
	}, a.logger)
	index, err := loader.Load(ctx, cfg.Corpus.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	return index, nil
}

func (a *App) openHistory(ctx context.Context, cfg *config.Config) (repository.HistoryStore, error) {
	switch cfg.History.Backend {
	case config.HistoryBackendMemory:
		return repository.NewMemoryHistoryStore(), nil
	case config.HistoryBackendSQLite:
		store, err := repository.NewSQLiteHistoryStore(cfg.History.SQLitePath, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	case config.HistoryBackendPostgres:
		store := repository.NewPostgresHistoryStore(a.db, a.logger)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case config.HistoryBackendFile:
		return repository.NewFileHistoryStore(cfg.History.FilePath, a.logger), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}
}

// Close releases the history store and database pool, newest first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
}
