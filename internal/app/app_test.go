package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"flameo-chatbot/internal/corpus"
	"flameo-chatbot/internal/repository"
	"flameo-chatbot/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	location := filepath.Join(dir, "qa.csv")
	require.NoError(t, os.WriteFile(location, []byte("question,answer\nxin chào,Chào bạn!\nbạn là ai,Tôi là Flameo.\n"), 0o644))

	return &config.Config{
		Corpus: config.CorpusConfig{
			Source:         config.CorpusSourceFile,
			Location:       location,
			QuestionColumn: "question",
			AnswerColumn:   "answer",
		},
		History: config.HistoryConfig{
			Backend:    backend,
			FilePath:   filepath.Join(dir, "history.json"),
			SQLitePath: filepath.Join(dir, "history.db"),
		},
	}
}

func TestNew_Backends(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{config.HistoryBackendFile, config.HistoryBackendMemory, config.HistoryBackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			a, err := New(ctx, testConfig(t, backend), zap.NewNop())
			require.NoError(t, err)
			defer a.Close()

			assert.Equal(t, 2, a.Index.Len())
			answer, err := a.Chat.Respond(ctx, "Xin chao")
			require.NoError(t, err)
			assert.Equal(t, "Chào bạn!", answer)

			records, err := a.History.List(ctx)
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}

	a, err := New(ctx, testConfig(t, config.HistoryBackendFile), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()
	assert.IsType(t, &repository.FileHistoryStore{}, a.Store)
}

func TestNew_MissingCorpusIsFatal(t *testing.T) {
	cfg := testConfig(t, config.HistoryBackendMemory)
	cfg.Corpus.Location = filepath.Join(t.TempDir(), "missing.csv")

	_, err := New(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, corpus.ErrSourceNotFound)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), testConfig(t, "redis"), zap.NewNop())
	assert.Error(t, err)
}
