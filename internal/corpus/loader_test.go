package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.csv")
	content := "question,answer\nxin chào,Chào bạn! Tôi là chatbot.\nbạn là ai,Tôi là Flameo Chatbot.\n,no question\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loader := NewLoader(Columns{}, zap.NewNop())
	idx, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"xin chao", "ban la ai"}, idx.Questions())
	assert.Equal(t, 1, idx.Dropped())
}

func TestLoader_MissingSourceIsNotFound(t *testing.T) {
	loader := NewLoader(Columns{}, zap.NewNop())

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, err = loader.Load(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLoader_ParseErrorIsWrapped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa.csv")
	require.NoError(t, os.WriteFile(path, []byte("q,a\nx,y\n"), 0o644))

	loader := NewLoader(Columns{}, zap.NewNop())
	_, err := loader.Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".csv", Ext("data/qa.CSV"))
	assert.Equal(t, ".xlsx", Ext("gs://bucket/faq.xlsx?generation=3"))
	assert.Equal(t, "", Ext("noext"))
}
