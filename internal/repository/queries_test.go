package repository

import (
	"fmt"
	"testing"

	"flameo-chatbot/internal/corpus"
	"flameo-chatbot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendHistoryQuery(t *testing.T) {
	rec := models.NewChatRecord("xin chào", "Chào bạn!")

	sql, args, err := appendHistoryQuery(rec).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO chat_history (id,user_message,bot_response,created_at) VALUES ($1,$2,$3,$4)", sql)
	assert.Equal(t, []interface{}{rec.ID, "xin chào", "Chào bạn!", rec.CreatedAt}, args)
}

func TestListHistoryQuery(t *testing.T) {
	sql, args, err := listHistoryQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, user_message, bot_response, created_at FROM chat_history ORDER BY seq ASC", sql)
	assert.Empty(t, args)
}

func TestAppendHistoryQuery_DropsInvalidUTF8(t *testing.T) {
	rec := models.NewChatRecord("xin \xff chào", "ok\xc3")

	_, args, err := appendHistoryQuery(rec).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "xin  chào", args[1])
	assert.Equal(t, "ok", args[2])
	assert.Equal(t, "xin \xff chào", rec.UserMessage, "the record itself keeps the raw input")
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "Chào bạn!", sanitizeUTF8("Chào bạn!"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
	assert.Equal(t, "", sanitizeUTF8("\xff\xfe"))
}

func TestCorpusQueries(t *testing.T) {
	sql, _, err := listCorpusQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT question, answer FROM qa_corpus ORDER BY position ASC", sql)

	sql, args, err := insertCorpusQuery([]corpus.Row{
		{Question: "xin chào", Answer: "Chào bạn!"},
		{Question: "", Answer: "orphan"},
	}, 0).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO qa_corpus (position,question,answer) VALUES ($1,$2,$3),($4,$5,$6)", sql)
	assert.Equal(t, []interface{}{0, "xin chào", "Chào bạn!", 1, nil, "orphan"}, args)
}

func TestInsertCorpusBatches(t *testing.T) {
	assert.Empty(t, insertCorpusBatches(nil, corpusInsertBatchSize))

	rows := make([]corpus.Row, 2*corpusInsertBatchSize+5)
	for i := range rows {
		rows[i] = corpus.Row{Question: fmt.Sprintf("q%d", i), Answer: "a"}
	}

	batches := insertCorpusBatches(rows, corpusInsertBatchSize)
	require.Len(t, batches, 3)

	total := 0
	for i, batch := range batches {
		_, args, err := batch.ToSql()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(args), 65535)
		assert.Equal(t, i*corpusInsertBatchSize, args[0], "batch %d starts at its global position", i)
		total += len(args) / 3
	}
	assert.Equal(t, len(rows), total)

	_, args, err := batches[2].ToSql()
	require.NoError(t, err)
	assert.Len(t, args, 15)
	assert.Equal(t, 2*corpusInsertBatchSize+4, args[12])
	assert.Equal(t, fmt.Sprintf("q%d", 2*corpusInsertBatchSize+4), args[13])
}
