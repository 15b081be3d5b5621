package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIndex_OrderAndNormalization(t *testing.T) {
	idx := NewIndex([]Row{
		{Question: "Xin chào", Answer: "Chào bạn! Tôi là chatbot."},
		{Question: "Bạn là ai", Answer: "Tôi là Flameo Chatbot."},
	})

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"xin chao", "ban la ai"}, idx.Questions())

	answer, ok := idx.Answer("ban la ai")
	assert.True(t, ok)
	assert.Equal(t, "Tôi là Flameo Chatbot.", answer)

	entries := idx.Entries()
	assert.Equal(t, "Xin chào", entries[0].Question)
	assert.Equal(t, "xin chao", entries[0].NormalizedQuestion)
}

func TestNewIndex_DropsIncompleteRows(t *testing.T) {
	idx := NewIndex([]Row{
		{Question: "", Answer: "orphan answer"},
		{Question: "gio mo cua", Answer: "8h sang"},
		{Question: "dia chi", Answer: "   "},
		{Question: "phi ship", Answer: "30k"},
	})

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 2, idx.Dropped())
	assert.Equal(t, []string{"gio mo cua", "phi ship"}, idx.Questions())
	_, ok := idx.Answer("dia chi")
	assert.False(t, ok)
}

func TestNewIndex_DuplicateQuestionsLastWriteWins(t *testing.T) {
	idx := NewIndex([]Row{
		{Question: "Giờ mở cửa", Answer: "8h"},
		{Question: "gio mo cua", Answer: "9h"},
	})

	assert.Equal(t, []string{"gio mo cua", "gio mo cua"}, idx.Questions())
	answer, ok := idx.Answer("gio mo cua")
	assert.True(t, ok)
	assert.Equal(t, "9h", answer)
}

func TestIndex_QuestionsReturnsCopy(t *testing.T) {
	idx := NewIndex([]Row{{Question: "a", Answer: "b"}})

	qs := idx.Questions()
	qs[0] = "mutated"

	assert.Equal(t, []string{"a"}, idx.Questions())
}

func TestNewIndex_Empty(t *testing.T) {
	idx := NewIndex(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Questions())
	_, ok := idx.Answer("")
	assert.False(t, ok)
}
