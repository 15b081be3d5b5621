// Package corpus loads the authored question/answer table and indexes it by
// normalized question.
package corpus

import (
	"strings"

	"flameo-chatbot/internal/models"
	"flameo-chatbot/internal/textnorm"
)

// Row is one question/answer pair as read from a source, before validation.
type Row struct {
	Question string
	Answer   string
}

// Valid reports whether both cells carry text. Blank cells count as missing.
func (r Row) Valid() bool {
	return strings.TrimSpace(r.Question) != "" && strings.TrimSpace(r.Answer) != ""
}

// Index is the immutable corpus. It is safe for concurrent readers.
type Index struct {
	entries   []models.CorpusEntry
	questions []string
	answers   map[string]string
	dropped   int
}

// NewIndex validates rows, drops the incomplete ones and indexes the rest in order.
// When two rows share a normalized question the later answer wins the lookup, while
// Questions still lists both.
func NewIndex(rows []Row) *Index {
	idx := &Index{
		entries:   make([]models.CorpusEntry, 0, len(rows)),
		questions: make([]string, 0, len(rows)),
		answers:   make(map[string]string, len(rows)),
	}
	for _, row := range rows {
		if !row.Valid() {
			idx.dropped++
			continue
		}
		normalized := textnorm.Normalize(row.Question)
		idx.entries = append(idx.entries, models.CorpusEntry{
			NormalizedQuestion: normalized,
			Question:           row.Question,
			Answer:             row.Answer,
		})
		idx.questions = append(idx.questions, normalized)
		idx.answers[normalized] = row.Answer
	}
	return idx
}

// Questions returns the normalized questions in source order, duplicates included.
func (i *Index) Questions() []string {
	out := make([]string, len(i.questions))
	copy(out, i.questions)
	return out
}

// Answer looks up the answer for a normalized question.
func (i *Index) Answer(normalizedQuestion string) (string, bool) {
	answer, ok := i.answers[normalizedQuestion]
	return answer, ok
}

// Entries returns a copy of the indexed entries in source order.
func (i *Index) Entries() []models.CorpusEntry {
	out := make([]models.CorpusEntry, len(i.entries))
	copy(out, i.entries)
	return out
}

// Len is the number of surviving rows.
func (i *Index) Len() int { return len(i.questions) }

// Dropped is the number of rows rejected for a missing question or answer.
func (i *Index) Dropped() int { return i.dropped }
