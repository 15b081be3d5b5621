package models

// CorpusEntry is one authored question/answer pair. NormalizedQuestion is the
// comparison key; Question keeps the authored text for display.
type CorpusEntry struct {
	NormalizedQuestion string `db:"normalized_question" json:"normalized_question"`
	Question           string `db:"question" json:"question"`
	Answer             string `db:"answer" json:"answer"`
}
