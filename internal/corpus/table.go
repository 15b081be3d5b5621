package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"flameo-chatbot/internal/textnorm"
)

var (
	ErrSourceNotFound    = errors.New("corpus source not found")
	ErrMissingColumn     = errors.New("corpus column not found")
	ErrUnsupportedFormat = errors.New("unsupported corpus format")
)

const utf8BOM = "\ufeff"

// Columns names the header cells holding questions and answers.
type Columns struct {
	Question string
	Answer   string
}

// DefaultColumns are used when a caller leaves Columns empty.
var DefaultColumns = Columns{Question: "question", Answer: "answer"}

func (c Columns) withDefaults() Columns {
	if strings.TrimSpace(c.Question) == "" {
		c.Question = DefaultColumns.Question
	}
	if strings.TrimSpace(c.Answer) == "" {
		c.Answer = DefaultColumns.Answer
	}
	return c
}

// headerKey folds a header cell so "Câu hỏi " matches "cau hoi".
func headerKey(name string) string {
	return textnorm.Normalize(strings.TrimSpace(strings.TrimPrefix(name, utf8BOM)))
}

// table is a header row followed by data rows, as produced by the grid formats.
type table struct {
	header []string
	rows   [][]string
}

func (t table) toRows(cols Columns) ([]Row, error) {
	cols = cols.withDefaults()
	qi, err := columnIndex(t.header, cols.Question)
	if err != nil {
		return nil, err
	}
	ai, err := columnIndex(t.header, cols.Answer)
	if err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(t.rows))
	for _, cells := range t.rows {
		out = append(out, Row{Question: cell(cells, qi), Answer: cell(cells, ai)})
	}
	return out, nil
}

func columnIndex(header []string, name string) (int, error) {
	want := headerKey(name)
	for i, h := range header {
		if headerKey(h) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// records is the shape of the document formats: one mapping per row.
type records []map[string]any

func (r records) toRows(cols Columns) ([]Row, error) {
	cols = cols.withDefaults()
	if len(r) == 0 {
		return nil, nil
	}
	qKey, aKey := headerKey(cols.Question), headerKey(cols.Answer)
	seenQ, seenA := false, false
	out := make([]Row, 0, len(r))
	for _, rec := range r {
		var row Row
		if v, ok := field(rec, cols.Question, qKey); ok {
			row.Question, seenQ = scalar(v), true
		}
		if v, ok := field(rec, cols.Answer, aKey); ok {
			row.Answer, seenA = scalar(v), true
		}
		out = append(out, row)
	}
	if !seenQ {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Question)
	}
	if !seenA {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Answer)
	}
	return out, nil
}

// field looks up a column in one record. A key spelled exactly like name wins;
// otherwise the lexically first key that folds to key is used, so records carrying
// both "Question" and "question" resolve the same way on every run.
func field(rec map[string]any, name, key string) (any, bool) {
	if v, ok := rec[name]; ok {
		return v, true
	}
	keys := make([]string, 0, len(rec))
	for k := range rec {
		if headerKey(k) == key {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, false
	}
	sort.Strings(keys)
	return rec[keys[0]], true
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
