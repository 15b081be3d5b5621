// Package similarity ranks corpus questions against a query with TF-IDF weighted
// cosine similarity.
package similarity

import (
	"errors"
	"math"
	"sort"

	"flameo-chatbot/internal/textnorm"
)

// ErrEmptyCorpus is returned by Rank when there is nothing to rank against.
var ErrEmptyCorpus = errors.New("similarity: empty corpus")

// Match is the winning corpus position and its cosine score.
type Match struct {
	Index int
	Score float64
}

// Engine builds a TF-IDF space over the corpus questions plus the query on every call,
// so terms that only occur in the query still get a coordinate.
type Engine struct {
	tokenize func(string) []string
}

// NewEngine creates an engine using textnorm word tokens.
func NewEngine() *Engine {
	return &Engine{tokenize: textnorm.Tokenize}
}

// Rank returns the corpus position with the highest cosine similarity to the query.
// Ties go to the lowest index; an all-zero score vector yields index 0.
func (e *Engine) Rank(normalizedQuery string, corpusQuestions []string) (Match, error) {
	if len(corpusQuestions) == 0 {
		return Match{}, ErrEmptyCorpus
	}
	scores := e.Scores(normalizedQuery, corpusQuestions)
	best := Match{Index: 0, Score: scores[0]}
	for i := 1; i < len(scores); i++ {
		if scores[i] > best.Score {
			best = Match{Index: i, Score: scores[i]}
		}
	}
	return best, nil
}

// Scores returns the cosine similarity between the query and every corpus question,
// in corpus order.
func (e *Engine) Scores(normalizedQuery string, corpusQuestions []string) []float64 {
	if len(corpusQuestions) == 0 {
		return nil
	}
	docs := make([][]string, 0, len(corpusQuestions)+1)
	for _, q := range corpusQuestions {
		docs = append(docs, e.tokenize(q))
	}
	docs = append(docs, e.tokenize(normalizedQuery))

	space := newSpace(docs)
	queryVec := space.vector(docs[len(docs)-1])
	queryNorm := norm(queryVec)

	scores := make([]float64, len(corpusQuestions))
	for i := range corpusQuestions {
		docVec := space.vector(docs[i])
		scores[i] = cosine(queryVec, queryNorm, docVec, norm(docVec))
	}
	return scores
}

// space is the vocabulary and smoothed IDF of one document set.
type space struct {
	vocabulary map[string]int
	idf        []float64
}

func newSpace(docs [][]string) *space {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	// sorted terms keep the summation order, and therefore the scores, deterministic
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	s := &space{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		s.vocabulary[term] = i
		s.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return s
}

func (s *space) vector(tokens []string) []float64 {
	vec := make([]float64, len(s.idf))
	for _, tok := range tokens {
		if idx, ok := s.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	for i, tf := range vec {
		if tf != 0 {
			vec[i] = tf * s.idf[i]
		}
	}
	return vec
}

func norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func cosine(a []float64, normA float64, b []float64, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (normA * normB)
}
