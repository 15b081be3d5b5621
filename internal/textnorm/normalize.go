// Package textnorm folds text into the canonical form used for question matching.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block, U+0300..U+036F.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Normalize decomposes text (NFD), drops combining diacritics and lower-cases the rest.
// "Xin Chào" and "xin chao" both normalize to "xin chao".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// transform.Chain is stateful, so every call builds its own.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	stripped, _, err := transform.String(fold, text)
	if err != nil {
		stripped = text
	}
	return strings.ToLower(stripped)
}

// Tokenize splits already-normalized text into word tokens. Whitespace and punctuation
// are delimiters.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}
