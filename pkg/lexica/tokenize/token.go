// Package tokenize splits raw text into sentences of part-of-speech tagged
// tokens. Two implementations share the Tokenizer interface: a model-backed
// tokenizer built on prose and a regex fallback used when the model cannot
// be loaded.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"
)

// POS is the closed part-of-speech class set used by the pipeline.
type POS int

const (
	Noun POS = iota
	Adjective
	Adverb
	Other
)

// String returns the lowercase class name.
func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "other"
	}
}

// ParsePOS parses a class name as produced by String.
func ParsePOS(s string) (POS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun":
		return Noun, nil
	case "adjective", "adj":
		return Adjective, nil
	case "adverb", "adv":
		return Adverb, nil
	case "other":
		return Other, nil
	}
	return Other, fmt.Errorf("unknown part of speech %q", s)
}

// FromPenn maps a Penn Treebank tag onto the closed class set.
func FromPenn(tag string) POS {
	switch {
	case strings.HasPrefix(tag, "NN"):
		return Noun
	case strings.HasPrefix(tag, "JJ"):
		return Adjective
	case strings.HasPrefix(tag, "RB"):
		return Adverb
	}
	return Other
}

// Token is a surface form with its tag and position in the sentence.
type Token struct {
	Text  string
	POS   POS
	Index int
}

// IsWord reports whether the token carries at least one letter or digit.
// Punctuation-only tokens are skipped by the extractors.
func (t Token) IsWord() bool {
	for _, r := range t.Text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Sentence is an ordered run of tokens with its byte span in the source
// text. Start is -1 when the span could not be recovered.
type Sentence struct {
	Text   string
	Start  int
	End    int
	Tokens []Token
}

// HasSpan reports whether the sentence carries a valid source span.
func (s Sentence) HasSpan() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Tokenizer segments text into tagged sentences. Empty text yields an empty
// slice.
type Tokenizer interface {
	Name() string
	// Tagged is false when POS tags are not available and every token
	// carries Other.
	Tagged() bool
	Sentences(text string) []Sentence
}
