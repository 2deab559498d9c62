package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+["'’”)\]]*(?:\s+|$)`)

// RegexTokenizer splits sentences on terminal punctuation and tokens on
// whitespace. It never tags.
type RegexTokenizer struct{}

// NewRegexTokenizer creates the fallback tokenizer.
func NewRegexTokenizer() *RegexTokenizer {
	return &RegexTokenizer{}
}

func (r *RegexTokenizer) Name() string { return "regex" }

func (r *RegexTokenizer) Tagged() bool { return false }

// Sentences splits text after runs of '.', '!' or '?' that are followed by
// whitespace or the end of input.
func (r *RegexTokenizer) Sentences(text string) []Sentence {
	var out []Sentence
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		out = appendSpan(out, text, start, loc[1])
		start = loc[1]
	}
	if start < len(text) {
		out = appendSpan(out, text, start, len(text))
	}
	return out
}

func appendSpan(out []Sentence, text string, start, end int) []Sentence {
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if start >= end {
		return out
	}
	s := text[start:end]
	return append(out, Sentence{
		Text:   s,
		Start:  start,
		End:    end,
		Tokens: whitespaceTokens(s),
	})
}

// whitespaceTokens splits on whitespace and peels leading and trailing
// punctuation into their own tokens so "system." yields "system" and ".".
func whitespaceTokens(s string) []Token {
	var tokens []Token
	add := func(text string) {
		if text == "" {
			return
		}
		tokens = append(tokens, Token{Text: text, POS: Other, Index: len(tokens)})
	}
	for _, field := range strings.Fields(s) {
		core := strings.TrimLeftFunc(field, unicode.IsPunct)
		add(field[:len(field)-len(core)])
		trimmed := strings.TrimRightFunc(core, unicode.IsPunct)
		add(trimmed)
		add(core[len(trimmed):])
	}
	return tokens
}
