// Package corpustest builds synthetic corpora for tests.
package corpustest

import (
	"strings"

	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

var syllables = []string{"ba", "ke", "lo", "mu", "ri", "sa", "te", "vo", "zu", "ni"}

// Word returns a unique lowercase letter-only word for i in [0, 1000). The
// words are seven letters long and appear in no stop list.
func Word(i int) string {
	return "q" + syllables[i%10] + syllables[(i/10)%10] + syllables[(i/100)%10]
}

// Filler returns a sentence of n distinct synthetic words starting at word
// index start, terminated with a period.
func Filler(start, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = Word(start + i)
	}
	return strings.Join(words, " ") + "."
}

// Tagged builds a sentence from word/POS pairs.
func Tagged(pairs ...any) tokenize.Sentence {
	var s tokenize.Sentence
	var words []string
	for i := 0; i+1 < len(pairs); i += 2 {
		text := pairs[i].(string)
		pos := pairs[i+1].(tokenize.POS)
		s.Tokens = append(s.Tokens, tokenize.Token{Text: text, POS: pos, Index: len(s.Tokens)})
		words = append(words, text)
	}
	s.Text = strings.Join(words, " ")
	s.Start, s.End = -1, -1
	return s
}

// Corpus wraps sentences into a single tagged document.
func Corpus(tagged bool, sentences ...tokenize.Sentence) tokenize.Corpus {
	return tokenize.Corpus{
		Tagged:    tagged,
		Tokenizer: "test",
		Documents: []tokenize.Document{{Source: "test.txt", Sentences: sentences}},
	}
}
