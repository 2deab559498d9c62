// Package analytics ranks the candidate vocabulary and builds the
// sentence-level collocation graph shared by the visualization and the
// extractors.
package analytics

import (
	"sort"
	"strings"

	"github.com/cognicore/lexica/pkg/lexica/filter"
	"github.com/cognicore/lexica/pkg/lexica/pmi"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

// Collocation is an unordered candidate pair with A < B.
type Collocation struct {
	A     string
	B     string
	Count int64
	NPMI  float64
}

// Other returns the member of the pair that is not word.
func (c Collocation) Other(word string) string {
	if c.A == word {
		return c.B
	}
	return c.A
}

// Analysis is the analyzer output. It is read-only once built.
type Analysis struct {
	Ranked []filter.Candidate
	Graph  *Graph
	// Sentences is the number of sentences scanned for collocations.
	Sentences int64

	byWord map[string]int
}

// Analyze ranks the vocabulary and counts collocations over every sentence
// of the corpus.
func Analyze(c tokenize.Corpus, vocab filter.Vocabulary) Analysis {
	counter := pmi.NewCounter()
	c.Each(func(_ *tokenize.Document, _ int, s *tokenize.Sentence) {
		var present []string
		for _, tok := range s.Tokens {
			word := strings.ToLower(tok.Text)
			if _, ok := vocab.Candidates[word]; ok {
				present = append(present, word)
			}
		}
		counter.AddSentence(present)
	})

	ranked := Rank(vocab)
	byWord := make(map[string]int, len(ranked))
	for i, cand := range ranked {
		byWord[cand.Word] = i
	}
	return Analysis{
		Ranked:    ranked,
		Graph:     newGraph(counter),
		Sentences: counter.TotalSentences(),
		byWord:    byWord,
	}
}

// Rank orders candidates by descending count, ties alphabetical.
func Rank(vocab filter.Vocabulary) []filter.Candidate {
	out := make([]filter.Candidate, 0, len(vocab.Candidates))
	for _, cand := range vocab.Candidates {
		out = append(out, cand)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// TopWords returns the first n ranked candidates. n <= 0 returns all.
func (a Analysis) TopWords(n int) []filter.Candidate {
	if n <= 0 || n >= len(a.Ranked) {
		return a.Ranked
	}
	return a.Ranked[:n]
}

// Candidate looks up a ranked candidate by word.
func (a Analysis) Candidate(word string) (filter.Candidate, bool) {
	i, ok := a.byWord[strings.ToLower(word)]
	if !ok {
		return filter.Candidate{}, false
	}
	return a.Ranked[i], true
}

// RankOf returns the zero-based rank of word, or -1.
func (a Analysis) RankOf(word string) int {
	if i, ok := a.byWord[strings.ToLower(word)]; ok {
		return i
	}
	return -1
}
