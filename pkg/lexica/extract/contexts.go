package extract

import (
	"math"
	"strings"

	"github.com/cognicore/lexica/pkg/lexica/filter"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

// MinContextTokens is the smallest context kept.
const MinContextTokens = 4

// Window is the number of word tokens taken on each side of a target.
type Window struct {
	Before int
	After  int
}

var posWindows = map[tokenize.POS]Window{
	tokenize.Adverb:    {Before: 4, After: 2},
	tokenize.Adjective: {Before: 2, After: 4},
	tokenize.Noun:      {Before: 3, After: 3},
	tokenize.Other:     {Before: 3, After: 3},
}

// WindowFor returns the window for pos, scaled down proportionally so the
// target plus both sides never exceeds maxTokens.
func WindowFor(pos tokenize.POS, maxTokens int) Window {
	w, ok := posWindows[pos]
	if !ok {
		w = posWindows[tokenize.Other]
	}
	budget := maxTokens - 1
	if budget < 0 {
		budget = 0
	}
	if w.Before+w.After <= budget {
		return w
	}
	before := int(math.Round(float64(w.Before) * float64(budget) / float64(w.Before+w.After)))
	before = min(before, budget)
	return Window{Before: before, After: budget - before}
}

// ContextOptions bounds context extraction. A zero MaxContexts means no
// cap.
type ContextOptions struct {
	MaxTokens   int
	MaxContexts int
}

// DefaultContextOptions returns the default bounds.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{MaxTokens: 6, MaxContexts: 50}
}

// ContextResult is the outcome of a context run.
type ContextResult struct {
	Records []Record
	// Truncated counts contexts dropped by MaxContexts.
	Truncated int
	// Short counts windows dropped for having fewer than MinContextTokens.
	Short int
	// PerTarget is the number of emitted contexts per target.
	PerTarget map[string]int
}

// Contexts collects a window around every occurrence of each target.
// Targets are processed in the given order, which is expected to be rank
// order, so lower-ranked words are the first to be truncated.
func Contexts(c tokenize.Corpus, targets []filter.Candidate, opts ContextOptions) ContextResult {
	res := ContextResult{PerTarget: make(map[string]int, len(targets))}
	for _, target := range targets {
		win := WindowFor(target.POS, opts.MaxTokens)
		c.Each(func(doc *tokenize.Document, _ int, s *tokenize.Sentence) {
			words := wordTokens(s)
			for i, w := range words {
				if !strings.EqualFold(w, target.Word) {
					continue
				}
				lo := max(0, i-win.Before)
				hi := min(len(words), i+win.After+1)
				if hi-lo < MinContextTokens {
					res.Short++
					continue
				}
				if opts.MaxContexts > 0 && len(res.Records) >= opts.MaxContexts {
					res.Truncated++
					continue
				}
				res.Records = append(res.Records, Record{
					Text:   strings.Join(words[lo:hi], " "),
					Target: target.Word,
					Source: doc.Source,
				})
				res.PerTarget[target.Word]++
			}
		})
	}
	return res
}

func wordTokens(s *tokenize.Sentence) []string {
	out := make([]string, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		if tok.IsWord() {
			out = append(out, tok.Text)
		}
	}
	return out
}
