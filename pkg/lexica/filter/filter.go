// Package filter reduces a tokenized corpus to its candidate vocabulary.
//
// A token becomes a candidate only when it passes four predicates: part of
// speech class, surface shape, stop-word exclusion, and a corpus frequency
// ceiling. The ceiling depends on the total count of words surviving the
// first three predicates, so Apply always makes two passes: count, then
// threshold.
package filter

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/lexica/pkg/lexica/lexicon"
	"github.com/cognicore/lexica/pkg/lexica/stoplist"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

// ceilingEpsilon absorbs float error when a count sits exactly on the
// ceiling.
const ceilingEpsilon = 1e-9

// Options controls the token predicates and the frequency ceiling.
type Options struct {
	MinWordLength       int
	IncludeAlphanumeric bool
	IncludeProperNouns  bool
	CeilingFraction     float64
	Classes             []tokenize.POS
}

// DefaultOptions returns the default filter thresholds.
func DefaultOptions() Options {
	return Options{
		MinWordLength:   4,
		CeilingFraction: 0.05,
		Classes:         []tokenize.POS{tokenize.Noun, tokenize.Adjective, tokenize.Adverb},
	}
}

// Candidate is a word that survived every filter.
type Candidate struct {
	Word  string
	POS   tokenize.POS
	Count int
	Lemma string
	Stem  string
}

// Vocabulary is the filter output.
type Vocabulary struct {
	Candidates map[string]Candidate
	// Total is the number of occurrences that passed the token predicates,
	// before the ceiling.
	Total int
	// Ceiling is the largest count a candidate may have.
	Ceiling float64
	// Suppressed lists words dropped by the ceiling, sorted.
	Suppressed []string
}

// Words returns the candidate words in sorted order.
func (v Vocabulary) Words() []string {
	out := make([]string, 0, len(v.Candidates))
	for w := range v.Candidates {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether word (case-folded) is a candidate.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v.Candidates[strings.ToLower(word)]
	return ok
}

// Predicate decides a single token.
type Predicate func(tok tokenize.Token) bool

// Filter applies the lexical predicates. It holds no per-run state.
type Filter struct {
	opts    Options
	stops   *stoplist.Manager
	norm    *lexicon.Normalizer
	classes map[tokenize.POS]bool
}

// New creates a filter. A nil stop manager means no stop words; a nil
// normalizer leaves lemma and stem equal to the word.
func New(opts Options, stops *stoplist.Manager, norm *lexicon.Normalizer) *Filter {
	if stops == nil {
		stops = stoplist.NewManager(nil)
	}
	classes := make(map[tokenize.POS]bool, len(opts.Classes))
	for _, c := range opts.Classes {
		classes[c] = true
	}
	return &Filter{opts: opts, stops: stops, norm: norm, classes: classes}
}

// POSClass admits tokens whose tag is in the configured classes. On an
// untagged corpus every token carries Other, so the check is skipped.
func (f *Filter) POSClass(tagged bool) Predicate {
	if !tagged {
		return func(tokenize.Token) bool { return true }
	}
	return func(tok tokenize.Token) bool {
		return f.classes[tok.POS]
	}
}

// Shape admits letter-only words of the minimum length that do not start
// with an uppercase letter. IncludeAlphanumeric also admits digits mixed
// with letters; IncludeProperNouns lifts the capitalization check.
func (f *Filter) Shape(tok tokenize.Token) bool {
	word := tok.Text
	if utf8.RuneCountInString(word) < f.opts.MinWordLength || word == "" {
		return false
	}
	letters := 0
	for _, r := range word {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r) && f.opts.IncludeAlphanumeric:
		default:
			return false
		}
	}
	if letters == 0 {
		return false
	}
	if !f.opts.IncludeProperNouns {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

// NotStopword admits words outside the exclusion set.
func (f *Filter) NotStopword(tok tokenize.Token) bool {
	return !f.stops.IsStop(tok.Text)
}

// Predicates returns the three token-level predicates in evaluation order.
func (f *Filter) Predicates(tagged bool) []Predicate {
	return []Predicate{f.POSClass(tagged), f.Shape, f.NotStopword}
}

// Admit reports whether tok passes every token-level predicate.
func (f *Filter) Admit(tok tokenize.Token, tagged bool) bool {
	for _, p := range f.Predicates(tagged) {
		if !p(tok) {
			return false
		}
	}
	return true
}

type tally struct {
	count int
	tags  [4]int
}

// Apply runs both passes over the corpus.
func (f *Filter) Apply(c tokenize.Corpus) Vocabulary {
	preds := f.Predicates(c.Tagged)

	// Pass 1: token predicates and raw counts.
	tallies := make(map[string]*tally)
	total := 0
	c.Each(func(_ *tokenize.Document, _ int, s *tokenize.Sentence) {
	tokens:
		for _, tok := range s.Tokens {
			for _, p := range preds {
				if !p(tok) {
					continue tokens
				}
			}
			word := strings.ToLower(tok.Text)
			t := tallies[word]
			if t == nil {
				t = &tally{}
				tallies[word] = t
			}
			t.count++
			t.tags[posIndex(tok.POS)]++
			total++
		}
	})

	// Pass 2: frequency ceiling against the full-corpus total.
	ceiling := f.opts.CeilingFraction * float64(total)
	vocab := Vocabulary{
		Candidates: make(map[string]Candidate, len(tallies)),
		Total:      total,
		Ceiling:    ceiling,
	}
	for word, t := range tallies {
		if float64(t.count) > ceiling+ceilingEpsilon {
			vocab.Suppressed = append(vocab.Suppressed, word)
			continue
		}
		cand := Candidate{
			Word:  word,
			POS:   dominant(t.tags),
			Count: t.count,
			Lemma: word,
			Stem:  word,
		}
		if f.norm != nil {
			forms := f.norm.Normalize(word)
			cand.Lemma, cand.Stem = forms.Lemma, forms.Stem
		}
		vocab.Candidates[word] = cand
	}
	sort.Strings(vocab.Suppressed)
	return vocab
}

func posIndex(p tokenize.POS) int {
	if p < tokenize.Noun || p > tokenize.Other {
		return int(tokenize.Other)
	}
	return int(p)
}

// dominant returns the most frequent tag; ties resolve in class order
// Noun, Adjective, Adverb, Other.
func dominant(tags [4]int) tokenize.POS {
	best := tokenize.Other
	bestCount := -1
	for i, n := range tags {
		if n > bestCount {
			best, bestCount = tokenize.POS(i), n
		}
	}
	return best
}
