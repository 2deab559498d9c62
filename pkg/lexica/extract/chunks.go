package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

// ChunkOptions bounds chunk packing. Lengths are in characters. A zero
// MaxChunks means no cap.
type ChunkOptions struct {
	MinSentenceChars int
	MaxChars         int
	MinChars         int
	MaxChunks        int
}

// DefaultChunkOptions returns the default bounds.
func DefaultChunkOptions() ChunkOptions {
	return ChunkOptions{
		MinSentenceChars: 50,
		MaxChars:         1500,
		MinChars:         100,
		MaxChunks:        100,
	}
}

// ChunkResult is the outcome of a chunk run.
type ChunkResult struct {
	Records []Record
	// Qualifying is the number of sentences that mention a target and
	// meet the minimum length.
	Qualifying int
	// Oversized counts qualifying sentences longer than MaxChars. They are
	// dropped, never split.
	Oversized int
	// Short counts packed chunks below MinChars.
	Short int
	// Truncated counts records dropped by MaxChunks. Run adds weighted
	// repeats cut by the same cap.
	Truncated int
}

type pending struct {
	doc   *tokenize.Document
	idx   int
	end   int
	text  strings.Builder
	runes int
}

// Chunks packs qualifying sentences greedily into chunks of at most
// MaxChars. A sentence qualifies when one of its tokens equals a target,
// ignoring case, and it has at least MinSentenceChars characters. Chunks
// never span documents.
func Chunks(c tokenize.Corpus, targets []string, opts ChunkOptions) ChunkResult {
	want := make(map[string]bool, len(targets))
	for _, t := range targets {
		want[strings.ToLower(t)] = true
	}

	var res ChunkResult
	var packed []Record
	var cur *pending

	flush := func() {
		if cur == nil {
			return
		}
		if cur.runes < opts.MinChars {
			res.Short++
		} else {
			packed = append(packed, Record{Text: cur.text.String(), Source: cur.doc.Source})
		}
		cur = nil
	}

	c.Each(func(doc *tokenize.Document, idx int, s *tokenize.Sentence) {
		text := strings.TrimSpace(s.Text)
		n := utf8.RuneCountInString(text)
		if n < opts.MinSentenceChars || !mentions(s, want) {
			return
		}
		res.Qualifying++
		if opts.MaxChars > 0 && n > opts.MaxChars {
			res.Oversized++
			return
		}

		if cur != nil && cur.doc != doc {
			flush()
		}
		if cur != nil {
			joiner := joinerBetween(doc, cur, idx, s)
			if opts.MaxChars > 0 && cur.runes+utf8.RuneCountInString(joiner)+n > opts.MaxChars {
				flush()
			} else {
				cur.text.WriteString(joiner)
				cur.text.WriteString(text)
				cur.runes += utf8.RuneCountInString(joiner) + n
				cur.idx, cur.end = idx, s.End
				return
			}
		}
		cur = &pending{doc: doc, idx: idx, end: s.End, runes: n}
		cur.text.WriteString(text)
	})
	flush()

	if opts.MaxChunks > 0 && len(packed) > opts.MaxChunks {
		res.Truncated = len(packed) - opts.MaxChunks
		packed = packed[:opts.MaxChunks]
	}
	res.Records = packed
	return res
}

func mentions(s *tokenize.Sentence, want map[string]bool) bool {
	for _, tok := range s.Tokens {
		if want[strings.ToLower(tok.Text)] {
			return true
		}
	}
	return false
}

// joinerBetween returns the source whitespace between the buffered sentence
// and s when they are neighbours in the same document, otherwise a space.
func joinerBetween(doc *tokenize.Document, cur *pending, idx int, s *tokenize.Sentence) string {
	if idx != cur.idx+1 || !s.HasSpan() || cur.end < 0 || cur.end > s.Start || s.Start > len(doc.Text) {
		return " "
	}
	gap := doc.Text[cur.end:s.Start]
	if gap == "" || strings.TrimFunc(gap, unicode.IsSpace) != "" {
		return " "
	}
	return gap
}
