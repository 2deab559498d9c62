// Package extract builds training records from the tokenized corpus: short
// POS-shaped token windows around top vocabulary words (contexts) and
// sentence-aligned passages that mention them (chunks).
package extract

import "strings"

// Record is one training example. Only Text is serialized.
type Record struct {
	Text string `json:"text"`
	// Target is the vocabulary word a context was built around. Empty for
	// chunks.
	Target string `json:"-"`
	Source string `json:"-"`
}

// Weight repeats every record that mentions one of keywords
// (case-insensitive substring) so it appears repeat times in total, the
// copies directly after the original. When limit > 0 the output holds at
// most limit records and the tail is cut. It returns the new slice, the
// number of weighted records kept and the number of records cut.
func Weight(records []Record, keywords []string, repeat, limit int) ([]Record, int, int) {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}

	var out []Record
	weighted, dropped := 0, 0
	for _, r := range records {
		copies := 1
		if repeat > 1 && containsAny(r.Text, lowered) {
			copies = repeat
		}
		for i := 0; i < copies; i++ {
			if limit > 0 && len(out) >= limit {
				dropped++
				continue
			}
			if i == 0 && copies > 1 {
				weighted++
			}
			out = append(out, r)
		}
	}
	return out, weighted, dropped
}

func containsAny(text string, lowered []string) bool {
	text = strings.ToLower(text)
	for _, k := range lowered {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
