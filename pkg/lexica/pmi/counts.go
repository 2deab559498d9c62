package pmi

import "sort"

// Counter holds sentence-level co-occurrence counts.
type Counter struct {
	N   int64              // total number of sentences
	Nx  map[string]int64   // sentence frequency per word
	Nxy map[WordPair]int64 // co-occurrence count per word pair
}

// WordPair is an unordered pair stored with A < B.
type WordPair struct {
	A, B string
}

// NewPair returns the canonical pair for two distinct words.
func NewPair(a, b string) WordPair {
	if a > b {
		a, b = b, a
	}
	return WordPair{A: a, B: b}
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		Nx:  make(map[string]int64),
		Nxy: make(map[WordPair]int64),
	}
}

// AddSentence counts one sentence. Repeated words count once, and a word
// never pairs with itself.
func (c *Counter) AddSentence(words []string) {
	c.N++

	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		unique = append(unique, w)
	}
	sort.Strings(unique)

	for _, w := range unique {
		c.Nx[w]++
	}
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			c.Nxy[WordPair{A: unique[i], B: unique[j]}]++
		}
	}
}

// PairCount returns the co-occurrence count for a word pair in either order
func (c *Counter) PairCount(a, b string) int64 {
	if a == b {
		return 0
	}
	return c.Nxy[NewPair(a, b)]
}

// WordCount returns the number of sentences containing w
func (c *Counter) WordCount(w string) int64 {
	return c.Nx[w]
}

// TotalSentences returns the number of sentences processed
func (c *Counter) TotalSentences() int64 {
	return c.N
}

// UniquePairs returns the number of unique word pairs
func (c *Counter) UniquePairs() int {
	return len(c.Nxy)
}

// Pairs returns every counted pair, sorted by A then B.
func (c *Counter) Pairs() []WordPair {
	out := make([]WordPair, 0, len(c.Nxy))
	for p := range c.Nxy {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
