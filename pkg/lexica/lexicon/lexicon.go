// Package lexicon reduces candidate words to their dictionary base form
// (lemma) and morphological root (stem).
package lexicon

import (
	"os"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball"
	"gopkg.in/yaml.v3"
)

// Forms holds the normalized forms of one word.
type Forms struct {
	Lemma string
	Stem  string
}

// Normalizer lemmatizes with golem's English dictionary and stems with the
// Snowball English stemmer. Results are memoized per word.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
	overrides  map[string]string
	cache      map[string]Forms
}

// New loads the English lemma dictionary. When the dictionary cannot be
// loaded the returned Normalizer still works with lemma = word, and the error
// is returned for the caller to log.
func New() (*Normalizer, error) {
	n := &Normalizer{
		overrides: make(map[string]string),
		cache:     make(map[string]Forms),
	}
	lem, err := golem.New(en.New())
	if err != nil {
		return n, err
	}
	n.lemmatizer = lem
	return n, nil
}

// HasDictionary reports whether lemma lookups use the dictionary.
func (n *Normalizer) HasDictionary() bool {
	return n.lemmatizer != nil
}

// AddOverride forces variant to normalize to canonical.
// Example: "colour" → "color"
func (n *Normalizer) AddOverride(variant, canonical string) {
	variant = strings.ToLower(strings.TrimSpace(variant))
	canonical = strings.ToLower(strings.TrimSpace(canonical))
	if variant == "" || canonical == "" {
		return
	}
	n.overrides[variant] = canonical
	delete(n.cache, variant)
}

// Normalize returns the lemma and stem of word.
func (n *Normalizer) Normalize(word string) Forms {
	word = strings.ToLower(word)
	if f, ok := n.cache[word]; ok {
		return f
	}
	f := Forms{Lemma: n.lemma(word), Stem: stem(word)}
	n.cache[word] = f
	return f
}

// Lemma returns the dictionary base form of word.
func (n *Normalizer) Lemma(word string) string {
	return n.Normalize(word).Lemma
}

// Stem returns the Snowball stem of word.
func (n *Normalizer) Stem(word string) string {
	return n.Normalize(word).Stem
}

func (n *Normalizer) lemma(word string) string {
	if canonical, ok := n.overrides[word]; ok {
		return canonical
	}
	if n.lemmatizer == nil {
		return word
	}
	if l := n.lemmatizer.Lemma(word); l != "" {
		return strings.ToLower(l)
	}
	return word
}

func stem(word string) string {
	s, err := snowball.Stem(word, "english", true)
	if err != nil || s == "" {
		// if stemming fails, use the original token
		return word
	}
	return s
}

// LoadOverrides reads lemma overrides from a YAML file.
//
// Expected format:
//
//	overrides:
//	  - canonical: color
//	    variants: [colour, colours]
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Overrides []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"overrides"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	for _, entry := range config.Overrides {
		canonical := strings.ToLower(strings.TrimSpace(entry.Canonical))
		if canonical == "" {
			continue
		}
		for _, v := range entry.Variants {
			out[strings.ToLower(strings.TrimSpace(v))] = canonical
		}
	}
	return out, nil
}
