package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexica/internal/corpustest"
	"github.com/cognicore/lexica/pkg/lexica/stoplist"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

func tok(text string, pos tokenize.POS) tokenize.Token {
	return tokenize.Token{Text: text, POS: pos}
}

func TestShape(t *testing.T) {
	tests := []struct {
		name  string
		opts  func(*Options)
		word  string
		admit bool
	}{
		{"plain word", nil, "garden", true},
		{"exact minimum", nil, "tree", true},
		{"too short", nil, "sky", false},
		{"capitalized", nil, "Garden", false},
		{"capitalized allowed", func(o *Options) { o.IncludeProperNouns = true }, "Garden", true},
		{"digits rejected", nil, "web3app", false},
		{"digits allowed", func(o *Options) { o.IncludeAlphanumeric = true }, "web3app", true},
		{"pure number never", func(o *Options) { o.IncludeAlphanumeric = true }, "2024", false},
		{"decimal never", func(o *Options) { o.IncludeAlphanumeric = true }, "3.14", false},
		{"hyphen", nil, "well-known", false},
		{"apostrophe", nil, "don't", false},
		{"unicode letters", nil, "café", true},
		{"rune length", func(o *Options) { o.MinWordLength = 5 }, "café", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tc.opts != nil {
				tc.opts(&opts)
			}
			f := New(opts, nil, nil)
			assert.Equal(t, tc.admit, f.Shape(tok(tc.word, tokenize.Noun)))
		})
	}
}

func TestPOSClass(t *testing.T) {
	f := New(DefaultOptions(), nil, nil)

	tagged := f.POSClass(true)
	assert.True(t, tagged(tok("garden", tokenize.Noun)))
	assert.True(t, tagged(tok("green", tokenize.Adjective)))
	assert.True(t, tagged(tok("gently", tokenize.Adverb)))
	assert.False(t, tagged(tok("gardened", tokenize.Other)))

	untagged := f.POSClass(false)
	assert.True(t, untagged(tok("gardened", tokenize.Other)))
}

func TestNotStopword(t *testing.T) {
	f := New(DefaultOptions(), stoplist.Default(), nil)
	assert.False(t, f.NotStopword(tok("yesterday", tokenize.Noun)))
	assert.True(t, f.NotStopword(tok("garden", tokenize.Noun)))
}

func TestAdmitRequiresAllPredicates(t *testing.T) {
	f := New(DefaultOptions(), stoplist.Default(), nil)
	assert.True(t, f.Admit(tok("garden", tokenize.Noun), true))
	assert.False(t, f.Admit(tok("garden", tokenize.Other), true))
	assert.False(t, f.Admit(tok("Garden", tokenize.Noun), true))
	assert.False(t, f.Admit(tok("morning", tokenize.Noun), true))
}

// bigCorpus has one word repeated heavy times plus 100 distinct filler
// words, each tagged Noun.
func bigCorpus(heavy int) tokenize.Corpus {
	var sentences []tokenize.Sentence
	for i := 0; i < heavy; i++ {
		sentences = append(sentences, corpustest.Tagged("lantern", tokenize.Noun))
	}
	for i := 0; i < 100; i++ {
		sentences = append(sentences, corpustest.Tagged(corpustest.Word(i), tokenize.Noun, "the", tokenize.Other))
	}
	return corpustest.Corpus(true, sentences...)
}

func TestApplyFrequencyCeiling(t *testing.T) {
	f := New(DefaultOptions(), stoplist.Default(), nil)

	// 5 of 105 is under 5%: kept.
	v := f.Apply(bigCorpus(5))
	assert.Equal(t, 105, v.Total)
	require.True(t, v.Contains("lantern"))
	assert.Equal(t, 5, v.Candidates["lantern"].Count)
	assert.Empty(t, v.Suppressed)

	// 10 of 110 is over 5%: suppressed.
	v = f.Apply(bigCorpus(10))
	assert.False(t, v.Contains("lantern"))
	assert.Equal(t, []string{"lantern"}, v.Suppressed)
	assert.Len(t, v.Candidates, 100)
}

func TestApplyCeilingBoundaryIsInclusive(t *testing.T) {
	// 20 words x 5 occurrences: each is exactly 5% of 100.
	var sentences []tokenize.Sentence
	for rep := 0; rep < 5; rep++ {
		for i := 0; i < 20; i++ {
			sentences = append(sentences, corpustest.Tagged(corpustest.Word(i), tokenize.Noun))
		}
	}
	v := New(DefaultOptions(), nil, nil).Apply(corpustest.Corpus(true, sentences...))
	assert.Len(t, v.Candidates, 20)
}

func TestCeilingProperty(t *testing.T) {
	corpus := bigCorpus(4)
	for _, fraction := range []float64{0.01, 0.02, 0.05, 0.1, 0.5, 1} {
		opts := DefaultOptions()
		opts.CeilingFraction = fraction
		v := New(opts, nil, nil).Apply(corpus)
		for w, c := range v.Candidates {
			assert.LessOrEqual(t, float64(c.Count), fraction*float64(v.Total)+ceilingEpsilon, "%s at %.2f", w, fraction)
		}
	}
}

func TestApplyDominantPOS(t *testing.T) {
	opts := DefaultOptions()
	opts.CeilingFraction = 1
	f := New(opts, nil, nil)

	corpus := corpustest.Corpus(true,
		corpustest.Tagged("signal", tokenize.Noun, "bright", tokenize.Adjective, "bright", tokenize.Adverb),
		corpustest.Tagged("signal", tokenize.Adjective, "signal", tokenize.Adjective),
		corpustest.Tagged("signal", tokenize.Other),
	)
	v := f.Apply(corpus)

	require.True(t, v.Contains("signal"))
	assert.Equal(t, tokenize.Adjective, v.Candidates["signal"].POS, "most frequent admitted tag wins")
	assert.Equal(t, 3, v.Candidates["signal"].Count, "Other-tagged occurrence is filtered out")
	assert.Equal(t, tokenize.Adjective, v.Candidates["bright"].POS, "ties resolve in class order")
}

func TestApplyUntaggedUsesOther(t *testing.T) {
	opts := DefaultOptions()
	opts.CeilingFraction = 1
	corpus := corpustest.Corpus(false, corpustest.Tagged("signal", tokenize.Other, "garden", tokenize.Other))
	v := New(opts, nil, nil).Apply(corpus)
	assert.Equal(t, []string{"garden", "signal"}, v.Words())
	assert.Equal(t, tokenize.Other, v.Candidates["garden"].POS)
	assert.Equal(t, "garden", v.Candidates["garden"].Lemma)
}

func TestApplyCaseFolds(t *testing.T) {
	opts := DefaultOptions()
	opts.CeilingFraction = 1
	opts.IncludeProperNouns = true
	corpus := corpustest.Corpus(true, corpustest.Tagged("Garden", tokenize.Noun, "garden", tokenize.Noun))
	v := New(opts, nil, nil).Apply(corpus)
	require.Len(t, v.Candidates, 1)
	assert.Equal(t, 2, v.Candidates["garden"].Count)
}

func TestApplyIdempotent(t *testing.T) {
	f := New(DefaultOptions(), stoplist.Default(), nil)
	corpus := bigCorpus(3)
	first := f.Apply(corpus)
	second := f.Apply(corpus)
	assert.Equal(t, first, second)
}

func TestApplyEmptyCorpus(t *testing.T) {
	v := New(DefaultOptions(), nil, nil).Apply(tokenize.Corpus{})
	assert.Empty(t, v.Candidates)
	assert.Zero(t, v.Total)
}
