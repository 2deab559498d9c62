package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexica/internal/corpustest"
	"github.com/cognicore/lexica/pkg/lexica/filter"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

func vocabOf(counts map[string]int) filter.Vocabulary {
	v := filter.Vocabulary{Candidates: make(map[string]filter.Candidate)}
	for w, n := range counts {
		v.Candidates[w] = filter.Candidate{Word: w, Count: n, Lemma: w, Stem: w}
		v.Total += n
	}
	return v
}

func sampleCorpus() tokenize.Corpus {
	N := tokenize.Noun
	return corpustest.Corpus(true,
		corpustest.Tagged("river", N, "stone", N, "river", N, "the", tokenize.Other),
		corpustest.Tagged("Stone", N, "garden", N),
		corpustest.Tagged("river", N, "stone", N, "garden", N),
		corpustest.Tagged("meadow", N),
	)
}

func TestRankCountThenAlphabetical(t *testing.T) {
	ranked := Rank(vocabOf(map[string]int{
		"meadow": 2,
		"garden": 5,
		"apple":  2,
		"river":  7,
	}))

	words := make([]string, len(ranked))
	for i, c := range ranked {
		words[i] = c.Word
	}
	assert.Equal(t, []string{"river", "garden", "apple", "meadow"}, words)
}

func TestAnalyzeCollocations(t *testing.T) {
	a := Analyze(sampleCorpus(), vocabOf(map[string]int{
		"river": 3, "stone": 3, "garden": 2, "meadow": 1,
	}))

	assert.EqualValues(t, 4, a.Sentences)
	assert.EqualValues(t, 2, a.Graph.Count("river", "stone"))
	assert.EqualValues(t, 2, a.Graph.Count("garden", "stone"), "matching is case-folded")
	assert.EqualValues(t, 1, a.Graph.Count("garden", "river"))
	assert.EqualValues(t, 0, a.Graph.Count("meadow", "river"))
	assert.Equal(t, 3, a.Graph.Len())

	top := a.Graph.Collocations()[0]
	assert.EqualValues(t, 2, top.Count)
	assert.InDelta(t, 0, top.NPMI, 1.0)
}

func TestCollocationSymmetryNoSelfPairs(t *testing.T) {
	a := Analyze(sampleCorpus(), vocabOf(map[string]int{
		"river": 3, "stone": 3, "garden": 2, "meadow": 1,
	}))

	words := []string{"river", "stone", "garden", "meadow"}
	for _, x := range words {
		assert.Zero(t, a.Graph.Count(x, x), "self pair %s", x)
		for _, y := range words {
			assert.Equal(t, a.Graph.Count(x, y), a.Graph.Count(y, x), "%s/%s", x, y)
		}
	}
	for _, col := range a.Graph.Collocations() {
		assert.Less(t, col.A, col.B)
	}
}

func TestNeighbors(t *testing.T) {
	a := Analyze(sampleCorpus(), vocabOf(map[string]int{
		"river": 3, "stone": 3, "garden": 2,
	}))

	got := a.Graph.Neighbors("stone", 0)
	require.Len(t, got, 2)
	assert.EqualValues(t, 2, got[0].Count)
	assert.Equal(t, "garden", got[0].Other("stone"), "ties fall back to pair order")
	assert.Equal(t, "river", got[1].Other("stone"))

	assert.Len(t, a.Graph.Neighbors("stone", 1), 1)
	assert.Empty(t, a.Graph.Neighbors("missing", 3))
}

func TestAmong(t *testing.T) {
	a := Analyze(sampleCorpus(), vocabOf(map[string]int{
		"river": 3, "stone": 3, "garden": 2,
	}))

	all := map[string]bool{"river": true, "stone": true, "garden": true}
	assert.Len(t, a.Graph.Among(all, 2, 0), 2)
	assert.Len(t, a.Graph.Among(all, 1, 1), 1)
	assert.Len(t, a.Graph.Among(map[string]bool{"river": true, "stone": true}, 1, 0), 1)
}

func TestTopWordsAndLookup(t *testing.T) {
	a := Analyze(sampleCorpus(), vocabOf(map[string]int{
		"river": 3, "stone": 3, "garden": 2,
	}))

	assert.Len(t, a.TopWords(2), 2)
	assert.Len(t, a.TopWords(0), 3)
	assert.Len(t, a.TopWords(10), 3)

	assert.Equal(t, 0, a.RankOf("river"))
	assert.Equal(t, 1, a.RankOf("Stone"))
	assert.Equal(t, -1, a.RankOf("missing"))

	cand, ok := a.Candidate("garden")
	require.True(t, ok)
	assert.Equal(t, 2, cand.Count)
}
