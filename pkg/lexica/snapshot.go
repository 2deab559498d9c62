package lexica

import (
	"time"

	"github.com/cognicore/lexica/pkg/lexica/store"
)

func (p *Pipeline) snapshot(res *Result, now time.Time) store.Snapshot {
	a := res.Analysis
	cols := a.Graph.Collocations()
	snap := store.Snapshot{
		Run: store.Run{
			ID:           res.RunID,
			CreatedAt:    now,
			Tokenizer:    a.Corpus.Tokenizer,
			Documents:    len(a.Corpus.Documents),
			Sentences:    a.Corpus.SentenceCount(),
			Candidates:   len(a.Ranked),
			Collocations: len(cols),
			Contexts:     len(res.Contexts.Records),
			Chunks:       len(res.Chunks.Records),
			Suppressed:   a.Vocabulary.Suppressed,
		},
		Candidates:   make([]store.Candidate, len(a.Ranked)),
		Collocations: make([]store.Collocation, len(cols)),
	}
	for i, c := range a.Ranked {
		snap.Candidates[i] = store.Candidate{
			Rank:  i,
			Word:  c.Word,
			POS:   c.POS.String(),
			Count: c.Count,
			Lemma: c.Lemma,
			Stem:  c.Stem,
		}
	}
	for i, c := range cols {
		snap.Collocations[i] = store.Collocation{A: c.A, B: c.B, Count: c.Count, NPMI: c.NPMI}
	}
	return snap
}
