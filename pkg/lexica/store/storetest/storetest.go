// Package storetest holds the behaviour every store.Store must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/store"
)

// Snapshot returns a small run created at t.
func Snapshot(t time.Time) store.Snapshot {
	return store.Snapshot{
		Run: store.Run{
			ID:           store.NewRunID(t),
			CreatedAt:    t,
			Tokenizer:    "regex",
			Documents:    2,
			Sentences:    9,
			Candidates:   3,
			Collocations: 3,
			Contexts:     4,
			Chunks:       1,
			Suppressed:   []string{"system"},
		},
		Candidates: []store.Candidate{
			{Rank: 1, Word: "stone", POS: "noun", Count: 5, Lemma: "stone", Stem: "stone"},
			{Rank: 0, Word: "river", POS: "noun", Count: 7, Lemma: "river", Stem: "river"},
			{Rank: 2, Word: "quietly", POS: "adverb", Count: 2, Lemma: "quietly", Stem: "quiet"},
		},
		Collocations: []store.Collocation{
			{A: "river", B: "stone", Count: 4, NPMI: 0.6},
			{A: "quietly", B: "river", Count: 2, NPMI: 0.2},
			{A: "quietly", B: "stone", Count: 2, NPMI: 0.4},
		},
	}
}

// Run exercises a store implementation. open must return an empty store.
func Run(t *testing.T, open func(t *testing.T) store.Store) {
	t.Run("SaveAndGet", func(t *testing.T) {
		ctx := context.Background()
		st := open(t)
		snap := Snapshot(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, st.SaveRun(ctx, snap))

		got, err := st.GetRun(ctx, snap.Run.ID)
		require.NoError(t, err)
		assert.Equal(t, snap.Run.ID, got.ID)
		assert.True(t, snap.Run.CreatedAt.Equal(got.CreatedAt))
		assert.Equal(t, "regex", got.Tokenizer)
		assert.Equal(t, 9, got.Sentences)
		assert.Equal(t, []string{"system"}, got.Suppressed)
	})

	t.Run("UnknownRun", func(t *testing.T) {
		ctx := context.Background()
		st := open(t)
		_, err := st.GetRun(ctx, "missing")
		assert.ErrorIs(t, err, internalerr.ErrNotFound)
		_, err = st.TopCandidates(ctx, "missing", 3)
		assert.ErrorIs(t, err, internalerr.ErrNotFound)
		_, err = st.Neighbors(ctx, "missing", "river", 3)
		assert.ErrorIs(t, err, internalerr.ErrNotFound)
	})

	t.Run("EmptyID", func(t *testing.T) {
		st := open(t)
		err := st.SaveRun(context.Background(), store.Snapshot{})
		assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
	})

	t.Run("RunsNewestFirst", func(t *testing.T) {
		ctx := context.Background()
		st := open(t)
		base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		older := Snapshot(base)
		newer := Snapshot(base.Add(90 * time.Minute))
		newest := Snapshot(base.Add(90*time.Minute + 500*time.Millisecond))
		for _, s := range []store.Snapshot{newer, older, newest} {
			require.NoError(t, st.SaveRun(ctx, s))
		}

		runs, err := st.Runs(ctx, 0)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, newest.Run.ID, runs[0].ID)
		assert.Equal(t, newer.Run.ID, runs[1].ID)
		assert.Equal(t, older.Run.ID, runs[2].ID)

		runs, err = st.Runs(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})

	t.Run("TopCandidates", func(t *testing.T) {
		ctx := context.Background()
		st := open(t)
		snap := Snapshot(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, st.SaveRun(ctx, snap))

		cands, err := st.TopCandidates(ctx, snap.Run.ID, 2)
		require.NoError(t, err)
		require.Len(t, cands, 2)
		assert.Equal(t, "river", cands[0].Word)
		assert.Equal(t, "stone", cands[1].Word)

		all, err := st.TopCandidates(ctx, snap.Run.ID, 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "quiet", all[2].Stem)
	})

	t.Run("NeighborsSymmetric", func(t *testing.T) {
		ctx := context.Background()
		st := open(t)
		snap := Snapshot(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, st.SaveRun(ctx, snap))

		ns, err := st.Neighbors(ctx, snap.Run.ID, "stone", 0)
		require.NoError(t, err)
		require.Len(t, ns, 2)
		assert.Equal(t, "river", ns[0].Word)
		assert.EqualValues(t, 4, ns[0].Count)
		assert.Equal(t, "quietly", ns[1].Word)

		ns, err = st.Neighbors(ctx, snap.Run.ID, "quietly", 1)
		require.NoError(t, err)
		require.Len(t, ns, 1)
		assert.Equal(t, "stone", ns[0].Word, "equal counts fall back to NPMI")
	})

	t.Run("ResaveReplaces", func(t *testing.T) {
		ctx := context.Background()
		st := open(t)
		snap := Snapshot(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
		require.NoError(t, st.SaveRun(ctx, snap))

		snap.Candidates = snap.Candidates[:1]
		snap.Run.Candidates = 1
		require.NoError(t, st.SaveRun(ctx, snap))

		cands, err := st.TopCandidates(ctx, snap.Run.ID, 0)
		require.NoError(t, err)
		assert.Len(t, cands, 1)
		runs, err := st.Runs(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}
