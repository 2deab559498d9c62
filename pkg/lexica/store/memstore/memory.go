package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	runs  map[string]store.Snapshot
	order []string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]store.Snapshot)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun stores a deep copy of snap, replacing any run with the same ID.
func (s *Store) SaveRun(ctx context.Context, snap store.Snapshot) error {
	if snap.Run.ID == "" {
		return fmt.Errorf("save run: %w: empty run id", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[snap.Run.ID]; !exists {
		s.order = append(s.order, snap.Run.ID)
	}
	s.runs[snap.Run.ID] = copySnapshot(snap)
	return nil
}

// Runs lists runs newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Run, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyRun(s.runs[id].Run))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetRun returns one run.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.runs[id]
	if !ok {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return copyRun(snap.Run), nil
}

// TopCandidates returns the first k candidates by rank.
func (s *Store) TopCandidates(ctx context.Context, runID string, k int) ([]store.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	cands := append([]store.Candidate(nil), snap.Candidates...)
	sort.Slice(cands, func(i, j int) bool { return cands[i].Rank < cands[j].Rank })
	if k > 0 && len(cands) > k {
		cands = cands[:k]
	}
	return cands, nil
}

// Neighbors returns the strongest collocates of word.
func (s *Store) Neighbors(ctx context.Context, runID, word string, k int) ([]store.Neighbor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", runID, internalerr.ErrNotFound)
	}
	var out []store.Neighbor
	for _, c := range snap.Collocations {
		switch word {
		case c.A:
			out = append(out, store.Neighbor{Word: c.B, Count: c.Count, NPMI: c.NPMI})
		case c.B:
			out = append(out, store.Neighbor{Word: c.A, Count: c.Count, NPMI: c.NPMI})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].NPMI != out[j].NPMI {
			return out[i].NPMI > out[j].NPMI
		}
		return out[i].Word < out[j].Word
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out, nil
}

func copyRun(r store.Run) store.Run {
	r.Suppressed = append([]string(nil), r.Suppressed...)
	return r
}

func copySnapshot(snap store.Snapshot) store.Snapshot {
	return store.Snapshot{
		Run:          copyRun(snap.Run),
		Candidates:   append([]store.Candidate(nil), snap.Candidates...),
		Collocations: append([]store.Collocation(nil), snap.Collocations...),
	}
}
