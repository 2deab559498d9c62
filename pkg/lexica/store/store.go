// Package store archives pipeline runs: the ranked candidates and the
// collocation graph of each run, keyed by a sortable run ID.
package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store is the run archive.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, snap Snapshot) error
	// Runs lists runs newest first.
	Runs(ctx context.Context, limit int) ([]Run, error)
	// GetRun returns internalerr.ErrNotFound for unknown IDs.
	GetRun(ctx context.Context, id string) (Run, error)
	TopCandidates(ctx context.Context, runID string, k int) ([]Candidate, error)
	Neighbors(ctx context.Context, runID, word string, k int) ([]Neighbor, error)
}

// Run summarizes one pipeline execution.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Tokenizer    string
	Documents    int
	Sentences    int
	Candidates   int
	Collocations int
	Contexts     int
	Chunks       int
	Suppressed   []string
}

// Candidate is an archived vocabulary entry. Rank is zero-based.
type Candidate struct {
	Rank  int
	Word  string
	POS   string
	Count int
	Lemma string
	Stem  string
}

// Collocation is an archived pair with A < B.
type Collocation struct {
	A     string
	B     string
	Count int64
	NPMI  float64
}

// Neighbor is a collocate of a word.
type Neighbor struct {
	Word  string
	Count int64
	NPMI  float64
}

// Snapshot is everything SaveRun persists.
type Snapshot struct {
	Run          Run
	Candidates   []Candidate
	Collocations []Collocation
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a ULID for t. IDs sort by creation time.
func NewRunID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
