package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	tokenizer TEXT NOT NULL,
	documents INTEGER NOT NULL,
	sentences INTEGER NOT NULL,
	candidates INTEGER NOT NULL,
	collocations INTEGER NOT NULL,
	contexts INTEGER NOT NULL,
	chunks INTEGER NOT NULL,
	suppressed TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
	run_id TEXT NOT NULL,
	rank INTEGER NOT NULL,
	word TEXT NOT NULL,
	pos TEXT NOT NULL,
	count INTEGER NOT NULL,
	lemma TEXT NOT NULL,
	stem TEXT NOT NULL,
	PRIMARY KEY(run_id, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_candidates_rank ON candidates(run_id, rank);

CREATE TABLE IF NOT EXISTS collocations (
	run_id TEXT NOT NULL,
	a TEXT NOT NULL,
	b TEXT NOT NULL,
	count INTEGER NOT NULL,
	npmi REAL NOT NULL,
	PRIMARY KEY(run_id, a, b),
	CHECK(a < b),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_collocations_b ON collocations(run_id, b);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun writes the run and its rows in one transaction, replacing any run
// with the same ID.
func (s *sqliteStore) SaveRun(ctx context.Context, snap store.Snapshot) error {
	r := snap.Run
	if r.ID == "" {
		return fmt.Errorf("save run: %w: empty run id", internalerr.ErrInvalidInput)
	}
	suppressed, err := json.Marshal(nonNil(r.Suppressed))
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"collocations", "candidates"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE run_id=?`, r.ID); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id=?`, r.ID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO runs (id, created_at, tokenizer, documents, sentences, candidates, collocations, contexts, chunks, suppressed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.CreatedAt.UTC().Format(timeLayout),
		r.Tokenizer,
		r.Documents,
		r.Sentences,
		r.Candidates,
		r.Collocations,
		r.Contexts,
		r.Chunks,
		string(suppressed),
	)
	if err != nil {
		return err
	}

	if err := insertCandidates(ctx, tx, r.ID, snap.Candidates); err != nil {
		return err
	}
	if err := insertCollocations(ctx, tx, r.ID, snap.Collocations); err != nil {
		return err
	}
	return tx.Commit()
}

func insertCandidates(ctx context.Context, tx *sql.Tx, runID string, cands []store.Candidate) error {
	if len(cands) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO candidates (run_id, rank, word, pos, count, lemma, stem) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, c := range cands {
		if _, err := stmt.ExecContext(ctx, runID, c.Rank, c.Word, c.POS, c.Count, c.Lemma, c.Stem); err != nil {
			return err
		}
	}
	return nil
}

func insertCollocations(ctx context.Context, tx *sql.Tx, runID string, cols []store.Collocation) error {
	if len(cols) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO collocations (run_id, a, b, count, npmi) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, c := range cols {
		a, b := c.A, c.B
		if a > b {
			a, b = b, a
		}
		if _, err := stmt.ExecContext(ctx, runID, a, b, c.Count, c.NPMI); err != nil {
			return err
		}
	}
	return nil
}

// timeLayout has fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, created_at, tokenizer, documents, sentences, candidates, collocations, contexts, chunks, suppressed`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (store.Run, error) {
	var (
		r          store.Run
		created    string
		suppressed string
	)
	if err := row.Scan(&r.ID, &created, &r.Tokenizer, &r.Documents, &r.Sentences,
		&r.Candidates, &r.Collocations, &r.Contexts, &r.Chunks, &suppressed); err != nil {
		return store.Run{}, err
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	r.CreatedAt = t
	if err := json.Unmarshal([]byte(suppressed), &r.Suppressed); err != nil {
		return store.Run{}, fmt.Errorf("parse suppressed: %w", err)
	}
	return r, nil
}

// Runs lists runs newest first.
func (s *sqliteStore) Runs(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns one run.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	r, err := scanRun(s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// TopCandidates returns the first k candidates by rank.
func (s *sqliteStore) TopCandidates(ctx context.Context, runID string, k int) ([]store.Candidate, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT rank, word, pos, count, lemma, stem
FROM candidates
WHERE run_id = ?
ORDER BY rank ASC
LIMIT ?;
`, runID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Candidate
	for rows.Next() {
		var c store.Candidate
		if err := rows.Scan(&c.Rank, &c.Word, &c.POS, &c.Count, &c.Lemma, &c.Stem); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Neighbors returns the strongest collocates of word.
func (s *sqliteStore) Neighbors(ctx context.Context, runID, word string, k int) ([]store.Neighbor, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT CASE WHEN a = ? THEN b ELSE a END AS other, count, npmi
FROM collocations
WHERE run_id = ? AND (a = ? OR b = ?)
ORDER BY count DESC, npmi DESC, other ASC
LIMIT ?;
`, word, runID, word, word, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Neighbor
	for rows.Next() {
		var n store.Neighbor
		if err := rows.Scan(&n.Word, &n.Count, &n.NPMI); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
