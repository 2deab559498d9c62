// Package lexica runs the vocabulary pipeline end to end: tokenize, filter,
// analyze, then render the network view and write the training datasets.
package lexica

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/lexica/pkg/lexica/analytics"
	"github.com/cognicore/lexica/pkg/lexica/config"
	"github.com/cognicore/lexica/pkg/lexica/filter"
	"github.com/cognicore/lexica/pkg/lexica/ingest"
	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/lexicon"
	"github.com/cognicore/lexica/pkg/lexica/store"
	"github.com/cognicore/lexica/pkg/lexica/store/sqlite"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

// Pipeline holds the per-run stages built from one configuration. It keeps
// no state between runs.
type Pipeline struct {
	cfg       config.Config
	logger    logrus.FieldLogger
	now       func() time.Time
	tokenizer tokenize.Tokenizer
	filter    *filter.Filter
	store     store.Store
	ownsStore bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock overrides the time source for run IDs and file suffixes.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// WithTokenizer bypasses tokenizer selection.
func WithTokenizer(t tokenize.Tokenizer) Option {
	return func(p *Pipeline) { p.tokenizer = t }
}

// WithStore archives runs in st instead of the configured database. The
// caller keeps ownership.
func WithStore(st store.Store) Option {
	return func(p *Pipeline) { p.store = st }
}

// New validates cfg and builds the pipeline stages.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{
		cfg:    cfg,
		logger: logrus.StandardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.tokenizer == nil {
		tok, err := tokenize.Select(tokenize.Mode(cfg.Tokenizer), p.logger)
		if err != nil {
			return nil, fmt.Errorf("select tokenizer: %w: %v", internalerr.ErrInvalidConfig, err)
		}
		p.tokenizer = tok
	}

	stops, err := cfg.BuildStoplist()
	if err != nil {
		return nil, err
	}

	norm, err := lexicon.New()
	if err != nil {
		p.logger.WithError(err).Warn("lemma dictionary unavailable, lemmas fall back to surface forms")
	}
	if cfg.LemmaOverridesPath != "" {
		overrides, err := lexicon.LoadOverrides(cfg.LemmaOverridesPath)
		if err != nil {
			return nil, fmt.Errorf("load lemma overrides: %w", err)
		}
		for variant, canonical := range overrides {
			norm.AddOverride(variant, canonical)
		}
	}
	p.filter = filter.New(cfg.FilterOptions(), stops, norm)

	if p.store == nil && cfg.DatabasePath != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open run archive: %w", err)
		}
		p.store, p.ownsStore = st, true
	}

	p.logger.WithFields(logrus.Fields{
		"tokenizer": p.tokenizer.Name(),
		"tagged":    p.tokenizer.Tagged(),
		"stopwords": stops.Len(),
	}).Debug("pipeline ready")
	return p, nil
}

// Close releases the run archive when the pipeline opened it.
func (p *Pipeline) Close() error {
	if p.ownsStore && p.store != nil {
		return p.store.Close()
	}
	return nil
}

// Config returns the validated configuration.
func (p *Pipeline) Config() config.Config {
	return p.cfg
}

// Tokenizer returns the tokenizer in use.
func (p *Pipeline) Tokenizer() tokenize.Tokenizer {
	return p.tokenizer
}

// Analysis is the shared, read-only result of the analysis stages.
type Analysis struct {
	analytics.Analysis
	Corpus     tokenize.Corpus
	Vocabulary filter.Vocabulary
	// Skipped lists sources of empty documents.
	Skipped []string
}

// Analyze tokenizes docs, filters the vocabulary and builds the collocation
// graph. Empty documents are skipped. It returns ErrNoCandidates when no
// word survives filtering.
func (p *Pipeline) Analyze(docs []ingest.Doc) (*Analysis, error) {
	var skipped []string
	valid := make([]ingest.Doc, 0, len(docs))
	for _, d := range docs {
		if err := d.Validate(); err != nil {
			p.logger.WithField("source", d.Source).WithError(err).Warn("skipping document")
			skipped = append(skipped, d.Source)
			continue
		}
		valid = append(valid, d)
	}

	corpus := tokenize.Build(p.tokenizer, valid)
	vocab := p.filter.Apply(corpus)
	log := p.logger.WithFields(logrus.Fields{
		"documents":  len(valid),
		"sentences":  corpus.SentenceCount(),
		"filtered":   vocab.Total,
		"candidates": len(vocab.Candidates),
		"suppressed": len(vocab.Suppressed),
	})
	if len(vocab.Candidates) == 0 {
		log.Warn("no candidate words survived filtering")
		return nil, fmt.Errorf("analyze %d documents: %w", len(valid), internalerr.ErrNoCandidates)
	}
	log.Info("vocabulary filtered")

	return &Analysis{
		Analysis:   analytics.Analyze(corpus, vocab),
		Corpus:     corpus,
		Vocabulary: vocab,
		Skipped:    skipped,
	}, nil
}

// IsNoCandidates reports whether err is the empty-vocabulary diagnostic.
func IsNoCandidates(err error) bool {
	return errors.Is(err, internalerr.ErrNoCandidates)
}

func (p *Pipeline) outputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.cfg.OutputDir, name)
}
