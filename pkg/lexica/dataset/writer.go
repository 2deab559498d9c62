package dataset

import (
	"math/rand/v2"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/lexica/pkg/lexica/extract"
)

// Fixed dataset names.
const (
	VocabularyName = "vocabulary_training"
	StyleName      = "style_training"
	CombinedDir    = "lora"
	Ext            = ".jsonl"
)

// Split is a three-way partition of a record set.
type Split struct {
	Train []extract.Record
	Valid []extract.Record
	Test  []extract.Record
}

// SplitRecords shuffles a copy of records with seed and cuts it 80/10/10.
// Train gets floor(0.8n), valid floor(0.1n) and test the remainder.
func SplitRecords(records []extract.Record, seed uint64) Split {
	shuffled := make([]extract.Record, len(records))
	copy(shuffled, records)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	train := n * 8 / 10
	valid := n / 10
	return Split{
		Train: shuffled[:train],
		Valid: shuffled[train : train+valid],
		Test:  shuffled[train+valid:],
	}
}

// Options configures a Writer.
type Options struct {
	Dir   string
	Split bool
	Seed  uint64
}

// Writer writes the per-mode and combined datasets under one directory.
type Writer struct {
	opts   Options
	logger logrus.FieldLogger
}

// NewWriter creates a writer. A nil logger uses the standard logger.
func NewWriter(opts Options, logger logrus.FieldLogger) *Writer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Writer{opts: opts, logger: logger}
}

// Write serializes records as <name>.jsonl, or as <name>_train.jsonl,
// <name>_valid.jsonl and <name>_test.jsonl when splitting. Existing files
// are replaced. It returns the paths written.
func (w *Writer) Write(name string, records []extract.Record) ([]string, error) {
	if !w.opts.Split {
		path := filepath.Join(w.opts.Dir, name+Ext)
		if err := WriteJSONL(path, records); err != nil {
			return nil, err
		}
		w.logger.WithFields(logrus.Fields{"path": path, "records": len(records)}).Info("dataset written")
		return []string{path}, nil
	}
	return w.writeSplit(SplitRecords(records, w.opts.Seed), func(part string) string {
		return filepath.Join(w.opts.Dir, name+"_"+part+Ext)
	})
}

// Combine merges record sets in order, then shuffles and splits them into
// lora/train.jsonl, lora/valid.jsonl and lora/test.jsonl.
func (w *Writer) Combine(sets ...[]extract.Record) ([]string, error) {
	var all []extract.Record
	for _, s := range sets {
		all = append(all, s...)
	}
	return w.writeSplit(SplitRecords(all, w.opts.Seed), func(part string) string {
		return filepath.Join(w.opts.Dir, CombinedDir, part+Ext)
	})
}

func (w *Writer) writeSplit(s Split, pathFor func(part string) string) ([]string, error) {
	parts := []struct {
		name    string
		records []extract.Record
	}{
		{"train", s.Train},
		{"valid", s.Valid},
		{"test", s.Test},
	}
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		path := pathFor(p.name)
		if err := WriteJSONL(path, p.records); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	w.logger.WithFields(logrus.Fields{
		"train": len(s.Train),
		"valid": len(s.Valid),
		"test":  len(s.Test),
		"seed":  w.opts.Seed,
	}).Info("dataset split written")
	return paths, nil
}
