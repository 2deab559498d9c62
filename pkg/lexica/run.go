package lexica

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/lexica/pkg/lexica/config"
	"github.com/cognicore/lexica/pkg/lexica/dataset"
	"github.com/cognicore/lexica/pkg/lexica/extract"
	"github.com/cognicore/lexica/pkg/lexica/ingest"
	"github.com/cognicore/lexica/pkg/lexica/store"
	"github.com/cognicore/lexica/pkg/lexica/visualize"
)

// Result reports what a run produced.
type Result struct {
	RunID         string
	Analysis      *Analysis
	Visualization string
	// Datasets lists every JSONL file written, in write order.
	Datasets []string
	Contexts extract.ContextResult
	Chunks   extract.ChunkResult
	// Weighted is the number of style records repeated for weight_keywords.
	Weighted int
}

// Run executes every stage and writes the outputs under the configured
// output directory.
func (p *Pipeline) Run(ctx context.Context, docs []ingest.Doc) (*Result, error) {
	now := p.now()
	res := &Result{RunID: store.NewRunID(now)}
	log := p.logger.WithField("run", res.RunID)

	analysis, err := p.Analyze(docs)
	if err != nil {
		return nil, err
	}
	res.Analysis = analysis
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exporter := visualize.NewExporter(visualize.WithLogger(log), visualize.WithClock(p.now))
	doc := visualize.Build(analysis.Analysis, p.cfg.VisualOptions(), now)
	res.Visualization, err = exporter.Export(p.outputPath(p.cfg.VisualizationFile), doc)
	if err != nil {
		return nil, err
	}

	writer := dataset.NewWriter(dataset.Options{
		Dir:   p.cfg.OutputDir,
		Split: p.cfg.SplitDataset,
		Seed:  p.cfg.ShuffleSeed,
	}, log)

	var vocabRecords, styleRecords []extract.Record
	if p.cfg.WantsVocabulary() {
		res.Contexts = extract.Contexts(analysis.Corpus, analysis.TopWords(p.cfg.ContextTopN), p.cfg.ContextOptions())
		vocabRecords = res.Contexts.Records
		if res.Contexts.Truncated > 0 {
			log.WithField("truncated", res.Contexts.Truncated).Info("context cap reached")
		}
		paths, err := writer.Write(dataset.VocabularyName, vocabRecords)
		if err != nil {
			return nil, fmt.Errorf("write vocabulary dataset: %w", err)
		}
		res.Datasets = append(res.Datasets, paths...)
	}

	if p.cfg.WantsStyle() {
		targets := analysis.TopWords(p.cfg.ChunkTopN)
		words := make([]string, len(targets))
		for i, c := range targets {
			words[i] = c.Word
		}
		res.Chunks = extract.Chunks(analysis.Corpus, words, p.cfg.ChunkOptions())
		// Weighted repeats count against max_chunks; records past it are
		// reported as truncated.
		var cut int
		styleRecords, res.Weighted, cut = extract.Weight(res.Chunks.Records, p.cfg.WeightKeywords, p.cfg.WeightRepeat, p.cfg.MaxChunks)
		res.Chunks.Truncated += cut
		log.WithFields(logrus.Fields{
			"chunks":    len(res.Chunks.Records),
			"oversized": res.Chunks.Oversized,
			"short":     res.Chunks.Short,
			"truncated": res.Chunks.Truncated,
			"weighted":  res.Weighted,
		}).Info("style chunks packed")
		paths, err := writer.Write(dataset.StyleName, styleRecords)
		if err != nil {
			return nil, fmt.Errorf("write style dataset: %w", err)
		}
		res.Datasets = append(res.Datasets, paths...)
	}

	if p.cfg.CombineDatasets && p.cfg.GenerateMode != config.ModeNone {
		paths, err := writer.Combine(vocabRecords, styleRecords)
		if err != nil {
			return nil, fmt.Errorf("write combined dataset: %w", err)
		}
		res.Datasets = append(res.Datasets, paths...)
	}

	if p.store != nil {
		if err := p.store.SaveRun(ctx, p.snapshot(res, now)); err != nil {
			return nil, fmt.Errorf("archive run: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"visualization": res.Visualization,
		"datasets":      len(res.Datasets),
	}).Info("run complete")
	return res, nil
}
