package lexica

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexica/internal/corpustest"
	"github.com/cognicore/lexica/pkg/lexica/config"
	"github.com/cognicore/lexica/pkg/lexica/dataset"
	"github.com/cognicore/lexica/pkg/lexica/ingest"
	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/store/memstore"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
)

const engineerSentence = "The resilient engineer quickly architected a robust distributed system."

var fixedNow = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

// engineerDoc repeats engineerSentence ten times between filler sentences
// of distinct words. 300 filler words keep the repeated words under the 5%
// ceiling even when the tagger drops some filler as non-content words.
func engineerDoc() ingest.Doc {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString(corpustest.Filler(i*30, 30))
		b.WriteString(" ")
		b.WriteString(engineerSentence)
		b.WriteString("\n")
	}
	return ingest.Doc{Source: "engineer.txt", Text: b.String()}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Tokenizer = "regex"
	return cfg
}

func newPipeline(t *testing.T, cfg config.Config, opts ...Option) *Pipeline {
	t.Helper()
	logger, _ := test.NewNullLogger()
	opts = append([]Option{WithLogger(logger), WithClock(func() time.Time { return fixedNow })}, opts...)
	p, err := New(context.Background(), cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestAnalyzeEngineerScenario(t *testing.T) {
	p := newPipeline(t, testConfig(t))
	a, err := p.Analyze([]ingest.Doc{engineerDoc()})
	require.NoError(t, err)

	for _, w := range []string{"resilient", "quickly", "architected", "robust", "distributed", "engineer", "system"} {
		cand, ok := a.Vocabulary.Candidates[w]
		if assert.True(t, ok, w) {
			assert.Equal(t, 10, cand.Count, w)
		}
	}
	assert.False(t, a.Vocabulary.Contains("the"))
	assert.Empty(t, a.Vocabulary.Suppressed)
	assert.LessOrEqual(t, float64(a.Ranked[0].Count), 0.05*float64(a.Vocabulary.Total)+1e-9)
	assert.EqualValues(t, 10, a.Graph.Count("engineer", "system"))
	assert.EqualValues(t, a.Graph.Count("system", "engineer"), a.Graph.Count("engineer", "system"))
}

func TestAnalyzeEngineerScenarioTagged(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tokenizer = "prose"
	p := newPipeline(t, cfg)
	if !p.Tokenizer().Tagged() {
		t.Skip("prose model unavailable")
	}

	a, err := p.Analyze([]ingest.Doc{engineerDoc()})
	require.NoError(t, err)
	assert.Greater(t, 0.05*float64(a.Vocabulary.Total), 10.0)
	assert.Empty(t, a.Vocabulary.Suppressed)
	for _, w := range []string{"resilient", "quickly", "robust", "engineer", "system"} {
		cand, ok := a.Vocabulary.Candidates[w]
		if assert.True(t, ok, w) {
			assert.Equal(t, 10, cand.Count, w)
		}
	}
	assert.False(t, a.Vocabulary.Contains("the"))
	for _, w := range []string{"engineer", "system"} {
		assert.Equal(t, tokenize.Noun, a.Vocabulary.Candidates[w].POS, w)
	}
	assert.Equal(t, tokenize.Adjective, a.Vocabulary.Candidates["resilient"].POS)
	assert.Equal(t, tokenize.Adverb, a.Vocabulary.Candidates["quickly"].POS)
	assert.EqualValues(t, 10, a.Graph.Count("engineer", "system"))
}

func TestAnalyzeNoCandidates(t *testing.T) {
	p := newPipeline(t, testConfig(t))
	_, err := p.Analyze([]ingest.Doc{{Source: "stop.txt", Text: "The and but. It is so."}})
	require.Error(t, err)
	assert.ErrorIs(t, err, internalerr.ErrNoCandidates)
	assert.True(t, IsNoCandidates(err))

	_, err = p.Run(context.Background(), nil)
	assert.True(t, IsNoCandidates(err))
}

func TestAnalyzeSkipsEmptyDocuments(t *testing.T) {
	p := newPipeline(t, testConfig(t))
	a, err := p.Analyze([]ingest.Doc{{Source: "blank.txt", Text: "  \n"}, engineerDoc()})
	require.NoError(t, err)
	assert.Equal(t, []string{"blank.txt"}, a.Skipped)
	assert.Len(t, a.Corpus.Documents, 1)
}

func TestAnalyzeIdempotent(t *testing.T) {
	p := newPipeline(t, testConfig(t))
	a, err := p.Analyze([]ingest.Doc{engineerDoc()})
	require.NoError(t, err)
	b, err := p.Analyze([]ingest.Doc{engineerDoc()})
	require.NoError(t, err)
	assert.Equal(t, a.Vocabulary, b.Vocabulary)
	assert.Equal(t, a.Ranked, b.Ranked)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.GenerateMode = "poetry"
	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)
}

func TestRunWritesOutputs(t *testing.T) {
	cfg := testConfig(t)
	st := memstore.New()
	p := newPipeline(t, cfg, WithStore(st))

	res, err := p.Run(context.Background(), []ingest.Doc{engineerDoc()})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.OutputDir, cfg.VisualizationFile), res.Visualization)
	assert.FileExists(t, res.Visualization)
	require.Equal(t, []string{
		filepath.Join(cfg.OutputDir, "vocabulary_training.jsonl"),
		filepath.Join(cfg.OutputDir, "style_training.jsonl"),
	}, res.Datasets)

	contexts, err := dataset.ReadJSONL(res.Datasets[0])
	require.NoError(t, err)
	require.NotEmpty(t, contexts)
	assert.LessOrEqual(t, len(contexts), cfg.MaxContexts)
	for _, r := range contexts {
		n := len(strings.Fields(r.Text))
		assert.GreaterOrEqual(t, n, 4, r.Text)
		assert.LessOrEqual(t, n, 6, r.Text)
	}

	chunks, err := dataset.ReadJSONL(res.Datasets[1])
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for _, r := range chunks {
		assert.LessOrEqual(t, len([]rune(r.Text)), cfg.MaxChunkChars)
		assert.GreaterOrEqual(t, len([]rune(r.Text)), cfg.MinChunkChars)
	}

	runs, err := st.Runs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, res.RunID, runs[0].ID)
	assert.Equal(t, "regex", runs[0].Tokenizer)
	top, err := st.TopCandidates(context.Background(), res.RunID, 1)
	require.NoError(t, err)
	assert.Equal(t, res.Analysis.Ranked[0].Word, top[0].Word)
}

func TestRunVisualizationNeverOverwritten(t *testing.T) {
	cfg := testConfig(t)
	cfg.GenerateMode = config.ModeNone
	p := newPipeline(t, cfg)

	first, err := p.Run(context.Background(), []ingest.Doc{engineerDoc()})
	require.NoError(t, err)
	second, err := p.Run(context.Background(), []ingest.Doc{engineerDoc()})
	require.NoError(t, err)

	assert.NotEqual(t, first.Visualization, second.Visualization)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "vocabulary_network_20240601-083000.html"), second.Visualization)
	assert.Empty(t, second.Datasets)
}

func TestRunSplitDeterministic(t *testing.T) {
	run := func() map[string]string {
		cfg := testConfig(t)
		cfg.SplitDataset = true
		cfg.CombineDatasets = true
		cfg.ShuffleSeed = 11
		res, err := newPipeline(t, cfg).Run(context.Background(), []ingest.Doc{engineerDoc()})
		require.NoError(t, err)
		require.Len(t, res.Datasets, 9)

		out := make(map[string]string)
		for _, path := range res.Datasets {
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			rel, err := filepath.Rel(cfg.OutputDir, path)
			require.NoError(t, err)
			out[rel] = string(data)
		}
		return out
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Contains(t, a, filepath.Join("lora", "train.jsonl"))
	assert.Contains(t, a, "style_training_valid.jsonl")
}

func TestRunWeightKeywords(t *testing.T) {
	cfg := testConfig(t)
	cfg.GenerateMode = config.ModeStyle
	cfg.WeightKeywords = []string{"resilient"}
	p := newPipeline(t, cfg)

	res, err := p.Run(context.Background(), []ingest.Doc{engineerDoc()})
	require.NoError(t, err)
	require.Positive(t, res.Weighted)

	records, err := dataset.ReadJSONL(res.Datasets[0])
	require.NoError(t, err)
	assert.Len(t, records, len(res.Chunks.Records)+2*res.Weighted)
	assert.LessOrEqual(t, len(records), cfg.MaxChunks)
}

func TestRunWeightKeywordsRespectsChunkCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.GenerateMode = config.ModeStyle
	cfg.WeightKeywords = []string{"resilient"}
	cfg.MaxChunks = 2
	p := newPipeline(t, cfg)

	res, err := p.Run(context.Background(), []ingest.Doc{engineerDoc()})
	require.NoError(t, err)

	records, err := dataset.ReadJSONL(res.Datasets[0])
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, records[0], records[1])
	assert.Positive(t, res.Chunks.Truncated)
}

func TestRunContextCancelled(t *testing.T) {
	p := newPipeline(t, testConfig(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, []ingest.Doc{engineerDoc()})
	assert.ErrorIs(t, err, context.Canceled)
}

func ExamplePipeline_Analyze() {
	cfg := config.Default()
	cfg.Tokenizer = "regex"
	p, err := New(context.Background(), cfg, WithLogger(nullLogger()))
	if err != nil {
		panic(err)
	}
	a, err := p.Analyze([]ingest.Doc{engineerDoc()})
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Graph.Count("robust", "system"))
	// Output: 10
}

func nullLogger() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}
