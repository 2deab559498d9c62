// Package config loads and validates pipeline settings. Values come from
// built-in defaults, an optional YAML file and LEXICA_* environment
// variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cognicore/lexica/pkg/lexica/extract"
	"github.com/cognicore/lexica/pkg/lexica/filter"
	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/tokenize"
	"github.com/cognicore/lexica/pkg/lexica/visualize"
)

// Generate modes.
const (
	ModeVocabulary = "vocabulary"
	ModeStyle      = "style"
	ModeBoth       = "both"
	ModeNone       = "none"
)

// Config is the full pipeline configuration.
type Config struct {
	// Lexical filter
	MinWordLength            int      `mapstructure:"min_word_length" yaml:"min_word_length" validate:"min=1"`
	IncludeAlphanumeric      bool     `mapstructure:"include_alphanumeric" yaml:"include_alphanumeric"`
	IncludeProperNouns       bool     `mapstructure:"include_proper_nouns" yaml:"include_proper_nouns"`
	FrequencyCeilingFraction float64  `mapstructure:"frequency_ceiling_fraction" yaml:"frequency_ceiling_fraction" validate:"gt=0,lte=1"`
	POSClasses               []string `mapstructure:"pos_classes" yaml:"pos_classes" validate:"min=1,dive,pos_class"`
	ExcludeWords             []string `mapstructure:"exclude_words" yaml:"exclude_words"`
	StoplistPath             string   `mapstructure:"stoplist_path" yaml:"stoplist_path"`
	LemmaOverridesPath       string   `mapstructure:"lemma_overrides_path" yaml:"lemma_overrides_path"`
	Tokenizer                string   `mapstructure:"tokenizer" yaml:"tokenizer" validate:"oneof=auto prose regex"`

	// Selection
	ContextTopN int `mapstructure:"context_top_n" yaml:"context_top_n" validate:"min=1"`
	VisualTopN  int `mapstructure:"visual_top_n" yaml:"visual_top_n" validate:"min=1"`
	ChunkTopN   int `mapstructure:"chunk_top_n" yaml:"chunk_top_n" validate:"min=1"`

	// Contexts
	MaxContextTokens int `mapstructure:"max_context_tokens" yaml:"max_context_tokens" validate:"min=4"`
	MaxContexts      int `mapstructure:"max_contexts" yaml:"max_contexts" validate:"min=1"`

	// Chunks
	MaxChunkChars    int      `mapstructure:"max_chunk_chars" yaml:"max_chunk_chars" validate:"min=1,gtefield=MinChunkChars"`
	MinChunkChars    int      `mapstructure:"min_chunk_chars" yaml:"min_chunk_chars" validate:"min=0"`
	MinSentenceChars int      `mapstructure:"min_sentence_chars" yaml:"min_sentence_chars" validate:"min=0"`
	MaxChunks        int      `mapstructure:"max_chunks" yaml:"max_chunks" validate:"min=1"`
	WeightKeywords   []string `mapstructure:"weight_keywords" yaml:"weight_keywords"`
	WeightRepeat     int      `mapstructure:"weight_repeat" yaml:"weight_repeat" validate:"min=1"`

	// Output
	GenerateMode        string `mapstructure:"generate_mode" yaml:"generate_mode" validate:"oneof=vocabulary style both none"`
	SplitDataset        bool   `mapstructure:"split_dataset" yaml:"split_dataset"`
	CombineDatasets     bool   `mapstructure:"combine_datasets" yaml:"combine_datasets"`
	ShuffleSeed         uint64 `mapstructure:"shuffle_seed" yaml:"shuffle_seed"`
	MinCollocationCount int    `mapstructure:"min_collocation_count" yaml:"min_collocation_count" validate:"min=1"`
	OutputDir           string `mapstructure:"output_dir" yaml:"output_dir" validate:"required"`
	VisualizationFile   string `mapstructure:"visualization_file" yaml:"visualization_file" validate:"required"`
	DatabasePath        string `mapstructure:"database_path" yaml:"database_path"`

	// Logging
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn warning error"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinWordLength:            4,
		FrequencyCeilingFraction: 0.05,
		POSClasses:               []string{"noun", "adjective", "adverb"},
		Tokenizer:                string(tokenize.ModeAuto),
		ContextTopN:              20,
		VisualTopN:               50,
		ChunkTopN:                50,
		MaxContextTokens:         6,
		MaxContexts:              50,
		MaxChunkChars:            1500,
		MinChunkChars:            100,
		MinSentenceChars:         50,
		MaxChunks:                100,
		WeightRepeat:             3,
		GenerateMode:             ModeBoth,
		ShuffleSeed:              42,
		MinCollocationCount:      2,
		OutputDir:                "output",
		VisualizationFile:        "vocabulary_network.html",
		LogLevel:                 "info",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("pos_class", func(fl validator.FieldLevel) bool {
		_, err := tokenize.ParsePOS(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks field constraints. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

// Classes returns the parsed POS classes.
func (c *Config) Classes() []tokenize.POS {
	out := make([]tokenize.POS, 0, len(c.POSClasses))
	for _, name := range c.POSClasses {
		if p, err := tokenize.ParsePOS(name); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// FilterOptions maps the config onto the lexical filter.
func (c *Config) FilterOptions() filter.Options {
	return filter.Options{
		MinWordLength:       c.MinWordLength,
		IncludeAlphanumeric: c.IncludeAlphanumeric,
		IncludeProperNouns:  c.IncludeProperNouns,
		CeilingFraction:     c.FrequencyCeilingFraction,
		Classes:             c.Classes(),
	}
}

// ContextOptions maps the config onto the context extractor.
func (c *Config) ContextOptions() extract.ContextOptions {
	return extract.ContextOptions{
		MaxTokens:   c.MaxContextTokens,
		MaxContexts: c.MaxContexts,
	}
}

// ChunkOptions maps the config onto the chunk extractor.
func (c *Config) ChunkOptions() extract.ChunkOptions {
	return extract.ChunkOptions{
		MinSentenceChars: c.MinSentenceChars,
		MaxChars:         c.MaxChunkChars,
		MinChars:         c.MinChunkChars,
		MaxChunks:        c.MaxChunks,
	}
}

// VisualOptions maps the config onto the visualization exporter.
func (c *Config) VisualOptions() visualize.Options {
	opts := visualize.DefaultOptions()
	opts.TopN = c.VisualTopN
	opts.MinCollocationCount = int64(c.MinCollocationCount)
	return opts
}

// WantsVocabulary reports whether context records are generated.
func (c *Config) WantsVocabulary() bool {
	return c.GenerateMode == ModeVocabulary || c.GenerateMode == ModeBoth
}

// WantsStyle reports whether chunk records are generated.
func (c *Config) WantsStyle() bool {
	return c.GenerateMode == ModeStyle || c.GenerateMode == ModeBoth
}
