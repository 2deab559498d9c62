package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
)

// EnvPrefix prefixes every environment override, e.g. LEXICA_MAX_CHUNKS.
const EnvPrefix = "LEXICA"

// Load reads configuration from path (optional) and the environment on top
// of the defaults, then validates it.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s: %w", path, internalerr.ErrNotFound)
			}
			return nil, fmt.Errorf("read config %s: %w: %v", path, internalerr.ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so environment overrides are picked up
// by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("min_word_length", d.MinWordLength)
	v.SetDefault("include_alphanumeric", d.IncludeAlphanumeric)
	v.SetDefault("include_proper_nouns", d.IncludeProperNouns)
	v.SetDefault("frequency_ceiling_fraction", d.FrequencyCeilingFraction)
	v.SetDefault("pos_classes", d.POSClasses)
	v.SetDefault("exclude_words", []string{})
	v.SetDefault("stoplist_path", "")
	v.SetDefault("lemma_overrides_path", "")
	v.SetDefault("tokenizer", d.Tokenizer)

	v.SetDefault("context_top_n", d.ContextTopN)
	v.SetDefault("visual_top_n", d.VisualTopN)
	v.SetDefault("chunk_top_n", d.ChunkTopN)

	v.SetDefault("max_context_tokens", d.MaxContextTokens)
	v.SetDefault("max_contexts", d.MaxContexts)

	v.SetDefault("max_chunk_chars", d.MaxChunkChars)
	v.SetDefault("min_chunk_chars", d.MinChunkChars)
	v.SetDefault("min_sentence_chars", d.MinSentenceChars)
	v.SetDefault("max_chunks", d.MaxChunks)
	v.SetDefault("weight_keywords", []string{})
	v.SetDefault("weight_repeat", d.WeightRepeat)

	v.SetDefault("generate_mode", d.GenerateMode)
	v.SetDefault("split_dataset", d.SplitDataset)
	v.SetDefault("combine_datasets", d.CombineDatasets)
	v.SetDefault("shuffle_seed", d.ShuffleSeed)
	v.SetDefault("min_collocation_count", d.MinCollocationCount)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("visualization_file", d.VisualizationFile)
	v.SetDefault("database_path", "")

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", "")
}
