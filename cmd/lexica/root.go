package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/cognicore/lexica/pkg/lexica/config"
	"github.com/cognicore/lexica/pkg/lexica/internalerr"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DCFFF")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Exit codes. An empty vocabulary is a diagnostic, not a crash.
const (
	exitError        = 1
	exitConfig       = 2
	exitNoCandidates = 3
)

func exitCode(err error) int {
	switch {
	case errors.Is(err, internalerr.ErrNoCandidates):
		return exitNoCandidates
	case errors.Is(err, internalerr.ErrInvalidConfig):
		return exitConfig
	}
	return exitError
}

type rootFlags struct {
	configPath string
	outputDir  string
	tokenizer  string
	mode       string
	split      bool
	combine    bool
	seed       uint64
	logLevel   string
	logFile    string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "lexica",
		Short:         "Vocabulary network and training data from a folder of documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&flags.outputDir, "output", "o", "", "Output directory")
	pf.StringVar(&flags.tokenizer, "tokenizer", "", "Tokenizer: auto, prose or regex")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level")
	pf.StringVar(&flags.logFile, "log-file", "", "Also write logs to this rotated file")
	pf.StringVar(&flags.dbPath, "db", "", "Run archive (SQLite)")

	cmd.AddCommand(
		newRunCmd(flags),
		newVocabCmd(flags),
		newInspectCmd(flags),
	)
	return cmd
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("output") {
		cfg.OutputDir = flags.outputDir
	}
	if changed("tokenizer") {
		cfg.Tokenizer = flags.tokenizer
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("db") {
		cfg.DatabasePath = flags.dbPath
	}
	if changed("mode") {
		cfg.GenerateMode = flags.mode
	}
	if changed("split") {
		cfg.SplitDataset = flags.split
	}
	if changed("combine") {
		cfg.CombineDatasets = flags.combine
	}
	if changed("seed") {
		cfg.ShuffleSeed = flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger. With a log file, entries go to both
// stderr and a size-rotated file.
func newLogger(cfg *config.Config, stderr io.Writer) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(stderr)

	if cfg.LogFile == "" {
		return logger, nopCloser{}, nil
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	logger.SetOutput(io.MultiWriter(stderr, rotator))
	return logger, rotator, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
