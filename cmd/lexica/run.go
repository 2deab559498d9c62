package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cognicore/lexica/pkg/lexica"
	"github.com/cognicore/lexica/pkg/lexica/config"
	"github.com/cognicore/lexica/pkg/lexica/ingest"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <dir>",
		Short: "Analyze a folder and write the visualization and datasets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, flags, args[0])
		},
	}
	cmd.Flags().StringVar(&flags.mode, "mode", "", "Datasets to generate: vocabulary, style, both or none")
	cmd.Flags().BoolVar(&flags.split, "split", false, "Split each dataset 80/10/10 into train/valid/test")
	cmd.Flags().BoolVar(&flags.combine, "combine", false, "Also write a combined lora/ split")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Shuffle seed for dataset splits")
	return cmd
}

// session is the state shared by commands that run the pipeline.
type session struct {
	cfg    *config.Config
	logger *logrus.Logger
	closer io.Closer
}

func openSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	logger, closer, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, closer: closer}, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}

func (s *session) load(dir string) ([]ingest.Doc, error) {
	return ingest.NewLoader(ingest.WithLogger(s.logger)).LoadDir(dir)
}

func runPipeline(cmd *cobra.Command, flags *rootFlags, dir string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(cmd, flags)
	if err != nil {
		return err
	}
	defer s.Close()

	docs, err := s.load(dir)
	if err != nil {
		return err
	}
	p, err := lexica.New(ctx, *s.cfg, lexica.WithLogger(s.logger))
	if err != nil {
		return err
	}
	defer p.Close()

	res, err := p.Run(ctx, docs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("run "+res.RunID))
	fmt.Fprintf(out, "candidates    %d (%d suppressed by frequency ceiling)\n",
		len(res.Analysis.Ranked), len(res.Analysis.Vocabulary.Suppressed))
	fmt.Fprintf(out, "visualization %s\n", res.Visualization)
	if s.cfg.WantsVocabulary() {
		fmt.Fprintf(out, "contexts      %d (%d truncated)\n", len(res.Contexts.Records), res.Contexts.Truncated)
	}
	if s.cfg.WantsStyle() {
		fmt.Fprintf(out, "chunks        %d (%d truncated, %d weighted)\n", len(res.Chunks.Records), res.Chunks.Truncated, res.Weighted)
	}
	for _, path := range res.Datasets {
		fmt.Fprintln(out, mutedStyle.Render("  wrote "+path))
	}
	return nil
}
