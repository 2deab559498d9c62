package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexica/pkg/lexica/internalerr"
	"github.com/cognicore/lexica/pkg/lexica/store/sqlite"
)

func newInspectCmd(flags *rootFlags) *cobra.Command {
	var (
		runID string
		word  string
		top   int
		list  bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Query archived runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if cfg.DatabasePath == "" {
				return fmt.Errorf("%w: --db or database_path is required", internalerr.ErrInvalidConfig)
			}
			ctx := cmd.Context()
			st, err := sqlite.OpenSQLite(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()
			out := cmd.OutOrStdout()

			if list {
				runs, err := st.Runs(ctx, top)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					rows = append(rows, []string{
						r.ID,
						r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						r.Tokenizer,
						strconv.Itoa(r.Documents),
						strconv.Itoa(r.Candidates),
						strconv.Itoa(r.Contexts),
						strconv.Itoa(r.Chunks),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"run", "created", "tokenizer", "docs", "candidates", "contexts", "chunks"}, rows))
				return nil
			}

			if runID == "" {
				runs, err := st.Runs(ctx, 1)
				if err != nil {
					return err
				}
				if len(runs) == 0 {
					return fmt.Errorf("no runs archived: %w", internalerr.ErrNotFound)
				}
				runID = runs[0].ID
			}

			if word != "" {
				ns, err := st.Neighbors(ctx, runID, word, top)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(ns))
				for _, n := range ns {
					rows = append(rows, []string{n.Word, strconv.FormatInt(n.Count, 10), strconv.FormatFloat(n.NPMI, 'f', 3, 64)})
				}
				fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("run %s: collocates of %q", runID, word)))
				fmt.Fprintln(out, renderTable([]string{"word", "count", "npmi"}, rows))
				return nil
			}

			cands, err := st.TopCandidates(ctx, runID, top)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(cands))
			for _, c := range cands {
				rows = append(rows, []string{strconv.Itoa(c.Rank + 1), c.Word, strconv.Itoa(c.Count), c.POS, c.Lemma, c.Stem})
			}
			fmt.Fprintln(out, headerStyle.Render("run "+runID))
			fmt.Fprintln(out, renderTable([]string{"#", "word", "count", "pos", "lemma", "stem"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&runID, "run", "", "Run ID (default: latest)")
	cmd.Flags().StringVar(&word, "word", "", "Show collocates of this word")
	cmd.Flags().IntVarP(&top, "top", "n", 20, "Rows to show")
	cmd.Flags().BoolVar(&list, "list", false, "List archived runs")
	return cmd
}
