package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cognicore/lexica/pkg/lexica"
)

func newVocabCmd(flags *rootFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "vocab <dir>",
		Short: "Print the ranked candidate vocabulary without writing outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			defer s.Close()

			docs, err := s.load(args[0])
			if err != nil {
				return err
			}
			cfg := *s.cfg
			cfg.DatabasePath = ""
			p, err := lexica.New(cmd.Context(), cfg, lexica.WithLogger(s.logger))
			if err != nil {
				return err
			}
			defer p.Close()

			a, err := p.Analyze(docs)
			if err != nil {
				return err
			}

			var rows [][]string
			for i, c := range a.TopWords(top) {
				var collocates []string
				for _, col := range a.Graph.Neighbors(c.Word, 3) {
					collocates = append(collocates, fmt.Sprintf("%s(%d)", col.Other(c.Word), col.Count))
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					c.Word,
					strconv.Itoa(c.Count),
					c.POS.String(),
					c.Lemma,
					c.Stem,
					strings.Join(collocates, " "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "word", "count", "pos", "lemma", "stem", "collocates"}, rows))
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf(
				"%d candidates, %d filtered occurrences, ceiling %.1f, tokenizer %s",
				len(a.Ranked), a.Vocabulary.Total, a.Vocabulary.Ceiling, a.Corpus.Tokenizer)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 25, "Number of words to show")
	return cmd
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
