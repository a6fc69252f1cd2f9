package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-blackbody/text/wordfreq"
	"github.com/spf13/cobra"
)

func wordsCmd(a *app) *cobra.Command {
	var (
		delimiter string
		sentinel  string
		top       int
		format    string
	)

	c := &cobra.Command{
		Use:   "words FILE",
		Short: "Count lowercase words up to the sentinel line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := wordfreq.CountFile(args[0], wordfreq.WithDelimiter(delimiter), wordfreq.WithSentinel(sentinel))
			if err != nil {
				return err
			}
			a.log.Info().Str("file", args[0]).Int("distinct", len(counts)).Int("total", counts.Total()).Msg("words counted")

			sorted := counts.Sorted()
			if top > 0 && top < len(sorted) {
				sorted = sorted[:top]
			}

			return writeOutput(cmd.OutOrStdout(), format, sorted, func(tw *tabwriter.Writer) error {
				if err := writeRows(tw, []any{"Word", "Count"}); err != nil {
					return err
				}
				for _, wc := range sorted {
					if err := writeRows(tw, []any{wc.Word, fmt.Sprint(wc.Count)}); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	c.Flags().StringVar(&delimiter, "delimiter", wordfreq.DefaultDelimiter, "field separator")
	c.Flags().StringVar(&sentinel, "sentinel", wordfreq.DefaultSentinel, "word that ends the input when it starts a line")
	c.Flags().IntVar(&top, "top", 0, "show only the N most frequent words (0 for all)")
	c.Flags().StringVar(&format, "format", formatTable, "output format: table|json|yaml")
	return c
}
