package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/algoselect/internal/batch"
	"github.com/abhisek/algoselect/internal/logging"
	"github.com/abhisek/algoselect/internal/report"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Answer the questionnaire from a JSON document",
	Long: `Reads a JSON document of answers keyed by question id, for example

  {"answers": {"data_availability": "Y", "data_label": "N"}}

and prints the recommendation. Questions that are not answered take their
default. Run "algoselect questions" for the ids and answer formats.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "text" {
			return fmt.Errorf("unknown format %q (use json or text)", format)
		}

		var r io.Reader = cmd.InOrStdin()
		if input != "" && input != "-" {
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			r = f
		}

		req, err := batch.Decode(r)
		if err != nil {
			return err
		}
		resp, err := batch.Run(cmd.Context(), req, cfg.Engine.Options())
		if err != nil {
			return err
		}
		if len(resp.Ignored) > 0 {
			logging.Warn().Strs("ignored", resp.Ignored).Msg("answers for questions that were never asked")
		}

		out := cmd.OutOrStdout()
		if format == "json" {
			return batch.WriteJSON(out, resp)
		}
		fmt.Fprintln(out, report.Render(report.FromSummary(resp.Summary), styles(out)))
		if len(resp.Defaulted) > 0 {
			fmt.Fprintf(out, "\n%d unanswered questions took their default.\n", len(resp.Defaulted))
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringP("input", "i", "", "Read answers from this file instead of stdin")
	recommendCmd.Flags().StringP("format", "f", "json", "Output format: json or text")
}
