package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/algoselect/internal/engine"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [paradigm]",
	Short: "Print the decision tables in evaluation order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables := engine.Tables()
		if len(args) == 1 {
			t, err := engine.TableFor(engine.Paradigm(args[0]))
			if err != nil {
				return err
			}
			tables = []engine.Table{t}
		}

		out := cmd.OutOrStdout()
		for i, t := range tables {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (first match wins)\n", t.Paradigm.DisplayName())
			for j, rule := range t.Rules {
				fmt.Fprintf(out, "%3d. %-75s -> %s\n", j+1, rule.Name, rule.Algorithm)
			}
			fmt.Fprintf(out, "     %-75s -> talk to an ML expert\n", "otherwise")
		}
		return nil
	},
}
