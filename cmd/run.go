package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/abhisek/algoselect/internal/app"
	"github.com/abhisek/algoselect/internal/config"
	"github.com/abhisek/algoselect/internal/logging"
	"github.com/abhisek/algoselect/internal/prompt"
	"github.com/abhisek/algoselect/internal/report"
	"github.com/abhisek/algoselect/internal/session"
)

var errFault = errors.New("no suggestion could be produced")

// Front-ends, swapped out in tests.
var (
	runPrompt = prompt.Run
	runTUI    = app.Run
)

// runApp runs the questionnaire in the configured front-end and prints the
// closing messages.
func runApp(cmd *cobra.Command) (err error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	out := cmd.OutOrStdout()

	defer func() {
		if r := recover(); r != nil {
			logging.Error().Interface("panic", r).Msg("questionnaire crashed")
			fmt.Fprintln(out, report.MessageFault)
			err = errFault
		}
		fmt.Fprintln(out, report.MessageThanks)
	}()

	var sum *session.Summary
	if cfg.UI.Mode == config.ModePlain {
		s, err := runPrompt(ctx, prompt.Options{
			In:     cmd.InOrStdin(),
			Out:    out,
			Styles: styles(out),
			Engine: cfg.Engine.Options(),
		})
		switch {
		case errors.Is(err, session.ErrInterrupted):
			fmt.Fprintln(out, report.MessageInterrupted)
			return nil
		case err != nil:
			return fault(out, err)
		}
		sum = &s
	} else {
		res, err := runTUI(ctx, app.Options{
			Engine:      cfg.Engine.Options(),
			SkipWelcome: cfg.UI.SkipWelcome,
		})
		if err != nil {
			return fault(out, err)
		}
		if res.Interrupted {
			fmt.Fprintln(out, report.MessageInterrupted)
			return nil
		}
		sum = res.Summary
	}

	if sum != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.Render(report.FromSummary(*sum), styles(out)))
		fmt.Fprintln(out)
	}
	return nil
}

func fault(out io.Writer, err error) error {
	logging.Err(err).Msg("questionnaire failed")
	fmt.Fprintln(out, report.MessageFault)
	return fmt.Errorf("%w: %w", errFault, err)
}

// styles picks themed output for color terminals and plain text otherwise.
func styles(out io.Writer) report.Styles {
	if cfg.UI.NoColor || colorprofile.Detect(out, os.Environ()) < colorprofile.ANSI {
		return report.PlainStyles()
	}
	return report.ThemeStyles()
}
