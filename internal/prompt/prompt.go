// Package prompt runs the questionnaire as a plain line-oriented dialogue.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/algoselect/internal/engine"
	"github.com/abhisek/algoselect/internal/logging"
	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/abhisek/algoselect/internal/report"
	"github.com/abhisek/algoselect/internal/session"
)

// Options configures a line-mode run.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Styles report.Styles
	Engine engine.Options
}

// Run asks every question on opts.Out, reading answers line by line from
// opts.In. It returns session.ErrInterrupted when ctx is cancelled or the
// input ends before a recommendation is reached.
func Run(ctx context.Context, opts Options) (session.Summary, error) {
	s := session.New(ctx, opts.Engine)
	log := logging.Ctx(ctx)
	lines := readLines(ctx, opts.In)
	st := opts.Styles
	out := opts.Out

	stage := q.Stage(-1)
	gateShown := false
	for {
		question, ok := s.Next()
		if !ok {
			break
		}
		if gate, ok := s.Gate(); ok && !gateShown {
			gateShown = true
			fmt.Fprintf(out, "\n%s\n", st.Positive.Render(gate.Message))
		}
		if question.Stage != stage {
			stage = question.Stage
			fmt.Fprintf(out, "\n%s\n", st.Heading.Render("── "+q.StageDisplayName(stage)+" ──"))
		}

		for {
			fmt.Fprint(out, render(question, st))

			var raw string
			select {
			case <-ctx.Done():
				s.Interrupt()
				fmt.Fprintln(out)
				return session.Summary{}, session.ErrInterrupted
			case line, ok := <-lines:
				if !ok {
					s.Interrupt()
					fmt.Fprintln(out)
					return session.Summary{}, session.ErrInterrupted
				}
				raw = line
			}

			err := s.Answer(question.ID, raw)
			var verr *q.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintln(out, st.Negative.Render("✗ "+verr.Err.Error()))
				continue
			}
			if err != nil {
				return session.Summary{}, err
			}
			break
		}
	}

	sum, err := s.Summary()
	if err != nil {
		return session.Summary{}, err
	}
	if !sum.Gate.MLNeeded && !gateShown {
		fmt.Fprintf(out, "\n%s\n", st.Negative.Render(sum.Gate.Message))
	}
	log.Debug().Int("answers", len(sum.Steps)).Msg("line mode finished")
	return sum, nil
}

// render formats a question and its input prompt.
func render(question q.Question, st report.Styles) string {
	var b strings.Builder
	b.WriteString(question.Prompt)
	b.WriteString("\n")
	for i, opt := range question.Options {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
	}
	if question.Help != "" {
		b.WriteString(st.Dim.Render("  (" + question.Help + ")"))
		b.WriteString("\n")
	}
	if question.Default != "" {
		fmt.Fprintf(&b, "[%s] > ", question.OptionLabel(question.Default))
	} else {
		b.WriteString("> ")
	}
	return b.String()
}

// readLines delivers input lines until EOF or ctx is done. The reader
// goroutine may stay blocked on a terminal read after cancellation; it
// exits with the process.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
