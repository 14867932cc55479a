// Package wizard is the interactive questionnaire screen.
package wizard

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algoselect/internal/logging"
	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/abhisek/algoselect/internal/screen"
	"github.com/abhisek/algoselect/internal/session"
	"github.com/abhisek/algoselect/internal/ui/components"
	"github.com/abhisek/algoselect/internal/ui/layout"
)

const inputWidth = 24

var ratingLabels = []string{
	"1  least important",
	"2",
	"3",
	"4",
	"5  most important",
}

// WizardScreen asks one question at a time until the session finishes.
type WizardScreen struct {
	sess     *session.Session
	question q.Question

	textMode bool
	choices  components.ChoiceList
	input    components.TextInput

	confirmQuit bool
	finished    bool
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)
var _ screen.StatusProvider = (*WizardScreen)(nil)

// New creates a wizard over s, positioned on its current question.
func New(s *session.Session) *WizardScreen {
	w := &WizardScreen{sess: s}
	w.load()
	return w
}

// Session returns the session being driven.
func (w *WizardScreen) Session() *session.Session { return w.sess }

func (w *WizardScreen) Init() tea.Cmd {
	if w.textMode {
		return w.input.Init()
	}
	return nil
}

func (w *WizardScreen) Title() string {
	return "Questionnaire"
}

// Status names the stage being collected.
func (w *WizardScreen) Status() string {
	if w.sess.Done() {
		return "Done"
	}
	return q.StageDisplayName(w.question.Stage)
}

func (w *WizardScreen) KeyHints() []layout.KeyHint {
	if w.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if w.textMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "1-9", Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (w *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return w.handleKey(kmsg)
	}
	if w.textMode {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WizardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if w.finished {
		return w, nil
	}
	key := msg.String()

	if w.confirmQuit {
		switch key {
		case "y", "Y":
			w.confirmQuit = false
			w.finished = true
			w.sess.Interrupt()
			id := w.sess.ID()
			return w, func() tea.Msg { return InterruptedMsg{SessionID: id} }
		case "n", "N", "esc":
			w.confirmQuit = false
		}
		return w, nil
	}

	if key == "esc" {
		w.confirmQuit = true
		return w, nil
	}

	if w.textMode {
		if key == "enter" {
			return w.submit(w.input.Value())
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}

	w.choices, _ = w.choices.Update(msg)
	if w.choices.Submitted {
		return w.submit(w.choices.Value())
	}
	return w, nil
}

// submit records raw for the current question and moves on.
func (w *WizardScreen) submit(raw string) (screen.Screen, tea.Cmd) {
	err := w.sess.Answer(w.question.ID, raw)

	var verr *q.ValidationError
	switch {
	case errors.As(err, &verr):
		if w.textMode {
			w.input = w.input.SetError(verr.Err.Error())
		} else {
			w.choices.Submitted = false
		}
		return w, nil
	case err != nil:
		logging.Error().Err(err).Str("question", w.question.ID).Msg("answer failed")
		w.finished = true
		w.sess.Interrupt()
		id := w.sess.ID()
		return w, func() tea.Msg { return InterruptedMsg{SessionID: id} }
	}

	if w.sess.Done() {
		return w, w.finish()
	}
	w.load()
	return w, w.Init()
}

func (w *WizardScreen) finish() tea.Cmd {
	w.finished = true
	sum, err := w.sess.Summary()
	if err != nil {
		logging.Error().Err(err).Msg("summary unavailable")
		id := w.sess.ID()
		return func() tea.Msg { return InterruptedMsg{SessionID: id} }
	}
	return func() tea.Msg { return FinishedMsg{Summary: sum} }
}

// load prepares the widgets for the session's current question.
func (w *WizardScreen) load() {
	question, ok := w.sess.Next()
	if !ok {
		return
	}
	w.question = question
	w.textMode = false

	switch question.Kind {
	case q.KindYesNo:
		w.choices = components.NewChoiceList([]components.Choice{
			{Label: "Yes", Value: q.Yes.String()},
			{Label: "No", Value: q.No.String()},
			{Label: "Unknown", Value: q.Unknown.String()},
		}, question.Default)
	case q.KindChoice:
		choices := make([]components.Choice, len(question.Options))
		for i, opt := range question.Options {
			choices[i] = components.Choice{Label: opt, Value: fmt.Sprint(i + 1)}
		}
		w.choices = components.NewChoiceList(choices, question.Default)
	case q.KindRating:
		choices := make([]components.Choice, len(ratingLabels))
		for i, label := range ratingLabels {
			choices[i] = components.Choice{Label: label, Value: fmt.Sprint(i + 1)}
		}
		w.choices = components.NewChoiceList(choices, question.Default)
	default:
		w.textMode = true
		placeholder := question.Default
		if placeholder == "" {
			placeholder = question.Help
		}
		w.input = components.NewTextInput(placeholder, inputWidth)
	}
}
