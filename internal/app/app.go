// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/engine"
	"github.com/abhisek/algoselect/internal/logging"
	"github.com/abhisek/algoselect/internal/router"
	"github.com/abhisek/algoselect/internal/screen"
	"github.com/abhisek/algoselect/internal/screens/home"
	"github.com/abhisek/algoselect/internal/screens/result"
	"github.com/abhisek/algoselect/internal/screens/welcome"
	"github.com/abhisek/algoselect/internal/screens/wizard"
	"github.com/abhisek/algoselect/internal/session"
	"github.com/abhisek/algoselect/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Engine      engine.Options
	SkipWelcome bool
}

// Result is what the TUI leaves behind once it exits.
type Result struct {
	// Interrupted is set when the user quit in the middle of a questionnaire.
	Interrupted bool

	// Summary is the last finished session, if any.
	Summary *session.Summary
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	opts   Options
	router *router.Router
	width  int
	height int

	interrupted bool
	summary     *session.Summary
}

// newAppModel creates an AppModel starting on the welcome or home screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	m := AppModel{ctx: ctx, opts: opts}
	var first screen.Screen = m.newHome()
	if !opts.SkipWelcome {
		first = welcome.New(m.newHome)
	}
	m.router = router.New(first)
	return m
}

func (m AppModel) newHome() screen.Screen {
	return home.New(m.newWizard)
}

func (m AppModel) newWizard() screen.Screen {
	return wizard.New(session.New(m.ctx, m.opts.Engine))
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if w, ok := m.router.Active().(*wizard.WizardScreen); ok {
				w.Session().Interrupt()
				m.interrupted = true
			}
			return m, tea.Quit
		}

	case wizard.InterruptedMsg:
		logging.Info().Str("session_id", msg.SessionID).Msg("questionnaire abandoned")
		m.interrupted = true
		return m, tea.Quit

	case wizard.FinishedMsg:
		sum := msg.Summary
		m.summary = &sum
		logging.Info().
			Str("session_id", sum.SessionID).
			Str("recommendation", sum.Recommendation.String()).
			Msg("questionnaire finished")
		return m, m.router.Replace(result.New(sum, m.newHome))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Result reports how the program ended.
func (m AppModel) Result() Result {
	return Result{Interrupted: m.interrupted, Summary: m.summary}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) (Result, error) {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	final, err := p.Run()
	if interrupted(err) {
		logging.Info().Err(err).Msg("program interrupted")
		return Result{Interrupted: true}, nil
	}
	if err != nil {
		return Result{}, err
	}
	if m, ok := final.(AppModel); ok {
		return m.Result(), nil
	}
	return Result{}, nil
}

// interrupted reports whether Run stopped because of SIGINT or a cancelled
// context rather than a failure.
func interrupted(err error) bool {
	return errors.Is(err, tea.ErrInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
