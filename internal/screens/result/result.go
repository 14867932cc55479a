// Package result shows the outcome of a finished questionnaire.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/report"
	"github.com/abhisek/algoselect/internal/router"
	"github.com/abhisek/algoselect/internal/screen"
	"github.com/abhisek/algoselect/internal/session"
	"github.com/abhisek/algoselect/internal/ui/components"
	"github.com/abhisek/algoselect/internal/ui/layout"
	"github.com/abhisek/algoselect/internal/ui/theme"
)

const cardWidth = 72

// ResultScreen displays the recommendation.
type ResultScreen struct {
	summary     session.Summary
	homeFactory func() screen.Screen
	buttons     components.ButtonRow
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. "New session" resets the router to the screen
// built by homeFactory.
func New(summary session.Summary, homeFactory func() screen.Screen) *ResultScreen {
	r := &ResultScreen{summary: summary, homeFactory: homeFactory}
	r.buttons = components.NewButtonRow(
		components.Button{Label: "New session", Key: "n", OnPress: func() tea.Cmd {
			home := r.homeFactory()
			return func() tea.Msg { return router.ResetScreenMsg{Screen: home} }
		}},
		components.Button{Label: "Quit", Key: "q", OnPress: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Recommendation"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Switch"},
		{Key: "Enter", Description: "Select"},
		{Key: "n", Description: "New session"},
		{Key: "q", Description: "Quit"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.buttons, cmd = r.buttons.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	w := min(width-4, cardWidth)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Here is our suggestion"))
	b.WriteString("\n")

	secs := int(r.summary.Duration.Seconds())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d questions in %d:%02d", len(r.summary.Steps), secs/60, secs%60)))
	b.WriteString("\n\n")

	body := report.Render(report.FromSummary(r.summary), report.ThemeStyles())
	card := theme.Card.Width(w).Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.buttons.View()))

	return b.String()
}
