// Package rules lists the decision tables behind the recommendations.
package rules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/engine"
	"github.com/abhisek/algoselect/internal/router"
	"github.com/abhisek/algoselect/internal/screen"
	"github.com/abhisek/algoselect/internal/ui/layout"
	"github.com/abhisek/algoselect/internal/ui/theme"
)

// RulesScreen is a scrollable view of every decision table.
type RulesScreen struct {
	lines  []string
	offset int
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)

// New creates a RulesScreen.
func New() *RulesScreen {
	return &RulesScreen{lines: renderTables(engine.Tables())}
}

func (r *RulesScreen) Init() tea.Cmd {
	return nil
}

func (r *RulesScreen) Title() string {
	return "Decision Rules"
}

func (r *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "up", "k":
		r.offset = max(r.offset-1, 0)
	case "down", "j":
		r.offset = min(r.offset+1, max(len(r.lines)-1, 0))
	case "esc", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *RulesScreen) View(width, height int) string {
	end := min(r.offset+max(height, 1), len(r.lines))
	visible := r.lines[r.offset:end]
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(strings.Join(visible, "\n"))
}

// renderTables flattens the tables into display lines. Rows are listed in
// evaluation order; the first matching row wins.
func renderTables(tables []engine.Table) []string {
	var lines []string
	for i, t := range tables {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, theme.Heading.Render(t.Paradigm.DisplayName()))
		for j, rule := range t.Rules {
			lines = append(lines, fmt.Sprintf("%3d. %s  %s",
				j+1,
				theme.Body.Render(rule.Name),
				lipgloss.NewStyle().Foreground(theme.Accent).Render("→ "+string(rule.Algorithm)),
			))
		}
		lines = append(lines, theme.Hint.Render("     otherwise: talk to an ML expert"))
	}
	return lines
}
