package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/ui/theme"
)

// Button is one action in a ButtonRow. Key, when set, presses the button
// whichever button has focus.
type Button struct {
	Label   string
	Key     string
	OnPress func() tea.Cmd
}

// ButtonRow lays buttons out side by side with exactly one focused.
type ButtonRow struct {
	Buttons []Button
	Focused int
}

// NewButtonRow creates a row with the first button focused.
func NewButtonRow(buttons ...Button) ButtonRow {
	return ButtonRow{Buttons: buttons}
}

// Update cycles focus with left/right and tab, and presses the focused
// button on enter.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Buttons) == 0 {
		return r, nil
	}
	switch key := kmsg.String(); key {
	case "left", "h", "shift+tab":
		r.Focused = r.wrap(r.Focused - 1)
	case "right", "l", "tab":
		r.Focused = r.wrap(r.Focused + 1)
	case "enter":
		return r, r.press(r.Focused)
	default:
		for i, b := range r.Buttons {
			if b.Key != "" && b.Key == key {
				r.Focused = i
				return r, r.press(i)
			}
		}
	}
	return r, nil
}

func (r ButtonRow) wrap(i int) int {
	n := len(r.Buttons)
	return (i%n + n) % n
}

func (r ButtonRow) press(i int) tea.Cmd {
	if f := r.Buttons[i].OnPress; f != nil {
		return f()
	}
	return nil
}

// View renders the row. Buttons of different heights are centered on each
// other.
func (r ButtonRow) View() string {
	parts := make([]string, 0, 2*len(r.Buttons))
	for i, b := range r.Buttons {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", 3))
		}
		label := b.Label
		if b.Key != "" {
			label += " [" + b.Key + "]"
		}
		parts = append(parts, theme.ButtonLabel(label, i == r.Focused))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
