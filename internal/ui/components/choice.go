package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algoselect/internal/ui/theme"
)

// Choice is one selectable answer. Value is what gets submitted.
type Choice struct {
	Label string
	Value string
}

// ChoiceList is a single-select list of answers. Digit keys jump to and
// submit the matching entry.
type ChoiceList struct {
	Choices   []Choice
	Selected  int
	Submitted bool
}

// NewChoiceList creates a list with the entry whose Value equals preselect
// highlighted, or the first entry when none matches.
func NewChoiceList(choices []Choice, preselect string) ChoiceList {
	c := ChoiceList{Choices: choices}
	for i, ch := range choices {
		if ch.Value == preselect {
			c.Selected = i
			break
		}
	}
	return c
}

// Update handles keyboard navigation and submission.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(c.Choices) {
				c.Selected = i
				c.Submitted = true
			}
		}
	}
	return c, nil
}

// Value returns the value of the highlighted entry.
func (c ChoiceList) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Selected].Value
}

// View renders the list.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, ch := range c.Choices {
		prefix := "  "
		if i == c.Selected {
			prefix = theme.FocusMarker
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, ch.Label)
		if i == c.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
