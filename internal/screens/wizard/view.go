package wizard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/abhisek/algoselect/internal/ui/components"
	"github.com/abhisek/algoselect/internal/ui/theme"
)

const maxBodyWidth = 76

func (w *WizardScreen) View(width, height int) string {
	if w.confirmQuit {
		return renderQuitConfirm(width)
	}
	if w.finished {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Working out a recommendation...")
	}

	bodyWidth := min(width-4, maxBodyWidth)
	var b strings.Builder

	// Stage line and progress.
	p := w.sess.Progress()
	stage := theme.Heading.Render(q.StageDisplayName(w.question.Stage))
	count := theme.Hint.Render(fmt.Sprintf("Q%d", p.Answered+1))
	pad := bodyWidth - lipgloss.Width(stage) - lipgloss.Width(count)
	b.WriteString(stage)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(count)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", p.Fraction(), true, bodyWidth).View())
	b.WriteString("\n\n")

	if gate, ok := w.sess.Gate(); ok {
		style := theme.Positive
		if !gate.MLNeeded {
			style = theme.Negative
		}
		b.WriteString(style.Render("✓ " + gate.Message))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(w.question.Prompt)
	b.WriteString(prompt)
	b.WriteString("\n")
	if w.question.Help != "" {
		b.WriteString(lipgloss.NewStyle().Width(bodyWidth).Render(theme.Hint.Render(w.question.Help)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if w.textMode {
		b.WriteString(w.input.View())
	} else {
		b.WriteString(w.choices.View())
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Quit the questionnaire?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("No suggestion will be provided."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}
