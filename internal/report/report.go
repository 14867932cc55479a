// Package report renders recommendations for people.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/engine"
	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/abhisek/algoselect/internal/session"
	"github.com/abhisek/algoselect/internal/ui/theme"
)

// Report is everything needed to explain an outcome.
type Report struct {
	Gate           engine.GateResult
	Features       *engine.DerivedFeatures
	Recommendation engine.Recommendation
}

// FromSummary builds a Report from a finished session.
func FromSummary(s session.Summary) Report {
	return Report{
		Gate:           s.Gate,
		Features:       s.Features,
		Recommendation: s.Recommendation,
	}
}

// Headline is the one-line outcome.
func (r Report) Headline() string {
	rec := r.Recommendation
	switch rec.Kind {
	case engine.KindNoMLNeeded:
		return engine.MessageNoMLNeeded
	case engine.KindNeedsDiscussion:
		return "No recommendation for " + rec.Paradigm.DisplayName()
	default:
		return fmt.Sprintf("Start with %s (%s)", rec.Algorithm, rec.Paradigm.DisplayName())
	}
}

// Styles used when rendering. The zero value renders plain text.
type Styles struct {
	Headline lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Heading  lipgloss.Style
	Dim      lipgloss.Style
	Caution  lipgloss.Style
}

// PlainStyles renders without any terminal escapes.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Headline: s, Positive: s, Negative: s, Heading: s, Dim: s, Caution: s}
}

// ThemeStyles renders with the application theme.
func ThemeStyles() Styles {
	return Styles{
		Headline: theme.Title.Align(lipgloss.Left),
		Positive: theme.Positive,
		Negative: theme.Negative,
		Heading:  theme.Heading,
		Dim:      theme.Hint,
		Caution:  theme.Caution,
	}
}

// Render returns the multi-line explanation of r.
func Render(r Report, st Styles) string {
	var b strings.Builder
	rec := r.Recommendation

	if r.Gate.MLNeeded {
		b.WriteString(st.Positive.Render(r.Gate.Message))
	} else {
		b.WriteString(st.Negative.Render(r.Gate.Message))
	}
	b.WriteString("\n\n")

	switch rec.Kind {
	case engine.KindNoMLNeeded:
		b.WriteString(st.Dim.Render("A program, a rule set or a domain expert can already solve this problem."))
		b.WriteString("\n")
	case engine.KindNeedsDiscussion:
		b.WriteString(st.Headline.Render(r.Headline()))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render(MessageNeedsDiscussion))
		b.WriteString("\n")
	default:
		b.WriteString(st.Headline.Render(r.Headline()))
		b.WriteString("\n")
		if note := Describe(rec.Algorithm); note != "" {
			b.WriteString(st.Dim.Render(note))
			b.WriteString("\n")
		}
		if rec.Rule != "" {
			b.WriteString("\n")
			b.WriteString(st.Heading.Render("Why"))
			b.WriteString("\n  ")
			b.WriteString(rec.Rule)
			b.WriteString("\n")
		}
	}

	if f := r.Features; f != nil {
		b.WriteString("\n")
		b.WriteString(st.Heading.Render("Derived from your answers"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  data size          %s\n", f.DataSize)
		fmt.Fprintf(&b, "  feature/data ratio %s\n", f.FtoDRatio)
		fmt.Fprintf(&b, "  interpretability   %s\n", yesNo(f.Interpretability))
		fmt.Fprintf(&b, "  speed              %s\n", yesNo(f.SpeedPriority))
		fmt.Fprintf(&b, "  reproducibility    %s\n", yesNo(f.ReproducibilityPriority))
	}

	if len(rec.Assumed) > 0 {
		b.WriteString("\n")
		b.WriteString(st.Caution.Render("Answered \"unknown\" and treated as \"no\":"))
		b.WriteString("\n")
		for _, id := range rec.Assumed {
			fmt.Fprintf(&b, "  - %s\n", AssumedLabel(id))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// AssumedLabel describes a question id for the assumed list.
func AssumedLabel(id string) string {
	question, err := q.Get(id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%s (%s)", question.Prompt, id)
}

func yesNo(b bool) string {
	if b {
		return "prioritized"
	}
	return "not prioritized"
}
