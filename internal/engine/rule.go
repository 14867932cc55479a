package engine

import (
	"slices"

	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// Input is what a selector reads: the derived features plus the generic and
// paradigm-specific answers merged into one set.
type Input struct {
	Features DerivedFeatures
	Answers  q.AnswerSet

	// assumed collects questions answered Unknown as rows consult them.
	assumed *[]string
}

// Rule is one row of a decision table. Rows are evaluated top to bottom and
// the first match wins, so a row's match may rely on earlier rows failing.
type Rule struct {
	// Name is the condition path, e.g. "size=high, interpretability, speed".
	Name      string
	Algorithm Algorithm

	match func(Input) bool
}

// Table is an ordered decision table for one paradigm.
type Table struct {
	Paradigm Paradigm
	Rules    []Rule
}

// Select evaluates the table and returns the first matching row's
// recommendation, or NeedsDiscussion when no row matches. Yes/no questions
// answered Unknown that any evaluated row consulted are reported in Assumed,
// since rows that failed on them shaped the path to the match.
func (t Table) Select(in Input) Recommendation {
	var assumed []string
	in.assumed = &assumed
	for _, r := range t.Rules {
		if !r.match(in) {
			continue
		}
		return Recommendation{
			Kind:      KindAlgorithm,
			Paradigm:  t.Paradigm,
			Algorithm: r.Algorithm,
			Rule:      r.Name,
			Assumed:   assumed,
		}
	}
	rec := NeedsDiscussion(t.Paradigm)
	rec.Assumed = assumed
	return rec
}

// yes reports whether id was answered yes. Unknown answers take the no edge
// and are recorded.
func (in Input) yes(id string) bool {
	if in.assumed != nil && in.Answers.Has(id) && in.Answers.Answer(id) == q.Unknown &&
		!slices.Contains(*in.assumed, id) {
		*in.assumed = append(*in.assumed, id)
	}
	return in.Answers.Yes(id)
}

func (in Input) is(id, value string) bool {
	return in.Answers.Is(id, value)
}

func (in Input) high() bool {
	return in.Features.DataSize == SizeHigh
}
