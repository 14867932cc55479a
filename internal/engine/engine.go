// Package engine decides whether machine learning applies to a problem and,
// when it does, which paradigm and algorithm to start with.
//
// The engine is pure. It reads immutable answer sets and returns values;
// dead ends are reported as NeedsDiscussion, never as errors.
package engine

import (
	"fmt"

	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// Tables returns the decision tables in paradigm order.
func Tables() []Table {
	return []Table{SupervisedTable, UnsupervisedTable, ReinforcementTable}
}

// TableFor returns the decision table for p.
func TableFor(p Paradigm) (Table, error) {
	for _, t := range Tables() {
		if t.Paradigm == p {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("unknown paradigm %q", p)
}

// Select runs the selector for p. answers holds the generic answers merged
// with the paradigm-specific ones.
func Select(p Paradigm, f DerivedFeatures, answers q.AnswerSet) Recommendation {
	t, err := TableFor(p)
	if err != nil {
		return NeedsDiscussion(p)
	}
	return t.Select(Input{Features: f, Answers: answers})
}

// Decide runs the full pipeline over a complete answer set: gating, feature
// derivation and the paradigm selector. It returns *IncompleteError when the
// gating tree needs an answer that is missing.
func Decide(answers q.AnswerSet, opts Options) (Recommendation, error) {
	gate, err := DecideGate(answers)
	if err != nil {
		return Recommendation{}, err
	}
	if !gate.MLNeeded {
		return NoMLNeeded(gate.Assumed...), nil
	}
	f := DeriveFeatures(answers, opts)
	return Select(gate.Paradigm, f, answers).WithAssumed(gate.Assumed...), nil
}
