package engine

import (
	"fmt"

	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// Gate messages.
const (
	MessageMLNeeded   = "Looks like you need ML, let's continue"
	MessageNoMLNeeded = "ML is not required - please consider alternate approaches"
)

// GateResult is the outcome of the gating tree.
type GateResult struct {
	MLNeeded bool

	// Paradigm is only set when MLNeeded is true.
	Paradigm Paradigm
	Message  string

	// Assumed lists gating questions answered Unknown on the path taken.
	Assumed []string
}

// GateStep is one step of the gating tree: either the next question to ask
// or the final result.
type GateStep struct {
	Ask    string
	Result *GateResult
}

// Done reports whether the tree reached a leaf.
func (s GateStep) Done() bool {
	return s.Result != nil
}

// IncompleteError reports that the gating tree needs an answer that is not
// in the set.
type IncompleteError struct {
	Missing string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("gating answers incomplete: %s is required", e.Missing)
}

// StepGate walks the gating tree over the answers given so far. Questions
// are only consulted on the path that needs them, so the first unanswered
// question on that path is returned as Ask.
func StepGate(answers q.AnswerSet) GateStep {
	w := gateWalk{answers: answers}

	available, ok := w.yes(q.IDDataAvailability)
	if !ok {
		return w.ask(q.IDDataAvailability)
	}
	if !available {
		creative, ok := w.yes(q.IDDataCreativity)
		if !ok {
			return w.ask(q.IDDataCreativity)
		}
		if creative {
			return w.done(true, Reinforcement)
		}
		return w.done(false, "")
	}

	labelled, ok := w.yes(q.IDDataLabel)
	if !ok {
		return w.ask(q.IDDataLabel)
	}
	candidate := Unsupervised
	if labelled {
		candidate = Supervised
	}

	programmable, ok := w.yes(q.IDDataProgrammability)
	if !ok {
		return w.ask(q.IDDataProgrammability)
	}
	if programmable {
		return w.done(false, "")
	}

	knowable, ok := w.yes(q.IDDataKnowledge)
	if !ok {
		return w.ask(q.IDDataKnowledge)
	}
	if knowable {
		return w.done(true, candidate)
	}

	patterned, ok := w.yes(q.IDDataPattern)
	if !ok {
		return w.ask(q.IDDataPattern)
	}
	if patterned {
		return w.done(true, candidate)
	}
	return w.done(false, "")
}

// DecideGate runs the gating tree over a complete answer set.
func DecideGate(answers q.AnswerSet) (GateResult, error) {
	step := StepGate(answers)
	if !step.Done() {
		return GateResult{}, &IncompleteError{Missing: step.Ask}
	}
	return *step.Result, nil
}

type gateWalk struct {
	answers q.AnswerSet
	assumed []string
}

// yes returns whether id was answered yes and whether it was answered at all.
func (w *gateWalk) yes(id string) (bool, bool) {
	if !w.answers.Has(id) {
		return false, false
	}
	a := w.answers.Answer(id)
	if a == q.Unknown {
		w.assumed = append(w.assumed, id)
	}
	return a == q.Yes, true
}

func (w *gateWalk) ask(id string) GateStep {
	return GateStep{Ask: id}
}

func (w *gateWalk) done(mlNeeded bool, p Paradigm) GateStep {
	r := &GateResult{
		MLNeeded: mlNeeded,
		Message:  MessageNoMLNeeded,
		Assumed:  w.assumed,
	}
	if mlNeeded {
		r.Paradigm = p
		r.Message = MessageMLNeeded
	}
	return GateStep{Result: r}
}
