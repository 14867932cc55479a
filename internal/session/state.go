package session

import (
	"errors"
	"time"

	"github.com/abhisek/algoselect/internal/engine"
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// Phase represents the current stage of the questionnaire.
type Phase int

const (
	PhaseGating   Phase = iota // Walking the gating tree
	PhaseGeneric               // Asking generic data and metric questions
	PhaseParadigm              // Asking paradigm-specific questions
	PhaseDone                  // Recommendation available
)

func (p Phase) String() string {
	switch p {
	case PhaseGating:
		return "gating"
	case PhaseGeneric:
		return "generic"
	case PhaseParadigm:
		return "paradigm"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

var (
	// ErrInterrupted is returned once a session has been interrupted.
	ErrInterrupted = errors.New("session interrupted")

	// ErrFinished is returned when answering after the recommendation.
	ErrFinished = errors.New("session already finished")

	// ErrNotReady is returned when asking for a recommendation too early.
	ErrNotReady = errors.New("recommendation not ready")
)

// NotCurrentError reports an answer to a question other than the one being
// asked.
type NotCurrentError struct {
	Got  string
	Want string
}

func (e *NotCurrentError) Error() string {
	return "answered " + e.Got + " but the current question is " + e.Want
}

// Step is one answered question, in the order it was asked.
type Step struct {
	QuestionID string
	Stage      q.Stage
	Raw        string
	Value      string
	At         time.Time
}

// Progress summarizes how far a session has come.
type Progress struct {
	Phase    Phase
	Stage    q.Stage
	Answered int

	// Remaining is the number of questions still expected in the current
	// phase given the answers so far. Later phases are not counted.
	Remaining int
}

// Fraction returns answered/(answered+remaining) for progress bars.
func (p Progress) Fraction() float64 {
	if p.Phase == PhaseDone {
		return 1
	}
	total := p.Answered + p.Remaining
	if total == 0 {
		return 0
	}
	return float64(p.Answered) / float64(total)
}

// Summary holds the data displayed once a session finishes.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	Gate           engine.GateResult
	Features       *engine.DerivedFeatures
	Recommendation engine.Recommendation
	Steps          []Step
}
