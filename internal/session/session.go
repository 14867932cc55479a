// Package session sequences the questionnaire: the gating tree first, then
// the generic questions, then the questions of the chosen paradigm.
package session

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/algoselect/internal/engine"
	"github.com/abhisek/algoselect/internal/logging"
	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// Session tracks one run of the questionnaire. It is not safe for concurrent
// use; a front-end owns it exclusively.
type Session struct {
	id   string
	opts engine.Options
	log  zerolog.Logger
	now  func() time.Time

	phase   Phase
	current *q.Question

	gating   q.AnswerSet
	generic  q.AnswerSet
	specific q.AnswerSet

	gate        *engine.GateResult
	features    *engine.DerivedFeatures
	derivations int
	rec         *engine.Recommendation

	steps       []Step
	startTime   time.Time
	endTime     time.Time
	interrupted bool
}

// New starts a session and positions it on the first question.
func New(ctx context.Context, opts engine.Options) *Session {
	id := logging.SessionIDFromContext(ctx)
	if id == "" {
		id = logging.NewSessionID()
		ctx = logging.ContextWithSessionID(ctx, id)
	}
	if opts.SizePolicy == "" {
		opts.SizePolicy = engine.SizePolicyHigh
	}

	s := &Session{
		id:        id,
		opts:      opts,
		log:       *logging.Ctx(ctx),
		now:       time.Now,
		gating:    q.NewAnswerSet(nil),
		generic:   q.NewAnswerSet(nil),
		specific:  q.NewAnswerSet(nil),
		startTime: time.Now(),
	}
	s.log.Debug().Str("size_policy", string(opts.SizePolicy)).Msg("session started")
	s.advance()
	return s
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Done reports whether a recommendation is available.
func (s *Session) Done() bool { return s.phase == PhaseDone }

// Interrupted reports whether Interrupt was called.
func (s *Session) Interrupted() bool { return s.interrupted }

// Next returns the question to ask, or false when the session is finished
// or interrupted.
func (s *Session) Next() (q.Question, bool) {
	if s.interrupted || s.current == nil {
		return q.Question{}, false
	}
	return *s.current, true
}

// Answer validates raw against the current question, records it and moves
// to the next question. A *questionnaire.ValidationError leaves the session
// on the same question so the caller can re-ask.
func (s *Session) Answer(id, raw string) error {
	if s.interrupted {
		return ErrInterrupted
	}
	if s.phase == PhaseDone {
		return ErrFinished
	}
	if s.current.ID != id {
		return &NotCurrentError{Got: id, Want: s.current.ID}
	}

	question := *s.current
	value, err := q.Normalize(question, raw)
	if err != nil {
		s.log.Debug().Err(err).Str("question", id).Msg("answer rejected")
		return err
	}

	switch question.Stage {
	case q.StageGating:
		s.gating = s.gating.With(id, value)
	case q.StageGeneric:
		s.generic = s.generic.With(id, value)
	default:
		s.specific = s.specific.With(id, value)
	}
	s.steps = append(s.steps, Step{
		QuestionID: id,
		Stage:      question.Stage,
		Raw:        raw,
		Value:      value,
		At:         s.now(),
	})
	s.log.Debug().Str("question", id).Str("value", value).Msg("answer recorded")

	s.advance()
	return nil
}

// Interrupt aborts the session. No recommendation is produced afterwards.
func (s *Session) Interrupt() {
	if s.interrupted || s.phase == PhaseDone {
		return
	}
	s.interrupted = true
	s.current = nil
	s.endTime = s.now()
	s.log.Info().Str("phase", s.phase.String()).Msg("session interrupted")
}

// Gate returns the gating result once the tree has reached a leaf.
func (s *Session) Gate() (engine.GateResult, bool) {
	if s.gate == nil {
		return engine.GateResult{}, false
	}
	return *s.gate, true
}

// Features returns the derived features once the generic stage is done.
func (s *Session) Features() (engine.DerivedFeatures, bool) {
	if s.features == nil {
		return engine.DerivedFeatures{}, false
	}
	return *s.features, true
}

// Answers returns every answer recorded so far.
func (s *Session) Answers() q.AnswerSet {
	return s.gating.Merge(s.generic).Merge(s.specific)
}

// Steps returns the answered questions in order.
func (s *Session) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Recommendation returns the outcome once the session is done.
func (s *Session) Recommendation() (engine.Recommendation, error) {
	if s.interrupted {
		return engine.Recommendation{}, ErrInterrupted
	}
	if s.rec == nil {
		return engine.Recommendation{}, ErrNotReady
	}
	return *s.rec, nil
}

// Summary returns the data for the result screen.
func (s *Session) Summary() (Summary, error) {
	rec, err := s.Recommendation()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		SessionID:      s.id,
		Duration:       s.endTime.Sub(s.startTime),
		Gate:           *s.gate,
		Recommendation: rec,
		Steps:          s.Steps(),
	}
	if s.features != nil {
		f := *s.features
		sum.Features = &f
	}
	return sum, nil
}

// Progress reports the current phase and how many questions remain in it.
func (s *Session) Progress() Progress {
	p := Progress{Phase: s.phase, Answered: len(s.steps)}
	if s.current != nil {
		p.Stage = s.current.Stage
	}
	switch s.phase {
	case PhaseGating:
		p.Remaining = 1
	case PhaseGeneric:
		p.Remaining = len(pending(q.StageGeneric, s.generic, s.generic))
	case PhaseParadigm:
		p.Remaining = len(pending(s.paradigmStage(), s.specific, s.generic.Merge(s.specific)))
	}
	return p
}

// advance moves to the next unanswered question, running the engine at each
// stage boundary.
func (s *Session) advance() {
	s.current = nil
	for {
		switch s.phase {
		case PhaseGating:
			step := engine.StepGate(s.gating)
			if !step.Done() {
				s.ask(step.Ask)
				return
			}
			s.gate = step.Result
			s.log.Info().
				Bool("ml_needed", s.gate.MLNeeded).
				Str("paradigm", string(s.gate.Paradigm)).
				Strs("assumed", s.gate.Assumed).
				Msg("gate decided")
			if !s.gate.MLNeeded {
				s.finish(engine.NoMLNeeded(s.gate.Assumed...))
				return
			}
			s.phase = PhaseGeneric

		case PhaseGeneric:
			if next := pending(q.StageGeneric, s.generic, s.generic); len(next) > 0 {
				s.current = &next[0]
				return
			}
			s.derive()
			s.phase = PhaseParadigm

		case PhaseParadigm:
			merged := s.generic.Merge(s.specific)
			if next := pending(s.paradigmStage(), s.specific, merged); len(next) > 0 {
				s.current = &next[0]
				return
			}
			rec := engine.Select(s.gate.Paradigm, *s.features, merged)
			s.finish(rec.WithAssumed(s.gate.Assumed...))
			return

		default:
			return
		}
	}
}

func (s *Session) ask(id string) {
	question := q.MustGet(id)
	s.current = &question
}

// derive computes the features. It runs once per session, at the end of the
// generic stage.
func (s *Session) derive() {
	if s.features != nil {
		return
	}
	f := engine.DeriveFeatures(s.generic, s.opts)
	s.features = &f
	s.derivations++
	s.log.Debug().
		Str("data_size", string(f.DataSize)).
		Str("ftod_ratio", string(f.FtoDRatio)).
		Bool("interpretability", f.Interpretability).
		Bool("speed", f.SpeedPriority).
		Bool("reproducibility", f.ReproducibilityPriority).
		Msg("features derived")
}

func (s *Session) finish(rec engine.Recommendation) {
	s.rec = &rec
	s.phase = PhaseDone
	s.current = nil
	s.endTime = s.now()
	s.log.Info().
		Str("kind", rec.Kind.String()).
		Str("algorithm", string(rec.Algorithm)).
		Str("rule", rec.Rule).
		Msg("recommendation ready")
}

func (s *Session) paradigmStage() q.Stage {
	if s.gate == nil {
		return q.StageSupervised
	}
	return StageFor(s.gate.Paradigm)
}

// StageFor maps a paradigm to its question stage.
func StageFor(p engine.Paradigm) q.Stage {
	switch p {
	case engine.Unsupervised:
		return q.StageUnsupervised
	case engine.Reinforcement:
		return q.StageReinforcement
	default:
		return q.StageSupervised
	}
}

// pending returns the questions of stage that are unanswered in answered and
// apply given scope.
func pending(stage q.Stage, answered, scope q.AnswerSet) []q.Question {
	var out []q.Question
	for _, question := range q.ByStage(stage) {
		if answered.Has(question.ID) || !question.Applies(scope) {
			continue
		}
		out = append(out, question)
	}
	return out
}
