package questionnaire

// Stage groups questions that are collected together.
type Stage int

const (
	StageGating Stage = iota
	StageGeneric
	StageSupervised
	StageUnsupervised
	StageReinforcement
)

// AllStages returns the stages in the order they can be visited.
func AllStages() []Stage {
	return []Stage{
		StageGating,
		StageGeneric,
		StageSupervised,
		StageUnsupervised,
		StageReinforcement,
	}
}

func (s Stage) String() string {
	switch s {
	case StageGating:
		return "gating"
	case StageGeneric:
		return "generic"
	case StageSupervised:
		return "supervised"
	case StageUnsupervised:
		return "unsupervised"
	case StageReinforcement:
		return "reinforcement"
	default:
		return "unknown"
	}
}

// StageDisplayName returns the heading shown while a stage is collected.
func StageDisplayName(s Stage) string {
	switch s {
	case StageGating:
		return "Do you need ML?"
	case StageGeneric:
		return "Goal, Metrics and Data"
	case StageSupervised:
		return "Supervised Learning"
	case StageUnsupervised:
		return "Unsupervised Learning"
	case StageReinforcement:
		return "Reinforcement Learning"
	default:
		return s.String()
	}
}

// Kind is the answer grammar of a question.
type Kind int

const (
	KindYesNo  Kind = iota // Y/N/U
	KindChoice             // 1-based option index or option label
	KindRating             // importance 1-5
	KindSize               // <int><unit>, unit from Question.Units
	KindCount              // non-negative integer
)

func (k Kind) String() string {
	switch k {
	case KindYesNo:
		return "Y/N/U"
	case KindChoice:
		return "choice"
	case KindRating:
		return "1-5"
	case KindSize:
		return "size"
	case KindCount:
		return "count"
	default:
		return "unknown"
	}
}

// Question is a single questionnaire step.
type Question struct {
	ID      string
	Stage   Stage
	Kind    Kind
	Prompt  string
	Help    string
	Default string

	// Options lists choice labels; answers store the 1-based index.
	Options []string

	// Units lists the accepted unit letters for KindSize.
	Units string

	// When gates the question on earlier answers of the same session.
	// Nil means always asked. Gating questions are sequenced by the engine.
	When func(AnswerSet) bool
}

// Applies reports whether q should be asked given the answers so far.
func (q Question) Applies(answers AnswerSet) bool {
	return q.When == nil || q.When(answers)
}

// OptionLabel returns the label for a stored choice value, or the value
// itself when it is not a valid index.
func (q Question) OptionLabel(value string) string {
	for i, opt := range q.Options {
		if value == choiceValue(i) {
			return opt
		}
	}
	return value
}

func choiceValue(i int) string {
	return string(rune('1' + i))
}
