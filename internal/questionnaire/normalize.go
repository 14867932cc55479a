package questionnaire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/algoselect/internal/validation"
)

// ErrAnswerRequired is returned when an answer is blank and the question has
// no default.
var ErrAnswerRequired = errors.New("answer required")

// ValidationError reports a raw answer that does not fit its question's
// grammar.
type ValidationError struct {
	QuestionID string
	Value      string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer %q for %s: %v", e.Value, e.QuestionID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Normalize validates a raw answer against q and returns the value to store.
// A blank answer takes the question's default. Stored forms:
//
//	yes/no     Y, N or U
//	choice     1-based option index
//	rating     1..5
//	size       digits followed by an upper-case unit letter
//	count      digits
func Normalize(q Question, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		if q.Default == "" {
			return "", &ValidationError{QuestionID: q.ID, Value: raw, Err: ErrAnswerRequired}
		}
		v = q.Default
	}

	var (
		out string
		err error
	)
	switch q.Kind {
	case KindYesNo:
		out, err = normalizeYesNo(q.ID, v)
	case KindChoice:
		out, err = normalizeChoice(q, v)
	case KindRating:
		out, err = v, validation.Var(q.ID, v, "oneof=1 2 3 4 5")
	case KindSize:
		out, err = normalizeSize(q, v)
	case KindCount:
		out, err = normalizeCount(q.ID, v)
	default:
		err = fmt.Errorf("unsupported question kind %d", q.Kind)
	}
	if err != nil {
		return "", &ValidationError{QuestionID: q.ID, Value: raw, Err: err}
	}
	return out, nil
}

func normalizeYesNo(id, v string) (string, error) {
	lower := strings.ToLower(v)
	if err := validation.Var(id, lower, "oneof=y n u yes no unknown"); err != nil {
		return "", err
	}
	return ParseAnswer(lower).String(), nil
}

func normalizeChoice(q Question, v string) (string, error) {
	for i, opt := range q.Options {
		if v == choiceValue(i) || strings.EqualFold(v, opt) {
			return choiceValue(i), nil
		}
	}
	return "", fmt.Errorf("choose 1-%d or one of: %s", len(q.Options), strings.Join(q.Options, ", "))
}

func normalizeCount(id, v string) (string, error) {
	if err := validation.Var(id, v, "number"); err != nil {
		return "", err
	}
	if _, err := strconv.Atoi(v); err != nil {
		return "", fmt.Errorf("%s is too large", v)
	}
	return v, nil
}

func normalizeSize(q Question, v string) (string, error) {
	v = strings.ToUpper(strings.ReplaceAll(v, " ", ""))
	if len(v) < 2 {
		return "", fmt.Errorf("expected a number followed by one of the units %s", strings.Join(strings.Split(q.Units, ""), "/"))
	}
	num, unit := v[:len(v)-1], v[len(v)-1:]
	if err := validation.Var(q.ID, num, "number"); err != nil {
		return "", err
	}
	if !strings.Contains(q.Units, unit) {
		return "", fmt.Errorf("unknown unit %q, expected one of %s", unit, strings.Join(strings.Split(q.Units, ""), "/"))
	}
	return num + unit, nil
}
