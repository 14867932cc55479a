package questionnaire

import (
	"maps"
	"slices"
	"strings"
)

// AnswerSet maps question ids to raw answers. It is a value type: With and
// Merge return new sets and never modify the receiver.
type AnswerSet struct {
	m map[string]string
}

// NewAnswerSet copies m into a new AnswerSet.
func NewAnswerSet(m map[string]string) AnswerSet {
	return AnswerSet{m: maps.Clone(m)}
}

// Get returns the raw answer for id, or "" when absent.
func (a AnswerSet) Get(id string) string {
	return a.m[id]
}

// Has reports whether id has been answered.
func (a AnswerSet) Has(id string) bool {
	_, ok := a.m[id]
	return ok
}

// Answer parses the answer for id as yes/no/unknown. Missing answers are No.
func (a AnswerSet) Answer(id string) Answer {
	return ParseAnswer(a.m[id])
}

// Yes reports whether id was answered yes.
func (a AnswerSet) Yes(id string) bool {
	return a.Answer(id) == Yes
}

// Is reports whether the answer for id equals want, ignoring case.
func (a AnswerSet) Is(id, want string) bool {
	return strings.EqualFold(strings.TrimSpace(a.m[id]), want)
}

// With returns a copy of the set with id set to value.
func (a AnswerSet) With(id, value string) AnswerSet {
	m := make(map[string]string, len(a.m)+1)
	maps.Copy(m, a.m)
	m[id] = value
	return AnswerSet{m: m}
}

// Merge returns the union of a and b. Entries in b win on conflict.
func (a AnswerSet) Merge(b AnswerSet) AnswerSet {
	m := make(map[string]string, len(a.m)+len(b.m))
	maps.Copy(m, a.m)
	maps.Copy(m, b.m)
	return AnswerSet{m: m}
}

// Len returns the number of answers.
func (a AnswerSet) Len() int {
	return len(a.m)
}

// IDs returns the answered question ids in sorted order.
func (a AnswerSet) IDs() []string {
	return slices.Sorted(maps.Keys(a.m))
}

// Map returns a copy of the underlying answers.
func (a AnswerSet) Map() map[string]string {
	return maps.Clone(a.m)
}
