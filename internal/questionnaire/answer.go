package questionnaire

import "strings"

// Answer is a parsed yes/no/unknown response.
type Answer int

const (
	No Answer = iota
	Yes
	Unknown
)

// ParseAnswer maps a raw response onto an Answer. Matching is
// case-insensitive; anything that is not a yes or unknown form is No.
func ParseAnswer(raw string) Answer {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return Yes
	case "u", "unknown":
		return Unknown
	default:
		return No
	}
}

func (a Answer) String() string {
	switch a {
	case Yes:
		return "Y"
	case Unknown:
		return "U"
	default:
		return "N"
	}
}
