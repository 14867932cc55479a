package questionnaire

import (
	"fmt"
	"strings"
)

// validateQuestions performs structural checks on a question set.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(qs []Question) error {
	var errs []string

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("question %q has no prompt", q.ID))
		}
		if q.Kind == KindChoice && len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("choice question %q needs at least two options", q.ID))
		}
		if q.Kind == KindChoice && len(q.Options) > 9 {
			errs = append(errs, fmt.Sprintf("choice question %q has more than nine options", q.ID))
		}
		if q.Kind == KindSize && q.Units == "" {
			errs = append(errs, fmt.Sprintf("size question %q declares no units", q.ID))
		}
		if q.Stage == StageGating && q.When != nil {
			errs = append(errs, fmt.Sprintf("gating question %q must not have a When predicate", q.ID))
		}
		if q.Default != "" {
			if _, err := Normalize(q, q.Default); err != nil {
				errs = append(errs, fmt.Sprintf("question %q has invalid default: %v", q.ID, err))
			}
		}
	}

	stages := make(map[Stage]bool)
	for _, q := range qs {
		stages[q.Stage] = true
	}
	for _, s := range AllStages() {
		if !stages[s] {
			errs = append(errs, fmt.Sprintf("stage %s has no questions", s))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
