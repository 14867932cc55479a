package wizard

import "github.com/abhisek/algoselect/internal/session"

// FinishedMsg is sent once the session has produced a recommendation.
type FinishedMsg struct {
	Summary session.Summary
}

// InterruptedMsg is sent when the user abandons the questionnaire.
type InterruptedMsg struct {
	SessionID string
}
