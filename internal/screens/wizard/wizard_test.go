package wizard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/algoselect/internal/engine"
	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/abhisek/algoselect/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newWizard() *WizardScreen {
	return New(session.New(context.Background(), engine.DefaultOptions()))
}

func press(w *WizardScreen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = w.Update(msg)
	}
	return cmd
}

// toSupervised answers the gating questions so the supervised paradigm is
// chosen: data yes, labels yes, programmable no, knowledge yes.
func toSupervised(w *WizardScreen) {
	press(w, keyPress('1'), keyPress('1'), keyPress('2'), keyPress('1'))
}

// advanceTo accepts defaults until id is the current question.
func advanceTo(t *testing.T, w *WizardScreen, id string) {
	t.Helper()
	for range 50 {
		if w.question.ID == id {
			return
		}
		press(w, specialKey(tea.KeyEnter))
	}
	t.Fatalf("never reached %s", id)
}

func TestWizard_TitleAndStatus(t *testing.T) {
	w := newWizard()
	if w.Title() != "Questionnaire" {
		t.Errorf("Title = %q", w.Title())
	}
	if w.Status() != q.StageDisplayName(q.StageGating) {
		t.Errorf("Status = %q", w.Status())
	}
	if w.question.ID != q.IDDataAvailability {
		t.Errorf("first question = %s", w.question.ID)
	}
}

func TestWizard_NoMLNeeded(t *testing.T) {
	w := newWizard()

	// Defaults are Yes: data, labels, programmable.
	cmd := press(w, specialKey(tea.KeyEnter), specialKey(tea.KeyEnter), specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command once the session finishes")
	}
	msg, ok := cmd().(FinishedMsg)
	if !ok {
		t.Fatalf("expected FinishedMsg, got %T", cmd())
	}
	if msg.Summary.Recommendation.Kind != engine.KindNoMLNeeded {
		t.Errorf("Kind = %v, want no-ml-needed", msg.Summary.Recommendation.Kind)
	}
	if msg.Summary.Gate.Message != engine.MessageNoMLNeeded {
		t.Errorf("Message = %q", msg.Summary.Gate.Message)
	}
}

func TestWizard_DefaultsToRecommendation(t *testing.T) {
	w := newWizard()
	toSupervised(w)
	if w.Status() != q.StageDisplayName(q.StageGeneric) {
		t.Errorf("Status = %q, want generic stage", w.Status())
	}
	if !strings.Contains(w.View(100, 30), engine.MessageMLNeeded) {
		t.Error("gate message should be shown once ML is needed")
	}

	var cmd tea.Cmd
	for i := 0; i < 50 && !w.finished; i++ {
		cmd = press(w, specialKey(tea.KeyEnter))
	}
	if cmd == nil {
		t.Fatal("expected the session to finish")
	}
	msg, ok := cmd().(FinishedMsg)
	if !ok {
		t.Fatalf("expected FinishedMsg, got %T", cmd())
	}
	rec := msg.Summary.Recommendation
	if rec.Kind != engine.KindAlgorithm || rec.Paradigm != engine.Supervised {
		t.Errorf("Recommendation = %v", rec)
	}
}

func TestWizard_TextValidation(t *testing.T) {
	w := newWizard()
	toSupervised(w)
	advanceTo(t, w, q.IDDataSizeBytes)

	if !w.textMode {
		t.Fatal("size questions should use the text input")
	}
	press(w, keyPress('a'), keyPress('b'), keyPress('c'), specialKey(tea.KeyEnter))
	if w.question.ID != q.IDDataSizeBytes {
		t.Fatalf("invalid answer moved on to %s", w.question.ID)
	}
	if w.input.Error() == "" {
		t.Error("expected a validation message")
	}
	if !strings.Contains(w.View(100, 30), "✗") {
		t.Error("validation message should be rendered")
	}

	w.input.Model.SetValue("10G")
	press(w, specialKey(tea.KeyEnter))
	if w.question.ID != q.IDDataSizeSamples {
		t.Errorf("current = %s, want %s", w.question.ID, q.IDDataSizeSamples)
	}
	if got := w.sess.Answers().Get(q.IDDataSizeBytes); got != "10G" {
		t.Errorf("stored %q, want 10G", got)
	}
}

func TestWizard_DigitPicksChoice(t *testing.T) {
	w := newWizard()
	press(w, keyPress('3'))
	if got := w.sess.Answers().Get(q.IDDataAvailability); got != "U" {
		t.Errorf("stored %q, want U", got)
	}
	// Unknown follows the "no" edge.
	if w.question.ID != q.IDDataCreativity {
		t.Errorf("current = %s, want %s", w.question.ID, q.IDDataCreativity)
	}
}

func TestWizard_QuitConfirm(t *testing.T) {
	w := newWizard()

	press(w, specialKey(tea.KeyEscape))
	if !w.confirmQuit {
		t.Fatal("expected quit confirmation")
	}
	if !strings.Contains(w.View(80, 24), "Quit the questionnaire?") {
		t.Error("confirmation should be rendered")
	}
	press(w, keyPress('n'))
	if w.confirmQuit {
		t.Error("expected confirmation to be dismissed")
	}
	if w.sess.Interrupted() {
		t.Error("session should keep going")
	}
}

func TestWizard_QuitConfirm_Yes(t *testing.T) {
	w := newWizard()

	cmd := press(w, specialKey(tea.KeyEscape), keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	msg, ok := cmd().(InterruptedMsg)
	if !ok {
		t.Fatalf("expected InterruptedMsg, got %T", cmd())
	}
	if msg.SessionID != w.sess.ID() {
		t.Errorf("SessionID = %q", msg.SessionID)
	}
	if !w.sess.Interrupted() {
		t.Error("session should be interrupted")
	}
	if cmd := press(w, specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("no further input after quitting")
	}
}

func TestWizard_KeyHints(t *testing.T) {
	w := newWizard()
	if len(w.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
	press(w, specialKey(tea.KeyEscape))
	hints := w.KeyHints()
	if len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("confirm hints = %v", hints)
	}
}
