package wizards

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apolo-devops/apolo/pkg/apolo"
)

func testSession(findings apolo.Findings) *apolo.ReleaseSession {
	files := []apolo.CandidateFile{
		apolo.NewCandidateFile("/src/A/01.sql", "A/01.sql"),
	}
	return apolo.NewReleaseSession("/src", files, findings)
}

func sendKey(t *testing.T, w ReleaseWizard, msg tea.KeyMsg) ReleaseWizard {
	t.Helper()
	model, _ := w.Update(msg)
	next, ok := model.(ReleaseWizard)
	if !ok {
		t.Fatalf("Update returned %T, want ReleaseWizard", model)
	}
	return next
}

func typeText(t *testing.T, w ReleaseWizard, text string) ReleaseWizard {
	t.Helper()
	for _, r := range text {
		w = sendKey(t, w, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return w
}

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func TestWizardHappyPath(t *testing.T) {
	w := NewReleaseWizard(testSession(nil), []string{"dbaper", "hr"})

	if !strings.Contains(w.View(), "Step 1/3") {
		t.Fatalf("expected summary step first:\n%s", w.View())
	}

	// Summary -> configure
	w = sendKey(t, w, enterKey)
	if !strings.Contains(w.View(), "Step 2/3") {
		t.Fatalf("expected configure step:\n%s", w.View())
	}

	// Select the second schema and type a branch name
	w = sendKey(t, w, tea.KeyMsg{Type: tea.KeyDown})
	w = typeText(t, w, "f_core_101")
	w = sendKey(t, w, enterKey)
	if !strings.Contains(w.View(), "Step 3/3") {
		t.Fatalf("expected confirm step:\n%s", w.View())
	}

	// Toggle push on and run
	w = sendKey(t, w, tea.KeyMsg{Type: tea.KeyUp})
	w = sendKey(t, w, enterKey)

	result := w.Result()
	if result.Cancelled {
		t.Fatal("happy path must not cancel")
	}
	if result.SchemaName != "hr" {
		t.Errorf("SchemaName = %q, want hr", result.SchemaName)
	}
	if result.BranchName != "F_CORE_101" {
		t.Errorf("BranchName = %q, want F_CORE_101 (upper-cased)", result.BranchName)
	}
	if !result.Push {
		t.Error("Push = false, want true after toggle")
	}
}

func TestWizardRejectsInvalidBranch(t *testing.T) {
	w := NewReleaseWizard(testSession(nil), []string{"hr"})

	w = sendKey(t, w, enterKey)
	w = typeText(t, w, "feature/bad")
	w = sendKey(t, w, enterKey)

	if !strings.Contains(w.View(), "Step 2/3") {
		t.Error("invalid branch must stay on the configure step")
	}
	if !strings.Contains(w.View(), "must match") {
		t.Errorf("expected branch validation message:\n%s", w.View())
	}
}

func TestWizardBlockedSessionCancels(t *testing.T) {
	session := testSession(apolo.Findings{
		{Path: "A/bad.prc", Severity: apolo.SeverityBlocking, Message: "missing terminating '/'"},
	})
	w := NewReleaseWizard(session, []string{"hr"})

	if !strings.Contains(w.View(), "blocking finding") {
		t.Errorf("summary must surface blocking findings:\n%s", w.View())
	}

	w = sendKey(t, w, enterKey)
	if !w.Result().Cancelled {
		t.Error("blocking findings must cancel the wizard")
	}
}

func TestWizardCtrlCCancelsAnywhere(t *testing.T) {
	w := NewReleaseWizard(testSession(nil), []string{"hr"})
	w = sendKey(t, w, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !w.Result().Cancelled {
		t.Error("ctrl+c must cancel")
	}
}

func TestWizardDefaultSchemaPreselected(t *testing.T) {
	w := NewReleaseWizard(testSession(nil), []string{"fin", "dbaper", "hr"})

	view := w.View()
	_ = view
	w = sendKey(t, w, enterKey)
	w = typeText(t, w, "F_X")
	w = sendKey(t, w, enterKey)

	if got := w.Result().SchemaName; got != "dbaper" {
		t.Errorf("SchemaName = %q, want dbaper preselected", got)
	}
}
