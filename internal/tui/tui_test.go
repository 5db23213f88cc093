package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/saltlab/internal/engine"
	"github.com/sadopc/saltlab/internal/store"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return engine.New(s, engine.SystemClock(), NewAlertRecorder())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// Alert recorder
// ============================================================

func TestAlertRecorder(t *testing.T) {
	r := NewAlertRecorder()
	if !r.RequestPermission() {
		t.Fatal("recorder should always grant permission")
	}

	r.Notify("Goal reached", "10g logged")
	r.Notify("Engine status up", "burning")

	alerts := r.Drain()
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Title != "Goal reached" {
		t.Fatalf("unexpected order: %+v", alerts)
	}

	if got := r.Drain(); len(got) != 0 {
		t.Fatalf("drain should clear the queue, got %d", len(got))
	}
}

// ============================================================
// Quick actions
// ============================================================

func TestQuickActionTable(t *testing.T) {
	want := []struct {
		label string
		grams float64
		kind  string
	}{
		{"Salt water", 2.0, store.KindSalt},
		{"Capsule", 0.5, store.KindSalt},
		{"Meal", 1.5, store.KindMeal},
		{"Broth", 3.0, store.KindSalt},
	}
	if len(quickActions) != len(want) {
		t.Fatalf("expected %d quick actions, got %d", len(want), len(quickActions))
	}
	for i, w := range want {
		a := quickActions[i]
		if a.label != w.label || a.grams != w.grams || a.kind != w.kind {
			t.Errorf("action %d = %+v, want %+v", i, a, w)
		}
	}
}

func TestQuickLogWritesEntry(t *testing.T) {
	eng := newTestEngine(t)
	l := newLogModel(eng, nil)

	msg := l.quickLog(0)()
	status, ok := msg.(statusMsg)
	if !ok || status.isError {
		t.Fatalf("unexpected message: %+v", msg)
	}

	snap, err := eng.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Entries) != 1 || snap.Entries[0].Label != "Salt water" {
		t.Fatalf("unexpected ledger: %+v", snap.Entries)
	}
}

// ============================================================
// Log view pickers
// ============================================================

func TestExercisePickerFlow(t *testing.T) {
	eng := newTestEngine(t)
	l := newLogModel(eng, nil)

	l, _ = l.update(keyRune('e'))
	if l.picker != pickExercise {
		t.Fatal("expected exercise picker to open")
	}

	// Move to moderate and confirm.
	l, _ = l.update(keyRune('j'))
	l, cmd := l.update(tea.KeyMsg{Type: tea.KeyEnter})
	if l.picker != pickNone {
		t.Fatal("picker should close on enter")
	}
	if cmd == nil {
		t.Fatal("expected an action command")
	}

	if msg := cmd(); msg == nil {
		t.Fatal("expected a message from the action")
	}
	snap, _ := eng.Snapshot()
	if len(snap.Entries) != 1 || snap.Entries[0].Amount != -1.0 {
		t.Fatalf("expected a moderate exercise entry, got %+v", snap.Entries)
	}
}

func TestPickerCancel(t *testing.T) {
	eng := newTestEngine(t)
	l := newLogModel(eng, nil)

	l, _ = l.update(keyRune('g'))
	if l.picker != pickGrade {
		t.Fatal("expected grade picker to open")
	}
	l, _ = l.update(tea.KeyMsg{Type: tea.KeyEsc})
	if l.picker != pickNone {
		t.Fatal("esc should close the picker")
	}
}

func TestConditionPicker(t *testing.T) {
	eng := newTestEngine(t)
	l := newLogModel(eng, nil)

	l, _ = l.update(keyRune('n'))
	if l.picker != pickCondition {
		t.Fatal("expected condition picker to open")
	}

	// Fifth option = condition 5.
	for i := 0; i < 4; i++ {
		l, _ = l.update(keyRune('j'))
	}
	_, cmd := l.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an action command")
	}
	cmd()

	snap, _ := eng.Snapshot()
	if snap.Daily.ConditionScore != 5 {
		t.Fatalf("expected condition 5, got %d", snap.Daily.ConditionScore)
	}
}

// ============================================================
// Checkup view
// ============================================================

func TestCheckupToggleAndDiagnose(t *testing.T) {
	c := newCheckupModel()

	// Toggle the first symptom (headache) and analyze.
	c, _ = c.update(tea.KeyMsg{Type: tea.KeySpace})
	if len(c.selectedIDs()) != 1 {
		t.Fatalf("expected 1 selected, got %d", len(c.selectedIDs()))
	}

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyEnter})
	if c.verdict == nil {
		t.Fatal("expected a verdict")
	}
	if c.verdict.Title != "Sodium deficit" {
		t.Fatalf("unexpected verdict %q", c.verdict.Title)
	}

	// Toggling again clears the stale verdict.
	c, _ = c.update(tea.KeyMsg{Type: tea.KeySpace})
	if c.verdict != nil {
		t.Fatal("verdict should reset when the selection changes")
	}

	// Esc clears everything.
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(c.selectedIDs()) != 0 {
		t.Fatal("esc should clear the selection")
	}
}

func TestCheckupNoVerdictWithoutSelection(t *testing.T) {
	c := newCheckupModel()
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyEnter})
	if c.verdict != nil {
		t.Fatal("empty selection should not produce a verdict")
	}
}

// ============================================================
// Settings view
// ============================================================

func TestSettingsResetConfirm(t *testing.T) {
	eng := newTestEngine(t)
	s := newSettingsModel(eng)

	s, _ = s.update(keyRune('r'))
	if !s.confirmReset {
		t.Fatal("expected reset confirmation")
	}

	// Anything but y cancels.
	s, cmd := s.update(keyRune('x'))
	if s.confirmReset || cmd != nil {
		t.Fatal("expected cancel without a command")
	}

	s, _ = s.update(keyRune('r'))
	_, cmd = s.update(keyRune('y'))
	if cmd == nil {
		t.Fatal("expected reset command on confirm")
	}
	if _, ok := cmd().(resetDoneMsg); !ok {
		t.Fatal("expected resetDoneMsg")
	}
}

// ============================================================
// Dashboard
// ============================================================

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestDashboardWindowFollowsEngineClock(t *testing.T) {
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	// Engine clock far from wall time: entries logged "today" by that
	// clock must still land inside the chart window.
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	eng := engine.New(s, fixedClock{now: at}, NewAlertRecorder())
	if _, err := eng.LogIntake(2.0, "Salt water", store.KindSalt); err != nil {
		t.Fatal(err)
	}

	d := newDashboardModel(eng, s)
	d.setSize(80, 30)

	msg := d.loadData()()
	data, ok := msg.(dashboardDataMsg)
	if !ok {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if len(data.week) != 1 {
		t.Fatalf("expected 1 entry in the window, got %d", len(data.week))
	}

	d, _ = d.update(data)
	if len(d.week) != 1 {
		t.Fatalf("expected the window to reach the model, got %d", len(d.week))
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatGrams(t *testing.T) {
	if got := formatGrams(2.0); got != "2.0g" {
		t.Fatalf("got %q", got)
	}
	if got := formatGrams(-1.5); got != "-1.5g" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(14*time.Hour + 5*time.Minute); got != "14h 05m" {
		t.Fatalf("got %q", got)
	}
}
