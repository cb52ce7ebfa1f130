package tui

import (
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/notify"
	"github.com/Ryan56h/waterReminder/internal/store"
	"github.com/Ryan56h/waterReminder/internal/tracker"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	trk := tracker.New(st, notify.Console{}, time.Now)
	return NewApp(st, trk, config.DefaultConfig(), false)
}

func TestQuickAddKeyLogsGlass(t *testing.T) {
	a := newTestApp(t)
	a.width = 80
	a.height = 24

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	got := m.(App)

	if got.today.Amount != model.PresetGlass {
		t.Fatalf("today amount = %d, want %d", got.today.Amount, model.PresetGlass)
	}
	if got.status == "" {
		t.Fatal("expected a status message after logging")
	}
}

func TestAmountInputRejectsGarbage(t *testing.T) {
	a := newTestApp(t)
	a.entering = true
	a.amountIn = newAmountInput()
	a.amountIn.SetValue("abc")

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := m.(App)

	if !got.entering {
		t.Fatal("input should stay open on a parse error")
	}
	if got.inputErr == "" {
		t.Fatal("expected an input error message")
	}
	if got.today.Amount != 0 {
		t.Fatalf("today amount = %d, want 0", got.today.Amount)
	}
}

func TestNextGoalChoiceWraps(t *testing.T) {
	if got := nextGoalChoice(3500, 1); got != 1500 {
		t.Fatalf("nextGoalChoice(3500, 1) = %d, want 1500", got)
	}
	if got := nextGoalChoice(1500, -1); got != 3500 {
		t.Fatalf("nextGoalChoice(1500, -1) = %d, want 3500", got)
	}
	if got := nextGoalChoice(1234, 1); got != model.DefaultGoal {
		t.Fatalf("nextGoalChoice(1234, 1) = %d, want default", got)
	}
}

func TestHistoryCursorReachesOlderMonths(t *testing.T) {
	a := newTestApp(t)
	a.width = 80
	a.height = 24

	now := time.Now()
	prev := now.AddDate(0, -1, 0)
	for day := 1; day <= 5; day++ {
		d := model.Date{Year: prev.Year(), Month: prev.Month(), Day: day}
		a.st.SetRecord(d, model.DailyRecord{Amount: 1000, Goal: 2000})
	}
	a.st.SetRecord(model.Today(now), model.DailyRecord{Amount: 500, Goal: 2000})
	a.recompute()

	a.activeTab = 2
	var m tea.Model = a
	for i := 0; i < 4; i++ {
		m, _ = m.(App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}

	if got := m.(App); got.histCursor != 4 {
		t.Fatalf("histCursor = %d, want 4", got.histCursor)
	}

	// A tick must not clamp the cursor back to this month's entries.
	m, _ = m.(App).Update(tickMsg{})
	if got := m.(App); got.histCursor != 4 {
		t.Fatalf("histCursor after tick = %d, want 4", got.histCursor)
	}
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a := newTestApp(t)
	a.width = 80
	a.height = 24

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if got := m.(App); got.activeTab != 1 {
		t.Fatalf("activeTab = %d, want 1", got.activeTab)
	}

	m, _ = m.(App).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if got := m.(App); got.activeTab != 3 {
		t.Fatalf("activeTab = %d, want 3", got.activeTab)
	}
}
