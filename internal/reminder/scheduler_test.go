package reminder

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Message
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, Message{Title: title, Body: body})
	return nil
}

func (n *recordingNotifier) last(t *testing.T) Message {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		t.Fatal("no notifications sent")
	}
	return n.sent[len(n.sent)-1]
}

func todayFn(rec model.DailyRecord) func() model.DailyRecord {
	return func() model.DailyRecord { return rec }
}

func TestStartZeroIntervalDisables(t *testing.T) {
	n := &recordingNotifier{}
	s := NewScheduler(n, todayFn(model.DailyRecord{Goal: 2000}), nil, nil)

	if err := s.Start(0); err != nil {
		t.Fatalf("Start(0): %v", err)
	}
	if s.cron != nil {
		t.Fatal("cron running with interval 0")
	}
	if s.Interval() != 0 {
		t.Fatalf("Interval() = %s, want 0", s.Interval())
	}
}

func TestStartReplacesExistingSchedule(t *testing.T) {
	n := &recordingNotifier{}
	s := NewScheduler(n, todayFn(model.DailyRecord{Goal: 2000}), nil, nil)

	if err := s.Start(time.Hour); err != nil {
		t.Fatalf("Start: %v", err)
	}
	first := s.cron
	if err := s.Start(30 * time.Minute); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s.cron == first {
		t.Fatal("restart did not replace the cron runner")
	}
	s.Stop()
	if s.cron != nil {
		t.Fatal("Stop left the cron runner in place")
	}
}

func TestSendReminderDeliversAndObserves(t *testing.T) {
	n := &recordingNotifier{}
	var observed []Message
	s := NewScheduler(n, todayFn(model.DailyRecord{Amount: 500, Goal: 2000}), nil,
		func(m Message) { observed = append(observed, m) })
	s.now = func() time.Time {
		return time.Date(2026, time.August, 30, 7, 0, 0, 0, time.Local)
	}

	s.SendReminder()

	if got := n.last(t).Title; got != "Good morning!" {
		t.Fatalf("delivered Title = %q, want morning greeting", got)
	}
	if len(observed) != 1 {
		t.Fatalf("onSend observed %d messages, want 1", len(observed))
	}
}

func TestChangeIntervalConfirmation(t *testing.T) {
	n := &recordingNotifier{}
	var persisted time.Duration
	s := NewScheduler(n, todayFn(model.DailyRecord{Goal: 2000}),
		func(d time.Duration) error { persisted = d; return nil }, nil)

	if err := s.ChangeInterval(30 * time.Minute); err != nil {
		t.Fatalf("ChangeInterval: %v", err)
	}
	defer s.Stop()

	if persisted != 30*time.Minute {
		t.Fatalf("persisted = %s, want 30m", persisted)
	}
	if body := n.last(t).Body; !strings.Contains(body, "every 30 minutes") {
		t.Fatalf("confirmation = %q, want minutes wording", body)
	}

	if err := s.ChangeInterval(2 * time.Hour); err != nil {
		t.Fatalf("ChangeInterval: %v", err)
	}
	if body := n.last(t).Body; !strings.Contains(body, "every 2 hours") {
		t.Fatalf("confirmation = %q, want hours wording", body)
	}

	if err := s.ChangeInterval(0); err != nil {
		t.Fatalf("ChangeInterval(0): %v", err)
	}
	if title := n.last(t).Title; title != "Reminders off" {
		t.Fatalf("disable confirmation Title = %q, want Reminders off", title)
	}
}
