package journal

import (
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

func TestNotificationRoundTrip(t *testing.T) {
	j, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = j.Close() }()

	now := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	if err := j.LogNotification(now, KindReminder, "Work time!", "Drink up."); err != nil {
		t.Fatalf("LogNotification: %v", err)
	}
	if err := j.LogNotification(now.Add(time.Hour), KindConfirmation, "Updated!", "every hour"); err != nil {
		t.Fatalf("LogNotification: %v", err)
	}

	entries, err := j.RecentNotifications(10)
	if err != nil {
		t.Fatalf("RecentNotifications: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Kind != KindConfirmation || entries[1].Kind != KindReminder {
		t.Fatalf("order = [%s, %s], want [confirmation, reminder]",
			entries[0].Kind, entries[1].Kind)
	}
	if !entries[1].SentAt.Equal(now) {
		t.Fatalf("SentAt = %v, want %v", entries[1].SentAt, now)
	}

	count, err := j.NotificationCount()
	if err != nil {
		t.Fatalf("NotificationCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestIntakeForDate(t *testing.T) {
	j, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = j.Close() }()

	date := model.Date{Year: 2026, Month: time.August, Day: 30}
	other := model.Date{Year: 2026, Month: time.August, Day: 29}
	now := time.Now()

	if err := j.LogIntake(now, date, 250, 250); err != nil {
		t.Fatalf("LogIntake: %v", err)
	}
	if err := j.LogIntake(now, date, 500, 750); err != nil {
		t.Fatalf("LogIntake: %v", err)
	}
	if err := j.LogIntake(now, other, 330, 330); err != nil {
		t.Fatalf("LogIntake: %v", err)
	}

	entries, err := j.IntakeForDate(date)
	if err != nil {
		t.Fatalf("IntakeForDate: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ML != 250 || entries[1].Total != 750 {
		t.Fatalf("entries = %+v, want oldest-first deltas", entries)
	}
}
