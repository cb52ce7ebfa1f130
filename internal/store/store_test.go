package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

func testDate(day int) model.Date {
	return model.Date{Year: 2026, Month: time.August, Day: day}
}

func TestOpenMissingBlobYieldsEmptyStore(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestOpenCorruptBlobYieldsEmptyStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BlobName), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt blob: %v", err)
	}

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open on corrupt blob returned error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for corrupt blob", s.Len())
	}
}

func TestEnsureTodaySeedsGoalFromPriorDay(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s.SetRecord(testDate(10), model.DailyRecord{Amount: 1800, Goal: 2500})
	s.SetRecord(testDate(12), model.DailyRecord{Amount: 900, Goal: 3000})

	rec := s.EnsureToday(testDate(13), model.DefaultGoal)
	if rec.Amount != 0 {
		t.Fatalf("Amount = %d, want 0", rec.Amount)
	}
	if rec.Goal != 3000 {
		t.Fatalf("Goal = %d, want 3000 (seeded from most recent day)", rec.Goal)
	}
}

func TestEnsureTodayDefaultsWhenEmpty(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	rec := s.EnsureToday(testDate(1), model.DefaultGoal)
	if rec.Goal != model.DefaultGoal {
		t.Fatalf("Goal = %d, want %d", rec.Goal, model.DefaultGoal)
	}

	// Idempotent: a second call must not reset an existing record.
	s.SetRecord(testDate(1), model.DailyRecord{Amount: 750, Goal: model.DefaultGoal})
	rec = s.EnsureToday(testDate(1), model.DefaultGoal)
	if rec.Amount != 750 {
		t.Fatalf("Amount = %d, want 750 (record overwritten)", rec.Amount)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s.SetRecord(testDate(5), model.DailyRecord{Amount: 2000, Goal: 2000})
	s.Flush()

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	rec, ok := reopened.Record(testDate(5))
	if !ok {
		t.Fatal("record missing after reopen")
	}
	if rec.Amount != 2000 || rec.Goal != 2000 {
		t.Fatalf("record = %+v, want {2000 2000}", rec)
	}
}

func TestPersistLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	s.SetRecord(testDate(5), model.DailyRecord{Amount: 500, Goal: 2000})
	s.Flush()

	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("blob missing after flush: %v", err)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestDebounceCollapsesBurstToOneWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Burst of mutations well inside the window.
	for i := 1; i <= 5; i++ {
		s.SetRecord(testDate(20), model.DailyRecord{Amount: i * 250, Goal: 2000})
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.deb.Pending() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	s.mu.Lock()
	writes := s.writes
	s.mu.Unlock()
	if writes != 1 {
		t.Fatalf("writes = %d, want exactly 1 for a burst", writes)
	}

	data, err := os.ReadFile(filepath.Join(dir, BlobName))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	var raw map[string]model.DailyRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("parse blob: %v", err)
	}
	if got := raw[testDate(20).String()].Amount; got != 1250 {
		t.Fatalf("persisted amount = %d, want final cumulative 1250", got)
	}
}

func TestDebouncerFlushRunsPendingOnce(t *testing.T) {
	var calls int32
	d := NewDebouncer(time.Hour, func() { atomic.AddInt32(&calls, 1) })

	d.Trigger()
	d.Trigger()
	d.Flush()
	d.Flush() // no-op, nothing pending

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}
