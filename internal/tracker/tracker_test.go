package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 30, 14, 0, 0, 0, time.Local)
}

func newTestTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	return New(s, nil, fixedNow), s
}

func TestAddAccumulates(t *testing.T) {
	tr, _ := newTestTracker(t)

	amounts := []int{250, 330, 500, 120}
	var want int
	var rec model.DailyRecord
	for _, ml := range amounts {
		var err error
		rec, err = tr.Add(ml)
		if err != nil {
			t.Fatalf("Add(%d): %v", ml, err)
		}
		want += ml
	}

	if rec.Amount != want {
		t.Fatalf("Amount = %d, want sum %d", rec.Amount, want)
	}
}

func TestAddRejectsInvalidAmounts(t *testing.T) {
	tr, s := newTestTracker(t)

	before := tr.Today()
	for _, ml := range []int{0, -5, 6000} {
		if _, err := tr.Add(ml); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Add(%d) err = %v, want ErrInvalidAmount", ml, err)
		}
	}

	after, _ := s.Record(model.Today(fixedNow()))
	if after.Amount != before.Amount {
		t.Fatalf("Amount changed from %d to %d on invalid input", before.Amount, after.Amount)
	}
}

func TestQuickAddBypassesUpperBound(t *testing.T) {
	tr, _ := newTestTracker(t)

	// Custom entry caps at 5000; presets historically did not.
	rec, err := tr.QuickAdd(6000)
	if err != nil {
		t.Fatalf("QuickAdd(6000): %v", err)
	}
	if rec.Amount != 6000 {
		t.Fatalf("Amount = %d, want 6000", rec.Amount)
	}

	if _, err := tr.QuickAdd(0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("QuickAdd(0) err = %v, want ErrInvalidAmount", err)
	}
}

func TestChangeGoalAffectsTodayOnly(t *testing.T) {
	tr, s := newTestTracker(t)

	yesterday := model.Date{Year: 2026, Month: time.August, Day: 29}
	s.SetRecord(yesterday, model.DailyRecord{Amount: 2000, Goal: 2000})

	rec, err := tr.ChangeGoal(3000)
	if err != nil {
		t.Fatalf("ChangeGoal: %v", err)
	}
	if rec.Goal != 3000 {
		t.Fatalf("today's Goal = %d, want 3000", rec.Goal)
	}

	prior, _ := s.Record(yesterday)
	if prior.Goal != 2000 {
		t.Fatalf("yesterday's Goal = %d, want unchanged 2000", prior.Goal)
	}
}

func TestChangeGoalRejectsNonPreset(t *testing.T) {
	tr, _ := newTestTracker(t)
	if _, err := tr.ChangeGoal(1234); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("ChangeGoal(1234) err = %v, want ErrInvalidGoal", err)
	}
}

func TestTodaySeedsGoalFromYesterday(t *testing.T) {
	tr, s := newTestTracker(t)

	yesterday := model.Date{Year: 2026, Month: time.August, Day: 29}
	s.SetRecord(yesterday, model.DailyRecord{Amount: 1500, Goal: 2500})

	rec := tr.Today()
	if rec.Goal != 2500 {
		t.Fatalf("seeded Goal = %d, want 2500", rec.Goal)
	}
	if rec.Amount != 0 {
		t.Fatalf("new day Amount = %d, want 0", rec.Amount)
	}
}
