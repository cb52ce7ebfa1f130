// Package tracker mutates today's intake record and triggers persistence.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/notify"
	"github.com/Ryan56h/waterReminder/internal/store"
)

// ErrInvalidAmount rejects custom amounts outside (0, MaxCustomAmount].
var ErrInvalidAmount = errors.New("amount must be between 1 and 5000 ml")

// ErrInvalidGoal rejects goals not in the preset menu.
var ErrInvalidGoal = errors.New("goal must be one of the preset values")

// Tracker owns today's record: adding intake and changing the goal.
type Tracker struct {
	store    *store.Store
	notifier notify.Notifier
	now      func() time.Time
}

// New returns a tracker over s. notifier may be nil to suppress
// confirmation notifications.
func New(s *store.Store, notifier notify.Notifier, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{store: s, notifier: notifier, now: now}
}

// Today returns today's record, creating it if this is the first
// interaction of the day.
func (t *Tracker) Today() model.DailyRecord {
	return t.store.EnsureToday(model.Today(t.now()), model.DefaultGoal)
}

// Add records a custom intake amount. The amount must be in
// (0, MaxCustomAmount]; invalid input leaves the record and the blob
// untouched.
func (t *Tracker) Add(ml int) (model.DailyRecord, error) {
	if ml <= 0 || ml > model.MaxCustomAmount {
		return model.DailyRecord{}, ErrInvalidAmount
	}
	return t.add(ml), nil
}

// QuickAdd records a preset amount. Presets skip the custom upper bound;
// only non-positive amounts are rejected.
func (t *Tracker) QuickAdd(ml int) (model.DailyRecord, error) {
	if ml <= 0 {
		return model.DailyRecord{}, ErrInvalidAmount
	}
	return t.add(ml), nil
}

func (t *Tracker) add(ml int) model.DailyRecord {
	today := model.Today(t.now())
	rec := t.store.EnsureToday(today, model.DefaultGoal)
	rec.Amount += ml
	t.store.SetRecord(today, rec)

	if t.notifier != nil {
		_ = t.notifier.Notify("Logged!",
			fmt.Sprintf("You just drank %dml. Today: %dml", ml, rec.Amount))
	}
	return rec
}

// ChangeGoal sets today's goal to one of the preset choices. Past days'
// stored goals are unaffected.
func (t *Tracker) ChangeGoal(goal int) (model.DailyRecord, error) {
	valid := false
	for _, g := range model.GoalChoices {
		if g == goal {
			valid = true
			break
		}
	}
	if !valid {
		return model.DailyRecord{}, ErrInvalidGoal
	}

	today := model.Today(t.now())
	rec := t.store.EnsureToday(today, model.DefaultGoal)
	rec.Goal = goal
	t.store.SetRecord(today, rec)
	return rec, nil
}

// Flush forces any pending debounced write.
func (t *Tracker) Flush() {
	t.store.Flush()
}
