package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/notify"

	"github.com/robfig/cron/v3"
)

// DefaultInterval is the reminder cadence used when none is configured.
const DefaultInterval = time.Hour

// Scheduler fires reminder notifications on a fixed period. A single cron
// entry carries the schedule; starting with a new interval replaces the old
// entry, which implicitly cancels the pending tick. Nothing catches up
// missed ticks: reminders fire only while the process runs.
type Scheduler struct {
	notifier notify.Notifier
	today    func() model.DailyRecord
	now      func() time.Time
	persist  func(time.Duration) error
	onSend   func(Message)

	mu       sync.Mutex
	cron     *cron.Cron
	entry    cron.EntryID
	interval time.Duration
}

// NewScheduler returns a stopped scheduler. today supplies the current
// record for progress-based messages; persist (optional) saves interval
// changes; onSend (optional) observes every delivered reminder.
func NewScheduler(
	notifier notify.Notifier,
	today func() model.DailyRecord,
	persist func(time.Duration) error,
	onSend func(Message),
) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		today:    today,
		now:      time.Now,
		persist:  persist,
		onSend:   onSend,
	}
}

// Start schedules reminders at the given interval, replacing any existing
// schedule. An interval of 0 disables reminders.
func (s *Scheduler) Start(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
	s.interval = interval

	if interval <= 0 {
		return nil
	}

	c := cron.New()
	id, err := c.AddFunc(fmt.Sprintf("@every %s", interval), s.SendReminder)
	if err != nil {
		return fmt.Errorf("scheduling reminder: %w", err)
	}
	c.Start()
	s.cron = c
	s.entry = id
	return nil
}

// Stop cancels the schedule.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

// Interval returns the configured cadence (0 = disabled).
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SendReminder selects a message for the current time and progress and
// delivers it.
func (s *Scheduler) SendReminder() {
	msg := ForTime(s.now(), s.today())
	_ = s.notifier.Notify(msg.Title, msg.Body)
	if s.onSend != nil {
		s.onSend(msg)
	}
}

// ChangeInterval persists the new cadence, restarts the schedule, and
// emits a one-off confirmation notification.
func (s *Scheduler) ChangeInterval(interval time.Duration) error {
	if s.persist != nil {
		if err := s.persist(interval); err != nil {
			return err
		}
	}
	if err := s.Start(interval); err != nil {
		return err
	}

	if interval <= 0 {
		_ = s.notifier.Notify("Reminders off",
			"You will no longer receive automatic reminders.")
		return nil
	}
	_ = s.notifier.Notify("Updated!",
		fmt.Sprintf("You will be reminded %s.", DescribeCadence(interval)))
	return nil
}
