// Package daemon provides the long-running background reminder service.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Ryan56h/waterReminder/internal/journal"
	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/notify"
	"github.com/Ryan56h/waterReminder/internal/reminder"
	"github.com/Ryan56h/waterReminder/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DataDir      string
	DefaultGoal  int
	Interval     time.Duration // reminder cadence; 0 disables reminders
	PollInterval time.Duration // record blob poll cadence
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact view of today's tracking state.
type Snapshot struct {
	At        time.Time `json:"at"`
	Date      string    `json:"date"`
	AmountML  int       `json:"amount_ml"`
	GoalML    int       `json:"goal_ml"`
	Percent   int       `json:"percent"`
	Remaining int       `json:"remaining_ml"`
}

// Event is emitted on every reminder and observed intake change.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	DeltaML   int       `json:"delta_ml,omitempty"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt        time.Time `json:"started_at"`
	LastPollAt       time.Time `json:"last_poll_at"`
	PollIntervalSec  int       `json:"poll_interval_sec"`
	PollCount        int64     `json:"poll_count"`
	ReminderEverySec int       `json:"reminder_every_sec"`
	RemindersSent    int64     `json:"reminders_sent"`
	DataDir          string    `json:"data_dir"`
	Today            Snapshot  `json:"today"`
	LastError        string    `json:"last_error,omitempty"`
	EventCount       int       `json:"event_count"`
	SubscriberCount  int       `json:"subscriber_count"`
}

// Service runs the reminder schedule, watches the record blob for intake
// changes made by other processes, and serves a small HTTP API. The blob
// is only ever read here: its writers always win.
type Service struct {
	cfg      Config
	notifier notify.Notifier
	journal  *journal.Journal
	sched    *reminder.Scheduler

	mu            sync.RWMutex
	startedAt     time.Time
	lastPollAt    time.Time
	pollCount     int64
	remindersSent int64
	lastError     string
	hasSnapshot   bool
	snapshot      Snapshot
	nextEventID   int64
	events        []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config. jrnl may be
// nil; journaling is best-effort.
func New(cfg Config, notifier notify.Notifier, jrnl *journal.Journal) *Service {
	if cfg.PollInterval < 2*time.Second {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8732"
	}
	if cfg.DefaultGoal <= 0 {
		cfg.DefaultGoal = model.DefaultGoal
	}

	s := &Service{
		cfg:       cfg,
		notifier:  notifier,
		journal:   jrnl,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
	s.sched = reminder.NewScheduler(notifier, s.todayRecord, nil, s.onReminderSent)
	return s
}

// Run starts the HTTP endpoints, the reminder schedule, and the blob poll
// loop until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if err := s.sched.Start(s.cfg.Interval); err != nil {
		return err
	}
	defer s.sched.Stop()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// todayRecord reads today's record fresh from the blob for the scheduler's
// progress-based messages.
func (s *Service) todayRecord() model.DailyRecord {
	rec, _, err := s.readToday()
	if err != nil {
		return model.DailyRecord{Amount: 0, Goal: s.cfg.DefaultGoal}
	}
	return rec
}

func (s *Service) readToday() (model.DailyRecord, model.Date, error) {
	today := model.Today(time.Now())
	st, err := store.Open(s.cfg.DataDir)
	if err != nil {
		return model.DailyRecord{}, today, err
	}
	rec, ok := st.Record(today)
	if !ok {
		rec = model.DailyRecord{Amount: 0, Goal: s.cfg.DefaultGoal}
	}
	return rec, today, nil
}

func (s *Service) pollOnce() {
	rec, today, err := s.readToday()
	now := time.Now()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("waterpro daemon poll error: %v", err)
		return
	}

	snap := snapshotFromRecord(rec, today, now)

	var (
		ev      Event
		publish bool
		delta   int
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	switch {
	case !prevExists:
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
		}
		publish = true
	case prev.Date == snap.Date && snap.AmountML != prev.AmountML:
		delta = snap.AmountML - prev.AmountML
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "intake_delta",
			Timestamp: now,
			Snapshot:  snap,
			DeltaML:   delta,
		}
		publish = true
	case prev.Date != snap.Date:
		// Day rollover: publish the fresh snapshot, no delta.
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
		}
		publish = true
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
		if ev.Type == "intake_delta" && s.journal != nil {
			_ = s.journal.LogIntake(now, today, delta, snap.AmountML)
		}
	}
}

func (s *Service) onReminderSent(msg reminder.Message) {
	now := time.Now()

	s.mu.Lock()
	s.remindersSent++
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      "reminder_sent",
		Timestamp: now,
		Snapshot:  s.snapshot,
		Title:     msg.Title,
		Body:      msg.Body,
	}
	s.mu.Unlock()

	s.publishEvent(ev)
	if s.journal != nil {
		_ = s.journal.LogNotification(now, journal.KindReminder, msg.Title, msg.Body)
	}
}

func snapshotFromRecord(rec model.DailyRecord, date model.Date, at time.Time) Snapshot {
	return Snapshot{
		At:        at,
		Date:      date.String(),
		AmountML:  rec.Amount,
		GoalML:    rec.Goal,
		Percent:   rec.Percent(),
		Remaining: rec.Remaining(),
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:        s.startedAt,
		LastPollAt:       s.lastPollAt,
		PollIntervalSec:  int(s.cfg.PollInterval.Seconds()),
		PollCount:        s.pollCount,
		ReminderEverySec: int(s.cfg.Interval.Seconds()),
		RemindersSent:    s.remindersSent,
		DataDir:          s.cfg.DataDir,
		Today:            s.snapshot,
		LastError:        s.lastError,
		EventCount:       len(s.events),
		SubscriberCount:  len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Today,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
