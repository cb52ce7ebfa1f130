// Package store persists daily intake records as a single JSON blob.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

const (
	// BlobName is the record blob's file name, after the browser app's
	// "waterPro" localStorage key.
	BlobName = "waterpro.json"

	// DebounceWindow is the quiet period that collapses a burst of
	// mutations into one write.
	DebounceWindow = 100 * time.Millisecond
)

// Store holds the date-keyed daily records, backed by one JSON file that is
// rewritten whole on every (debounced) mutation. The last writer to the
// file always wins; concurrent external writers are not merged.
type Store struct {
	path string

	mu      sync.Mutex
	records map[string]model.DailyRecord
	writes  int

	deb *Debouncer
}

// Open loads the record blob from dir, creating dir if needed. A missing or
// corrupt blob yields an empty store; parse failures are not surfaced.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Store{
		path:    filepath.Join(dir, BlobName),
		records: make(map[string]model.DailyRecord),
	}
	s.deb = NewDebouncer(DebounceWindow, func() {
		_ = s.persistNow()
	})

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s, nil
	}

	var raw map[string]model.DailyRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		// Corrupt blob: treat identically to no data.
		return s, nil
	}
	for k, v := range raw {
		if _, err := model.ParseDate(k); err != nil {
			continue
		}
		s.records[k] = v
	}
	return s, nil
}

// Path returns the blob's location on disk.
func (s *Store) Path() string {
	return s.path
}

// Record returns the record for date, if present.
func (s *Store) Record(d model.Date) (model.DailyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[d.String()]
	return rec, ok
}

// SetRecord stores the record for date and schedules a debounced persist.
func (s *Store) SetRecord(d model.Date, rec model.DailyRecord) {
	s.mu.Lock()
	s.records[d.String()] = rec
	s.mu.Unlock()

	s.deb.Trigger()
}

// EnsureToday inserts a zero-amount record for today if absent. The goal is
// seeded from the most recent prior record, falling back to defaultGoal.
// Returns today's record either way.
func (s *Store) EnsureToday(today model.Date, defaultGoal int) model.DailyRecord {
	s.mu.Lock()
	key := today.String()
	if rec, ok := s.records[key]; ok {
		s.mu.Unlock()
		return rec
	}

	goal := defaultGoal
	var latest model.Date
	var found bool
	for k, v := range s.records {
		d, err := model.ParseDate(k)
		if err != nil || !d.Before(today) {
			continue
		}
		if !found || latest.Before(d) {
			latest = d
			goal = v.Goal
			found = true
		}
	}

	rec := model.DailyRecord{Amount: 0, Goal: goal}
	s.records[key] = rec
	s.mu.Unlock()

	s.deb.Trigger()
	return rec
}

// All returns a copy of the record map keyed by parsed dates.
func (s *Store) All() map[model.Date]model.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[model.Date]model.DailyRecord, len(s.records))
	for k, v := range s.records {
		d, err := model.ParseDate(k)
		if err != nil {
			continue
		}
		out[d] = v
	}
	return out
}

// Dates returns every stored date, oldest first.
func (s *Store) Dates() []model.Date {
	s.mu.Lock()
	defer s.mu.Unlock()

	dates := make([]model.Date, 0, len(s.records))
	for k := range s.records {
		d, err := model.ParseDate(k)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Flush forces any pending debounced write to disk.
func (s *Store) Flush() {
	s.deb.Flush()
}

// persistNow serializes the full mapping back to the blob, overwriting
// whatever is there. The blob is written to a sibling temp file first
// and renamed into place so a crash mid-write never truncates it.
func (s *Store) persistNow() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.writes++
	s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
