// Package journal provides a SQLite-backed log of sent notifications and
// observed intake events.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DBName is the journal database's file name inside the data dir.
const DBName = "journal.db"

// Notification kinds recorded in the journal.
const (
	KindReminder     = "reminder"
	KindConfirmation = "confirmation"
)

// Journal records delivered notifications and intake deltas. All writes
// are best-effort from the caller's point of view: tracking never blocks
// on the journal.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database under dir.
func Open(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	dbPath := filepath.Join(dir, DBName)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// NotificationEntry is one delivered notification.
type NotificationEntry struct {
	SentAt time.Time
	Kind   string
	Title  string
	Body   string
}

// IntakeEntry is one observed intake delta.
type IntakeEntry struct {
	At    time.Time
	Date  model.Date
	ML    int
	Total int
}

// LogNotification appends a delivered notification.
func (j *Journal) LogNotification(at time.Time, kind, title, body string) error {
	_, err := j.db.Exec(
		"INSERT INTO notifications (sent_at, kind, title, body) VALUES (?, ?, ?, ?)",
		at.UTC().Format(time.RFC3339), kind, title, body,
	)
	return err
}

// LogIntake appends an observed intake delta for date.
func (j *Journal) LogIntake(at time.Time, date model.Date, ml, total int) error {
	_, err := j.db.Exec(
		"INSERT INTO intake_events (at, date, ml, total) VALUES (?, ?, ?, ?)",
		at.UTC().Format(time.RFC3339), date.String(), ml, total,
	)
	return err
}

// RecentNotifications returns up to limit notifications, newest first.
func (j *Journal) RecentNotifications(limit int) ([]NotificationEntry, error) {
	rows, err := j.db.Query(
		"SELECT sent_at, kind, title, body FROM notifications ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []NotificationEntry
	for rows.Next() {
		var e NotificationEntry
		var sentAt string
		if err := rows.Scan(&sentAt, &e.Kind, &e.Title, &e.Body); err != nil {
			return nil, err
		}
		e.SentAt, _ = time.Parse(time.RFC3339, sentAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// IntakeForDate returns the intake deltas recorded for one date, oldest
// first.
func (j *Journal) IntakeForDate(date model.Date) ([]IntakeEntry, error) {
	rows, err := j.db.Query(
		"SELECT at, date, ml, total FROM intake_events WHERE date = ? ORDER BY id",
		date.String(),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []IntakeEntry
	for rows.Next() {
		var e IntakeEntry
		var at, dateStr string
		if err := rows.Scan(&at, &dateStr, &e.ML, &e.Total); err != nil {
			return nil, err
		}
		e.At, _ = time.Parse(time.RFC3339, at)
		e.Date, _ = model.ParseDate(dateStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// NotificationCount returns the number of journaled notifications.
func (j *Journal) NotificationCount() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM notifications").Scan(&count)
	return count, err
}
