package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is an explicit calendar date used as the record key.
// It replaces the locale-formatted date strings the browser app keyed on,
// which break the moment the viewer's locale changes.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the Date for now in local time.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// String formats the date as YYYY-MM-DD, the store's key format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// SameMonth reports whether d falls in the same calendar month and year as t.
func (d Date) SameMonth(t time.Time) bool {
	return d.Year == t.Year() && d.Month == t.Month()
}

// ParseDate parses a YYYY-MM-DD store key.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return Today(t), nil
}

// ParseLegacyKey parses the M/D/YYYY keys found in browser localStorage
// exports. Not zero-padded, month first.
func ParseLegacyKey(s string) (Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid legacy date key %q", s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid legacy date key %q: bad month", s)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("invalid legacy date key %q: bad day", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1970 {
		return Date{}, fmt.Errorf("invalid legacy date key %q: bad year", s)
	}

	// time.Date normalizes overflow (Feb 31 -> Mar 3), so a changed day
	// means the day did not exist in that month.
	if t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC); t.Day() != day {
		return Date{}, fmt.Errorf("invalid legacy date key %q: no such day", s)
	}

	return Date{Year: year, Month: time.Month(month), Day: day}, nil
}
