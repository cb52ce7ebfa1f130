package model

import (
	"testing"
	"time"
)

func TestParseLegacyKey(t *testing.T) {
	d, err := ParseLegacyKey("3/7/2025")
	if err != nil {
		t.Fatalf("ParseLegacyKey: %v", err)
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 7 {
		t.Fatalf("parsed %v, want 2025-03-07", d)
	}
	if d.String() != "2025-03-07" {
		t.Fatalf("String() = %q, want 2025-03-07", d.String())
	}
}

func TestParseLegacyKeyRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "3/7", "13/1/2025", "2/30/25", "a/b/c", "2025-03-07"} {
		if _, err := ParseLegacyKey(s); err == nil {
			t.Fatalf("ParseLegacyKey(%q) accepted invalid key", s)
		}
	}
}

func TestParseLegacyKeyRejectsNonexistentDays(t *testing.T) {
	for _, s := range []string{"2/31/2024", "2/29/2025", "4/31/2025", "6/31/2025"} {
		if _, err := ParseLegacyKey(s); err == nil {
			t.Fatalf("ParseLegacyKey(%q) accepted a day that month does not have", s)
		}
	}
	if _, err := ParseLegacyKey("2/29/2024"); err != nil {
		t.Fatalf("ParseLegacyKey leap day: %v", err)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Fatalf("round trip = %q, want 2026-08-30", d.String())
	}
}

func TestDateBefore(t *testing.T) {
	a := Date{2025, time.December, 31}
	b := Date{2026, time.January, 1}
	if !a.Before(b) {
		t.Fatal("Dec 31 should sort before Jan 1 of the next year")
	}
	if b.Before(a) {
		t.Fatal("Before is not antisymmetric")
	}
}

func TestRecordPercentCapped(t *testing.T) {
	r := DailyRecord{Amount: 3000, Goal: 2000}
	if got := r.Percent(); got != 100 {
		t.Fatalf("Percent() = %d, want 100 (capped)", got)
	}
	r = DailyRecord{Amount: 500, Goal: 2000}
	if got := r.Percent(); got != 25 {
		t.Fatalf("Percent() = %d, want 25", got)
	}
	if got := r.Remaining(); got != 1500 {
		t.Fatalf("Remaining() = %d, want 1500", got)
	}
}
