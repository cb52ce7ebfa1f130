package reminder

import (
	"strings"
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

func at(hour int) time.Time {
	return time.Date(2026, time.August, 30, hour, 15, 0, 0, time.Local)
}

func TestForTimeMorningBandWinsOverProgress(t *testing.T) {
	// 07:15 is in the morning band; the time-of-day message applies even
	// at 100% of goal.
	msg := ForTime(at(7), model.DailyRecord{Amount: 2500, Goal: 2000})
	if msg.Title != "Good morning!" {
		t.Fatalf("Title = %q, want morning greeting", msg.Title)
	}
}

func TestForTimeBandBoundaries(t *testing.T) {
	cases := []struct {
		hour  int
		title string
	}{
		{6, "Good morning!"},
		{8, "Work time!"},
		{11, "Before lunch!"},
		{13, "After the nap!"},
		{15, "Mid-afternoon!"},
		{17, "After exercise!"},
		{19, "Evening!"},
		{21, "Before bed!"},
		{22, "Before bed!"},
	}
	rec := model.DailyRecord{Amount: 0, Goal: 2000}
	for _, c := range cases {
		if msg := ForTime(at(c.hour), rec); msg.Title != c.title {
			t.Fatalf("hour %d: Title = %q, want %q", c.hour, msg.Title, c.title)
		}
	}
}

func TestForTimeNightUsesProgressTiers(t *testing.T) {
	// 02:15 is outside every band; 80% of goal selects the >=75% tier
	// with the remaining amount interpolated.
	msg := ForTime(at(2), model.DailyRecord{Amount: 1600, Goal: 2000})
	if msg.Title != "Time to drink water!" {
		t.Fatalf("Title = %q, want default title", msg.Title)
	}
	if !strings.Contains(msg.Body, "400ml") {
		t.Fatalf("Body = %q, want remaining 400ml interpolated", msg.Body)
	}
}

func TestForTimeNightTierSelection(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{2000, "Great job!"},
		{1500, "Only 500ml to go"},
		{1000, "You've had 1000ml"},
		{500, "only at 25%"},
		{100, "Today's goal: 2000ml"},
	}
	for _, c := range cases {
		msg := ForTime(at(23), model.DailyRecord{Amount: c.amount, Goal: 2000})
		if !strings.Contains(msg.Title+" "+msg.Body, c.want) {
			t.Fatalf("amount %d: message %q / %q, want substring %q",
				c.amount, msg.Title, msg.Body, c.want)
		}
	}
}

func TestDescribeCadence(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Minute, "every 30 minutes"},
		{time.Hour, "every hour"},
		{2 * time.Hour, "every 2 hours"},
		{90 * time.Minute, "every 1.5 hours"},
	}
	for _, c := range cases {
		if got := DescribeCadence(c.d); got != c.want {
			t.Fatalf("DescribeCadence(%s) = %q, want %q", c.d, got, c.want)
		}
	}
}
