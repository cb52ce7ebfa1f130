package stats

import (
	"testing"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

var august = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.Local)

func TestComputeMonthlyEmpty(t *testing.T) {
	stats := ComputeMonthly(nil, august)
	if stats.Total != 0 || stats.Average != 0 || stats.GoalPercentage != 0 {
		t.Fatalf("empty store stats = %+v, want all zero", stats)
	}
	if len(stats.Entries) != 0 {
		t.Fatalf("Entries = %d, want 0", len(stats.Entries))
	}
}

func TestComputeMonthlyIgnoresOtherMonths(t *testing.T) {
	records := map[model.Date]model.DailyRecord{
		{Year: 2026, Month: time.July, Day: 30}:   {Amount: 2000, Goal: 2000},
		{Year: 2025, Month: time.August, Day: 10}: {Amount: 2000, Goal: 2000},
	}
	stats := ComputeMonthly(records, august)
	if len(stats.Entries) != 0 {
		t.Fatalf("Entries = %d, want 0 for out-of-month records", len(stats.Entries))
	}
	if stats.Total != 0 || stats.Average != 0 || stats.GoalPercentage != 0 {
		t.Fatalf("stats = %+v, want all zero", stats)
	}
}

func TestComputeMonthlyDerivedMetrics(t *testing.T) {
	records := map[model.Date]model.DailyRecord{
		{Year: 2026, Month: time.August, Day: 1}: {Amount: 2000, Goal: 2000},
		{Year: 2026, Month: time.August, Day: 2}: {Amount: 1000, Goal: 2000},
	}
	stats := ComputeMonthly(records, august)

	if stats.Total != 3000 {
		t.Fatalf("Total = %d, want 3000", stats.Total)
	}
	if stats.Average != 1500 {
		t.Fatalf("Average = %d, want 1500", stats.Average)
	}
	if stats.GoalPercentage != 50 {
		t.Fatalf("GoalPercentage = %d, want 50", stats.GoalPercentage)
	}
}

func TestComputeMonthlyOrdersByDay(t *testing.T) {
	records := map[model.Date]model.DailyRecord{
		{Year: 2026, Month: time.August, Day: 15}: {Amount: 500, Goal: 2000},
		{Year: 2026, Month: time.August, Day: 3}:  {Amount: 700, Goal: 2000},
		{Year: 2026, Month: time.August, Day: 28}: {Amount: 900, Goal: 2000},
	}
	stats := ComputeMonthly(records, august)

	want := []int{3, 15, 28}
	if len(stats.Entries) != len(want) {
		t.Fatalf("Entries = %d, want %d", len(stats.Entries), len(want))
	}
	for i, e := range stats.Entries {
		if e.Day != want[i] {
			t.Fatalf("Entries[%d].Day = %d, want %d", i, e.Day, want[i])
		}
	}
}

func TestComputeMonthlyRounding(t *testing.T) {
	// 1000 + 1001 + 1001 = 3002 over 3 days -> 1000.67, rounds to 1001.
	// 1 of 3 days attained -> 33.3%, rounds to 33.
	records := map[model.Date]model.DailyRecord{
		{Year: 2026, Month: time.August, Day: 1}: {Amount: 1000, Goal: 1000},
		{Year: 2026, Month: time.August, Day: 2}: {Amount: 1001, Goal: 2000},
		{Year: 2026, Month: time.August, Day: 3}: {Amount: 1001, Goal: 2000},
	}
	stats := ComputeMonthly(records, august)
	if stats.Average != 1001 {
		t.Fatalf("Average = %d, want 1001", stats.Average)
	}
	if stats.GoalPercentage != 33 {
		t.Fatalf("GoalPercentage = %d, want 33", stats.GoalPercentage)
	}
}
