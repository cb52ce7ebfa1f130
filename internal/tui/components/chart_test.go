package components

import (
	"strings"
	"testing"
)

func TestDayLabelRowThinsLabels(t *testing.T) {
	days := make([]DayBar, 30)
	for i := range days {
		days[i] = DayBar{Label: "x", Amount: 100, Goal: 2000}
	}

	row := dayLabelRow(days, 2, 1, 30*2+29)
	got := strings.Count(row, "x")
	if got != 10 {
		t.Fatalf("labeled days = %d, want 10 (every 3rd of 30)", got)
	}
}

func TestDayLabelRowSmallMonthKeepsAll(t *testing.T) {
	days := make([]DayBar, 5)
	for i := range days {
		days[i] = DayBar{Label: "d", Amount: 100, Goal: 2000}
	}

	row := dayLabelRow(days, 2, 1, 5*2+4)
	if got := strings.Count(row, "d"); got != 5 {
		t.Fatalf("labeled days = %d, want all 5", got)
	}
}

func TestGoalBarChartLineCount(t *testing.T) {
	days := []DayBar{
		{Label: "1", Amount: 2000, Goal: 2000},
		{Label: "2", Amount: 500, Goal: 2000},
	}

	out := GoalBarChart(days, 60, 12)
	lines := strings.Split(out, "\n")
	// 10 chart rows plus axis plus label row.
	if len(lines) != 12 {
		t.Fatalf("rendered %d lines, want 12", len(lines))
	}
	if !strings.Contains(out, "2000") {
		t.Fatalf("chart missing max gridline label:\n%s", out)
	}
}

func TestGoalBarChartEmptyFallsBack(t *testing.T) {
	out := GoalBarChart(nil, 40, 10)
	if !strings.Contains(out, "No water logged yet") {
		t.Fatalf("empty chart missing placeholder:\n%s", out)
	}
}
