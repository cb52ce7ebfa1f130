// Package model defines the core data types for water intake tracking.
package model

// Intake limits and defaults, in milliliters.
const (
	DefaultGoal     = 2000
	MaxCustomAmount = 5000
)

// Quick-add presets offered by the UI.
const (
	PresetGlass  = 250
	PresetCup    = 330
	PresetBottle = 500
)

// GoalChoices is the fixed menu of daily goals the UI offers.
var GoalChoices = []int{1500, 2000, 2500, 3000, 3500}

// DailyRecord is one day's tracked intake against its goal.
// JSON field names match the browser app's persisted blob.
type DailyRecord struct {
	Amount int `json:"amount"`
	Goal   int `json:"goal"`
}

// Attained reports whether the day's goal was reached.
func (r DailyRecord) Attained() bool {
	return r.Amount >= r.Goal
}

// Percent returns amount/goal as a 0-100 percentage, capped at 100
// for fill-level display.
func (r DailyRecord) Percent() int {
	if r.Goal <= 0 {
		return 0
	}
	pct := r.Amount * 100 / r.Goal
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Remaining returns the milliliters left to reach the goal, never negative.
func (r DailyRecord) Remaining() int {
	if r.Amount >= r.Goal {
		return 0
	}
	return r.Goal - r.Amount
}

// DayEntry is one day's slice of the monthly view.
type DayEntry struct {
	Day    int
	Amount int
	Goal   int
}

// MonthlyStats holds the derived metrics for one calendar month.
type MonthlyStats struct {
	Entries        []DayEntry
	Total          int // sum of amounts, ml
	Average        int // rounded mean over tracked days, ml
	GoalPercentage int // rounded percent of tracked days where goal was met
}
