// Package stats derives monthly metrics from the daily record store.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/Ryan56h/waterReminder/internal/model"
)

// ComputeMonthly filters records to now's calendar month and year and
// derives the month's totals. Pure function of its inputs; an empty month
// yields zero metrics and no entries.
func ComputeMonthly(records map[model.Date]model.DailyRecord, now time.Time) model.MonthlyStats {
	var stats model.MonthlyStats
	attained := 0

	for d, rec := range records {
		if !d.SameMonth(now) {
			continue
		}
		stats.Entries = append(stats.Entries, model.DayEntry{
			Day:    d.Day,
			Amount: rec.Amount,
			Goal:   rec.Goal,
		})
		stats.Total += rec.Amount
		if rec.Amount >= rec.Goal {
			attained++
		}
	}

	sort.Slice(stats.Entries, func(i, j int) bool {
		return stats.Entries[i].Day < stats.Entries[j].Day
	})

	if n := len(stats.Entries); n > 0 {
		stats.Average = int(math.Round(float64(stats.Total) / float64(n)))
		stats.GoalPercentage = int(math.Round(float64(attained) / float64(n) * 100))
	}

	return stats
}
