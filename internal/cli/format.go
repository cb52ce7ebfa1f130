// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatVolume formats milliliters, switching to liters at 1000.
// e.g., 750 -> "750ml", 3200 -> "3.2L"
func FormatVolume(ml int) string {
	if ml >= 1000 {
		l := float64(ml) / 1000
		if l == float64(int(l)) {
			return fmt.Sprintf("%.0fL", l)
		}
		return fmt.Sprintf("%.1fL", l)
	}
	return fmt.Sprintf("%dml", ml)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an integer percentage.
func FormatPercent(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// FormatInterval renders a reminder cadence for display.
// e.g., 30m -> "30m", 1h -> "1h", 0 -> "off"
func FormatInterval(d time.Duration) string {
	if d <= 0 {
		return "off"
	}
	mins := int(d.Minutes())
	if mins >= 60 && mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
