package components

import (
	"fmt"

	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForGoalPct maps goal progress to a bar color. Progress fills
// toward the accent as the day's goal approaches.
func ColorForGoalPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Accent)
	case pct >= 0.25:
		return string(t.Yellow)
	default:
		return string(t.Orange)
	}
}

// GoalProgressBar renders a labeled progress bar for today's intake.
// pct may exceed 1; the fill caps at full but the percentage shows the
// true value.
func GoalProgressBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	fill := pct
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForGoalPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForGoalPct(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(fill) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
