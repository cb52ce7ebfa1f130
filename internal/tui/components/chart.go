package components

import (
	"fmt"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DayBar is one day's intake and goal for the chart.
type DayBar struct {
	Label  string
	Amount int
	Goal   int
}

const maxDayLabels = 10

// GoalBarChart renders daily intake bars against a shaded goal outline.
// Days that reached their goal get the on-track color, the rest the
// off-track color. The vertical scale tops out at the largest of any
// day's intake or goal so the goal line is always visible.
func GoalBarChart(days []DayBar, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(days) == 0 {
		return Empty(width, height)
	}
	if height < 4 {
		height = 4
	}

	t := theme.Active

	maxVal := 0
	for _, d := range days {
		if d.Amount > maxVal {
			maxVal = d.Amount
		}
		if d.Goal > maxVal {
			maxVal = d.Goal
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	chartH := height - 2 // reserve axis + label rows
	if chartH < 4 {
		chartH = 4
	}

	// Four gridline labels above the axis, plus 0 on the axis itself.
	yLabelW := len(fmt.Sprintf("%d", maxVal)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= 4; i++ {
		row := i * chartH / 4
		tickLabels[row] = fmt.Sprintf("%d", maxVal*i/4)
	}

	chartW := width - yLabelW - 1
	if chartW < 10 {
		chartW = 10
	}

	n := len(days)
	gap := 1
	barW := (chartW - (n - 1)) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 4 {
		barW = 4
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	goalStyle := lipgloss.NewStyle().Foreground(t.BarGoal)
	gapSpace := strings.Repeat(" ", gap)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := float64(maxVal) * float64(row) / float64(chartH)
		rowBottom := float64(maxVal) * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, d := range days {
			if i > 0 && gap > 0 {
				b.WriteString(gapSpace)
			}

			barColor := t.BarOffTrack
			if d.Goal > 0 && d.Amount >= d.Goal {
				barColor = t.BarOnTrack
			}
			barStyle := lipgloss.NewStyle().Foreground(barColor)

			amount := float64(d.Amount)
			goal := float64(d.Goal)
			switch {
			case amount >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case amount > rowBottom:
				frac := (amount - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			case goal > rowBottom:
				b.WriteString(goalStyle.Render(strings.Repeat("░", barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(dayLabelRow(days, barW, gap, axisLen)))

	return b.String()
}

// dayLabelRow lays day labels under their bars, thinning them so at most
// ten days are labeled.
func dayLabelRow(days []DayBar, barW, gap, axisLen int) string {
	n := len(days)
	skip := (n + maxDayLabels - 1) / maxDayLabels
	if skip < 1 {
		skip = 1
	}

	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -1
	for i := 0; i < n; i += skip {
		lbl := days[i].Label
		pos := i * (barW + gap)
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// Empty renders the no-data placeholder with a droplet and a hint.
func Empty(width, height int) string {
	t := theme.Active

	droplet := lipgloss.NewStyle().Foreground(t.Accent).Render("💧")
	head := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).
		Render("No water logged yet")
	hint := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render("Log your first glass to see the chart")

	body := lipgloss.JoinVertical(lipgloss.Center, droplet, "", head, hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
