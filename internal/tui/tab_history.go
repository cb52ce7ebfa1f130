package tui

import (
	"fmt"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/tui/components"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHistoryTab(cw, contentH int) string {
	t := theme.Active

	dates := a.st.Dates()
	if len(dates) == 0 {
		return components.ContentCard("History",
			"No days tracked yet. Log your first drink on the Today tab.", cw)
	}

	// Newest first
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}

	visible := contentH - 5
	if visible < 3 {
		visible = 3
	}
	cursor := a.histCursor
	if cursor >= len(dates) {
		cursor = len(dates) - 1
	}
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	end := offset + visible
	if end > len(dates) {
		end = len(dates)
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	rowTextStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	onStyle := lipgloss.NewStyle().Foreground(t.BarOnTrack)
	offStyle := lipgloss.NewStyle().Foreground(t.BarOffTrack)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i := offset; i < end; i++ {
		d := dates[i]
		rec, _ := a.st.Record(d)

		marker := offStyle.Render("·")
		if rec.Attained() {
			marker = onStyle.Render("✓")
		}

		line := fmt.Sprintf("%-12s %8s / %-8s %5s",
			d.String(),
			cli.FormatVolume(rec.Amount),
			cli.FormatVolume(rec.Goal),
			cli.FormatPercent(rec.Percent()))

		if i == cursor {
			b.WriteString("> " + marker + "  " + selStyle.Render(line))
		} else {
			b.WriteString("  " + marker + "  " + rowTextStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d days tracked  ·  j/k to move", len(dates))))

	return components.ContentCard("History", b.String(), cw)
}
