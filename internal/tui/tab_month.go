package tui

import (
	"fmt"
	"strconv"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMonthTab(cw, contentH int) string {
	m := a.monthly

	cards := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{"Month total", cli.FormatVolume(m.Total), ""},
		{"Daily average", cli.FormatVolume(m.Average), ""},
		{"Goal attainment", cli.FormatPercent(m.GoalPercentage),
			fmt.Sprintf("%d days tracked", len(m.Entries))},
	}, cw)

	chartH := contentH - lipgloss.Height(cards) - 3
	if chartH < 8 {
		chartH = 8
	}

	days := make([]components.DayBar, 0, len(m.Entries))
	for _, e := range m.Entries {
		days = append(days, components.DayBar{
			Label:  strconv.Itoa(e.Day),
			Amount: e.Amount,
			Goal:   e.Goal,
		})
	}

	innerW := components.CardInnerWidth(cw)
	chart := components.GoalBarChart(days, innerW, chartH)
	card := components.ContentCard("Daily intake", chart, cw)

	return lipgloss.JoinVertical(lipgloss.Left, cards, card)
}
