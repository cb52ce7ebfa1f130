package tui

import (
	"fmt"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/tui/components"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTodayTab(cw, _ int) string {
	t := theme.Active
	rec := a.today

	cards := components.MetricCardRow([]struct{ Label, Value, Sub string }{
		{"Today", cli.FormatVolume(rec.Amount), ""},
		{"Goal", cli.FormatVolume(rec.Goal), ""},
		{"Remaining", cli.FormatVolume(rec.Remaining()), remainingHint(rec)},
	}, cw)

	barW := cw - 14
	if barW > 60 {
		barW = 60
	}
	if barW < 20 {
		barW = 20
	}
	progress := components.GoalProgressBar("Progress",
		float64(rec.Amount)/float64(max(rec.Goal, 1)), 8, barW)

	var body strings.Builder
	body.WriteString(progress)
	body.WriteString("\n\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	body.WriteString(hintStyle.Render("Log a drink:  "))
	body.WriteString(keyStyle.Render("[1]") + hintStyle.Render(fmt.Sprintf(" glass %dml   ", model.PresetGlass)))
	body.WriteString(keyStyle.Render("[2]") + hintStyle.Render(fmt.Sprintf(" cup %dml   ", model.PresetCup)))
	body.WriteString(keyStyle.Render("[3]") + hintStyle.Render(fmt.Sprintf(" bottle %dml   ", model.PresetBottle)))
	body.WriteString(keyStyle.Render("[a]") + hintStyle.Render(" custom"))

	if a.entering {
		body.WriteString("\n\n")
		body.WriteString(hintStyle.Render("Amount: "))
		body.WriteString(a.amountIn.View())
		if a.inputErr != "" {
			body.WriteString("\n")
			body.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(a.inputErr))
		}
	}

	card := components.ContentCard("Hydration", body.String(), cw)

	return lipgloss.JoinVertical(lipgloss.Left, cards, card)
}

func remainingHint(rec model.DailyRecord) string {
	if rec.Attained() {
		return "goal reached"
	}
	return fmt.Sprintf("%d%% done", rec.Percent())
}
