package tui

import (
	"fmt"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/tui/components"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState tracks the settings tab cursor.
type settingsState struct {
	cursor int
}

const settingsFieldCount = 3

var intervalChoices = []int{0, 30, 60, 90, 120}

// settingsCycle steps the selected setting forward or backward and
// persists the change.
func (a App) settingsCycle(dir int) (tea.Model, tea.Cmd) {
	switch a.settings.cursor {
	case 0: // daily goal
		next := nextGoalChoice(a.today.Goal, dir)
		if _, err := a.trk.ChangeGoal(next); err != nil {
			a.flash(err.Error())
			return a, nil
		}
		a.cfg.General.DefaultGoal = next
		a.recompute()

	case 1: // reminder cadence
		cur := a.cfg.Reminder.IntervalMinutes
		idx := 0
		for i, m := range intervalChoices {
			if m == cur {
				idx = i
				break
			}
		}
		n := len(intervalChoices)
		a.cfg.Reminder.IntervalMinutes = intervalChoices[(idx+dir+n)%n]

	case 2: // theme
		idx := 0
		for i, th := range theme.All {
			if th.Name == theme.Active.Name {
				idx = i
				break
			}
		}
		n := len(theme.All)
		next := theme.All[(idx+dir+n)%n]
		a.cfg.Appearance.Theme = next.Name
		theme.SetActive(next.Name)
	}

	if err := config.Save(a.cfg); err != nil {
		a.flash(fmt.Sprintf("Could not save config: %v", err))
	} else {
		a.flash("Saved.")
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	cadence := "off"
	if a.cfg.Reminder.IntervalMinutes > 0 {
		cadence = fmt.Sprintf("every %d min", a.cfg.Reminder.IntervalMinutes)
	}

	rows := []struct{ label, value string }{
		{"Daily goal", fmt.Sprintf("%d ml", a.today.Goal)},
		{"Reminders", cadence},
		{"Theme", theme.Active.Name},
	}

	var b strings.Builder
	for i, row := range rows {
		prefix := "  "
		label := labelStyle.Render(fmt.Sprintf("%-14s", row.label))
		value := valueStyle.Render(row.value)
		if i == a.settings.cursor {
			prefix = selStyle.Render("> ")
			label = selStyle.Render(fmt.Sprintf("%-14s", row.label))
		}
		b.WriteString(prefix + label + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k to move  ·  enter or h/l to change"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Config: " + config.Path()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Data:   " + a.st.Path()))

	return components.ContentCard("Settings", b.String(), cw)
}
