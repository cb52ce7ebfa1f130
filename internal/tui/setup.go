package tui

import (
	"fmt"

	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	goal        int
	intervalMin int
	theme       string
}

// newSetupForm builds the first-run setup form.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.goal = model.DefaultGoal
	vals.intervalMin = 60
	vals.theme = theme.Active.Name

	goalOpts := make([]huh.Option[int], 0, len(model.GoalChoices))
	for _, g := range model.GoalChoices {
		goalOpts = append(goalOpts, huh.NewOption(fmt.Sprintf("%d ml", g), g))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Daily water goal").
				Description("How much do you want to drink each day?").
				Options(goalOpts...).
				Value(&vals.goal),
			huh.NewSelect[int]().
				Title("Reminder cadence").
				Description("How often should waterpro nudge you?").
				Options(
					huh.NewOption("Every 30 minutes", 30),
					huh.NewOption("Every hour", 60),
					huh.NewOption("Every 1.5 hours", 90),
					huh.NewOption("Every 2 hours", 120),
					huh.NewOption("Off", 0),
				).
				Value(&vals.intervalMin),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

// applySetup writes the form answers to config and today's record.
func (a *App) applySetup() {
	if a.setupVals == nil {
		return
	}
	a.cfg.General.DefaultGoal = a.setupVals.goal
	a.cfg.Reminder.IntervalMinutes = a.setupVals.intervalMin
	a.cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(a.setupVals.theme)
	_ = config.Save(a.cfg)

	if _, err := a.trk.ChangeGoal(a.setupVals.goal); err == nil {
		a.st.Flush()
	}
}
