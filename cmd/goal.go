package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/model"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [ml]",
	Short: "Show or set today's goal",
	Long: fmt.Sprintf(`Show today's goal, or set it to one of the presets: %s.
Changing the goal affects today and future days; past days keep the goal
they were tracked with.`, goalChoiceList()),
	Args: cobra.MaximumNArgs(1),
	RunE: runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func goalChoiceList() string {
	parts := make([]string, len(model.GoalChoices))
	for i, g := range model.GoalChoices {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, ", ")
}

func runGoal(_ *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()
	trk, st, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer st.Flush()

	if len(args) == 0 {
		rec := trk.Today()
		fmt.Printf("  Today's goal: %s (%s logged, %s)\n",
			cli.FormatVolume(rec.Goal),
			cli.FormatVolume(rec.Amount),
			cli.FormatPercent(rec.Percent()))
		return nil
	}

	goal, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal %q: choose from %s", args[0], goalChoiceList())
	}

	rec, err := trk.ChangeGoal(goal)
	if err != nil {
		return err
	}

	cfg.General.DefaultGoal = goal
	if saveErr := config.Save(cfg); saveErr != nil {
		fmt.Printf("  Warning: could not save config: %v\n", saveErr)
	}

	fmt.Printf("  Goal set to %s. Today: %s (%s)\n",
		cli.FormatVolume(rec.Goal),
		cli.FormatVolume(rec.Amount),
		cli.FormatPercent(rec.Percent()))
	return nil
}
