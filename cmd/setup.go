package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to waterpro!")
	fmt.Println()

	// 1. Daily goal
	fmt.Println("  1. Daily water goal")
	for i, g := range model.GoalChoices {
		def := ""
		if g == model.DefaultGoal {
			def = " [default]"
		}
		fmt.Printf("     (%d) %d ml%s\n", i+1, g, def)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	cfg.General.DefaultGoal = model.DefaultGoal
	for i, g := range model.GoalChoices {
		if choice == fmt.Sprintf("%d", i+1) {
			cfg.General.DefaultGoal = g
		}
	}
	fmt.Println()

	// 2. Reminder cadence
	fmt.Println("  2. Reminder cadence")
	fmt.Println("     (1) Every 30 minutes")
	fmt.Println("     (2) Every hour [default]")
	fmt.Println("     (3) Every 1.5 hours")
	fmt.Println("     (4) Every 2 hours")
	fmt.Println("     (5) Off")
	fmt.Print("     > ")
	cadence, _ := reader.ReadString('\n')
	switch strings.TrimSpace(cadence) {
	case "1":
		cfg.Reminder.IntervalMinutes = 30
	case "3":
		cfg.Reminder.IntervalMinutes = 90
	case "4":
		cfg.Reminder.IntervalMinutes = 120
	case "5":
		cfg.Reminder.IntervalMinutes = 0
	default:
		cfg.Reminder.IntervalMinutes = 60
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Dark [default]")
	fmt.Println("     (2) Light")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "light"
	default:
		cfg.Appearance.Theme = "dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `waterpro setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
