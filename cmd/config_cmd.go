// Package cmd implements the waterpro CLI commands.
package cmd

import (
	"fmt"

	"github.com/Ryan56h/waterReminder/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default goal:   %d ml\n", cfg.General.DefaultGoal)
	fmt.Printf("    Data directory: %s\n", dataDir(cfg))
	fmt.Println()

	fmt.Println("  [Reminder]")
	if cfg.Reminder.IntervalMinutes > 0 {
		fmt.Printf("    Interval: %d minutes\n", cfg.Reminder.IntervalMinutes)
	} else {
		fmt.Println("    Interval: off")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", config.ResolveTheme(cfg))
	fmt.Println()

	fmt.Println("  Run `waterpro setup` to reconfigure.")
	return nil
}
