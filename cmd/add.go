package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/journal"
	"github.com/Ryan56h/waterReminder/internal/model"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <ml|glass|cup|bottle>",
	Short: "Log a drink",
	Long: `Log a drink for today. Accepts an amount in milliliters or one of
the presets: glass (250ml), cup (330ml), bottle (500ml).`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault()
	trk, st, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer st.Flush()

	var (
		rec    model.DailyRecord
		ml     int
		addErr error
	)

	switch args[0] {
	case "glass":
		ml = model.PresetGlass
		rec, addErr = trk.QuickAdd(ml)
	case "cup":
		ml = model.PresetCup
		rec, addErr = trk.QuickAdd(ml)
	case "bottle":
		ml = model.PresetBottle
		rec, addErr = trk.QuickAdd(ml)
	default:
		ml, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("unknown amount %q: use a number of ml or glass/cup/bottle", args[0])
		}
		rec, addErr = trk.Add(ml)
	}
	if addErr != nil {
		return addErr
	}

	logIntake(cfg, ml, rec.Amount)

	fmt.Printf("  Logged %s. Today: %s / %s (%s)\n",
		cli.FormatVolume(ml),
		cli.FormatVolume(rec.Amount),
		cli.FormatVolume(rec.Goal),
		cli.FormatPercent(rec.Percent()))
	if rec.Attained() {
		fmt.Println("  Goal reached!")
	}
	return nil
}

// logIntake records the intake event in the journal, best-effort.
func logIntake(cfg config.Config, ml, total int) {
	j, err := journal.Open(dataDir(cfg))
	if err != nil {
		return
	}
	defer j.Close()
	now := time.Now()
	_ = j.LogIntake(now, model.Today(now), ml, total)
}
