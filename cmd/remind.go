package cmd

import (
	"fmt"
	"time"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/journal"
	"github.com/Ryan56h/waterReminder/internal/reminder"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a reminder notification now",
	RunE:  runRemind,
}

var remindIntervalCmd = &cobra.Command{
	Use:   "interval <duration>",
	Short: "Set the reminder cadence",
	Long: `Set how often the daemon reminds you to drink, e.g. 30m, 1h, 90m.
Use 0 to turn reminders off.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemindInterval,
}

func init() {
	remindCmd.AddCommand(remindIntervalCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemind(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	trk, st, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer st.Flush()

	rec := trk.Today()
	msg := reminder.ForTime(time.Now(), rec)

	if err := newNotifier().Notify(msg.Title, msg.Body); err != nil {
		return err
	}

	if j, jErr := journal.Open(dataDir(cfg)); jErr == nil {
		_ = j.LogNotification(time.Now(), journal.KindReminder, msg.Title, msg.Body)
		_ = j.Close()
	}

	fmt.Printf("  %s\n  %s\n", msg.Title, msg.Body)
	return nil
}

func runRemindInterval(_ *cobra.Command, args []string) error {
	interval, err := time.ParseDuration(args[0])
	if err != nil || interval < 0 {
		return fmt.Errorf("invalid interval %q: use a duration like 30m or 1h, or 0 to disable", args[0])
	}

	cfg := loadConfigOrDefault()
	trk, st, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer st.Flush()

	sched := reminder.NewScheduler(newNotifier(), trk.Today, config.SaveInterval, nil)
	if err := sched.ChangeInterval(interval); err != nil {
		return err
	}
	sched.Stop()

	if interval == 0 {
		fmt.Println("  Reminders turned off.")
	} else {
		fmt.Printf("  Reminder cadence set to %s (%s).\n",
			cli.FormatInterval(interval), reminder.DescribeCadence(interval))
		fmt.Println("  A running daemon picks this up on restart.")
	}
	return nil
}
