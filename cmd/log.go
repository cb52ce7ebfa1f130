package cmd

import (
	"fmt"
	"time"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/journal"
	"github.com/Ryan56h/waterReminder/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagLogLimit int
	flagLogDate  string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the notification and intake journal",
	Long: `Show recent notifications from the journal. With --date, show the
intake events recorded for that day instead.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&flagLogLimit, "limit", "n", 20, "Max notifications to show")
	logCmd.Flags().StringVar(&flagLogDate, "date", "", "Show intake events for a day (YYYY-MM-DD)")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	j, err := journal.Open(dataDir(cfg))
	if err != nil {
		return err
	}
	defer j.Close()

	if flagLogDate != "" {
		return printIntakeLog(j, flagLogDate)
	}

	entries, err := j.RecentNotifications(flagLogLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No notifications recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("NOTIFICATION LOG"))
	fmt.Println()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.SentAt.Local().Format("2006-01-02 15:04"),
			e.Kind,
			e.Title,
			e.Body,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Sent", "Kind", "Title", "Message"},
		Rows:    rows,
	}))
	return nil
}

func printIntakeLog(j *journal.Journal, rawDate string) error {
	date, err := model.ParseDate(rawDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", rawDate)
	}

	events, err := j.IntakeForDate(date)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Printf("\n  No intake events recorded for %s.\n", date)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("INTAKE  %s", date)))
	fmt.Println()

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.At.Local().Format(time.Kitchen),
			cli.FormatVolume(e.ML),
			cli.FormatVolume(e.Total),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Time", "Amount", "Running total"},
		Rows:    rows,
	}))
	return nil
}
