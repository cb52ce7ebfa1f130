package cmd

import (
	"fmt"
	"time"

	"github.com/Ryan56h/waterReminder/internal/cli"

	"github.com/spf13/cobra"
)

var flagHistoryDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Per-day intake table",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryDays, "days", "n", 30, "Most recent days to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	dates := st.Dates()
	if len(dates) == 0 {
		fmt.Println("\n  No days tracked yet.")
		return nil
	}

	// Newest first
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}
	if flagHistoryDays > 0 && len(dates) > flagHistoryDays {
		dates = dates[:flagHistoryDays]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(dates))
	for _, d := range dates {
		rec, _ := st.Record(d)
		met := ""
		if rec.Attained() {
			met = "✓"
		}
		t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
		rows = append(rows, []string{
			d.String(),
			cli.FormatDayOfWeek(int(t.Weekday())),
			cli.FormatVolume(rec.Amount),
			cli.FormatVolume(rec.Goal),
			cli.FormatPercent(rec.Percent()),
			met,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Intake", "Goal", "Progress", "Met"},
		Rows:    rows,
	}))

	return nil
}
