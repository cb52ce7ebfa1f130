package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/stats"
	"github.com/Ryan56h/waterReminder/internal/tui/components"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/spf13/cobra"
)

var flagStatsNoChart bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Monthly intake statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsNoChart, "no-chart", false, "Skip the bar chart")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	now := time.Now()
	m := stats.ComputeMonthly(st.All(), now)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WATER INTAKE  %s", now.Format("January 2006"))))
	fmt.Println()

	if len(m.Entries) == 0 {
		fmt.Println("  No days tracked this month yet.")
		fmt.Println("  Log your first drink with `waterpro add glass`.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  Total:           %s (%s ml)\n", cli.FormatVolume(m.Total), cli.FormatNumber(int64(m.Total)))
	fmt.Printf("  Daily average:   %s\n", cli.FormatVolume(m.Average))
	fmt.Printf("  Goal attainment: %s of days\n", cli.FormatPercent(m.GoalPercentage))
	fmt.Printf("  Days tracked:    %d\n", len(m.Entries))
	fmt.Println()

	if flagStatsNoChart {
		return nil
	}

	theme.SetActive(config.ResolveTheme(cfg))
	days := make([]components.DayBar, 0, len(m.Entries))
	for _, e := range m.Entries {
		days = append(days, components.DayBar{
			Label:  strconv.Itoa(e.Day),
			Amount: e.Amount,
			Goal:   e.Goal,
		})
	}
	fmt.Println(components.GoalBarChart(days, 78, 14))
	fmt.Println()
	return nil
}
