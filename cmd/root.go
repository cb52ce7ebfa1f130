package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/Ryan56h/waterReminder/internal/cli"
	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/notify"
	"github.com/Ryan56h/waterReminder/internal/store"
	"github.com/Ryan56h/waterReminder/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "waterpro",
	Short: "Daily water intake tracker and reminder",
	Long:  "Track your daily water intake, set goals, and get reminded to drink.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data home)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress desktop notifications")
}

// loadConfigOrDefault loads config, returning defaults on error so
// commands always have something to work with.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

func openStore(cfg config.Config) (*store.Store, error) {
	return store.Open(dataDir(cfg))
}

func newNotifier() notify.Notifier {
	if flagQuiet {
		return notify.Console{}
	}
	return notify.Desktop{}
}

func newTracker(cfg config.Config) (*tracker.Tracker, *store.Store, error) {
	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return tracker.New(st, newNotifier(), time.Now), st, nil
}

// runStatus is the bare `waterpro` invocation: today's progress at a glance.
func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	trk, st, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer st.Flush()

	rec := trk.Today()

	fmt.Println()
	fmt.Println(cli.RenderTitle("TODAY"))
	fmt.Println()
	fmt.Printf("  %s of %s  (%s)\n",
		cli.FormatVolume(rec.Amount),
		cli.FormatVolume(rec.Goal),
		cli.FormatPercent(rec.Percent()))
	fmt.Printf("  %s\n", cli.RenderFillBar(rec.Percent(), 40))
	if rec.Attained() {
		fmt.Println("  Goal reached. Nice work!")
	} else {
		fmt.Printf("  %s to go.\n", cli.FormatVolume(rec.Remaining()))
	}
	fmt.Println()
	return nil
}
