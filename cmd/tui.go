package cmd

import (
	"fmt"

	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/tui"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive TUI",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault()
	theme.SetActive(config.ResolveTheme(cfg))

	// Force TrueColor so the themed styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	trk, st, err := newTracker(cfg)
	if err != nil {
		return err
	}
	defer st.Flush()

	app := tui.NewApp(st, trk, cfg, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
