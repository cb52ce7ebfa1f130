package components

import (
	"fmt"
	"strings"

	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and the reminder cadence on the right.
func RenderStatusBar(width int, cadence string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [1-3]drink  [a]mount  [g]oal  [q]uit"
	right := ""
	if cadence != "" {
		right = fmt.Sprintf("Reminders: %s ", cadence)
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
