package components

import (
	"strings"

	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Today", Key: 't'},
	{Name: "Month", Key: 'm'},
	{Name: "History", Key: 'h'},
	{Name: "Settings", Key: 's'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Shortcut letter is always the first rune of the name.
		parts = append(parts,
			dimKeyStyle.Render("[")+keyStyle.Render(string(tab.Name[0]))+dimKeyStyle.Render("]")+
				inactiveStyle.Render(tab.Name[1:]))
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
