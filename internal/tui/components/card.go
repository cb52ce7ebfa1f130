// Package components provides reusable TUI widgets for the waterpro app.
package components

import (
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly
// totalWidth. First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small card with label, value, and an optional
// secondary line. outerWidth is the total rendered width including border.
func MetricCard(label, value, sub string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(value)
	if sub != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(sub)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders a row of metric cards side by side spanning
// exactly totalWidth.
func MetricCardRow(cards []struct{ Label, Value, Sub string }, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(cards))

	rendered := make([]string, 0, len(cards))
	for i, c := range cards {
		rendered = append(rendered, MetricCard(c.Label, c.Value, c.Sub, widths[i]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	content := ""
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
