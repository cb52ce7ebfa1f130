// Package theme defines color themes for the waterpro TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (water blue)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Yellow        lipgloss.Color
	BarGoal       lipgloss.Color // Goal outline bars in the intake chart
	BarOnTrack    lipgloss.Color // Intake bars for days that met the goal
	BarOffTrack   lipgloss.Color // Intake bars for days that fell short
}

// Active is the currently selected theme.
var Active = WaterDark

// WaterDark is the default theme, cool blues on a deep background.
var WaterDark = Theme{
	Name:         "dark",
	Background:   lipgloss.Color("#0E1420"),
	Surface:      lipgloss.Color("#1A2332"),
	SurfaceHover: lipgloss.Color("#243247"),
	Border:       lipgloss.Color("#2E3F5A"),
	BorderBright: lipgloss.Color("#44587A"),
	BorderAccent: lipgloss.Color("#3FA4FF"),
	TextDim:      lipgloss.Color("#44587A"),
	TextMuted:    lipgloss.Color("#8699B8"),
	TextPrimary:  lipgloss.Color("#EAF2FF"),
	Accent:       lipgloss.Color("#3FA4FF"),
	AccentBright: lipgloss.Color("#6FC0FF"),
	AccentDim:    lipgloss.Color("#16283E"),
	Green:        lipgloss.Color("#4FCE8B"),
	Orange:       lipgloss.Color("#FF9F43"),
	Red:          lipgloss.Color("#F06A6A"),
	Yellow:       lipgloss.Color("#E5C454"),
	BarGoal:      lipgloss.Color("#2E3F5A"),
	BarOnTrack:   lipgloss.Color("#3FA4FF"),
	BarOffTrack:  lipgloss.Color("#FF9F43"),
}

// WaterLight mirrors WaterDark for light terminal backgrounds.
var WaterLight = Theme{
	Name:         "light",
	Background:   lipgloss.Color("#F4F8FE"),
	Surface:      lipgloss.Color("#E6EEF9"),
	SurfaceHover: lipgloss.Color("#D5E3F5"),
	Border:       lipgloss.Color("#BCD0E8"),
	BorderBright: lipgloss.Color("#93AFD2"),
	BorderAccent: lipgloss.Color("#1C7ED6"),
	TextDim:      lipgloss.Color("#93AFD2"),
	TextMuted:    lipgloss.Color("#5B7396"),
	TextPrimary:  lipgloss.Color("#14233C"),
	Accent:       lipgloss.Color("#1C7ED6"),
	AccentBright: lipgloss.Color("#3391E8"),
	AccentDim:    lipgloss.Color("#CFE3F8"),
	Green:        lipgloss.Color("#2F9E5F"),
	Orange:       lipgloss.Color("#E8590C"),
	Red:          lipgloss.Color("#D6336C"),
	Yellow:       lipgloss.Color("#B08A1A"),
	BarGoal:      lipgloss.Color("#BCD0E8"),
	BarOnTrack:   lipgloss.Color("#1C7ED6"),
	BarOffTrack:  lipgloss.Color("#E8590C"),
}

// All available themes.
var All = []Theme{WaterDark, WaterLight}

// ByName returns a theme by its name, defaulting to WaterDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return WaterDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
