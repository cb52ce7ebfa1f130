// Package tui provides the interactive Bubble Tea app for waterpro.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ryan56h/waterReminder/internal/config"
	"github.com/Ryan56h/waterReminder/internal/model"
	"github.com/Ryan56h/waterReminder/internal/stats"
	"github.com/Ryan56h/waterReminder/internal/store"
	"github.com/Ryan56h/waterReminder/internal/tracker"
	"github.com/Ryan56h/waterReminder/internal/tui/components"
	"github.com/Ryan56h/waterReminder/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	minContentHeight = 5

	statusTTLTicks = 4 // seconds a transient status line stays visible
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	trk *tracker.Tracker
	cfg config.Config

	// Recomputed after every mutation
	today   model.DailyRecord
	monthly model.MonthlyStats

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Custom amount entry
	entering bool
	amountIn textinput.Model
	inputErr string

	// Transient status line
	status      string
	statusTicks int

	// Per-tab state
	histCursor int
	settings   settingsState

	// First-run setup (huh form). setupVals is shared by pointer so the
	// form keeps writing to it across model copies.
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

// NewApp creates the TUI app model. needSetup triggers the first-run
// form before the tabs are shown.
func NewApp(st *store.Store, trk *tracker.Tracker, cfg config.Config, needSetup bool) App {
	a := App{
		st:        st,
		trk:       trk,
		cfg:       cfg,
		needSetup: needSetup,
	}
	if needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return tea.Batch(tickCmd(), a.setupForm.Init())
	}
	return tickCmd()
}

func (a *App) recompute() {
	a.today = a.trk.Today()
	a.monthly = stats.ComputeMonthly(a.st.All(), time.Now())
	if a.histCursor >= a.st.Len() {
		a.histCursor = a.st.Len() - 1
	}
	if a.histCursor < 0 {
		a.histCursor = 0
	}
}

func (a *App) flash(s string) {
	a.status = s
	a.statusTicks = statusTTLTicks
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tickMsg:
		if a.statusTicks > 0 {
			a.statusTicks--
			if a.statusTicks == 0 {
				a.status = ""
			}
		}
		// Midnight rollover and external writers both surface here.
		a.recompute()
		return a, tickCmd()

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			a.st.Flush()
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.entering {
			return a.updateAmountInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			a.st.Flush()
			return a, tea.Quit
		}

		// Today tab shortcuts
		if a.activeTab == 0 {
			switch key {
			case "1":
				return a.logDrink(model.PresetGlass)
			case "2":
				return a.logDrink(model.PresetCup)
			case "3":
				return a.logDrink(model.PresetBottle)
			case "a":
				a.entering = true
				a.inputErr = ""
				a.amountIn = newAmountInput()
				a.amountIn.Focus()
				return a, a.amountIn.Cursor.BlinkCmd()
			case "g":
				return a.cycleGoal()
			}
		}

		// History tab navigation
		if a.activeTab == 2 {
			switch key {
			case "j", "down":
				if a.histCursor < a.st.Len()-1 {
					a.histCursor++
				}
				return a, nil
			case "k", "up":
				if a.histCursor > 0 {
					a.histCursor--
				}
				return a, nil
			}
		}

		// Settings tab navigation
		if a.activeTab == 3 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter", "l", "right":
				return a.settingsCycle(1)
			case "h":
				return a.settingsCycle(-1)
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.entering {
		var cmd tea.Cmd
		a.amountIn, cmd = a.amountIn.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) logDrink(ml int) (tea.Model, tea.Cmd) {
	rec, err := a.trk.QuickAdd(ml)
	if err != nil {
		a.flash(err.Error())
		return a, nil
	}
	a.recompute()
	if rec.Attained() {
		a.flash(fmt.Sprintf("+%dml. Goal reached!", ml))
	} else {
		a.flash(fmt.Sprintf("+%dml. %dml to go.", ml, rec.Remaining()))
	}
	return a, nil
}

func (a App) cycleGoal() (tea.Model, tea.Cmd) {
	next := nextGoalChoice(a.today.Goal, 1)
	if _, err := a.trk.ChangeGoal(next); err != nil {
		a.flash(err.Error())
		return a, nil
	}
	a.cfg.General.DefaultGoal = next
	_ = config.Save(a.cfg)
	a.recompute()
	a.flash(fmt.Sprintf("Goal set to %dml.", next))
	return a, nil
}

func (a App) updateAmountInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.entering = false
		a.inputErr = ""
		return a, nil
	case "enter":
		raw := strings.TrimSpace(a.amountIn.Value())
		ml, err := strconv.Atoi(raw)
		if err != nil {
			a.inputErr = "Enter a number of milliliters."
			return a, nil
		}
		if _, addErr := a.trk.Add(ml); addErr != nil {
			a.inputErr = addErr.Error()
			return a, nil
		}
		a.entering = false
		a.inputErr = ""
		a.recompute()
		a.flash(fmt.Sprintf("+%dml logged.", ml))
		return a, nil
	}

	var cmd tea.Cmd
	a.amountIn, cmd = a.amountIn.Update(msg)
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  waterpro needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("💧 Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Logging"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"1", "Glass (250ml)"},
		{"2", "Cup (330ml)"},
		{"3", "Bottle (500ml)"},
		{"a", "Custom amount"},
		{"g", "Cycle daily goal"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"t m h s", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)
	statusBar := components.RenderStatusBar(w, cadenceLabel(a.cfg))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH - 1
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderTodayTab(cw, contentH)
	case 1:
		content = a.renderMonthTab(cw, contentH)
	case 2:
		content = a.renderHistoryTab(cw, contentH)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	statusLine := " "
	if a.status != "" {
		statusLine = " " + lipgloss.NewStyle().
			Foreground(theme.Active.AccentBright).Render(a.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusLine, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "amount in ml"
	ti.CharLimit = 4
	ti.Width = 12
	return ti
}

func nextGoalChoice(current, dir int) int {
	for i, g := range model.GoalChoices {
		if g == current {
			n := len(model.GoalChoices)
			return model.GoalChoices[(i+dir+n)%n]
		}
	}
	return model.DefaultGoal
}

func cadenceLabel(cfg config.Config) string {
	if cfg.Reminder.IntervalMinutes <= 0 {
		return "off"
	}
	return fmt.Sprintf("every %dm", cfg.Reminder.IntervalMinutes)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
