package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Calculator"},
		{"2", "Favorites"},
		{"3", "Metrics and forecasts"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	// Calculator keys
	calcSection := m.renderSection("Calculator (editing)", []keyHelp{
		{"tab", "Switch between the two fields"},
		{"up / down", "Choose distance, duration, pace or speed"},
		{"ctrl+u", "Cycle the field's unit"},
		{"enter", "Calculate"},
		{"esc", "Stop editing"},
	})
	sections = append(sections, calcSection)

	resultSection := m.renderSection("Calculator (result)", []keyHelp{
		{"enter / e", "Edit the fields"},
		{"f", "Save or remove favorite"},
		{"c", "Clear"},
	})
	sections = append(sections, resultSection)

	// Favorites keys
	favSection := m.renderSection("Favorites", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Open in calculator"},
		{"d", "Delete"},
		{"r", "Refresh list"},
	})
	sections = append(sections, favSection)

	// Input formats
	sections = append(sections, m.renderFormatsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(fastColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderFormatsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(fastColor).Render("Input Formats"))
	lines = append(lines, "")

	formats := []struct {
		name string
		desc string
	}{
		{"Duration", "h:mm:ss, m:ss or seconds, e.g. 1:45:11 or 50:00"},
		{"Pace", "m:ss per km or mile, e.g. 5:00"},
		{"Distance / Speed", "Decimal number, '.' or ',' as separator"},
		{"Forecasts", "Riegel: t2 = t1 × (d2/d1)^k, k from forecast.fatigue_coefficient"},
	}

	for _, f := range formats {
		lines = append(lines, "  "+helpKeyStyle.Render(f.name))
		lines = append(lines, "  "+helpDescStyle.Render(f.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
