package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"runpace/internal/timecodec"
)

var (
	accentColor  = lipgloss.Color("#7C3AED")
	fastColor    = lipgloss.Color("#10B981")
	cautionColor = lipgloss.Color("#F59E0B")
	slowColor    = lipgloss.Color("#EF4444")
	dimColor     = lipgloss.Color("#6B7280")
	brightColor  = lipgloss.Color("#F9FAFB")
)

// Screen chrome: title bar, tabs and the status line.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brightColor).
			Background(accentColor).
			Padding(0, 1).
			MarginBottom(1)

	navStyle         = lipgloss.NewStyle().Foreground(dimColor).MarginBottom(1)
	navActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	navInactiveStyle = lipgloss.NewStyle().Foreground(dimColor)

	statusStyle  = lipgloss.NewStyle().Foreground(dimColor).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(slowColor)
	successStyle = lipgloss.NewStyle().Foreground(fastColor)
	warningStyle = lipgloss.NewStyle().Foreground(cautionColor)

	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpDescStyle = lipgloss.NewStyle().Foreground(dimColor)
)

// Calculator form and the favorites list.
var (
	inputLabelStyle = lipgloss.NewStyle().Foreground(brightColor).Width(22)
	favoriteStyle   = lipgloss.NewStyle().Bold(true).Foreground(cautionColor)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				BorderBottom(true).
				BorderForeground(dimColor).
				Padding(0, 1)
	tableRowStyle      = lipgloss.NewStyle().Padding(0, 1)
	tableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Background(accentColor).
				Foreground(brightColor).
				Padding(0, 1)
)

// Metrics screen cards.
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(1, 2)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)

	metricLabelStyle = lipgloss.NewStyle().Foreground(dimColor).Width(20)
	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(brightColor)
	metricNoteStyle  = lipgloss.NewStyle().Foreground(dimColor)

	fasterStyle = lipgloss.NewStyle().Foreground(fastColor)
	slowerStyle = lipgloss.NewStyle().Foreground(slowColor)

	zoneFilledStyle = lipgloss.NewStyle().Foreground(fastColor)
	zoneEmptyStyle  = lipgloss.NewStyle().Foreground(dimColor)
)

// RenderMetric renders a labelled value followed by an optional dimmed note,
// e.g. the BMI category.
func RenderMetric(label, value, note string) string {
	parts := []string{metricLabelStyle.Render(label), metricValueStyle.Render(value)}
	if note != "" {
		parts = append(parts, metricNoteStyle.Render(" "+note))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

// PaceDeltaText describes a pace difference in seconds: "-12s" is faster,
// "+1:05" is slower and "±0s" is the same pace.
func PaceDeltaText(deltaSec int) string {
	sign := "+"
	switch {
	case deltaSec == 0:
		return "±0s"
	case deltaSec < 0:
		sign = "-"
		deltaSec = -deltaSec
	}

	text := sign + timecodec.FormatSeconds(deltaSec)
	if deltaSec < 60 {
		text += "s"
	}
	return text
}

// RenderPaceDelta colors PaceDeltaText: green when faster, red when slower.
func RenderPaceDelta(deltaSec int) string {
	text := PaceDeltaText(deltaSec)
	switch {
	case deltaSec < 0:
		return fasterStyle.Render(text)
	case deltaSec > 0:
		return slowerStyle.Render(text)
	default:
		return metricNoteStyle.Render(text)
	}
}

// RenderProgressBar renders a bar of width cells filled to fraction, which
// is clamped to [0, 1].
func RenderProgressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(filled, width))

	return zoneFilledStyle.Render(strings.Repeat("█", filled)) +
		zoneEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// RenderKeyHelp renders one "key description" pair of the help line.
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
