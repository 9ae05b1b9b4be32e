package tui

import (
	"fmt"
	"math"
	"time"

	"runpace/internal/config"
	"runpace/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// MetricsModel shows profile metrics and race forecasts for the current run
type MetricsModel struct {
	cfg      *config.Config
	units    Units
	now      func() time.Time
	result   *service.Result
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewMetricsModel creates a new metrics model
func NewMetricsModel(cfg *config.Config, units Units, now func() time.Time, width, height int) MetricsModel {
	m := MetricsModel{
		cfg:    cfg,
		units:  units,
		now:    now,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the metrics screen
func (m MetricsModel) Init() tea.Cmd {
	return nil
}

// SetResult replaces the run the metrics are computed for
func (m MetricsModel) SetResult(result service.Result) MetricsModel {
	m.result = &result
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
	}
	return m
}

// Update handles messages
func (m MetricsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the metrics screen
func (m MetricsModel) View() string {
	if m.result == nil {
		return "\n  Calculate a run first to see its metrics and forecasts."
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m MetricsModel) renderContent() string {
	if m.result == nil {
		return ""
	}

	sections := []string{
		m.renderProfile(),
		m.renderForecasts(),
		m.renderChart(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m MetricsModel) renderProfile() string {
	profile := m.cfg.Profile
	metrics := service.ProfileMetrics(m.result.Run, profile, m.now())

	title := cardTitleStyle.Render("Your Run")

	cadence := fmt.Sprintf("%d spm", metrics.Cadence)
	if metrics.Cadence == 0 {
		cadence = warningStyle.Render(metrics.CadenceNote)
	}

	bmi := "-"
	if metrics.BMI > 0 && !math.IsInf(metrics.BMI, 0) {
		bmi = fmt.Sprintf("%.1f", metrics.BMI)
	}

	lines := []string{
		title,
		RenderMetric("Weight", m.units.FormatWeight(profile.WeightKg), ""),
		RenderMetric("Height", m.units.FormatHeight(profile.HeightCm), ""),
		RenderMetric("Calories", metrics.Calories+" kcal", ""),
		RenderMetric("Cadence", cadence, ""),
		RenderMetric("BMI", bmi, metrics.BMICategory),
	}

	if metrics.HasAge {
		z := metrics.Zones
		lines = append(lines, "", cardTitleStyle.Render(fmt.Sprintf("Heart Rate (age %d)", metrics.Age)))
		zones := []struct {
			label string
			bpm   int
		}{
			{"Max", z.Max},
			{"Max performance", z.MaxPerformance},
			{"Condition building", z.ConditionBuilding},
			{"Fat burning", z.FatBurning},
		}
		for _, zone := range zones {
			bar := RenderProgressBar(float64(zone.bpm)/float64(z.Max), 20)
			lines = append(lines, RenderMetric(zone.label, fmt.Sprintf("%3d bpm ", zone.bpm), "")+bar)
		}
	} else {
		lines = append(lines, "", helpDescStyle.Render("Set profile.birth_date in the config to see heart rate zones."))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m MetricsModel) renderForecasts() string {
	title := cardTitleStyle.Render("Race Forecasts")

	forecasts, err := service.Forecasts(m.result.Run, m.cfg.Forecast.FatigueCoefficient, m.cfg.Forecast.TargetDistancesKm)
	if err != nil {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, errorStyle.Render(err.Error())))
	}
	if len(forecasts) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No other target distances"))
	}

	sourcePace := float64(m.result.Run.PaceSecPerKm())
	header := tableHeaderStyle.Render(fmt.Sprintf("%-14s  %12s  %9s  %13s  %s", "Race", "Distance", "Time", "Pace", "vs now"))
	rows := []string{header}
	for _, f := range forecasts {
		pace := float64(f.Run.PaceSecPerKm())
		row := fmt.Sprintf("%-14s  %12s  %9s  %13s  ",
			f.Label,
			m.units.FormatDistance(f.TargetKm),
			f.Run.Duration(),
			m.units.FormatPace(pace),
		)
		rows = append(rows, tableRowStyle.Render(row+RenderPaceDelta(m.units.PaceDelta(sourcePace, pace))))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m MetricsModel) renderChart() string {
	from, to := m.chartRange()
	title := cardTitleStyle.Render(fmt.Sprintf("Predicted Pace (%s) from %s to %s",
		m.units.PaceLabel(), m.units.FormatDistance(from), m.units.FormatDistance(to)))

	curve, err := service.ForecastCurve(m.result.Run, m.cfg.Forecast.FatigueCoefficient, from, to, service.ForecastCurvePoints)
	if err != nil {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, errorStyle.Render(err.Error())))
	}

	graph := asciigraph.Plot(m.units.ConvertPaceData(curve),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

// chartRange spans the run's own distance and every forecast target
func (m MetricsModel) chartRange() (float64, float64) {
	from := m.result.Run.DistanceKm()
	to := from
	targets := m.cfg.Forecast.TargetDistancesKm
	if len(targets) == 0 {
		targets = service.DefaultTargetsKm
	}
	for _, km := range targets {
		from = math.Min(from, km)
		to = math.Max(to, km)
	}
	if to == from {
		to = from * 2
	}
	return from, to
}
