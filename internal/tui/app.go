package tui

import (
	"log/slog"
	"time"

	"runpace/internal/config"
	"runpace/internal/failure"
	"runpace/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenCalculator Screen = iota
	ScreenFavorites
	ScreenMetrics
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calculator CalculatorModel
	favorites  FavoritesModel
	metrics    MetricsModel
	help       HelpModel

	logger *slog.Logger

	// Window dimensions
	width  int
	height int

	// Status message
	status    string
	statusErr bool
}

// NewApp creates a new App with all dependencies
func NewApp(cfg *config.Config, calc *service.Calculator, favs *service.Favorites, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	units := NewUnits(cfg.Display)
	return &App{
		screen:     ScreenCalculator,
		logger:     logger,
		calculator: NewCalculatorModel(calc, favs, units),
		favorites:  NewFavoritesModel(favs, units),
		metrics:    NewMetricsModel(cfg, units, time.Now, 0, 0),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.status = ""

		// Global keybindings, unless the calculator is taking text
		if a.screen != ScreenCalculator || !a.calculator.Editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenCalculator
				return a, nil
			case "2":
				a.screen = ScreenFavorites
				return a, a.favorites.Init()
			case "3":
				a.screen = ScreenMetrics
				return a, nil
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
				}
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every screen tracks the size, not only the visible one
		m, _ := a.metrics.Update(msg)
		a.metrics = m.(MetricsModel)
		return a, nil

	case StatusMsg:
		if msg.Err {
			a.logger.Debug("status error", "screen", int(a.screen), "text", msg.Text)
		}
		a.status = msg.Text
		a.statusErr = msg.Err
		return a, nil

	case ResultMsg:
		// A new run feeds the metrics screen
		a.metrics = a.metrics.SetResult(msg.Result)
		return a, nil

	case LoadFavoriteMsg:
		a.screen = ScreenCalculator
		m, cmd := a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
		return a, cmd

	case FavoritesChangedMsg:
		// Both screens show favorite state
		m, calcCmd := a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
		m, favCmd := a.favorites.Update(msg)
		a.favorites = m.(FavoritesModel)
		return a, tea.Batch(calcCmd, favCmd)
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalculator:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
	case ScreenFavorites:
		var m tea.Model
		m, cmd = a.favorites.Update(msg)
		a.favorites = m.(FavoritesModel)
	case ScreenMetrics:
		var m tea.Model
		m, cmd = a.metrics.Update(msg)
		a.metrics = m.(MetricsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalculator:
		content = a.calculator.View()
	case ScreenFavorites:
		content = a.favorites.View()
	case ScreenMetrics:
		content = a.metrics.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Running Pace Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Calculator", ScreenCalculator},
		{"2", "Favorites", ScreenFavorites},
		{"3", "Metrics", ScreenMetrics},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return statusStyle.Render(errorStyle.Render(a.status))
	}
	return statusStyle.Render(successStyle.Render(a.status))
}

// StatusMsg replaces the status line
type StatusMsg struct {
	Text string
	Err  bool
}

// ResultMsg carries a freshly calculated run
type ResultMsg struct {
	Result service.Result
}

// LoadFavoriteMsg asks the calculator to show a saved run
type LoadFavoriteMsg struct {
	Saved service.SavedRun
}

// FavoritesChangedMsg is sent after a favorite was added or removed
type FavoritesChangedMsg struct{}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

// errorCmd reports a failure on the status line and leaves state untouched
func errorCmd(err error) tea.Cmd {
	title, message := failure.Describe(err)
	return func() tea.Msg {
		return StatusMsg{Text: title + ": " + message, Err: true}
	}
}
