package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpace/internal/config"
	"runpace/internal/service"
	"runpace/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	st, err := store.OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := config.DefaultConfig()
	return NewApp(&cfg, service.NewCalculator(st, cfg.Display, nil), service.NewFavorites(st, nil), nil)
}

func TestAppNavigation(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	// Digits go to the calculator while editing
	a.Update(key("2"))
	assert.Equal(t, ScreenCalculator, a.screen)
	assert.Equal(t, "2", a.calculator.fields[0].input.Value())

	a.Update(key("esc"))
	a.Update(key("2"))
	assert.Equal(t, ScreenFavorites, a.screen)

	a.Update(key("?"))
	assert.Equal(t, ScreenHelp, a.screen)
	a.Update(key("esc"))
	assert.Equal(t, ScreenFavorites, a.screen)

	a.Update(key("3"))
	assert.Equal(t, ScreenMetrics, a.screen)
	assert.Contains(t, a.View(), "Running Pace Calculator")
}

func TestAppStatusAndResult(t *testing.T) {
	a := newTestApp(t)
	cfg := config.DefaultConfig()

	a.Update(StatusMsg{Text: "Invalid time: bad", Err: true})
	assert.Contains(t, a.View(), "Invalid time: bad")

	// Any key clears the status line
	a.Update(key("esc"))
	assert.Empty(t, a.status)

	a.Update(ResultMsg{Result: testResult(t, cfg)})
	require.NotNil(t, a.metrics.result)
	assert.Equal(t, 3000, a.metrics.result.Run.DurationSec())
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
