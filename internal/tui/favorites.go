package tui

import (
	"fmt"

	"runpace/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// FavoritesModel is the saved runs screen model
type FavoritesModel struct {
	favs    *service.Favorites
	units   Units
	saved   []service.SavedRun
	cursor  int
	loading bool
	err     error
}

// NewFavoritesModel creates a new favorites model
func NewFavoritesModel(favs *service.Favorites, units Units) FavoritesModel {
	return FavoritesModel{
		favs:    favs,
		units:   units,
		loading: true,
	}
}

// Init initializes the favorites screen
func (m FavoritesModel) Init() tea.Cmd {
	return m.loadFavorites
}

type favoritesLoadedMsg struct {
	saved []service.SavedRun
	err   error
}

func (m FavoritesModel) loadFavorites() tea.Msg {
	saved, err := m.favs.List()
	return favoritesLoadedMsg{saved: saved, err: err}
}

// Update handles messages
func (m FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.saved = msg.saved
		if m.cursor >= len(m.saved) {
			m.cursor = max(len(m.saved)-1, 0)
		}

	case FavoritesChangedMsg:
		return m, m.loadFavorites

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.saved)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m, m.loadFavorites
		case "enter":
			if m.cursor < len(m.saved) {
				saved := m.saved[m.cursor]
				return m, func() tea.Msg {
					return LoadFavoriteMsg{Saved: saved}
				}
			}
		case "d", "delete":
			if m.cursor < len(m.saved) {
				if err := m.favs.Remove(m.saved[m.cursor].ID); err != nil {
					return m, errorCmd(err)
				}
				return m, tea.Batch(
					statusCmd("Removed from favorites"),
					func() tea.Msg { return FavoritesChangedMsg{} },
				)
			}
		}
	}
	return m, nil
}

// View renders the favorites list
func (m FavoritesModel) View() string {
	if m.loading {
		return "\n  Loading favorites..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.saved) == 0 {
		return "\n  No favorites yet. Calculate a run and press 'f' to save it."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Favorites (%d)", len(m.saved)))
	sections = append(sections, title)

	// Header
	header := tableHeaderStyle.Render(fmt.Sprintf("   %-12s  %9s  %13s  %-18s  %s",
		"Distance", "Duration", "Pace", "Entered as", "Saved"))
	sections = append(sections, header)

	// Rows
	for i, s := range m.saved {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-12s  %9s  %13s  %-18s  %s",
			cursor,
			m.units.FormatDistance(s.Run.DistanceKm()),
			s.Run.Duration(),
			m.units.FormatPace(float64(s.Run.PaceSecPerKm())),
			s.Pair.String(),
			humanize.Time(s.CreatedAt),
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	footer := statusStyle.Render("  j/k or arrows: move  enter: open  d: delete  r: refresh")
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
