package tui

import (
	"strings"

	"runpace/internal/failure"
	"runpace/internal/run"
	"runpace/internal/service"
	"runpace/internal/units"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputField is one parameter selector with its text input
type inputField struct {
	param run.Param
	unit  units.Unit // 0 means the display unit
	input textinput.Model
}

// CalculatorModel is the calculator screen model
type CalculatorModel struct {
	calc  *service.Calculator
	favs  *service.Favorites
	units Units

	fields  [2]inputField
	focus   int
	editing bool

	result   *service.Result
	favorite bool
}

// NewCalculatorModel creates a new calculator model editing distance and duration
func NewCalculatorModel(calc *service.Calculator, favs *service.Favorites, units Units) CalculatorModel {
	m := CalculatorModel{
		calc:    calc,
		favs:    favs,
		units:   units,
		editing: true,
	}
	m.fields[0] = newInputField(run.Distance)
	m.fields[1] = newInputField(run.Duration)
	m.fields[0].input.Focus()
	return m
}

func newInputField(p run.Param) inputField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 14
	ti.Placeholder = placeholder(p)
	return inputField{param: p, input: ti}
}

func placeholder(p run.Param) string {
	switch p {
	case run.Duration:
		return "h:mm:ss"
	case run.Pace:
		return "m:ss"
	case run.Speed:
		return "12.0"
	default:
		return "10.0"
	}
}

// Init initializes the calculator screen
func (m CalculatorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadLastInput)
}

type lastInputMsg struct {
	input service.Input
	ok    bool
	err   error
}

func (m CalculatorModel) loadLastInput() tea.Msg {
	in, ok, err := m.calc.LastInput()
	return lastInputMsg{input: in, ok: ok, err: err}
}

// Editing reports whether keystrokes go to the text inputs
func (m CalculatorModel) Editing() bool {
	return m.editing
}

// Update handles messages
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lastInputMsg:
		if msg.err != nil {
			return m, errorCmd(msg.err)
		}
		if !msg.ok {
			return m, nil
		}
		for i, f := range []service.Field{msg.input.First, msg.input.Second} {
			m.setField(i, f.Param, f.Unit)
			m.fields[i].input.SetValue(f.Text)
		}
		return m.calculate()

	case LoadFavoriteMsg:
		return m.load(msg.Saved)

	case FavoritesChangedMsg:
		m.favorite = m.isFavorite()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "enter", "e", "i":
			m.editing = true
			return m, m.fields[m.focus].input.Focus()
		case "f":
			return m.toggleFavorite()
		case "c":
			m.result = nil
			m.favorite = false
			for i := range m.fields {
				m.fields[i].input.Reset()
			}
			m.editing = true
			return m, m.fields[m.focus].input.Focus()
		}
		return m, nil
	}

	// Cursor blink
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m CalculatorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		for i := range m.fields {
			m.fields[i].input.Blur()
		}
		return m, nil
	case "tab", "shift+tab":
		m.fields[m.focus].input.Blur()
		m.focus = 1 - m.focus
		return m, m.fields[m.focus].input.Focus()
	case "up":
		m.cycleParam(-1)
		return m, nil
	case "down":
		m.cycleParam(1)
		return m, nil
	case "ctrl+u":
		m.cycleUnit()
		return m, nil
	case "enter":
		return m.calculate()
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

// setField changes the parameter of field i, keeping its text
func (m *CalculatorModel) setField(i int, p run.Param, unit units.Unit) {
	if p == 0 {
		p = m.fields[i].param
	}
	m.fields[i].param = p
	m.fields[i].unit = unit
	m.fields[i].input.Placeholder = placeholder(p)
}

func (m *CalculatorModel) cycleParam(step int) {
	current := m.fields[m.focus].param
	idx := 0
	for i, p := range run.Params {
		if p == current {
			idx = i
		}
	}
	n := len(run.Params)
	next := run.Params[((idx+step)%n+n)%n]
	m.setField(m.focus, next, 0)
}

func (m *CalculatorModel) cycleUnit() {
	f := m.fields[m.focus]
	if f.param == run.Duration {
		return
	}
	options := units.InCategory(f.param.Category())
	current := m.unitOf(f)
	for i, u := range options {
		if u == current {
			m.fields[m.focus].unit = options[(i+1)%len(options)]
			return
		}
	}
}

func (m CalculatorModel) unitOf(f inputField) units.Unit {
	if f.unit != 0 {
		return f.unit
	}
	return m.units.For(f.param)
}

func (m CalculatorModel) input() service.Input {
	field := func(f inputField) service.Field {
		return service.Field{Param: f.param, Text: f.input.Value(), Unit: f.unit}
	}
	return service.Input{First: field(m.fields[0]), Second: field(m.fields[1])}
}

// calculate runs the calculator on the current fields. Failures leave the
// previous result in place.
func (m CalculatorModel) calculate() (tea.Model, tea.Cmd) {
	result, err := m.calc.Calculate(m.input())
	if err != nil {
		return m, errorCmd(err)
	}
	m.result = &result
	m.favorite = m.isFavorite()
	return m, resultCmd(result)
}

func (m CalculatorModel) load(saved service.SavedRun) (tea.Model, tea.Cmd) {
	result, err := m.calc.Describe(saved.Run, saved.Pair)
	if err != nil {
		return m, errorCmd(err)
	}

	a, b := saved.Pair.Params()
	for i, p := range []run.Param{a, b} {
		text, err := saved.Run.Format(p, m.units.For(p))
		if err != nil {
			return m, errorCmd(err)
		}
		m.setField(i, p, 0)
		m.fields[i].input.SetValue(text)
	}

	m.result = &result
	m.favorite = true
	m.editing = false
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
	return m, tea.Batch(resultCmd(result), statusCmd("Loaded "+saved.Run.String()))
}

func (m CalculatorModel) toggleFavorite() (tea.Model, tea.Cmd) {
	if m.result == nil {
		return m, errorCmd(failure.InvalidArgument("Nothing to save", "calculate a run first"))
	}
	if m.favs == nil {
		return m, nil
	}

	isFavorite, err := m.favs.Toggle(m.result.Run, m.result.Pair)
	if err != nil {
		return m, errorCmd(err)
	}
	m.favorite = isFavorite

	text := "Removed from favorites"
	if isFavorite {
		text = "Saved to favorites"
	}
	return m, tea.Batch(statusCmd(text), func() tea.Msg { return FavoritesChangedMsg{} })
}

func (m CalculatorModel) isFavorite() bool {
	if m.result == nil || m.favs == nil {
		return false
	}
	ok, err := m.favs.Contains(m.result.Run)
	return err == nil && ok
}

func resultCmd(result service.Result) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: result}
	}
}

// View renders the calculator screen
func (m CalculatorModel) View() string {
	sections := []string{m.renderInputs()}
	if m.result != nil {
		sections = append(sections, m.renderResult())
	}
	sections = append(sections, m.renderKeys())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalculatorModel) renderInputs() string {
	title := cardTitleStyle.Render("Enter two values")

	var rows []string
	for i, f := range m.fields {
		label := f.param.Label()
		if unit := m.unitOf(f); unit != 0 {
			label += " (" + unit.Symbol() + ")"
		}

		cursor := "  "
		if m.editing && i == m.focus {
			cursor = navActiveStyle.Render("> ")
		}
		rows = append(rows, cursor+inputLabelStyle.Render(label)+f.input.View())
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n")))
}

func (m CalculatorModel) renderResult() string {
	title := cardTitleStyle.Render("Result")
	if m.favorite {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", favoriteStyle.Render("★ favorite"))
	}

	r := m.result
	lines := []string{
		title,
		RenderMetric("Distance", r.Distance, ""),
		RenderMetric("Duration", r.Duration, ""),
		RenderMetric("Pace", r.Pace, ""),
		RenderMetric("Speed", r.Speed, ""),
		helpDescStyle.Render("from " + strings.ReplaceAll(r.Pair.String(), "+", " and ")),
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m CalculatorModel) renderKeys() string {
	var keys []string
	if m.editing {
		keys = []string{
			RenderKeyHelp("tab", "switch field"),
			RenderKeyHelp("up/down", "change value"),
			RenderKeyHelp("ctrl+u", "unit"),
			RenderKeyHelp("enter", "calculate"),
			RenderKeyHelp("esc", "done"),
		}
	} else {
		keys = []string{
			RenderKeyHelp("enter", "edit"),
			RenderKeyHelp("f", "favorite"),
			RenderKeyHelp("c", "clear"),
		}
	}
	return statusStyle.Render("  " + strings.Join(keys, "  "))
}
