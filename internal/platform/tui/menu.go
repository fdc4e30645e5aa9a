// Package tui provides the Bubble Tea style picker and the SSH server that
// serves the screensaver to remote terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/pipe"
)

// PickerField is a row of the picker.
type PickerField int

const (
	FieldKind PickerField = iota
	FieldColorMode
	FieldPalette
	fieldCount
)

func (f PickerField) String() string {
	switch f {
	case FieldKind:
		return "Kind"
	case FieldColorMode:
		return "Color"
	case FieldPalette:
		return "Palette"
	default:
		return "?"
	}
}

var colorModes = []pipe.ColorMode{pipe.ColorModeANSI, pipe.ColorModeRGB, pipe.ColorModeNone}

// Selection is the style chosen in the picker.
type Selection struct {
	Kind      pipe.Kind
	ColorMode pipe.ColorMode
	Palette   pipe.Palette
}

// Apply returns s with the selection's kind, color mode and palette.
func (sel Selection) Apply(s config.Settings) (config.Settings, error) {
	kinds, err := pipe.NewKindSet(sel.Kind)
	if err != nil {
		return s, err
	}
	s.Kinds = kinds
	s.ColorMode = sel.ColorMode
	s.Palette = sel.Palette
	return s, nil
}

// PickerModel is the Bubble Tea model for choosing a pipe style.
type PickerModel struct {
	kinds    []pipe.Kind
	palettes []pipe.Palette

	kind, mode, palette int
	field               PickerField

	width    int
	height   int
	keys     PickerKeyMap
	help     help.Model
	theme    PickerTheme
	chosen   bool
	quitting bool
}

// NewPickerModel creates a picker starting at the given settings.
func NewPickerModel(s config.Settings) PickerModel {
	m := PickerModel{
		kinds:    pipe.Presets(),
		palettes: pipe.Palettes(),
		keys:     DefaultPickerKeyMap(),
		help:     help.New(),
		theme:    DefaultPickerTheme(),
	}

	if ks := s.Kinds.Kinds(); len(ks) > 0 {
		m.kind = indexOf(m.kinds, func(k pipe.Kind) bool { return k.Name == ks[0].Name })
	}
	m.mode = indexOf(colorModes, func(c pipe.ColorMode) bool { return c == s.ColorMode })
	m.palette = indexOf(m.palettes, func(p pipe.Palette) bool { return p.Name == s.Palette.Name })
	return m
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return 0
}

// WithTheme returns the model using theme.
func (m PickerModel) WithTheme(theme PickerTheme) PickerModel {
	m.theme = theme
	return m
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.field = (m.field + fieldCount - 1) % fieldCount

	case key.Matches(msg, m.keys.Down):
		m.field = (m.field + 1) % fieldCount

	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)

	case key.Matches(msg, m.keys.Right):
		m.cycle(1)
	}

	return m, nil
}

// cycle moves the value of the active row by delta, wrapping around.
func (m *PickerModel) cycle(delta int) {
	wrap := func(i, n int) int { return ((i+delta)%n + n) % n }

	switch m.field {
	case FieldKind:
		m.kind = wrap(m.kind, len(m.kinds))
	case FieldColorMode:
		m.mode = wrap(m.mode, len(colorModes))
	case FieldPalette:
		m.palette = wrap(m.palette, len(m.palettes))
	}
}

func (m PickerModel) value(f PickerField) string {
	switch f {
	case FieldKind:
		return m.kinds[m.kind].Name
	case FieldColorMode:
		return colorModes[m.mode].String()
	case FieldPalette:
		name := m.palettes[m.palette].Name
		if colorModes[m.mode] != pipe.ColorModeRGB {
			name += " (rgb only)"
		}
		return name
	}
	return ""
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render("P I P E S"))
	b.WriteString("\n\n")

	for f := FieldKind; f < fieldCount; f++ {
		label, value := m.theme.Label, m.theme.Value
		if f == m.field {
			label, value = m.theme.LabelActive, m.theme.ValueActive
		}
		line := fmt.Sprintf("%s%s %s %s",
			label.Render(f.String()),
			m.theme.Arrow.Render("<"),
			value.Render(m.value(f)),
			m.theme.Arrow.Render(">"),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	sel := m.Selection()
	b.WriteString("\n")
	b.WriteString(m.theme.Preview.Render(RenderPreview(sel.Kind, sel.ColorMode, sel.Palette)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

// Selection returns the style currently shown.
func (m PickerModel) Selection() Selection {
	return Selection{
		Kind:      m.kinds[m.kind],
		ColorMode: colorModes[m.mode],
		Palette:   m.palettes[m.palette],
	}
}

// Field returns the active row.
func (m PickerModel) Field() PickerField {
	return m.field
}

// Chosen returns true if the user confirmed a style.
func (m PickerModel) Chosen() bool {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// PickerResult holds the result of running the picker.
type PickerResult struct {
	Selection Selection
	Quit      bool
}

// RunPicker runs the picker and returns the chosen style.
func RunPicker(s config.Settings, opts ...tea.ProgramOption) (PickerResult, error) {
	model := NewPickerModel(s)
	if s.ColorMode == pipe.ColorModeNone {
		model = model.WithTheme(MonochromePickerTheme())
	}

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{Quit: true}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok || !m.Chosen() {
		return PickerResult{Quit: true}, nil
	}
	return PickerResult{Selection: m.Selection()}, nil
}
