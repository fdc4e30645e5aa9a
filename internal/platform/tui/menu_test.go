package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/pipe"
)

func defaultSettings(t *testing.T, cfg config.Config) config.Settings {
	t.Helper()
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func press(m PickerModel, msgs ...tea.KeyMsg) (PickerModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(PickerModel)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerStartsFromSettings(t *testing.T) {
	s := defaultSettings(t, config.Config{
		Kinds:     []string{"curved"},
		ColorMode: config.Ptr("rgb"),
		Palette:   config.Ptr("pastel"),
	})
	sel := NewPickerModel(s).Selection()

	if sel.Kind.Name != "curved" {
		t.Errorf("Kind = %s, expected curved", sel.Kind.Name)
	}
	if sel.ColorMode != pipe.ColorModeRGB {
		t.Errorf("ColorMode = %v, expected rgb", sel.ColorMode)
	}
	if sel.Palette.Name != "pastel" {
		t.Errorf("Palette = %s, expected pastel", sel.Palette.Name)
	}
}

func TestPickerNavigation(t *testing.T) {
	m := NewPickerModel(defaultSettings(t, config.Config{}))

	if m.Field() != FieldKind {
		t.Fatalf("Field() = %v, expected Kind", m.Field())
	}

	m, _ = press(m, keyRight)
	if got := m.Selection().Kind.Name; got != "light" {
		t.Errorf("Kind after right = %s, expected light", got)
	}

	m, _ = press(m, keyLeft, keyLeft)
	presets := pipe.Presets()
	if got := m.Selection().Kind.Name; got != presets[len(presets)-1].Name {
		t.Errorf("Kind after wrapping left = %s, expected %s", got, presets[len(presets)-1].Name)
	}

	m, _ = press(m, keyDown, keyRight)
	if m.Field() != FieldColorMode {
		t.Errorf("Field() = %v, expected Color", m.Field())
	}
	if got := m.Selection().ColorMode; got != pipe.ColorModeRGB {
		t.Errorf("ColorMode = %v, expected rgb", got)
	}

	m, _ = press(m, keyDown, keyDown)
	if m.Field() != FieldKind {
		t.Errorf("Field() after wrapping down = %v, expected Kind", m.Field())
	}

	m, _ = press(m, keyUp, runeKey('l'))
	if m.Field() != FieldPalette {
		t.Errorf("Field() after up = %v, expected Palette", m.Field())
	}
	if got := m.Selection().Palette.Name; got != "darker" {
		t.Errorf("Palette = %s, expected darker", got)
	}
}

func TestPickerSelect(t *testing.T) {
	m := NewPickerModel(defaultSettings(t, config.Config{}))

	m, cmd := press(m, keyEnter)
	if !m.Chosen() {
		t.Error("Chosen() = false after enter")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty once a style is chosen")
	}
}

func TestPickerQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := press(NewPickerModel(defaultSettings(t, config.Config{})), msg)
		if !m.IsQuitting() || m.Chosen() {
			t.Errorf("%s: IsQuitting/Chosen = %v/%v, expected true/false", msg, m.IsQuitting(), m.Chosen())
		}
		if cmd == nil {
			t.Errorf("%s should quit the program", msg)
		}
	}
}

func TestPickerView(t *testing.T) {
	m := NewPickerModel(defaultSettings(t, config.Config{}))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := next.(PickerModel).View()

	for _, want := range []string{"P I P E S", "Kind", "heavy", "Color", "ansi", "rgb only", "┓"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestSelectionApply(t *testing.T) {
	s := defaultSettings(t, config.Config{Kinds: []string{"heavy", "light"}, NumPipes: config.Ptr[uint](3)})
	kind, _ := pipe.KindByName("dots")

	out, err := Selection{Kind: kind, ColorMode: pipe.ColorModeNone, Palette: pipe.DefaultPalette()}.Apply(s)
	if err != nil {
		t.Fatal(err)
	}
	if out.Kinds.String() != "dots" {
		t.Errorf("Kinds = %s, expected dots", out.Kinds)
	}
	if out.ColorMode != pipe.ColorModeNone {
		t.Errorf("ColorMode = %v, expected none", out.ColorMode)
	}
	if out.NumPipes != 3 {
		t.Errorf("NumPipes = %d, expected 3 to be kept", out.NumPipes)
	}
}
