// Package pipe implements the pipe entity: its glyph styles, its colors and
// the per-tick movement that draws a continuous line across the grid.
package pipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// ErrUnknownKind is returned when a kind name does not match any preset.
var ErrUnknownKind = errors.New("unknown pipe kind")

// Kind is a glyph style: four straight glyphs and four corners.
// Width overrides the measured display width when it undercounts, 0 means measure.
type Kind struct {
	Name string

	Up, Down, Left, Right rune

	TopLeft, TopRight, BottomLeft, BottomRight rune

	Width int
}

var presets = []Kind{
	{
		Name: "heavy",
		Up:   '┃', Down: '┃', Left: '━', Right: '━',
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
	},
	{
		Name: "light",
		Up:   '│', Down: '│', Left: '─', Right: '─',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	},
	{
		Name: "curved",
		Up:   '│', Down: '│', Left: '─', Right: '─',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	},
	{
		Name: "knobby",
		Up:   '╽', Down: '╿', Left: '╼', Right: '╾',
		TopLeft: '┎', TopRight: '┒', BottomLeft: '┖', BottomRight: '┚',
	},
	{
		Name: "emoji",
		Up:   '👆', Down: '👇', Left: '👈', Right: '👉',
		TopLeft: '👌', TopRight: '👌', BottomLeft: '👌', BottomRight: '👌',
	},
	{
		Name: "outline",
		Up:   '║', Down: '║', Left: '═', Right: '═',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	},
	{
		Name: "dots",
		Up:   '•', Down: '•', Left: '•', Right: '•',
		TopLeft: '•', TopRight: '•', BottomLeft: '•', BottomRight: '•',
		Width: 2,
	},
	{
		Name: "blocks",
		Up:   '█', Down: '█', Left: '█', Right: '█',
		TopLeft: '█', TopRight: '█', BottomLeft: '█', BottomRight: '█',
	},
	{
		Name: "sus",
		Up:   'ඞ', Down: 'ඞ', Left: 'ඞ', Right: 'ඞ',
		TopLeft: 'ඞ', TopRight: 'ඞ', BottomLeft: 'ඞ', BottomRight: 'ඞ',
		Width: 2,
	},
}

// Presets returns every built-in kind in display order.
func Presets() []Kind {
	out := make([]Kind, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the names of the built-in kinds.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, k := range presets {
		names[i] = k.Name
	}
	return names
}

// KindByName looks up a preset, ignoring case and surrounding spaces.
func KindByName(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, k := range presets {
		if k.Name == key {
			return k, nil
		}
	}
	return Kind{}, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownKind, name, strings.Join(PresetNames(), ", "))
}

// Glyphs returns the eight glyphs of the kind.
func (k Kind) Glyphs() [8]rune {
	return [8]rune{k.Up, k.Down, k.Left, k.Right, k.TopLeft, k.TopRight, k.BottomLeft, k.BottomRight}
}

// Straight returns the glyph for moving in d without turning.
func (k Kind) Straight(d core.Direction) rune {
	switch d {
	case core.Up:
		return k.Up
	case core.Down:
		return k.Down
	case core.Left:
		return k.Left
	default:
		return k.Right
	}
}

// Glyph returns the glyph drawn at a cell entered moving prev and left moving cur.
// Panics on a reverse pair: pipes only ever turn by 90 degrees.
func (k Kind) Glyph(prev, cur core.Direction) rune {
	switch {
	case prev == cur:
		return k.Straight(cur)
	case prev == core.Up && cur == core.Left, prev == core.Right && cur == core.Down:
		return k.TopRight
	case prev == core.Up && cur == core.Right, prev == core.Left && cur == core.Down:
		return k.TopLeft
	case prev == core.Down && cur == core.Left, prev == core.Right && cur == core.Up:
		return k.BottomRight
	case prev == core.Down && cur == core.Right, prev == core.Left && cur == core.Up:
		return k.BottomLeft
	}
	panic(fmt.Sprintf("pipe: unreachable direction transition %v -> %v", prev, cur))
}

// DisplayWidth returns the number of terminal columns a glyph of this kind occupies.
func (k Kind) DisplayWidth() int {
	width := core.Max(k.Width, 1)
	for _, r := range k.Glyphs() {
		width = core.Max(width, runewidth.RuneWidth(r))
	}
	return width
}

// Sample renders the kind as a short line: a straight run and the four corners.
func (k Kind) Sample() string {
	return string([]rune{k.Right, k.Right, k.TopRight, k.Up, k.BottomLeft, k.TopLeft, k.BottomRight})
}
