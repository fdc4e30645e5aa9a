package pipe

import (
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/rng"
)

// Pipe is a cursor that draws one glyph per tick as it wanders the grid.
type Pipe struct {
	pos   core.Position
	dirs  History[core.Direction]
	color *Color
	kind  Kind
}

// Spawn creates a pipe on a random edge of the grid heading inward.
// size must not be empty.
func Spawn(size core.Size, r rng.Rand, mode ColorMode, palette Palette, kind Kind) *Pipe {
	dir := core.RandomDirection(r)
	return &Pipe{
		pos:   spawnPosition(dir, size, r),
		dirs:  NewHistory(dir),
		color: GenerateColor(r, mode, palette),
		kind:  kind,
	}
}

// Duplicate creates a pipe with the same color and kind at a fresh edge position.
func (p *Pipe) Duplicate(size core.Size, r rng.Rand) *Pipe {
	dir := core.RandomDirection(r)
	var color *Color
	if p.color != nil {
		c := *p.color
		color = &c
	}
	return &Pipe{
		pos:   spawnPosition(dir, size, r),
		dirs:  NewHistory(dir),
		color: color,
		kind:  p.kind,
	}
}

// spawnPosition places a pipe heading dir on the opposite edge.
func spawnPosition(dir core.Direction, size core.Size, r rng.Rand) core.Position {
	switch dir {
	case core.Up:
		return core.Position{X: r.IntRange(0, size.Width), Y: size.Height - 1}
	case core.Down:
		return core.Position{X: r.IntRange(0, size.Width), Y: 0}
	case core.Left:
		return core.Position{X: size.Width - 1, Y: r.IntRange(0, size.Height)}
	default:
		return core.Position{X: 0, Y: r.IntRange(0, size.Height)}
	}
}

// Tick moves the pipe one cell and maybe turns it.
// Returns false once the pipe has left the grid; it should then be replaced.
func (p *Pipe) Tick(size core.Size, r rng.Rand, turnChance, hueShift float64) bool {
	dir := p.dirs.Current()
	if !p.pos.MoveIn(dir, size) {
		return false
	}
	if hueShift != 0 && p.color != nil {
		p.color.ShiftHue(hueShift)
	}
	p.dirs.Update(dir.MaybeTurn(r, turnChance))
	return true
}

// Glyph returns the glyph to draw at the current position.
func (p *Pipe) Glyph() rune {
	cur := p.dirs.Current()
	prev, ok := p.dirs.Previous()
	if !ok {
		prev = cur
	}
	return p.kind.Glyph(prev, cur)
}

// Position returns the current cell.
func (p *Pipe) Position() core.Position {
	return p.pos
}

// Direction returns the current heading.
func (p *Pipe) Direction() core.Direction {
	return p.dirs.Current()
}

// Color returns the pipe color. ok is false when the terminal default is used.
func (p *Pipe) Color() (c core.Color, ok bool) {
	if p.color == nil {
		return core.Color{}, false
	}
	return p.color.Value, true
}

// Kind returns the glyph style.
func (p *Pipe) Kind() Kind {
	return p.kind
}
