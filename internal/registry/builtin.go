package registry

import (
	"errors"

	"github.com/vovakirdan/tui-pipes/internal/terminal"
)

// Default size of the void backend when none is given.
const (
	voidCols = 80
	voidRows = 24
)

func init() {
	Register("ansi", "escape sequences written straight to the terminal", newANSI)
	Register("tcell", "cell buffer rendered through tcell", newTCell)
	Register("void", "headless, discards all output", newVoid)
}

func newANSI(opts Options) (terminal.Backend, error) {
	if opts.Console != nil {
		return terminal.NewANSI(opts.Console, opts.Profile), nil
	}

	console, err := terminal.NewStdConsole()
	if err != nil {
		return nil, err
	}
	return terminal.NewANSI(console, console.ColorProfile()), nil
}

func newTCell(opts Options) (terminal.Backend, error) {
	if opts.Console != nil {
		return nil, errors.New("tcell backend only drives the local terminal")
	}
	return terminal.NewTCellScreen()
}

func newVoid(opts Options) (terminal.Backend, error) {
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = voidCols
	}
	if rows <= 0 {
		rows = voidRows
	}
	return terminal.NewVoid(cols, rows), nil
}
