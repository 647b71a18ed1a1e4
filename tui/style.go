package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/grid"
)

// cellWidth is how many terminal columns one board cell occupies; two makes
// cells roughly square in most fonts.
const cellWidth = 2

// stateColors maps each cell state to its background color.
var stateColors = map[grid.State]tcell.Color{
	grid.Empty:   tcell.NewRGBColor(255, 255, 255),
	grid.Barrier: tcell.NewRGBColor(0, 0, 0),
	grid.Start:   tcell.NewRGBColor(255, 200, 0),
	grid.End:     tcell.NewRGBColor(0, 255, 255),
	grid.Open:    tcell.NewRGBColor(0, 255, 0),
	grid.Closed:  tcell.NewRGBColor(255, 0, 0),
	grid.Path:    tcell.NewRGBColor(255, 0, 255),
}

// stateGlyphs maps each cell state to its ASCII-mode rune.
var stateGlyphs = map[grid.State]rune{
	grid.Empty:   ' ',
	grid.Barrier: '█',
	grid.Start:   'S',
	grid.End:     'E',
	grid.Open:    '○',
	grid.Closed:  '·',
	grid.Path:    '•',
}

// cellStyle returns the style for one cell in color mode.
func cellStyle(s grid.State) tcell.Style {
	return tcell.StyleDefault.Background(stateColors[s])
}

// cellGlyph returns the rune for one cell in ASCII mode.
func cellGlyph(s grid.State) rune {
	if g, ok := stateGlyphs[s]; ok {
		return g
	}

	return '?'
}
