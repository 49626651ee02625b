package masking

import (
	"unicode/utf8"

	"pixelmask.klederson.com/internal/config"
)

// GridSize is the cell extent of a masking grid for a given text.
type GridSize struct {
	Width  int
	Height int
}

// CalculateGridSize returns the grid extent for text: one CellWidth cell per
// character with a GlyphGap column between neighbours. Height is always
// GridHeight; width is 0 for empty text.
func CalculateGridSize(text string) GridSize {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return GridSize{Width: 0, Height: config.GridHeight}
	}
	return GridSize{
		Width:  n*config.CellWidth + (n-1)*config.GlyphGap,
		Height: config.GridHeight,
	}
}

// Cells returns Width*Height.
func (g GridSize) Cells() int {
	return g.Width * g.Height
}
