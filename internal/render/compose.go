package render

import (
	"pixelmask.klederson.com/internal/config"
	"pixelmask.klederson.com/internal/font"
	"pixelmask.klederson.com/internal/masking"
)

// CellKind classifies a composed cell by the layer it was drawn from.
type CellKind uint8

const (
	KindBackground CellKind = iota // glyph margin or unlit bitmap pixel, static layer
	KindPixel                      // lit glyph pixel, dynamic layer
	KindGap                        // separator column, static layer
)

// Cell is one composed position.
type Cell struct {
	Symbol rune
	Kind   CellKind
}

// Frame is the composed display: GridHeight rows of cells.
type Frame [][]Cell

// Compose walks text glyph by glyph and picks each cell's symbol from the
// dynamic layer for lit pixels and the static layer for everything else.
// Positions the grid does not cover come back as masking.UnknownSymbol.
func Compose(text string, grid masking.Grid) Frame {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	glyphs := make([]*font.Glyph, len(runes))
	for i, r := range runes {
		glyphs[i], _ = font.Lookup(r)
	}

	width := masking.CalculateGridSize(text).Width
	frame := make(Frame, config.GridHeight)
	for row := range frame {
		cells := make([]Cell, 0, width)
		col := 0
		for i, g := range glyphs {
			for x := 0; x < config.CellWidth; x++ {
				if g.Lit(row-config.GlyphMargin, x-config.GlyphMargin) {
					cells = append(cells, Cell{Symbol: grid.Dynamic.At(row, col), Kind: KindPixel})
				} else {
					cells = append(cells, Cell{Symbol: grid.Static.At(row, col), Kind: KindBackground})
				}
				col++
			}
			if i < len(glyphs)-1 {
				for x := 0; x < config.GlyphGap; x++ {
					cells = append(cells, Cell{Symbol: grid.Static.At(row, col), Kind: KindGap})
					col++
				}
			}
		}
		frame[row] = cells
	}
	return frame
}

// Width returns the number of columns in the frame.
func (f Frame) Width() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Lines returns the frame as plain strings, one per row.
func (f Frame) Lines() []string {
	lines := make([]string, len(f))
	for i, cells := range f {
		buf := make([]rune, len(cells))
		for j, c := range cells {
			buf[j] = c.Symbol
		}
		lines[i] = string(buf)
	}
	return lines
}
