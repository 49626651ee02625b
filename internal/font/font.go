// Package font holds the 5x7 dot-matrix glyph table used to draw text.
package font

import (
	"fmt"
	"strings"

	"pixelmask.klederson.com/internal/config"
)

// Fallback is drawn for any rune missing from the table.
const Fallback = '?'

// Glyph is a GlyphRows x GlyphCols bitmap; true marks a lit pixel.
type Glyph [config.GlyphRows][config.GlyphCols]bool

// Lit reports whether the pixel at (row, col) is set. Coordinates outside
// the bitmap are never lit.
func (g *Glyph) Lit(row, col int) bool {
	if row < 0 || row >= config.GlyphRows || col < 0 || col >= config.GlyphCols {
		return false
	}
	return g[row][col]
}

// String draws the glyph with '#' for lit pixels and '.' otherwise.
func (g *Glyph) String() string {
	var sb strings.Builder
	for row := 0; row < config.GlyphRows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < config.GlyphCols; col++ {
			if g[row][col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

var table = make(map[rune]*Glyph, len(glyphSource))

func init() {
	for r, rows := range glyphSource {
		g, err := parseGlyph(rows)
		if err != nil {
			panic(fmt.Sprintf("font: glyph %q: %v", r, err))
		}
		table[r] = g
	}
	if _, ok := table[Fallback]; !ok {
		panic("font: fallback glyph missing")
	}
}

// Lookup returns the glyph for r and whether r is in the table. Missing
// runes resolve to the Fallback glyph.
func Lookup(r rune) (*Glyph, bool) {
	if g, ok := table[r]; ok {
		return g, true
	}
	return table[Fallback], false
}

// Has reports whether r has its own glyph.
func Has(r rune) bool {
	_, ok := table[r]
	return ok
}

// Runes returns the number of glyphs in the table.
func Runes() int {
	return len(table)
}

func parseGlyph(rows [config.GlyphRows]string) (*Glyph, error) {
	var g Glyph
	for row, line := range rows {
		if len(line) != config.GlyphCols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", row, len(line), config.GlyphCols)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case '#':
				g[row][col] = true
			case '.':
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", row, col, line[col])
			}
		}
	}
	return &g, nil
}
