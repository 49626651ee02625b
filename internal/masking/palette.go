package masking

import "math/rand"

// UnknownSymbol is returned for reads outside a populated layer.
const UnknownSymbol = '?'

// palette is the fixed, ordered symbol set every algorithm draws from.
var palette = [...]rune{'!', '?', '@', '#', '$', '%', '^', '&', '*', '(', ')'}

// PaletteLen returns the number of symbols in the palette.
func PaletteLen() int {
	return len(palette)
}

// Symbol returns the palette entry at index i, wrapping modulo the palette size.
func Symbol(i int) rune {
	k := len(palette)
	i %= k
	if i < 0 {
		i += k
	}
	return palette[i]
}

// RandomSymbol draws a palette symbol uniformly at random.
// math/rand is enough here, the masking is purely cosmetic.
func RandomSymbol() rune {
	return palette[rand.Intn(len(palette))]
}

// InPalette reports whether r is one of the palette symbols.
func InPalette(r rune) bool {
	for _, s := range palette {
		if s == r {
			return true
		}
	}
	return false
}

// paletteIndex maps a phase in [-1, 1] onto a palette index.
func paletteIndex(phase float64) int {
	k := float64(len(palette))
	idx := int(((phase + 1) * k) / 2)
	return idx % len(palette)
}
