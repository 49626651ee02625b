package masking

import (
	"time"

	"pixelmask.klederson.com/internal/config"
)

// Block tiles the grid with BlockSize x BlockSize blocks that share one
// symbol per layer. The dynamic layer shifts one palette step every
// BlockStepMillis of wall-clock time, however often it is polled.
type Block struct{}

func (Block) Name() string { return "Block" }

func (Block) Description() string {
	return "Generate patterns using same characters in block units"
}

func (Block) Generate(text string) Grid {
	size := CalculateGridSize(text)
	return Grid{
		Dynamic: newLayer(size, func(row, col int) rune {
			br, bc := blockOf(row, col)
			return Symbol(br + bc)
		}),
		Static: newLayer(size, func(row, col int) rune {
			br, bc := blockOf(row, col)
			return Symbol(br*2 + bc*3)
		}),
	}
}

func (Block) UpdateDynamic(text string, _ Grid, now time.Time) Layer {
	offset := BlockOffset(now)
	return newLayer(CalculateGridSize(text), func(row, col int) rune {
		br, bc := blockOf(row, col)
		return Symbol(br + bc + offset)
	})
}

// BlockOffset returns the time-quantized palette shift for now.
func BlockOffset(now time.Time) int {
	return int((now.UnixMilli() / config.BlockStepMillis) % int64(PaletteLen()))
}

func blockOf(row, col int) (int, int) {
	return row / config.BlockSize, col / config.BlockSize
}
