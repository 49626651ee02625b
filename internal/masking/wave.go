package masking

import (
	"math"
	"time"

	"pixelmask.klederson.com/internal/config"
)

// Wave draws a diagonal sine stripe on the dynamic layer over a random
// static layer. The stripe travels with wall-clock time, so its speed does
// not depend on how often updates are requested.
type Wave struct{}

func (Wave) Name() string { return "Wave" }

func (Wave) Description() string {
	return "Characters change in wave patterns over time"
}

func (Wave) Generate(text string) Grid {
	size := CalculateGridSize(text)
	return Grid{
		Dynamic: newLayer(size, func(row, col int) rune {
			return waveSymbol(row, col, 0)
		}),
		Static: newLayer(size, randomCell),
	}
}

func (Wave) UpdateDynamic(text string, _ Grid, now time.Time) Layer {
	t := WavePhase(now)
	return newLayer(CalculateGridSize(text), func(row, col int) rune {
		return waveSymbol(row, col, t)
	})
}

// WavePhase converts a wall-clock reading into the wave's time term.
func WavePhase(now time.Time) float64 {
	return float64(now.UnixMilli()) * config.WaveSpeed
}

func waveSymbol(row, col int, t float64) rune {
	phase := math.Sin(float64(col)*config.WaveColStep + float64(row)*config.WaveRowStep + t)
	return Symbol(paletteIndex(phase))
}
