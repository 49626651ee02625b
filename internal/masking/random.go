package masking

import "time"

// Random fills every cell of both layers with independent uniform draws.
// Updates ignore all previous state.
type Random struct{}

func (Random) Name() string { return "Random" }

func (Random) Description() string {
	return "Completely random character selection at all positions"
}

func (Random) Generate(text string) Grid {
	size := CalculateGridSize(text)
	return Grid{
		Dynamic: newLayer(size, randomCell),
		Static:  newLayer(size, randomCell),
	}
}

func (Random) UpdateDynamic(text string, _ Grid, _ time.Time) Layer {
	return newLayer(CalculateGridSize(text), randomCell)
}

func randomCell(_, _ int) rune {
	return RandomSymbol()
}
