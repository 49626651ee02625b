package masking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownAlgorithm is returned by Lookup for names not in the registry.
var ErrUnknownAlgorithm = errors.New("unknown masking algorithm")

// Algorithm populates masking grids. Generate builds both layers from
// scratch; UpdateDynamic returns a replacement dynamic layer and never
// touches the static one. now is the wall-clock reading for the update.
type Algorithm interface {
	Name() string
	Description() string
	Generate(text string) Grid
	UpdateDynamic(text string, current Grid, now time.Time) Layer
}

var registry = []Algorithm{
	Random{},
	Wave{},
	Block{},
}

// Algorithms returns the registered algorithms in display order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	copy(out, registry)
	return out
}

// Default returns the algorithm selected at startup.
func Default() Algorithm {
	return registry[0]
}

// Lookup finds an algorithm by name, ignoring case.
func Lookup(name string) (Algorithm, error) {
	for _, a := range registry {
		if strings.EqualFold(a.Name(), strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// IndexOf returns the registry position of a, or -1.
func IndexOf(a Algorithm) int {
	if a == nil {
		return -1
	}
	for i, r := range registry {
		if r.Name() == a.Name() {
			return i
		}
	}
	return -1
}

// Next returns the algorithm after a, wrapping around. A step of -1 moves
// backwards.
func Next(a Algorithm, step int) Algorithm {
	n := len(registry)
	i := IndexOf(a)
	if i < 0 {
		return Default()
	}
	i = ((i+step)%n + n) % n
	return registry[i]
}
