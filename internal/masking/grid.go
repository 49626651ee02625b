package masking

// Layer is a rows x cols matrix of palette symbols.
type Layer [][]rune

// newLayer builds a Layer of the given size, filling each cell with fn.
func newLayer(size GridSize, fn func(row, col int) rune) Layer {
	if size.Width == 0 {
		return nil
	}
	layer := make(Layer, size.Height)
	for row := range layer {
		cells := make([]rune, size.Width)
		for col := range cells {
			cells[col] = fn(row, col)
		}
		layer[row] = cells
	}
	return layer
}

// Rows returns the number of rows in the layer.
func (l Layer) Rows() int {
	return len(l)
}

// Cols returns the number of columns in the layer, 0 when empty.
func (l Layer) Cols() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// At returns the symbol at (row, col), or UnknownSymbol when the coordinate
// is not populated.
func (l Layer) At(row, col int) rune {
	if row < 0 || row >= len(l) {
		return UnknownSymbol
	}
	cells := l[row]
	if col < 0 || col >= len(cells) {
		return UnknownSymbol
	}
	return cells[col]
}

// Equal reports whether two layers hold identical symbols.
func (l Layer) Equal(other Layer) bool {
	if len(l) != len(other) {
		return false
	}
	for row := range l {
		if len(l[row]) != len(other[row]) {
			return false
		}
		for col := range l[row] {
			if l[row][col] != other[row][col] {
				return false
			}
		}
	}
	return true
}

// String renders the layer one row per line.
func (l Layer) String() string {
	buf := make([]rune, 0, l.Rows()*(l.Cols()+1))
	for i, cells := range l {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, cells...)
	}
	return string(buf)
}

// Grid holds the two masking layers for one displayed string.
// Dynamic and Static always share dimensions.
type Grid struct {
	Dynamic Layer
	Static  Layer
}

// Empty reports whether the grid has no cells.
func (g Grid) Empty() bool {
	return g.Dynamic.Rows() == 0 && g.Static.Rows() == 0
}

// Size returns the grid extent, zero for an empty grid.
func (g Grid) Size() GridSize {
	if g.Empty() {
		return GridSize{}
	}
	return GridSize{Width: g.Static.Cols(), Height: g.Static.Rows()}
}

// WithDynamic returns a grid sharing g's static layer with a new dynamic layer.
func (g Grid) WithDynamic(dynamic Layer) Grid {
	return Grid{Dynamic: dynamic, Static: g.Static}
}
