package tiledesigner

// TileGrid is the in-memory block layout of the grid. Cells are stored
// row-major and start out Blank.
type TileGrid struct {
	data []BlockKind
	size GridSize
}

// NewTileGrid creates a blank tile grid sized for grid.
func NewTileGrid(grid GridSpec) *TileGrid {
	size := grid.Size()
	return &TileGrid{
		data: make([]BlockKind, int(size.Cols)*int(size.Rows)),
		size: size,
	}
}

// Size returns the grid dimensions.
func (t *TileGrid) Size() GridSize {
	return t.size
}

// At returns the block at c. Out-of-range cells report Blank.
func (t *TileGrid) At(c CellCoord) BlockKind {
	if c.X >= t.size.Cols || c.Y >= t.size.Rows {
		return BlockBlank
	}
	return t.data[int(c.Y)*int(t.size.Cols)+int(c.X)]
}

// Set stores k at c and reports whether the cell changed.
// Out-of-range cells are ignored.
func (t *TileGrid) Set(c CellCoord, k BlockKind) bool {
	if c.X >= t.size.Cols || c.Y >= t.size.Rows {
		return false
	}
	i := int(c.Y)*int(t.size.Cols) + int(c.X)
	if t.data[i] == k {
		return false
	}
	t.data[i] = k
	return true
}

// Fill sets every cell to k.
func (t *TileGrid) Fill(k BlockKind) {
	for i := range t.data {
		t.data[i] = k
	}
}

// Count returns how many cells hold k.
func (t *TileGrid) Count(k BlockKind) int {
	n := 0
	for _, v := range t.data {
		if v == k {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (t *TileGrid) Each(fn func(c CellCoord, k BlockKind)) {
	cols := int(t.size.Cols)
	for i, k := range t.data {
		fn(CellCoord{X: uint32(i % cols), Y: uint32(i / cols)}, k)
	}
}
