package tiledesigner

// Painter writes the palette's active block into every cell the pointer
// enters. It is a separate hover subscriber from the highlight so it can be
// enabled and disabled on its own.
type Painter struct {
	tiles   *TileGrid
	palette *Palette
	painted int
}

// NewPainter returns a painter that paints into tiles from palette.
func NewPainter(tiles *TileGrid, palette *Palette) *Painter {
	return &Painter{tiles: tiles, palette: palette}
}

// Apply paints on Entered events and ignores everything else.
func (p *Painter) Apply(e HoverEvent) {
	if e.Type == HoverEntered {
		p.Paint(e.Cell)
	}
}

// Paint writes the active block into c.
func (p *Painter) Paint(c CellCoord) {
	if p.tiles.Set(c, p.palette.Active()) {
		p.painted++
	}
}

// Painted returns how many cell changes the painter has made.
func (p *Painter) Painted() int {
	return p.painted
}

// Palette returns the palette the painter reads from.
func (p *Painter) Palette() *Palette {
	return p.palette
}

// Tiles returns the tile grid the painter writes to.
func (p *Painter) Tiles() *TileGrid {
	return p.tiles
}
