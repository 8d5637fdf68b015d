package tiledesigner

import (
	"errors"
	"fmt"
	"math"
)

// Configuration errors returned by NewGridSpec.
var (
	ErrInvalidCellSize = errors.New("tiledesigner: cell size must be positive and finite")
	ErrInvalidGridSize = errors.New("tiledesigner: grid size must be non-zero on both axes")
	ErrInvalidOrigin   = errors.New("tiledesigner: grid origin must be finite")
)

// GridSpec describes where the grid sits in world space. It is immutable;
// construct it with NewGridSpec.
type GridSpec struct {
	cellSize Vec2
	size     GridSize
	origin   Vec2
}

// NewGridSpec validates and returns a GridSpec. cellSize is in world units
// per cell, size is the cell count per axis, and origin is the world
// position of cell (0,0)'s anchor corner.
func NewGridSpec(cellSize Vec2, size GridSize, origin Vec2) (GridSpec, error) {
	if !positiveFinite(cellSize.X) || !positiveFinite(cellSize.Y) {
		return GridSpec{}, fmt.Errorf("%w: got %vx%v", ErrInvalidCellSize, cellSize.X, cellSize.Y)
	}
	if size.Cols == 0 || size.Rows == 0 {
		return GridSpec{}, fmt.Errorf("%w: got %dx%d", ErrInvalidGridSize, size.Cols, size.Rows)
	}
	if !finite(origin.X) || !finite(origin.Y) {
		return GridSpec{}, fmt.Errorf("%w: got (%v,%v)", ErrInvalidOrigin, origin.X, origin.Y)
	}
	return GridSpec{cellSize: cellSize, size: size, origin: origin}, nil
}

// NewCenteredGridSpec returns a GridSpec whose extent is centered on the
// world origin.
func NewCenteredGridSpec(cellSize Vec2, size GridSize) (GridSpec, error) {
	origin := Vec2{
		X: -float64(size.Cols) * cellSize.X / 2,
		Y: -float64(size.Rows) * cellSize.Y / 2,
	}
	return NewGridSpec(cellSize, size, origin)
}

// MustGridSpec is like NewGridSpec but panics on error. Intended for
// package-level constants and tests.
func MustGridSpec(cellSize Vec2, size GridSize, origin Vec2) GridSpec {
	g, err := NewGridSpec(cellSize, size, origin)
	if err != nil {
		panic(err)
	}
	return g
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// CellSize returns the world size of one cell.
func (g GridSpec) CellSize() Vec2 { return g.cellSize }

// Size returns the cell count per axis.
func (g GridSpec) Size() GridSize { return g.size }

// Origin returns the world position of cell (0,0)'s anchor corner.
func (g GridSpec) Origin() Vec2 { return g.origin }

// Bounds returns the world-space rectangle covered by the grid.
func (g GridSpec) Bounds() Rect {
	return Rect{
		X:      g.origin.X,
		Y:      g.origin.Y,
		Width:  float64(g.size.Cols) * g.cellSize.X,
		Height: float64(g.size.Rows) * g.cellSize.Y,
	}
}

// InBounds reports whether c addresses a cell of this grid.
func (g GridSpec) InBounds(c CellCoord) bool {
	return c.X < g.size.Cols && c.Y < g.size.Rows
}

// CellAt maps a world-space point to the cell containing it. ok is false
// when the point is outside the grid.
//
// The sign check happens on the fractional coordinate before truncation, so
// a point just left of or above the grid never truncates into column or row
// zero. The upper bound is also compared in float, which rejects NaN,
// infinities and values beyond the uint32 range before any integer cast.
func (g GridSpec) CellAt(wx, wy float64) (c CellCoord, ok bool) {
	fx := (wx - g.origin.X) / g.cellSize.X
	fy := (wy - g.origin.Y) / g.cellSize.Y
	if !(fx >= 0 && fy >= 0) {
		return CellCoord{}, false
	}
	if !(fx < float64(g.size.Cols) && fy < float64(g.size.Rows)) {
		return CellCoord{}, false
	}
	return CellCoord{X: uint32(fx), Y: uint32(fy)}, true
}

// CellOrigin returns the world position of c's anchor corner.
func (g GridSpec) CellOrigin(c CellCoord) Vec2 {
	return Vec2{
		X: g.origin.X + float64(c.X)*g.cellSize.X,
		Y: g.origin.Y + float64(c.Y)*g.cellSize.Y,
	}
}

// CellCenter returns the world position of c's center.
func (g GridSpec) CellCenter(c CellCoord) Vec2 {
	o := g.CellOrigin(c)
	return Vec2{X: o.X + g.cellSize.X/2, Y: o.Y + g.cellSize.Y/2}
}

// CellRect returns the world-space rectangle covered by c.
func (g GridSpec) CellRect(c CellCoord) Rect {
	o := g.CellOrigin(c)
	return Rect{X: o.X, Y: o.Y, Width: g.cellSize.X, Height: g.cellSize.Y}
}
