package tiledesigner

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the color of a blank tile.
var ColorWhite = Color{1, 1, 1, 1}

// ColorDarkGray is the color of a wall tile.
var ColorDarkGray = Color{0.25, 0.25, 0.25, 1}

// ToRGBA converts c to a premultiplied color.RGBA for drawing.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Viewport is the pixel size of the surface a camera renders into.
type Viewport struct {
	Width, Height float64
}

// valid reports whether both dimensions are positive.
func (v Viewport) valid() bool {
	return v.Width > 0 && v.Height > 0
}

// GridSize is a cell count along each axis.
type GridSize struct {
	Cols, Rows uint32
}

// CellCoord addresses a single grid cell. Column X, row Y.
type CellCoord struct {
	X, Y uint32
}

func (c CellCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// EventType identifies a kind of hover transition.
type EventType uint8

const (
	HoverLeft    EventType = iota // the pointer left a cell
	HoverEntered                  // the pointer entered a cell
)

func (t EventType) String() string {
	switch t {
	case HoverLeft:
		return "left"
	case HoverEntered:
		return "entered"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// HoverEvent is a single hover transition produced by resolution.
type HoverEvent struct {
	Type EventType
	Cell CellCoord
}

// CellEntered returns an Entered event for c.
func CellEntered(c CellCoord) HoverEvent {
	return HoverEvent{Type: HoverEntered, Cell: c}
}

// CellLeft returns a Left event for c.
func CellLeft(c CellCoord) HoverEvent {
	return HoverEvent{Type: HoverLeft, Cell: c}
}

func (e HoverEvent) String() string {
	return e.Type.String() + e.Cell.String()
}
