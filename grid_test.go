package tiledesigner

import (
	"errors"
	"math"
	"testing"
)

func testGrid() GridSpec {
	return MustGridSpec(Vec2{X: 8, Y: 8}, GridSize{Cols: 8, Rows: 8}, Vec2{})
}

func TestNewGridSpecRejects(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	tests := []struct {
		name   string
		cell   Vec2
		size   GridSize
		origin Vec2
		want   error
	}{
		{"zero cell width", Vec2{0, 8}, GridSize{8, 8}, Vec2{}, ErrInvalidCellSize},
		{"zero cell height", Vec2{8, 0}, GridSize{8, 8}, Vec2{}, ErrInvalidCellSize},
		{"negative cell", Vec2{-8, 8}, GridSize{8, 8}, Vec2{}, ErrInvalidCellSize},
		{"nan cell", Vec2{nan, 8}, GridSize{8, 8}, Vec2{}, ErrInvalidCellSize},
		{"infinite cell", Vec2{8, inf}, GridSize{8, 8}, Vec2{}, ErrInvalidCellSize},
		{"zero cols", Vec2{8, 8}, GridSize{0, 8}, Vec2{}, ErrInvalidGridSize},
		{"zero rows", Vec2{8, 8}, GridSize{8, 0}, Vec2{}, ErrInvalidGridSize},
		{"nan origin", Vec2{8, 8}, GridSize{8, 8}, Vec2{nan, 0}, ErrInvalidOrigin},
		{"infinite origin", Vec2{8, 8}, GridSize{8, 8}, Vec2{0, -inf}, ErrInvalidOrigin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGridSpec(tt.cell, tt.size, tt.origin)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGridSpec error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustGridSpecPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGridSpec with zero cell size did not panic")
		}
	}()
	MustGridSpec(Vec2{}, GridSize{Cols: 1, Rows: 1}, Vec2{})
}

func TestGridSpecAccessors(t *testing.T) {
	g := MustGridSpec(Vec2{X: 4, Y: 6}, GridSize{Cols: 3, Rows: 2}, Vec2{X: 10, Y: -5})
	if g.CellSize() != (Vec2{X: 4, Y: 6}) {
		t.Errorf("CellSize = %v", g.CellSize())
	}
	if g.Size() != (GridSize{Cols: 3, Rows: 2}) {
		t.Errorf("Size = %v", g.Size())
	}
	if g.Origin() != (Vec2{X: 10, Y: -5}) {
		t.Errorf("Origin = %v", g.Origin())
	}
	if b := g.Bounds(); b != (Rect{X: 10, Y: -5, Width: 12, Height: 12}) {
		t.Errorf("Bounds = %v", b)
	}
}

func TestCenteredGridSpec(t *testing.T) {
	g, err := NewCenteredGridSpec(Vec2{X: 8, Y: 8}, GridSize{Cols: 8, Rows: 8})
	if err != nil {
		t.Fatal(err)
	}
	if g.Origin() != (Vec2{X: -32, Y: -32}) {
		t.Errorf("Origin = %v, want (-32,-32)", g.Origin())
	}
	if c, ok := g.CellAt(0, 0); !ok || c != (CellCoord{X: 4, Y: 4}) {
		t.Errorf("CellAt(0,0) = %v,%v, want (4,4)", c, ok)
	}
}

func TestGridCellAt(t *testing.T) {
	g := testGrid()
	tests := []struct {
		name   string
		wx, wy float64
		want   CellCoord
		ok     bool
	}{
		{"origin", 0, 0, CellCoord{0, 0}, true},
		{"inside first cell", 7.999, 7.999, CellCoord{0, 0}, true},
		{"next cell", 8, 0, CellCoord{1, 0}, true},
		{"last cell edge", 63.999, 63.999, CellCoord{7, 7}, true},
		{"right edge exclusive", 64.0, 0.0, CellCoord{}, false},
		{"bottom edge exclusive", 0, 64, CellCoord{}, false},
		{"just left", -0.001, 5.0, CellCoord{}, false},
		{"just above", 5.0, -0.001, CellCoord{}, false},
		{"far negative", -1e9, -1e9, CellCoord{}, false},
		{"beyond uint32", 1e20, 0, CellCoord{}, false},
		{"nan", math.NaN(), 0, CellCoord{}, false},
		{"inf", math.Inf(1), 0, CellCoord{}, false},
		{"negative inf", 0, math.Inf(-1), CellCoord{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.CellAt(tt.wx, tt.wy)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CellAt(%v,%v) = %v,%v, want %v,%v", tt.wx, tt.wy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGridCellAtOffsetOrigin(t *testing.T) {
	g := MustGridSpec(Vec2{X: 10, Y: 20}, GridSize{Cols: 4, Rows: 2}, Vec2{X: 100, Y: 100})
	if c, ok := g.CellAt(135, 139); !ok || c != (CellCoord{X: 3, Y: 1}) {
		t.Errorf("CellAt(135,139) = %v,%v, want (3,1)", c, ok)
	}
	if _, ok := g.CellAt(99.9, 110); ok {
		t.Error("point left of an offset grid should be invalid")
	}
	if _, ok := g.CellAt(140, 110); ok {
		t.Error("point on the right edge should be invalid")
	}
}

func TestGridCellGeometry(t *testing.T) {
	g := MustGridSpec(Vec2{X: 8, Y: 8}, GridSize{Cols: 8, Rows: 8}, Vec2{X: -32, Y: -32})
	c := CellCoord{X: 2, Y: 5}
	if o := g.CellOrigin(c); o != (Vec2{X: -16, Y: 8}) {
		t.Errorf("CellOrigin = %v, want (-16,8)", o)
	}
	if m := g.CellCenter(c); m != (Vec2{X: -12, Y: 12}) {
		t.Errorf("CellCenter = %v, want (-12,12)", m)
	}
	if r := g.CellRect(c); r != (Rect{X: -16, Y: 8, Width: 8, Height: 8}) {
		t.Errorf("CellRect = %v", r)
	}
	center := g.CellCenter(c)
	if got, ok := g.CellAt(center.X, center.Y); !ok || got != c {
		t.Errorf("CellAt(CellCenter(%v)) = %v,%v", c, got, ok)
	}
}

func TestGridInBounds(t *testing.T) {
	g := testGrid()
	if !g.InBounds(CellCoord{X: 7, Y: 7}) {
		t.Error("(7,7) should be in bounds")
	}
	if g.InBounds(CellCoord{X: 8, Y: 0}) || g.InBounds(CellCoord{X: 0, Y: 8}) {
		t.Error("cells at the dimension should be out of bounds")
	}
}
