package tiledesigner

// Pointer is a pointer sample in viewport pixels: origin at the viewport's
// top-left corner, y growing downward. Present is false when the pointer is
// outside the window or the window is unfocused.
type Pointer struct {
	X, Y    float64
	Present bool
}

// PointerAt returns a present pointer sample at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// NoPointer is the absent pointer sample.
var NoPointer = Pointer{}

// HoverState remembers the cell resolved on the previous tick. The zero
// value means no cell was hovered.
type HoverState struct {
	cell CellCoord
	ok   bool
}

// Cell returns the hovered cell, if any.
func (s HoverState) Cell() (CellCoord, bool) {
	return s.cell, s.ok
}

// Reset forgets the hovered cell without emitting anything.
func (s *HoverState) Reset() {
	*s = HoverState{}
}

// Resolution is the outcome of one tick of pointer resolution.
type Resolution struct {
	// Cell is the hovered cell; meaningful only when Valid.
	Cell  CellCoord
	Valid bool
	// Events holds the transitions emitted this tick, Left before Entered.
	Events []HoverEvent
}

// PointerToWorld maps a pointer sample to world space: pixels are normalized
// to [-1, 1] device coordinates and sent through World * inverse(Projection).
// ok is false for an absent pointer, a degenerate viewport or a singular
// projection.
func PointerToWorld(vp Viewport, cam CameraState, p Pointer) (world Vec2, ok bool) {
	if !p.Present || !vp.valid() {
		return Vec2{}, false
	}
	ndcX := (p.X/vp.Width)*2 - 1
	ndcY := (p.Y/vp.Height)*2 - 1

	ndcToWorld, ok := cam.NDCToWorld()
	if !ok {
		return Vec2{}, false
	}
	wx, wy := transformPoint(ndcToWorld, ndcX, ndcY)
	return Vec2{X: wx, Y: wy}, true
}

// ResolveCell maps a pointer sample to the grid cell beneath it. ok is false
// whenever no cell can be resolved this tick.
func ResolveCell(vp Viewport, cam CameraState, p Pointer, grid GridSpec) (CellCoord, bool) {
	w, ok := PointerToWorld(vp, cam, p)
	if !ok {
		return CellCoord{}, false
	}
	return grid.CellAt(w.X, w.Y)
}

// Transition compares cur against state, appends the resulting events to
// dst and stores cur in state. A Left for the previous cell always precedes
// an Entered for the new one. Nothing is appended while the hovered cell is
// unchanged or while no cell is hovered on consecutive calls.
func Transition(state *HoverState, cur CellCoord, curOK bool, dst []HoverEvent) []HoverEvent {
	prev, prevOK := state.cell, state.ok
	changed := prevOK && curOK && prev != cur

	if prevOK && (changed || !curOK) {
		dst = append(dst, CellLeft(prev))
	}
	if curOK && (changed || !prevOK) {
		dst = append(dst, CellEntered(cur))
	}

	if curOK {
		*state = HoverState{cell: cur, ok: true}
	} else {
		*state = HoverState{}
	}
	return dst
}

// Resolve runs one tick: it resolves the pointer to a cell, updates state
// and appends the transition events to dst.
func Resolve(vp Viewport, cam CameraState, p Pointer, grid GridSpec, state *HoverState, dst []HoverEvent) Resolution {
	cell, ok := ResolveCell(vp, cam, p, grid)
	if !ok {
		cell = CellCoord{}
	}
	return Resolution{
		Cell:   cell,
		Valid:  ok,
		Events: Transition(state, cell, ok, dst),
	}
}

// PointerCellResolver owns a HoverState and an event buffer so a tick
// allocates nothing.
type PointerCellResolver struct {
	grid  GridSpec
	state HoverState
	buf   [2]HoverEvent
}

// NewPointerCellResolver returns a resolver for grid with no hovered cell.
func NewPointerCellResolver(grid GridSpec) *PointerCellResolver {
	return &PointerCellResolver{grid: grid}
}

// Grid returns the grid the resolver maps onto.
func (r *PointerCellResolver) Grid() GridSpec {
	return r.grid
}

// Resolve runs one tick. The returned Events slice is reused by the next
// call.
func (r *PointerCellResolver) Resolve(vp Viewport, cam CameraState, p Pointer) Resolution {
	return Resolve(vp, cam, p, r.grid, &r.state, r.buf[:0])
}

// HoveredCell returns the cell resolved on the most recent tick, if any.
func (r *PointerCellResolver) HoveredCell() (CellCoord, bool) {
	return r.state.Cell()
}

// State returns a copy of the resolver's hover state.
func (r *PointerCellResolver) State() HoverState {
	return r.state
}
