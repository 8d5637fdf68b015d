package tiledesigner

import "github.com/hajimehoshi/ebiten/v2"

// Editor is the top-level object that owns the grid, camera, hover state and
// the reactors driven by it. Call Update once per tick.
type Editor struct {
	grid     GridSpec
	camera   *Camera
	resolver *PointerCellResolver

	highlight *Highlight
	tiles     *TileGrid
	palette   *Palette
	painter   *Painter
	painterOn CallbackHandle

	handlers handlerRegistry
	store    EventStore
	source   PointerSource

	injectQueue []Pointer
	testRunner  *TestRunner

	last  Resolution
	ticks uint64
}

// NewEditor creates an editor for grid viewed through camera. A nil camera
// gets a default one centered on the grid whose viewport is the grid's
// extent. The highlight is subscribed immediately; the painter starts
// disabled.
func NewEditor(grid GridSpec, camera *Camera) *Editor {
	if camera == nil {
		b := grid.Bounds()
		camera = NewCamera(Rect{Width: b.Width, Height: b.Height})
		camera.X = b.X + b.Width/2
		camera.Y = b.Y + b.Height/2
	}
	tiles := NewTileGrid(grid)
	palette := NewPalette(BlockWall)
	e := &Editor{
		grid:      grid,
		camera:    camera,
		resolver:  NewPointerCellResolver(grid),
		highlight: NewHighlight(),
		tiles:     tiles,
		palette:   palette,
		painter:   NewPainter(tiles, palette),
		source:    EbitenPointerSource{},
	}
	e.handlers.addHover(e.highlight.Apply)
	return e
}

// Grid returns the grid specification.
func (e *Editor) Grid() GridSpec { return e.grid }

// Camera returns the editor's camera.
func (e *Editor) Camera() *Camera { return e.camera }

// Tiles returns the block layout painted so far.
func (e *Editor) Tiles() *TileGrid { return e.tiles }

// Palette returns the painter's palette.
func (e *Editor) Palette() *Palette { return e.palette }

// Painter returns the painter, whether or not it is enabled.
func (e *Editor) Painter() *Painter { return e.painter }

// Highlight returns the highlight state as of the last tick.
func (e *Editor) Highlight() HighlightDisplayState { return e.highlight.State() }

// HoveredCell returns the cell under the pointer as of the last tick.
func (e *Editor) HoveredCell() (CellCoord, bool) { return e.resolver.HoveredCell() }

// LastResolution returns the previous tick's resolution. Its Events slice
// is overwritten by the next tick.
func (e *Editor) LastResolution() Resolution { return e.last }

// Ticks returns how many ticks have run.
func (e *Editor) Ticks() uint64 { return e.ticks }

// SetPointerSource replaces the pointer source. nil means the pointer is
// always absent unless samples are injected.
func (e *Editor) SetPointerSource(src PointerSource) {
	e.source = src
}

// SetEntityStore sets the optional ECS bridge.
func (e *Editor) SetEntityStore(store EventStore) {
	e.store = store
}

// OnHover registers a callback for every hover transition.
func (e *Editor) OnHover(fn func(HoverEvent)) CallbackHandle {
	return e.handlers.addHover(fn)
}

// OnCellEntered registers a callback fired when the pointer enters a cell.
func (e *Editor) OnCellEntered(fn func(CellCoord)) CallbackHandle {
	return e.handlers.addEntered(fn)
}

// OnCellLeft registers a callback fired when the pointer leaves a cell.
func (e *Editor) OnCellLeft(fn func(CellCoord)) CallbackHandle {
	return e.handlers.addLeft(fn)
}

// EnablePainter subscribes the painter. While enabled, every entered cell
// is painted with the palette's active block. If a cell is already hovered
// it is not painted until the pointer enters a cell again.
func (e *Editor) EnablePainter() {
	if e.painterOn.reg != nil {
		return
	}
	e.painterOn = e.handlers.addHover(e.painter.Apply)
	Logger().Info("painter enabled", "block", e.palette.Active().String())
}

// DisablePainter unsubscribes the painter. The highlight is unaffected.
func (e *Editor) DisablePainter() {
	if e.painterOn.reg == nil {
		return
	}
	e.painterOn.Remove()
	e.painterOn = CallbackHandle{}
	Logger().Info("painter disabled")
}

// PainterEnabled reports whether the painter is subscribed.
func (e *Editor) PainterEnabled() bool {
	return e.painterOn.reg != nil
}

// Update runs one tick using Ebitengine's tick rate for camera animation.
func (e *Editor) Update() {
	e.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step runs one tick: scripted input, camera animation, pointer sampling,
// resolution, then delivery of the tick's events in emission order.
func (e *Editor) Step(dt float32) {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.camera.Update(dt)

	p := e.samplePointer()
	vp := e.camera.ViewportSize()
	cam := e.camera.State()
	res := e.resolver.Resolve(vp, cam, p)

	if p.Present && !res.Valid {
		if _, ok := cam.NDCToWorld(); !ok || !vp.valid() {
			Logger().Debug("camera not invertible, no cell this tick",
				"tick", e.ticks, "viewport_w", vp.Width, "viewport_h", vp.Height)
		}
	}

	for _, ev := range res.Events {
		e.handlers.dispatch(ev)
		if e.store != nil {
			e.store.EmitEvent(ev)
		}
	}

	e.last = res
	e.ticks++
}

// samplePointer prefers injected samples over the live source.
func (e *Editor) samplePointer() Pointer {
	if p, ok := e.nextInjected(); ok {
		return p
	}
	if e.source == nil {
		return NoPointer
	}
	return e.source.Sample(e.camera.Viewport)
}
