package tiledesigner

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraState is the per-tick description of a camera consumed by the
// resolver. Both matrices use the [a, b, c, d, tx, ty] affine layout.
//
// Projection maps camera space to normalized device coordinates, where the
// viewport spans [-1, 1] on both axes with -1 at the left and top edges.
// World maps camera space to world space (camera position and rotation).
type CameraState struct {
	Projection [6]float64
	World      [6]float64
}

// NDCToWorld returns World * inverse(Projection). ok is false when the
// projection is singular.
func (s CameraState) NDCToWorld() (m [6]float64, ok bool) {
	invProj, ok := invertAffine(s.Projection)
	if !ok {
		return identityTransform, false
	}
	return multiplyAffine(s.World, invProj), true
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view onto the grid: position, zoom, rotation, and viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with zoom 1 centered on the world origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// State returns the projection and world transforms for the current
// position, zoom, rotation and viewport size.
func (c *Camera) State() CameraState {
	var proj [6]float64
	if c.Viewport.Width != 0 && c.Viewport.Height != 0 {
		proj = scaleAffine(2*c.Zoom/c.Viewport.Width, 2*c.Zoom/c.Viewport.Height)
	}
	return CameraState{
		Projection: proj,
		World:      multiplyAffine(translateAffine(c.X, c.Y), rotateAffine(c.Rotation)),
	}
}

// ViewportSize returns the pixel size of the camera's viewport.
func (c *Camera) ViewportSize() Viewport {
	return Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToCell scrolls to the center of the given grid cell.
func (c *Camera) ScrollToCell(grid GridSpec, cell CellCoord, duration float32, easeFn ease.TweenFunc) {
	center := grid.CellCenter(cell)
	c.ScrollTo(center.X, center.Y, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Pan moves the camera by a screen-space delta in pixels, the way a grab
// gesture drags the view: content follows the pointer.
func (c *Camera) Pan(dx, dy float64) {
	if c.Zoom == 0 {
		return
	}
	c.scrollTween = nil
	wx, wy := transformPoint(rotateAffine(c.Rotation), dx/c.Zoom, dy/c.Zoom)
	c.X -= wx
	c.Y -= wy
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
		c.dirty = true
	}
}

// Update advances scroll animation and bounds clamping by dt seconds.
func (c *Camera) Update(dt float32) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// Bounds smaller than the visible area: center on them.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	m := multiplyAffine(translateAffine(cx, cy), scaleAffine(c.Zoom, c.Zoom))
	m = multiplyAffine(m, rotateAffine(-c.Rotation))
	m = multiplyAffine(m, translateAffine(-c.X, -c.Y))

	c.viewMatrix = m
	c.invViewMatrix, _ = invertAffine(m)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MarkDirty forces a recomputation of the view matrix. Call after setting
// X, Y, Zoom or Rotation directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
