package tiledesigner

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource samples the pointer once per tick. viewport is the camera's
// screen rectangle; the returned sample is relative to its top-left corner.
type PointerSource interface {
	Sample(viewport Rect) Pointer
}

// PointerSourceFunc adapts a function to PointerSource.
type PointerSourceFunc func(viewport Rect) Pointer

// Sample calls f.
func (f PointerSourceFunc) Sample(viewport Rect) Pointer {
	return f(viewport)
}

// EbitenPointerSource reads the mouse cursor from Ebitengine. The pointer
// is absent while the window is unfocused or the cursor is outside the
// viewport.
type EbitenPointerSource struct{}

// Sample implements PointerSource.
func (EbitenPointerSource) Sample(viewport Rect) Pointer {
	if !ebiten.IsFocused() {
		return NoPointer
	}
	mx, my := ebiten.CursorPosition()
	return clipToViewport(viewport, float64(mx), float64(my))
}

// clipToViewport converts a screen position to a viewport-relative sample,
// absent when outside the viewport.
func clipToViewport(viewport Rect, sx, sy float64) Pointer {
	x := sx - viewport.X
	y := sy - viewport.Y
	if x < 0 || y < 0 || x >= viewport.Width || y >= viewport.Height {
		return NoPointer
	}
	return PointerAt(x, y)
}
