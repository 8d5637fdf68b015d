// Package tiledesigner maps a pointer onto a camera-viewed tile grid and
// turns the result into hover transitions for a 2D grid editor built on
// [Ebitengine].
//
// Every tick the pointer's viewport position is normalized to device
// coordinates, carried through the inverse camera projection into world
// space, and divided into grid cells. The hovered cell is compared with the
// previous tick's cell to produce edge-triggered [HoverEvent] values: a
// Left for the old cell, then an Entered for the new one.
//
// # Quick start
//
//	grid, err := tiledesigner.NewGridSpec(
//		tiledesigner.Vec2{X: 8, Y: 8},
//		tiledesigner.GridSize{Cols: 8, Rows: 8},
//		tiledesigner.Vec2{X: -32, Y: -32},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cam := tiledesigner.NewCamera(tiledesigner.Rect{Width: 1270, Height: 720})
//	cam.Zoom = 4
//	editor := tiledesigner.NewEditor(grid, cam)
//
//	// In ebiten.Game.Update:
//	editor.Update()
//	hl := editor.Highlight() // read once per tick
//
// # Lower-level API
//
// [Resolve] is the pure per-tick step: it takes the viewport, a
// [CameraState], a [Pointer] sample, the [GridSpec] and a *[HoverState],
// and returns the [Resolution] with its events. [PointerCellResolver]
// wraps it with owned state and a reusable event buffer.
//
// # Reactors
//
// [Highlight] keeps the single hover marker in a [HighlightDisplayState].
// [Painter] writes the [Palette]'s active block into a [TileGrid] on every
// Entered event; it is subscribed and unsubscribed independently of the
// highlight via [Editor.EnablePainter] and [Editor.DisablePainter].
//
// ECS integration lives in the tiledesigner/ecs module, which forwards
// hover events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tiledesigner
