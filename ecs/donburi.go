package ecs

import (
	"github.com/phanxgames/tiledesigner"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverEventType is the Donburi event type for tiledesigner hover events.
//
// Events reach the queue in the order the editor emitted them, after the
// editor's own callbacks have run for each one. Within a tick a Left for the
// previous cell is therefore always queued before the Entered for the new
// cell, and no Left is ever delivered after an Entered from the same tick.
// The queue is drained by HoverEventType.ProcessEvents or
// events.ProcessAllEvents, typically once per world update; events from
// several ticks accumulate until then and keep their relative order.
var HoverEventType = events.NewEventType[tiledesigner.HoverEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EventStore that publishes every hover event to
// HoverEventType in world. Pass it to Editor.SetEntityStore.
func NewDonburiStore(world donburi.World) tiledesigner.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tiledesigner.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}

// OnCellEntered subscribes fn to the Entered events published to world.
func OnCellEntered(world donburi.World, fn func(w donburi.World, cell tiledesigner.CellCoord)) {
	subscribeType(world, tiledesigner.HoverEntered, fn)
}

// OnCellLeft subscribes fn to the Left events published to world.
func OnCellLeft(world donburi.World, fn func(w donburi.World, cell tiledesigner.CellCoord)) {
	subscribeType(world, tiledesigner.HoverLeft, fn)
}

func subscribeType(world donburi.World, t tiledesigner.EventType, fn func(donburi.World, tiledesigner.CellCoord)) {
	HoverEventType.Subscribe(world, func(w donburi.World, e tiledesigner.HoverEvent) {
		if e.Type == t {
			fn(w, e.Cell)
		}
	})
}
