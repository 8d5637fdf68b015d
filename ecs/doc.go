// Package ecs provides ECS adapters for tiledesigner's hover events.
//
// The primary adapter is [NewDonburiStore], which bridges hover transitions
// (cell entered, cell left) into a [Donburi] world as typed events.
// Subscribe to [HoverEventType] in your ECS systems to receive them, or use
// [OnCellEntered] and [OnCellLeft] for per-cell callbacks. Events arrive in
// emission order, so a Left always precedes the Entered of the same tick.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	editor.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
