// Package ecs provides ECS adapters for snapdrag.
//
// The primary adapter is [NewDonburiSink], which bridges snapdrag drag
// lifecycle events (drag start, drag, release, snap end, persist) into a
// [Donburi] world as typed events. Subscribe to [DragEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
