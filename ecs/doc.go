// Package ecs provides ECS adapters for zoomage transform events.
//
// The primary adapter is [NewDonburiSink], which bridges zoomage transform
// events (gesture start/end, double-tap zoom, reset, animation end) into a
// [Donburi] world as typed events. Subscribe to [TransformEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	view.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
