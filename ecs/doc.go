// Package ecs provides ECS adapters for tactile's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges emitted gestures
// (tap, drag, swipe, pinch, ...) into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	detector.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
