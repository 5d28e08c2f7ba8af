package ecs

import (
	"github.com/phanxgames/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for tactile gesture events.
// Subscribe to this in your ECS systems to receive every emitted gesture.
var GestureEventType = events.NewEventType[tactile.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gestures are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tactile.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tactile.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
