package ecs

import (
	"github.com/phanxgames/zoomage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransformEventType is the Donburi event type for zoomage transform events.
var TransformEventType = events.NewEventType[zoomage.TransformEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transform events are published to TransformEventType and delivered by
// TransformEventType.ProcessEvents.
func NewDonburiSink(world donburi.World) zoomage.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTransform(event zoomage.TransformEvent) {
	TransformEventType.Publish(s.world, event)
}
