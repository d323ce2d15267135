package ecs

import (
	"github.com/phanxgames/snapdrag"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for snapdrag drag events.
var DragEventType = events.NewEventType[snapdrag.DragEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on DragEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) snapdrag.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event snapdrag.DragEvent) {
	DragEventType.Publish(s.world, event)
}
