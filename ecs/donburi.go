package ecs

import (
	"github.com/ectolab/ectofx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EffectEventType is the Donburi event type for triggers the Director has
// applied.
var EffectEventType = events.NewEventType[ectofx.Event]()

// TriggerEventType is the Donburi event type for trigger requests. Publish to
// it from game systems after wiring a Director with SubscribeTriggers.
var TriggerEventType = events.NewEventType[ectofx.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to EffectEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) ectofx.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(ev ectofx.Event) {
	EffectEventType.Publish(s.world, ev)
}

// SubscribeTriggers applies every TriggerEventType event processed in world
// to d. Dispatch errors (for example ectofx.ErrNotReady) go to onErr, which
// may be nil.
func SubscribeTriggers(world donburi.World, d *ectofx.Director, onErr func(ectofx.Event, error)) {
	TriggerEventType.Subscribe(world, func(w donburi.World, ev ectofx.Event) {
		if err := d.Dispatch(ev); err != nil && onErr != nil {
			onErr(ev, err)
		}
	})
}
