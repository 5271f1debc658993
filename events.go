package ectofx

import "fmt"

// EventKind identifies a trigger.
type EventKind uint8

const (
	EventCelebration EventKind = iota
	EventSuction
	EventBeamStart
	EventBeamStop
	EventFailure
	EventClear
)

var eventKindNames = [...]string{
	EventCelebration: "celebration",
	EventSuction:     "suction",
	EventBeamStart:   "beam_start",
	EventBeamStop:    "beam_stop",
	EventFailure:     "failure",
	EventClear:       "clear",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event describes a trigger, either one the Director has applied (delivered
// to an EventSink) or one a host wants applied (passed to Dispatch).
type Event struct {
	Kind EventKind
	// At is the celebration or failure position, or the suction origin.
	// Nil means the surface center.
	At *Vec2
	// To is the suction destination.
	To          Vec2
	Celebration CelebrationType
}

// EventSink receives every trigger the Director applies. EmitEvent is called
// without the Director's lock held.
type EventSink interface {
	EmitEvent(Event)
}

// SetEventSink installs sink. Nil disables event delivery.
func (d *Director) SetEventSink(sink EventSink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = sink
}

func (d *Director) emit(ev Event) {
	d.mu.Lock()
	sink := d.sink
	d.mu.Unlock()
	if sink != nil {
		sink.EmitEvent(ev)
	}
}

// Dispatch applies the trigger described by ev.
func (d *Director) Dispatch(ev Event) error {
	switch ev.Kind {
	case EventCelebration:
		return d.TriggerCelebration(ev.At, ev.Celebration)
	case EventSuction:
		d.mu.Lock()
		from := d.point(ev.At)
		d.mu.Unlock()
		return d.TriggerSuction(from, ev.To)
	case EventBeamStart:
		return d.StartBeam()
	case EventBeamStop:
		d.StopBeam()
		return nil
	case EventFailure:
		return d.TriggerFailure(ev.At)
	case EventClear:
		d.ClearAll()
		return nil
	}
	return fmt.Errorf("dispatch: unknown event kind %v", ev.Kind)
}
