package ectofx

import "testing"

func TestEventKindString(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{EventCelebration, "celebration"},
		{EventSuction, "suction"},
		{EventBeamStart, "beam_start"},
		{EventBeamStop, "beam_stop"},
		{EventFailure, "failure"},
		{EventClear, "clear"},
		{EventKind(42), "EventKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestDispatchNotReady(t *testing.T) {
	d := newUnreadyDirector(t, testConfig())
	if err := d.Dispatch(Event{Kind: EventFailure}); err == nil {
		t.Error("want ErrNotReady")
	}
	if err := d.Dispatch(Event{Kind: EventClear}); err != nil {
		t.Errorf("clear: %v", err)
	}
}
