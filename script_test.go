package ectofx

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, json, want string
	}{
		{"malformed", `{"steps": [`, "parse script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "explode"}]}`, `unknown action "explode"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestScriptRunsOneStepPerFrame(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "celebrate", "kind": "ghost_captured", "x": 100, "y": 120},
		{"action": "wait", "frames": 3},
		{"action": "fail"},
		{"action": "beam_start"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d, _ := newTestDirector(t, testConfig())
	d.SetScript(s)

	_ = d.Update()
	if d.Stats().Celebration == 0 {
		t.Fatal("celebrate step did not run")
	}
	for i := 0; i < 3; i++ {
		_ = d.Update()
		if d.Stats().Glyphs != 0 {
			t.Fatalf("fail ran during wait (frame %d)", i)
		}
	}
	_ = d.Update()
	if d.Stats().Glyphs != 1 {
		t.Fatal("fail step did not run after the wait")
	}
	if s.Done() {
		t.Error("done before the last step")
	}
	_ = d.Update()
	if !s.Done() || !d.BeamActive() {
		t.Errorf("done %v beam %v", s.Done(), d.BeamActive())
	}
	if len(s.Errors()) != 0 {
		t.Errorf("errors: %v", s.Errors())
	}

	// a finished script is inert
	_ = d.Update()
}

func TestScriptCollectsTriggerErrors(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "fail"}, {"action": "clear"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d := newUnreadyDirector(t, testConfig())
	d.SetScript(s)
	_ = d.Update()
	_ = d.Update()
	if !s.Done() {
		t.Fatal("script not done")
	}
	errs := s.Errors()
	if len(errs) != 1 || !errors.Is(errs[0], ErrNotReady) {
		t.Errorf("errors = %v, want one ErrNotReady", errs)
	}
}
