package ectofx

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	Kind   string   `json:"kind,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// at returns the step position, or nil when x or y is missing.
func (st scriptStep) at() *Vec2 {
	if st.X == nil || st.Y == nil {
		return nil
	}
	return &Vec2{*st.X, *st.Y}
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"celebrate":  true,
	"suction":    true,
	"beam_start": true,
	"beam_stop":  true,
	"fail":       true,
	"clear":      true,
	"wait":       true,
	"screenshot": true,
}

// Script plays a sequence of triggers, waits and screenshots across frames
// for automated visual checks. Attach to a Director via SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON script and returns a Script ready to be attached
// to a Director via SetScript.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a Script. Its steps run from Update, one per frame,
// before the tick.
func (d *Director) SetScript(s *Script) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.script = s
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// Errors returns the trigger errors collected while playing.
func (s *Script) Errors() []error {
	return s.errs
}

// step advances the script by one frame. Called from Director.Update
// without the lock held.
func (s *Script) step(d *Director) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	var err error
	switch st.Action {
	case "celebrate":
		err = d.TriggerCelebration(st.at(), CelebrationType(st.Kind))
	case "suction":
		err = d.TriggerSuction(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY})
	case "beam_start":
		err = d.StartBeam()
	case "beam_stop":
		d.StopBeam()
	case "fail":
		err = d.TriggerFailure(st.at())
	case "clear":
		d.ClearAll()
	case "screenshot":
		d.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		s.errs = append(s.errs, fmt.Errorf("step %d (%s): %w", s.cursor-1, st.Action, err))
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
