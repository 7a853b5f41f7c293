package canvasflow

import (
	"encoding/json"
	"fmt"
)

// scriptAction names what a script step does.
type scriptAction string

const (
	actionTap      scriptAction = "tap"      // x, y
	actionDrag     scriptAction = "drag"     // fromX, fromY, toX, toY, frames
	actionSelect   scriptAction = "select"   // index
	actionWait     scriptAction = "wait"     // frames
	actionSnapshot scriptAction = "snapshot" // label
)

func (a scriptAction) known() bool {
	switch a {
	case actionTap, actionDrag, actionSelect, actionWait, actionSnapshot:
		return true
	}
	return false
}

type scriptStep struct {
	Action scriptAction `json:"action"`
	Label  string       `json:"label,omitempty"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	FromX  float64      `json:"fromX,omitempty"`
	FromY  float64      `json:"fromY,omitempty"`
	ToX    float64      `json:"toX,omitempty"`
	ToY    float64      `json:"toY,omitempty"`
	Frames int          `json:"frames,omitempty"`
	Index  int          `json:"index,omitempty"`
}

// TestRunner replays a carousel script one frame at a time: synthetic taps
// and drags, engine selections, pauses and snapshots. A step that injects
// input holds the script until the scene has consumed it.
type TestRunner struct {
	steps  []scriptStep
	next   int
	hold   int // frames left in the current wait
	done   bool
	engine *Engine
}

// LoadTestScript parses a script of the form {"steps": [...]}. Every step
// names one of the actions tap, drag, select, wait or snapshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !st.Action.known() {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner makes Scene.Update advance runner once per frame, ahead of
// input processing.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// SetEngine sets the engine that select steps drive. Without one they are
// skipped.
func (r *TestRunner) SetEngine(e *Engine) {
	r.engine = e
}

// Done reports whether the script has run to the end.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(s *Scene) {
	switch {
	case r.done, s.Pending() > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	r.apply(s, r.steps[r.next])
	r.next++
	r.done = r.next == len(r.steps) && r.hold == 0 && s.Pending() == 0
}

func (r *TestRunner) apply(s *Scene, st scriptStep) {
	switch st.Action {
	case actionTap:
		s.InjectTap(st.X, st.Y)
	case actionDrag:
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case actionSelect:
		if r.engine != nil {
			r.engine.Select(st.Index)
		}
	case actionWait:
		// The frame that starts the wait counts toward it.
		r.hold = max(st.Frames-1, 0)
	case actionSnapshot:
		s.Snapshot(st.Label)
	}
}
