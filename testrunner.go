package snapdrag

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is one entry of a gesture script. Coordinates are viewport
// pixels. Frames is the length of a drag or a wait.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "resize": true, "wait": true,
}

// TestRunner replays a JSON gesture script against a Scene. A step runs only
// once the scene's inject queue has drained, so each gesture reaches the
// draggables before the next one starts.
//
// Actions: press, move, release, click, drag, resize, wait.
type TestRunner struct {
	steps  []scriptStep
	cursor int
	hold   int // frames left on the current wait
	done   bool
}

// LoadTestScript decodes a {"steps": [...]} document. Unknown actions and
// empty scripts are rejected here rather than at replay time.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("test script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("test script step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner makes Update replay runner ahead of input each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether the whole script has been replayed.
func (r *TestRunner) Done() bool {
	return r.done
}

// busy reports whether this frame belongs to pending input or a wait.
func (r *TestRunner) busy(s *Scene) bool {
	if len(s.injectQueue) > 0 {
		return true
	}
	if r.hold > 0 {
		r.hold--
		return true
	}
	return false
}

func (r *TestRunner) step(s *Scene) {
	if r.done || r.busy(s) {
		return
	}
	if r.cursor == len(r.steps) {
		r.done = true
		return
	}
	r.hold = r.steps[r.cursor].apply(s)
	r.cursor++
	r.done = r.cursor == len(r.steps) && r.hold == 0 && len(s.injectQueue) == 0
}

// apply performs st on s and returns the number of later frames to sit out.
func (st scriptStep) apply(s *Scene) int {
	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectPress(st.X, st.Y)
		s.InjectRelease(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "resize":
		s.Resize(Size{st.Width, st.Height})
	case "wait":
		// The frame that reads the wait is its first.
		return max(st.Frames-1, 0)
	}
	return 0
}
