package zoomage

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one gesture, pause, reset or capture in a gesture script.
// Coordinates are viewport pixels; spans are finger distances in pixels.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromSpan float64 `json:"fromSpan,omitempty"`
	ToSpan   float64 `json:"toSpan,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Animate  bool    `json:"animate,omitempty"`
}

// scriptActions maps each action name to what it does to the gallery.
// Gesture actions only queue synthetic frames; the runner waits for them to
// play out before the next step.
var scriptActions = map[string]func(g *Gallery, st scriptStep){
	"tap":       func(g *Gallery, st scriptStep) { g.input.InjectTap(st.X, st.Y) },
	"doubletap": func(g *Gallery, st scriptStep) { g.input.InjectDoubleTap(st.X, st.Y) },
	"drag": func(g *Gallery, st scriptStep) {
		g.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"pinch": func(g *Gallery, st scriptStep) {
		g.input.InjectPinch(st.X, st.Y, st.FromSpan, st.ToSpan, st.Frames)
	},
	"reset": func(g *Gallery, st scriptStep) {
		if v := g.CurrentView(); v != nil {
			v.Reset(st.Animate)
		}
	},
	"screenshot": func(g *Gallery, st scriptStep) { g.Screenshot(st.Label) },
	"wait":       func(*Gallery, scriptStep) {},
}

// TestRunner replays a gesture script against a Gallery, one step per frame
// once earlier gestures have been consumed. It lets zoom, pan and paging
// behavior be checked with screenshots and no touch hardware.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a gesture script of the form {"steps": [...]}.
//
// Actions: tap and doubletap at (x, y); drag from (fromX, fromY) to
// (toX, toY) over frames; pinch centered on (x, y) from fromSpan to toSpan
// over frames; wait for frames; reset the current page (animate); and
// screenshot with a label. Unknown actions are rejected up front.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("gesture script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a script runner. It steps at the start of every
// frame, before input is polled, so injected gestures land in the same
// frame.
func (g *Gallery) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether every step has run and its gesture has been consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(g *Gallery) {
	if r.done || g.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor == len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	scriptActions[st.Action](g, st)
	if st.Action == "wait" && st.Frames > 0 {
		// The frame that starts the wait is its first frame.
		r.waitCount = st.Frames - 1
	}

	if r.cursor == len(r.steps) && r.waitCount == 0 && g.input.Pending() == 0 {
		r.done = true
	}
}
