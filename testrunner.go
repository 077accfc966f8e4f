package glide

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a scroll script.
type testStep struct {
	Action string  `json:"action"`
	Delta  float64 `json:"delta,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a scroll script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of scroll input, resizes and waits
// against a Controller, one frame at a time, for automated testing.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON scroll script. Actions: "wheel" (delta,
// frames), "touch" (delta), "scrollTo" (y), "resize" (width, height) and
// "wait" (frames).
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "wheel", "touch", "scrollTo", "resize", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Play steps c frame by frame until the script is done or maxFrames have
// elapsed. It returns the number of frames stepped.
func (r *TestRunner) Play(c *Controller, frame time.Duration, maxFrames int) int {
	n := 0
	for !r.done && n < maxFrames {
		r.step(c)
		c.Step(frame)
		n++
	}
	return n
}

// step queues the current step's input. Called once per frame before the
// controller steps.
func (r *TestRunner) step(c *Controller) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if c.PendingInput() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "wheel":
		c.InjectFlick(st.Delta, st.Frames)
	case "touch":
		c.InjectTouch(st.Delta)
	case "scrollTo":
		c.ScrollTo(st.Y)
	case "resize":
		c.container.Resize(st.Width, st.Height, c.container.DeviceScaleFactor())
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
