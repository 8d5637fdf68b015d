package tiledesigner

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `yaml:"action"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	FromX   float64 `yaml:"fromX,omitempty"`
	FromY   float64 `yaml:"fromY,omitempty"`
	ToX     float64 `yaml:"toX,omitempty"`
	ToY     float64 `yaml:"toY,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
	Block   string  `yaml:"block,omitempty"`
	Enabled bool    `yaml:"enabled,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected pointer samples and editor commands across
// ticks for scripted sessions. Attach to an Editor via SetTestRunner.
//
// Supported actions: move (x, y), hold (x, y, frames), leave,
// path (fromX, fromY, toX, toY, frames), wait (frames), select (block),
// painter (enabled).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML or JSON test script and returns a TestRunner
// ready to be attached to an Editor via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "hold", "leave", "path", "wait", "painter":
		case "select":
			if _, err := ParseBlockKind(st.Block); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the editor. The runner's step
// method is called at the start of every tick.
func (e *Editor) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Commands (select, painter) and
// waits of zero frames execute immediately and the runner continues to the
// next step in the same tick, so they take effect before that tick's
// pointer sample is resolved.
func (r *TestRunner) step(e *Editor) {
	for !r.done {
		if len(e.injectQueue) > 0 {
			return
		}
		if r.waitCount > 0 {
			r.waitCount--
			return
		}
		if r.cursor >= len(r.steps) {
			r.done = true
			Logger().Info("test script finished", "steps", len(r.steps), "tick", e.ticks)
			return
		}

		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "move":
			e.InjectPointer(st.X, st.Y)
		case "hold":
			e.InjectHold(st.X, st.Y, max(st.Frames, 1))
		case "leave":
			e.InjectAbsent()
		case "path":
			e.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case "wait":
			if st.Frames <= 0 {
				continue
			}
			r.waitCount = st.Frames - 1 // this tick counts as one
			return
		case "select":
			k, _ := ParseBlockKind(st.Block)
			e.palette.Select(k)
			continue
		case "painter":
			if st.Enabled {
				e.EnablePainter()
			} else {
				e.DisablePainter()
			}
			continue
		}
		return
	}
}
