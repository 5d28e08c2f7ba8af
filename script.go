package tactile

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptTouch is a contact in a "touch" step.
type scriptTouch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string        `json:"action"`
	After   float64       `json:"after,omitempty"` // ms since the previous step
	X       float64       `json:"x,omitempty"`
	Y       float64       `json:"y,omitempty"`
	Type    string        `json:"type,omitempty"` // down, move, up, cancel
	ID      int           `json:"id,omitempty"`
	Kind    string        `json:"kind,omitempty"` // mouse, touch, pen
	Touches []scriptTouch `json:"touches,omitempty"`
	MS      float64       `json:"ms,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a timed sequence of raw inputs, replayed deterministically into a
// Detector. Steps:
//
//	press/move/release/cancel  mouse input at x, y (left button)
//	pointer                    pointer input (type, id, kind, x, y)
//	touch                      native touch list (type, touches)
//	wait                       advance the clock by ms, firing due timers
//
// Every step may delay itself with "after" (milliseconds).
type Script struct {
	steps []scriptStep
}

// ParseScript parses a JSON gesture script.
func ParseScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (sc *Script) Len() int {
	return len(sc.steps)
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "cancel", "wait":
		return nil
	case "pointer", "touch":
		if _, ok := inputTypes[st.Type]; !ok {
			return fmt.Errorf("unknown input type %q", st.Type)
		}
		if st.Action == "pointer" {
			if _, ok := pointerKinds[st.Kind]; !ok {
				return fmt.Errorf("unknown pointer kind %q", st.Kind)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

var inputTypes = map[string]InputType{
	"down":   InputDown,
	"move":   InputMove,
	"up":     InputUp,
	"cancel": InputCancel,
}

var pointerKinds = map[string]PointerKind{
	"":      PointerTouch,
	"mouse": PointerMouse,
	"touch": PointerTouch,
	"pen":   PointerPen,
}

// Play feeds the script to d starting at start and returns the time of the
// last step. The scheduler is ticked before every step so hold timers fire at
// their deadline.
func (sc *Script) Play(d *Detector, start time.Time) time.Time {
	now := start
	for _, st := range sc.steps {
		now = now.Add(msDuration(st.After))
		d.Tick(now)

		switch st.Action {
		case "press":
			d.Handle(Input{Source: SourceMouse, Type: InputDown, Time: now, X: st.X, Y: st.Y, Button: MouseButtonLeft})
		case "move":
			d.Handle(Input{Source: SourceMouse, Type: InputMove, Time: now, X: st.X, Y: st.Y, Button: MouseButtonLeft})
		case "release":
			d.Handle(Input{Source: SourceMouse, Type: InputUp, Time: now, X: st.X, Y: st.Y, Button: MouseButtonLeft})
		case "cancel":
			d.Handle(Input{Source: SourceMouse, Type: InputCancel, Time: now, X: st.X, Y: st.Y, Button: MouseButtonLeft})
		case "pointer":
			d.Handle(Input{
				Source: SourcePointer, Type: inputTypes[st.Type], Time: now,
				PointerID: st.ID, Kind: pointerKinds[st.Kind], X: st.X, Y: st.Y,
			})
		case "touch":
			touches := make([]Touch, len(st.Touches))
			for i, t := range st.Touches {
				touches[i] = Touch{ID: t.ID, X: t.X, Y: t.Y}
			}
			d.Handle(Input{Source: SourceTouch, Type: inputTypes[st.Type], Time: now, Touches: touches})
		case "wait":
			now = now.Add(msDuration(st.MS))
			d.Tick(now)
		}
	}
	return now
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// Recorded is one gesture captured by a Recorder.
type Recorded struct {
	Gesture string
	Event   Event
}

// Recorder subscribes to every built-in gesture of a detector and keeps them
// in emission order.
type Recorder struct {
	Gestures []Recorded
	handles  []CallbackHandle
}

// NewRecorder starts recording every gesture in AllGestures.
func NewRecorder(d *Detector) *Recorder {
	r := &Recorder{}
	for _, g := range AllGestures() {
		r.handles = append(r.handles, d.On(g, func(ctx GestureContext) {
			r.Gestures = append(r.Gestures, Recorded{Gesture: ctx.Gesture, Event: *ctx.Event})
		}))
	}
	return r
}

// Names returns the recorded gesture names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Gestures))
	for i, g := range r.Gestures {
		out[i] = g.Gesture
	}
	return out
}

// Count returns how many times gesture was recorded.
func (r *Recorder) Count(gesture string) int {
	n := 0
	for _, g := range r.Gestures {
		if g.Gesture == gesture {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Gestures = r.Gestures[:0]
}

// Stop unsubscribes the recorder.
func (r *Recorder) Stop() {
	for _, h := range r.handles {
		h.Remove()
	}
	r.handles = nil
}

// AllGestures lists every gesture name the built-in recognizers emit,
// including directional variants.
func AllGestures() []string {
	out := []string{
		GestureTouch, GestureHold, GestureRelease, GestureTap, GestureDoubleTap,
		GestureSwipe, GestureDrag, GestureDragStart, GestureDragEnd,
		GestureTransform, GestureTransformStart, GestureTransformEnd,
		GestureRotate, GesturePinch, GesturePinchIn, GesturePinchOut,
	}
	for _, dir := range []Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown} {
		out = append(out, GestureDrag+dir.String(), GestureSwipe+dir.String())
	}
	return out
}
