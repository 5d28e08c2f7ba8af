package tactile

import "math"

// Built-in recognizer priorities. Lower runs first.
const (
	PriorityTouch     = math.MinInt
	PriorityHold      = 10
	PrioritySwipe     = 40
	PriorityTransform = 45
	PriorityDrag      = 50
	PriorityTap       = 100
	PriorityRelease   = math.MaxInt
)

// DefaultRecognizers returns fresh instances of every built-in recognizer.
// Each Detector needs its own instances since recognizers carry state.
func DefaultRecognizers() []Recognizer {
	return []Recognizer{
		&TouchRecognizer{},
		&HoldRecognizer{},
		&DragRecognizer{},
		&TransformRecognizer{},
		&SwipeRecognizer{},
		&TapRecognizer{},
		&ReleaseRecognizer{},
	}
}

// DefaultOptions returns the merged defaults of the built-in recognizers.
func DefaultOptions() Options {
	opts := Options{}
	for _, r := range DefaultRecognizers() {
		if df, ok := r.(Defaulter); ok {
			opts.Merge(df.Defaults())
		}
	}
	return opts
}

// --- Touch ---

// TouchRecognizer fires "touch" when an interaction starts.
type TouchRecognizer struct{}

func (*TouchRecognizer) Name() string  { return GestureTouch }
func (*TouchRecognizer) Priority() int { return PriorityTouch }

func (*TouchRecognizer) Defaults() Options {
	return Options{
		"prevent_default":     false,
		"prevent_mouseevents": false,
	}
}

func (r *TouchRecognizer) Handle(ev *Event, s *Session) Action {
	opts := s.Options()
	if opts.Bool("prevent_mouseevents") && ev.PointerKind == PointerMouse {
		return ActionHalt
	}
	if opts.Bool("prevent_default") {
		ev.PreventDefault()
	}
	if ev.Phase == PhaseStart {
		s.Emit(GestureTouch, ev)
	}
	return ActionContinue
}

// --- Hold ---

// HoldRecognizer fires "hold" when a contact stays within hold_threshold for
// hold_timeout milliseconds.
type HoldRecognizer struct {
	timer *Task
}

func (*HoldRecognizer) Name() string  { return GestureHold }
func (*HoldRecognizer) Priority() int { return PriorityHold }

func (*HoldRecognizer) Defaults() Options {
	return Options{
		"hold_timeout":   500,
		"hold_threshold": 1,
	}
}

func (r *HoldRecognizer) Handle(ev *Event, s *Session) Action {
	switch ev.Phase {
	case PhaseStart:
		r.timer.Cancel()
		start := ev
		r.timer = s.Schedule(ev.Time.Add(s.Options().Duration("hold_timeout")), func() {
			if s.Active() && s.Claimed() == GestureHold {
				s.Emit(GestureHold, start)
			}
		})
		return ActionClaim
	case PhaseMove:
		if ev.Distance > s.Options().Float("hold_threshold") {
			r.timer.Cancel()
		}
	case PhaseEnd:
		r.timer.Cancel()
	}
	return ActionContinue
}

// Reset disarms the hold timer.
func (r *HoldRecognizer) Reset() {
	r.timer.Cancel()
	r.timer = nil
}

// Armed reports whether a hold timer is pending.
func (r *HoldRecognizer) Armed() bool {
	return r.timer.Armed()
}

// --- Drag ---

// DragRecognizer fires dragstart, drag, drag<direction> and dragend for
// single-contact movement beyond drag_min_distance.
type DragRecognizer struct {
	triggered bool
}

func (*DragRecognizer) Name() string  { return GestureDrag }
func (*DragRecognizer) Priority() int { return PriorityDrag }

func (*DragRecognizer) Defaults() Options {
	return Options{
		"drag_min_distance":             10,
		"correct_for_drag_min_distance": true,
		"drag_max_touches":              1,
		"drag_block_horizontal":         false,
		"drag_block_vertical":           false,
		"drag_lock_to_axis":             false,
		"drag_lock_min_distance":        25,
	}
}

func (r *DragRecognizer) Handle(ev *Event, s *Session) Action {
	// Another recognizer took over the session.
	if s.Claimed() != GestureDrag && r.triggered {
		s.Emit(GestureDragEnd, ev)
		r.triggered = false
		return ActionContinue
	}

	opts := s.Options()
	if maxTouches := opts.Int("drag_max_touches"); maxTouches > 0 && len(ev.Touches) > maxTouches {
		return ActionContinue
	}

	switch ev.Phase {
	case PhaseStart:
		r.triggered = false
	case PhaseMove:
		minDist := opts.Float("drag_min_distance")
		if ev.Distance < minDist && s.Claimed() != GestureDrag {
			return ActionContinue
		}

		if s.Claimed() != GestureDrag {
			s.Claim()
			if opts.Bool("correct_for_drag_min_distance") && ev.Distance > 0 {
				// Shift the start point along the motion vector so the
				// reported drag begins at the threshold instead of jumping.
				factor := math.Abs(minDist / ev.Distance)
				s.CorrectStart(ev, ev.DeltaX*factor, ev.DeltaY*factor)
			}
		}

		last := s.LastEvent()
		if (last != nil && last.DragLockedToAxis) ||
			(opts.Bool("drag_lock_to_axis") && opts.Float("drag_lock_min_distance") <= ev.Distance) {
			ev.DragLockedToAxis = true
		}
		// The start event has no movement, so it cannot pin an axis.
		if ev.DragLockedToAxis && last != nil && last.Phase != PhaseStart && last.Direction != ev.Direction {
			if last.Direction.Vertical() {
				ev.Direction = DirectionDown
				if ev.DeltaY < 0 {
					ev.Direction = DirectionUp
				}
			} else {
				ev.Direction = DirectionRight
				if ev.DeltaX < 0 {
					ev.Direction = DirectionLeft
				}
			}
		}

		if !r.triggered {
			s.Emit(GestureDragStart, ev)
			r.triggered = true
		}
		s.Emit(GestureDrag, ev)
		s.Emit(GestureDrag+ev.Direction.String(), ev)

		if (opts.Bool("drag_block_vertical") && ev.Direction.Vertical()) ||
			(opts.Bool("drag_block_horizontal") && !ev.Direction.Vertical()) {
			ev.PreventDefault()
		}
		return ActionClaim
	case PhaseEnd:
		if r.triggered {
			s.Emit(GestureDragEnd, ev)
		}
		r.triggered = false
	}
	return ActionContinue
}

// Reset forgets a drag left running by a halted session.
func (r *DragRecognizer) Reset() {
	r.triggered = false
}

// --- Transform ---

// TransformRecognizer fires transform, rotate and pinch gestures for two or
// more contacts.
type TransformRecognizer struct {
	triggered bool
}

func (*TransformRecognizer) Name() string  { return GestureTransform }
func (*TransformRecognizer) Priority() int { return PriorityTransform }

func (*TransformRecognizer) Defaults() Options {
	return Options{
		"transform_min_scale":    0.01,
		"transform_min_rotation": 1,
		"transform_always_block": false,
	}
}

func (r *TransformRecognizer) Handle(ev *Event, s *Session) Action {
	if s.Claimed() != GestureTransform && r.triggered {
		s.Emit(GestureTransformEnd, ev)
		r.triggered = false
		return ActionContinue
	}

	opts := s.Options()
	if len(ev.Touches) >= 2 && opts.Bool("transform_always_block") {
		ev.PreventDefault()
	}

	switch ev.Phase {
	case PhaseStart:
		r.triggered = false
		return ActionContinue
	case PhaseEnd:
		// The end event may carry a single contact when fingers lift one at
		// a time, so it is handled before the touch count check.
		if r.triggered {
			s.Emit(GestureTransformEnd, ev)
		}
		r.triggered = false
		return ActionContinue
	}

	if len(ev.Touches) < 2 {
		return ActionContinue
	}

	scaleDev := math.Abs(1 - ev.Scale)
	rotDev := math.Abs(ev.Rotation)
	minScale := opts.Float("transform_min_scale")
	minRot := opts.Float("transform_min_rotation")
	if scaleDev < minScale && rotDev < minRot {
		return ActionContinue
	}

	s.Claim()
	if !r.triggered {
		s.Emit(GestureTransformStart, ev)
		r.triggered = true
	}
	s.Emit(GestureTransform, ev)
	if rotDev > minRot {
		s.Emit(GestureRotate, ev)
	}
	if scaleDev > minScale {
		s.Emit(GesturePinch, ev)
		if ev.Scale < 1 {
			s.Emit(GesturePinchIn, ev)
		} else {
			s.Emit(GesturePinchOut, ev)
		}
	}
	return ActionClaim
}

// Reset forgets a transform left running by a halted session.
func (r *TransformRecognizer) Reset() {
	r.triggered = false
}

// --- Swipe ---

// SwipeRecognizer fires swipe and swipe<direction> when an interaction ends
// faster than swipe_velocity. It never claims the session.
type SwipeRecognizer struct{}

func (*SwipeRecognizer) Name() string  { return GestureSwipe }
func (*SwipeRecognizer) Priority() int { return PrioritySwipe }

func (*SwipeRecognizer) Defaults() Options {
	return Options{
		"swipe_min_touches": 1,
		"swipe_max_touches": 1,
		"swipe_velocity":    0.7,
	}
}

func (*SwipeRecognizer) Handle(ev *Event, s *Session) Action {
	if ev.Phase != PhaseEnd {
		return ActionContinue
	}
	opts := s.Options()
	if maxTouches := opts.Int("swipe_max_touches"); maxTouches > 0 {
		if n := len(ev.Touches); n < opts.Int("swipe_min_touches") || n > maxTouches {
			return ActionContinue
		}
	}
	v := opts.Float("swipe_velocity")
	if ev.VelocityX > v || ev.VelocityY > v {
		s.Emit(GestureSwipe, ev)
		s.Emit(GestureSwipe+ev.Direction.String(), ev)
	}
	return ActionContinue
}

// --- Tap / DoubleTap ---

// TapRecognizer fires tap, and doubletap when two taps follow each other
// within doubletap_interval and doubletap_distance.
type TapRecognizer struct{}

func (*TapRecognizer) Name() string  { return GestureTap }
func (*TapRecognizer) Priority() int { return PriorityTap }

func (*TapRecognizer) Defaults() Options {
	return Options{
		"tap_max_touchtime":  250,
		"tap_max_distance":   10,
		"tap_always":         true,
		"doubletap_distance": 20,
		"doubletap_interval": 300,
	}
}

func (*TapRecognizer) Handle(ev *Event, s *Session) Action {
	if ev.Phase != PhaseEnd || ev.Cancelled() {
		return ActionContinue
	}
	opts := s.Options()
	if ev.DeltaTime > opts.Duration("tap_max_touchtime") || ev.Distance > opts.Float("tap_max_distance") {
		return ActionContinue
	}

	doubled := false
	if prev := s.Previous(); isDoubleTap(prev, ev, opts) {
		s.Emit(GestureDoubleTap, ev)
		doubled = true
	}
	if !doubled || opts.Bool("tap_always") {
		s.Claim()
		s.Emit(GestureTap, ev)
		return ActionClaim
	}
	return ActionContinue
}

func isDoubleTap(prev *SessionSnapshot, ev *Event, opts Options) bool {
	if prev == nil || prev.Name != GestureTap || prev.LastEvent == nil {
		return false
	}
	gap := ev.Time.Sub(prev.LastEvent.Time)
	if gap < 0 || gap >= opts.Duration("doubletap_interval") {
		return false
	}
	return distance(prev.LastEvent.Center, ev.Center) < opts.Float("doubletap_distance")
}

// --- Release ---

// ReleaseRecognizer fires "release" at the end of every interaction,
// whatever else was detected.
type ReleaseRecognizer struct{}

func (*ReleaseRecognizer) Name() string  { return GestureRelease }
func (*ReleaseRecognizer) Priority() int { return PriorityRelease }

func (*ReleaseRecognizer) Handle(ev *Event, s *Session) Action {
	if ev.Phase == PhaseEnd {
		s.Emit(GestureRelease, ev)
	}
	return ActionContinue
}
