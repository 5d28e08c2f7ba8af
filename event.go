package tactile

import "time"

// Event is a normalized input enriched with kinematics relative to the
// session's start event. Recognizers and listeners receive pointers to the
// same Event for every gesture fired from one input.
type Event struct {
	Center      Vec2
	Time        time.Time
	Target      any
	Touches     []Touch
	Phase       Phase
	PointerKind PointerKind
	Source      Input

	// Derived fields, filled in by the session.
	DeltaTime        time.Duration
	DeltaX, DeltaY   float64
	VelocityX        float64 // px/ms, never negative
	VelocityY        float64 // px/ms, never negative
	Distance         float64
	Angle            float64 // degrees, (-180, 180]
	Direction        Direction
	InterimAngle     float64
	InterimDirection Direction
	Scale            float64
	Rotation         float64 // degrees
	StartEvent       *Event

	// DragLockedToAxis is set by the drag recognizer once axis locking engaged.
	DragLockedToAxis bool

	// dispatch is shared by every copy made of the event while it is being
	// detected, including re-enriched copies after drag correction.
	dispatch *dispatchState
}

type dispatchState struct {
	defaultPrevented bool
	halt             func()
}

// Cancelled reports whether the originating input was a cancel rather than a
// regular release.
func (e *Event) Cancelled() bool {
	return e.Source.Type == InputCancel
}

// PreventDefault asks the platform to skip its default handling of the
// originating input.
func (e *Event) PreventDefault() {
	if e.dispatch == nil {
		e.dispatch = &dispatchState{}
	}
	if e.dispatch.defaultPrevented {
		return
	}
	e.dispatch.defaultPrevented = true
	if e.Source.OnPreventDefault != nil {
		e.Source.OnPreventDefault()
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.dispatch != nil && e.dispatch.defaultPrevented
}

// StopDetect halts the current detection session. Remaining recognizers do
// not see this event and no further events reach the session.
func (e *Event) StopDetect() {
	if e.dispatch != nil && e.dispatch.halt != nil {
		e.dispatch.halt()
	}
}

// GestureContext is delivered to gesture listeners.
type GestureContext struct {
	Gesture string
	*Event
}

// GestureEvent is a flat copy of an emitted gesture for the EventStore bridge.
type GestureEvent struct {
	Gesture     string
	Time        time.Time
	Phase       Phase
	PointerKind PointerKind
	CenterX     float64
	CenterY     float64
	Touches     int
	DeltaX      float64
	DeltaY      float64
	VelocityX   float64
	VelocityY   float64
	Distance    float64
	Angle       float64
	Direction   Direction
	Scale       float64
	Rotation    float64
	DeltaTime   time.Duration
}

// EventStore is the interface for optional ECS integration. When set on a
// Detector, every emitted gesture is forwarded to it.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

func newGestureEvent(gesture string, ev *Event) GestureEvent {
	return GestureEvent{
		Gesture:     gesture,
		Time:        ev.Time,
		Phase:       ev.Phase,
		PointerKind: ev.PointerKind,
		CenterX:     ev.Center.X,
		CenterY:     ev.Center.Y,
		Touches:     len(ev.Touches),
		DeltaX:      ev.DeltaX,
		DeltaY:      ev.DeltaY,
		VelocityX:   ev.VelocityX,
		VelocityY:   ev.VelocityY,
		Distance:    ev.Distance,
		Angle:       ev.Angle,
		Direction:   ev.Direction,
		Scale:       ev.Scale,
		Rotation:    ev.Rotation,
		DeltaTime:   ev.DeltaTime,
	}
}
