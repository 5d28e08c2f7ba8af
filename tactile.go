package tactile

import "time"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Touch is a single contact point. ID is stable for the lifetime of the contact.
type Touch struct {
	ID   int
	X, Y float64
}

// Phase is the lifecycle stage of a single continuous interaction.
type Phase uint8

const (
	PhaseStart Phase = iota // first contact
	PhaseMove               // contact moved, or a finger was lifted while others remain
	PhaseEnd                // last contact lifted or cancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// PointerKind identifies the device class that produced an event.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

func (k PointerKind) String() string {
	switch k {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	case PointerPen:
		return "pen"
	default:
		return "unknown"
	}
}

// Direction is the dominant axis direction of a movement.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// Vertical reports whether d is up or down.
func (d Direction) Vertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// InputSource identifies which platform API delivered an Input.
type InputSource uint8

const (
	SourceMouse   InputSource = iota // single pointer with button state
	SourceTouch                      // native touch list (all active contacts)
	SourcePointer                    // one pointer per input, tracked by PointerID
)

// InputType is the raw action carried by an Input.
type InputType uint8

const (
	InputDown InputType = iota
	InputMove
	InputUp
	InputCancel
)

// MouseButton identifies the mouse button involved in an input. For up events
// it is the button that was released.
type MouseButton uint8

const (
	MouseButtonNone   MouseButton = iota // no button (hover)
	MouseButtonLeft                      // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Input is a raw platform event. It is read-only once handed to a Detector.
type Input struct {
	Source InputSource
	Type   InputType
	Time   time.Time
	Target any

	// Touches holds every active contact for SourceTouch. On up events the
	// lifted contact is no longer listed.
	Touches []Touch

	// Single pointer fields for SourceMouse and SourcePointer.
	PointerID int
	X, Y      float64
	Kind      PointerKind // SourcePointer only; mouse is implied for SourceMouse
	Button    MouseButton // SourceMouse only

	// OnPreventDefault, if set, is called when a recognizer or listener asks to
	// suppress the platform's default handling of this input.
	OnPreventDefault func()
}

// Action is the result of a recognizer handling one event.
type Action uint8

const (
	ActionContinue Action = iota // nothing to report
	ActionClaim                  // the recognizer claims the session's gesture name
	ActionHalt                   // stop detection for the rest of the session
)

// Gesture event names emitted by the built-in recognizers.
const (
	GestureTouch          = "touch"
	GestureHold           = "hold"
	GestureRelease        = "release"
	GestureTap            = "tap"
	GestureDoubleTap      = "doubletap"
	GestureSwipe          = "swipe"
	GestureDrag           = "drag"
	GestureDragStart      = "dragstart"
	GestureDragEnd        = "dragend"
	GestureTransform      = "transform"
	GestureTransformStart = "transformstart"
	GestureTransformEnd   = "transformend"
	GestureRotate         = "rotate"
	GesturePinch          = "pinch"
	GesturePinchIn        = "pinchin"
	GesturePinchOut       = "pinchout"
)
