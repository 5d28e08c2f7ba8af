package tactile

import "math"

// mouseTouchID is the identifier assigned to the synthesized mouse contact.
const mouseTouchID = 1

// normalizer unifies mouse, touch and pointer inputs into Events. Each
// Detector owns one; there is no process-wide input state.
type normalizer struct {
	// pointers holds the last known position per pointer ID in the order the
	// pointers went down.
	pointers []Touch

	// touchTriggered latches once any touch or pointer input arrives so that
	// compatibility mouse events from the same interaction are ignored.
	touchTriggered bool

	detectEnabled bool

	// lastMove caches the touch list of the most recent input that still had
	// contacts, reused when an end input carries no useful coordinates.
	lastMove    []Touch
	hasLastMove bool
}

// normalize converts a raw input into an Event. ok is false when the input is
// ignored entirely (latched mouse events, hover moves, non-left buttons).
func (n *normalizer) normalize(in Input) (ev Event, ok bool) {
	if in.Source == SourceMouse && n.touchTriggered {
		return Event{}, false
	}

	switch {
	case in.Source == SourceTouch,
		in.Source == SourcePointer && in.Type == InputDown,
		in.Source == SourceMouse && in.Button == MouseButtonLeft:
		n.detectEnabled = true
	case in.Source == SourceMouse:
		// Hover or a non-left button.
		n.detectEnabled = false
	}

	if in.Source == SourceTouch || in.Source == SourcePointer {
		n.touchTriggered = true
	}

	phase := phaseOf(in.Type)
	count := 0
	if n.detectEnabled {
		switch in.Source {
		case SourcePointer:
			if phase != PhaseEnd {
				count = n.updatePointer(in)
			}
		case SourceTouch:
			count = len(in.Touches)
		case SourceMouse:
			if phase != PhaseEnd {
				count = 1
			}
		}

		if count > 0 && phase == PhaseEnd {
			phase = PhaseMove
		} else if count == 0 {
			phase = PhaseEnd
		}

		if count > 0 || !n.hasLastMove {
			n.lastMove = n.touchList(in)
			n.hasLastMove = true
		}

		touches := n.lastMove
		if in.Source == SourcePointer {
			touches = clonePointers(n.pointers)
		}
		ev = Event{
			Center:      centerOf(touches),
			Time:        in.Time,
			Target:      in.Target,
			Touches:     touches,
			Phase:       phase,
			PointerKind: kindOf(in),
			Source:      in,
		}
		ok = true
	}

	if count == 0 {
		n.reset()
	}
	return ev, ok
}

// reset clears all per-interaction state.
func (n *normalizer) reset() {
	n.pointers = n.pointers[:0]
	n.touchTriggered = false
	n.detectEnabled = false
	n.lastMove = nil
	n.hasLastMove = false
}

// updatePointer stores the pointer and returns the number of tracked pointers.
func (n *normalizer) updatePointer(in Input) int {
	for i := range n.pointers {
		if n.pointers[i].ID == in.PointerID {
			n.pointers[i].X = in.X
			n.pointers[i].Y = in.Y
			return len(n.pointers)
		}
	}
	n.pointers = append(n.pointers, Touch{ID: in.PointerID, X: in.X, Y: in.Y})
	return len(n.pointers)
}

// touchList returns the contacts carried by in.
func (n *normalizer) touchList(in Input) []Touch {
	switch in.Source {
	case SourcePointer:
		return clonePointers(n.pointers)
	case SourceTouch:
		return clonePointers(in.Touches)
	default:
		return []Touch{{ID: mouseTouchID, X: in.X, Y: in.Y}}
	}
}

func clonePointers(s []Touch) []Touch {
	if len(s) == 0 {
		return nil
	}
	c := make([]Touch, len(s))
	copy(c, s)
	return c
}

func phaseOf(t InputType) Phase {
	switch t {
	case InputDown:
		return PhaseStart
	case InputMove:
		return PhaseMove
	default:
		return PhaseEnd
	}
}

func kindOf(in Input) PointerKind {
	switch in.Source {
	case SourceTouch:
		return PointerTouch
	case SourcePointer:
		return in.Kind
	default:
		return PointerMouse
	}
}

// centerOf returns the midpoint of the bounding box of touches.
func centerOf(touches []Touch) Vec2 {
	if len(touches) == 0 {
		return Vec2{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range touches {
		minX = math.Min(minX, t.X)
		maxX = math.Max(maxX, t.X)
		minY = math.Min(minY, t.Y)
		maxY = math.Max(maxY, t.Y)
	}
	return Vec2{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}
