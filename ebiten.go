package tactile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenInput polls Ebitengine's mouse and touch state once per frame and
// feeds the resulting inputs to a Detector. Mouse input is delivered as
// SourceMouse, touches as SourceTouch with the full active contact list.
type EbitenInput struct {
	d   *Detector
	now func() time.Time

	mouseDown    bool
	mouseX       float64
	mouseY       float64
	mouseSeen    bool
	prevTouches  []Touch
	touchIDs     []ebiten.TouchID
	touchScratch []Touch

	injectQueue []syntheticPointerEvent

	// ScreenToWorld, if set, converts screen coordinates before they reach
	// the detector (camera or layout transforms).
	ScreenToWorld func(x, y float64) (float64, float64)
}

// NewEbitenInput creates an input source for d using the wall clock.
func NewEbitenInput(d *Detector) *EbitenInput {
	return &EbitenInput{d: d, now: time.Now}
}

// Detector returns the detector this source feeds.
func (s *EbitenInput) Detector() *Detector {
	return s.d
}

// Update reads the current input state and dispatches every change. Call it
// from ebiten.Game.Update.
func (s *EbitenInput) Update() {
	now := s.now()

	// Injected events replace real mouse input for the frame they are consumed.
	if !s.processInjectedInput(now) {
		mx, my := ebiten.CursorPosition()
		s.feedMouse(now, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	touches := s.touchScratch[:0]
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		touches = append(touches, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	s.touchScratch = touches
	s.feedTouches(now, touches)

	s.d.Tick(now)
}

func (s *EbitenInput) toWorld(x, y float64) (float64, float64) {
	if s.ScreenToWorld != nil {
		return s.ScreenToWorld(x, y)
	}
	return x, y
}

// feedMouse runs the mouse state machine for one frame.
func (s *EbitenInput) feedMouse(now time.Time, sx, sy float64, pressed bool) {
	x, y := s.toWorld(sx, sy)
	moved := !s.mouseSeen || x != s.mouseX || y != s.mouseY
	s.mouseSeen = true

	in := Input{Source: SourceMouse, Time: now, X: x, Y: y}
	switch {
	case pressed && !s.mouseDown:
		in.Type = InputDown
		in.Button = MouseButtonLeft
	case !pressed && s.mouseDown:
		if moved {
			// End events reuse the last move position; report the final one.
			s.d.Handle(Input{Source: SourceMouse, Type: InputMove, Time: now, X: x, Y: y, Button: MouseButtonLeft})
		}
		in.Type = InputUp
		in.Button = MouseButtonLeft
	case pressed && moved:
		in.Type = InputMove
		in.Button = MouseButtonLeft
	case !pressed && moved:
		// Hover: lets the normalizer disable detection until the next press.
		in.Type = InputMove
		in.Button = MouseButtonNone
	default:
		return
	}
	s.mouseDown = pressed
	s.mouseX, s.mouseY = x, y
	s.d.Handle(in)
}

// feedTouches diffs the active contacts against the previous frame and emits
// down, move and up inputs. Every input carries the full list of contacts
// still on the screen at that point.
func (s *EbitenInput) feedTouches(now time.Time, current []Touch) {
	world := make([]Touch, len(current))
	for i, t := range current {
		wx, wy := s.toWorld(t.X, t.Y)
		world[i] = Touch{ID: t.ID, X: wx, Y: wy}
	}

	// Lifted contacts first, one up per contact.
	active := s.prevTouches
	for _, p := range s.prevTouches {
		if indexOfTouch(world, p.ID) >= 0 {
			continue
		}
		active = withoutTouch(active, p.ID)
		s.d.Handle(Input{Source: SourceTouch, Type: InputUp, Time: now, Touches: clonePointers(active)})
	}

	// New contacts, one down per contact.
	for _, t := range world {
		if indexOfTouch(active, t.ID) >= 0 {
			continue
		}
		active = append(clonePointers(active), t)
		s.d.Handle(Input{Source: SourceTouch, Type: InputDown, Time: now, Touches: clonePointers(active)})
	}

	// A single move carrying every contact's current position.
	if touchesMoved(active, world) {
		s.d.Handle(Input{Source: SourceTouch, Type: InputMove, Time: now, Touches: clonePointers(world)})
	}
	s.prevTouches = world
}

func indexOfTouch(s []Touch, id int) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

func withoutTouch(s []Touch, id int) []Touch {
	out := make([]Touch, 0, len(s))
	for _, t := range s {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// touchesMoved reports whether any contact in cur differs from its entry in
// prev.
func touchesMoved(prev, cur []Touch) bool {
	for _, t := range cur {
		i := indexOfTouch(prev, t.ID)
		if i < 0 || prev[i].X != t.X || prev[i].Y != t.Y {
			return true
		}
	}
	return false
}
