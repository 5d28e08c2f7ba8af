package tactile

import "time"

// syntheticPointerEvent represents a single injected mouse event. Screen
// coordinates are used and converted through ScreenToWorld, identical to real
// mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's Update call.
func (s *EbitenInput) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (s *EbitenInput) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (s *EbitenInput) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *EbitenInput) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (s *EbitenInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of injected events not yet consumed.
func (s *EbitenInput) Pending() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the mouse state machine. Returns true if an event was consumed
// (real mouse input should be skipped).
func (s *EbitenInput) processInjectedInput(now time.Time) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.feedMouse(now, evt.screenX, evt.screenY, evt.pressed)
	return true
}
