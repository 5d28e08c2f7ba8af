package tactile

import (
	"math"
	"time"
)

// session is the bookkeeping for one continuous interaction.
type session struct {
	start     *Event
	last      *Event
	name      string
	corrected bool
	tasks     []*Task
}

// SessionSnapshot is a read-only copy of a terminated session, kept to
// correlate consecutive interactions (double tap).
type SessionSnapshot struct {
	Name       string
	StartEvent *Event
	LastEvent  *Event
}

func newSession(ev Event) *session {
	start := ev
	start.Touches = clonePointers(ev.Touches)
	start.dispatch = nil
	return &session{start: &start}
}

func (s *session) snapshot() *SessionSnapshot {
	return &SessionSnapshot{Name: s.name, StartEvent: s.start, LastEvent: s.last}
}

// extend returns a copy of ev enriched with kinematics relative to the
// session's start event and its last enriched event. The only state it
// touches is the start event's touch snapshot.
func (s *session) extend(ev Event) *Event {
	start := s.start
	if len(ev.Touches) != len(start.Touches) {
		// Touch start often under-reports simultaneous fingers; adopt the
		// current contacts as the reference to avoid scale/rotation jumps.
		start.Touches = clonePointers(ev.Touches)
	}

	out := ev
	out.DeltaTime = ev.Time.Sub(start.Time)
	out.DeltaX = ev.Center.X - start.Center.X
	out.DeltaY = ev.Center.Y - start.Center.Y
	out.VelocityX, out.VelocityY = velocity(out.DeltaTime, out.DeltaX, out.DeltaY)
	out.Distance = distance(start.Center, ev.Center)
	out.Angle = angle(start.Center, ev.Center)
	out.Direction = direction(start.Center, ev.Center)

	if last := s.last; last != nil {
		if ev.Phase == PhaseEnd {
			// End coordinates repeat the previous move, so recomputing would
			// yield zero.
			out.InterimAngle = last.InterimAngle
			out.InterimDirection = last.InterimDirection
		} else {
			out.InterimAngle = angle(last.Center, ev.Center)
			out.InterimDirection = direction(last.Center, ev.Center)
		}
	}

	out.Scale = scale(start.Touches, ev.Touches)
	out.Rotation = rotation(start.Touches, ev.Touches)
	out.StartEvent = start
	return &out
}

// velocity returns the absolute per-axis velocity in px/ms. Zero elapsed time
// yields zero.
func velocity(dt time.Duration, dx, dy float64) (float64, float64) {
	ms := float64(dt) / float64(time.Millisecond)
	if ms <= 0 {
		return 0, 0
	}
	return math.Abs(dx / ms), math.Abs(dy / ms)
}

func distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// angle returns the angle of the vector a->b in degrees.
func angle(a, b Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// direction returns the dominant direction of a->b. Horizontal wins ties.
func direction(a, b Vec2) Direction {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	if dx >= dy {
		if a.X-b.X > 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if a.Y-b.Y > 0 {
		return DirectionUp
	}
	return DirectionDown
}

// scale is the ratio of the current two-finger distance to the start one.
func scale(start, end []Touch) float64 {
	if len(start) < 2 || len(end) < 2 {
		return 1
	}
	d0 := distance(touchPos(start[0]), touchPos(start[1]))
	if d0 == 0 {
		return 1
	}
	return distance(touchPos(end[0]), touchPos(end[1])) / d0
}

// rotation is the change of the two-finger angle in degrees.
func rotation(start, end []Touch) float64 {
	if len(start) < 2 || len(end) < 2 {
		return 0
	}
	return angle(touchPos(end[0]), touchPos(end[1])) - angle(touchPos(start[0]), touchPos(start[1]))
}

func touchPos(t Touch) Vec2 {
	return Vec2{X: t.X, Y: t.Y}
}
