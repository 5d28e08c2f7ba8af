package tactile

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fling turns the release velocity of a swipe or drag into a decelerating
// offset, for inertial scrolling or throwing objects. Call Update(dt) each
// frame and apply the returned delta.
type Fling struct {
	tweens [2]*gween.Tween
	offset [2]float64
	Done   bool
}

// NewFling creates a fling from ev's velocity. duration is in seconds; the
// travelled distance is the area under a linear deceleration from the release
// velocity to zero. fn defaults to ease.OutCubic when nil.
func NewFling(ev *Event, duration float32, fn ease.TweenFunc) *Fling {
	if fn == nil {
		fn = ease.OutCubic
	}
	ms := float64(duration) * 1000
	tx := math.Copysign(ev.VelocityX*ms/2, ev.DeltaX)
	ty := math.Copysign(ev.VelocityY*ms/2, ev.DeltaY)
	f := &Fling{}
	f.tweens[0] = gween.New(0, float32(tx), duration, fn)
	f.tweens[1] = gween.New(0, float32(ty), duration, fn)
	f.Done = duration <= 0 || (tx == 0 && ty == 0)
	return f
}

// Update advances the fling by dt seconds and returns the offset travelled
// since the previous call.
func (f *Fling) Update(dt float32) (dx, dy float64) {
	if f.Done {
		return 0, 0
	}
	allDone := true
	var delta [2]float64
	for i, tw := range f.tweens {
		val, finished := tw.Update(dt)
		delta[i] = float64(val) - f.offset[i]
		f.offset[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	f.Done = allDone
	return delta[0], delta[1]
}

// Offset returns the total offset travelled so far.
func (f *Fling) Offset() Vec2 {
	return Vec2{X: f.offset[0], Y: f.offset[1]}
}
