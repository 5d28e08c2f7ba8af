package tactile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTap(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 100, 100))
	d.Handle(mouseInput(InputUp, 120, 100, 100))

	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, rec.Names())
	require.NotNil(t, d.Previous())
	assert.Equal(t, GestureTap, d.Previous().Name)
}

func TestTap_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		moves []Input
		upMS  int
	}{
		{"held too long", nil, 400},
		{"moved too far", []Input{mouseInput(InputMove, 50, 115, 100)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newRecorded(Options{"drag": false})
			d.Handle(mouseInput(InputDown, 0, 100, 100))
			for _, in := range tt.moves {
				d.Handle(in)
			}
			d.Handle(Input{Source: SourceMouse, Type: InputUp, Time: at(tt.upMS), Button: MouseButtonLeft})

			assert.Equal(t, []string{GestureTouch, GestureRelease}, rec.Names())
		})
	}
}

func TestTap_CancelledInput(t *testing.T) {
	d, rec := newRecorded(nil)
	d.Handle(mouseInput(InputDown, 0, 10, 10))
	d.Handle(mouseInput(InputCancel, 50, 10, 10))

	assert.Equal(t, []string{GestureTouch, GestureRelease}, rec.Names())
}

func doubleTapSequence(d *Detector) {
	d.Handle(mouseInput(InputDown, 0, 100, 100))
	d.Handle(mouseInput(InputMove, 50, 103, 100))
	d.Handle(mouseInput(InputUp, 100, 103, 100))

	d.Handle(mouseInput(InputDown, 250, 103, 100))
	d.Handle(mouseInput(InputMove, 250, 105, 100))
	d.Handle(mouseInput(InputUp, 250, 105, 100))
}

func TestDoubleTap(t *testing.T) {
	d, rec := newRecorded(nil)
	doubleTapSequence(d)

	names := rec.Names()
	require.Len(t, names, 7)
	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, names[:3])
	assert.Equal(t, []string{GestureTouch, GestureDoubleTap, GestureTap, GestureRelease}, names[3:])
}

func TestDoubleTap_WithoutTapAlways(t *testing.T) {
	d, rec := newRecorded(Options{"tap_always": false})
	doubleTapSequence(d)

	assert.Equal(t, []string{GestureTouch, GestureDoubleTap, GestureRelease}, rec.Names()[3:])
	assert.Equal(t, 1, rec.Count(GestureTap))
}

func TestDoubleTap_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		second [3]Input
	}{
		{"too late", [3]Input{
			mouseInput(InputDown, 400, 103, 100),
			mouseInput(InputMove, 400, 103, 100),
			mouseInput(InputUp, 450, 103, 100),
		}},
		{"too far", [3]Input{
			mouseInput(InputDown, 200, 140, 100),
			mouseInput(InputMove, 200, 140, 100),
			mouseInput(InputUp, 250, 140, 100),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newRecorded(nil)
			d.Handle(mouseInput(InputDown, 0, 100, 100))
			d.Handle(mouseInput(InputMove, 50, 103, 100))
			d.Handle(mouseInput(InputUp, 100, 103, 100))
			for _, in := range tt.second {
				d.Handle(in)
			}

			assert.Zero(t, rec.Count(GestureDoubleTap))
			assert.Equal(t, 2, rec.Count(GestureTap))
		})
	}
}

func TestSwipe(t *testing.T) {
	d, rec := newRecorded(Options{"drag": false})

	d.Handle(mouseInput(InputDown, 0, 200, 100))
	d.Handle(mouseInput(InputMove, 100, 110, 100))
	d.Handle(mouseInput(InputUp, 100, 110, 100))

	assert.Equal(t, []string{GestureTouch, GestureSwipe, "swipeleft", GestureRelease}, rec.Names())
	swipe := rec.Gestures[1].Event
	assert.InDelta(t, 0.9, swipe.VelocityX, 1e-9)
	assert.Equal(t, DirectionLeft, swipe.Direction)
}

func TestSwipe_TooSlow(t *testing.T) {
	d, rec := newRecorded(Options{"drag": false})

	d.Handle(mouseInput(InputDown, 0, 200, 100))
	d.Handle(mouseInput(InputMove, 200, 110, 100))
	d.Handle(mouseInput(InputUp, 200, 110, 100))

	assert.Zero(t, rec.Count(GestureSwipe))
}

func TestHold(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 50, 50))
	d.Tick(at(499))
	assert.Zero(t, rec.Count(GestureHold))

	d.Tick(at(600))
	d.Tick(at(900))
	assert.Equal(t, 1, rec.Count(GestureHold))

	d.Handle(mouseInput(InputUp, 950, 50, 50))
	assert.Equal(t, []string{GestureTouch, GestureHold, GestureRelease}, rec.Names())

	hold := rec.Gestures[1].Event
	assert.Equal(t, PhaseStart, hold.Phase)
	assert.Equal(t, Vec2{X: 50, Y: 50}, hold.Center)
}

func TestHold_CancelledByMovement(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 50, 50))
	d.Handle(mouseInput(InputMove, 100, 55, 50))
	d.Tick(at(600))

	assert.Zero(t, rec.Count(GestureHold))
}

func TestHold_CancelledByRelease(t *testing.T) {
	d, rec := newRecorded(nil)
	hold := findRecognizer[*HoldRecognizer](t, d)

	d.Handle(mouseInput(InputDown, 0, 50, 50))
	assert.True(t, hold.Armed())
	d.Handle(mouseInput(InputUp, 100, 50, 50))
	assert.False(t, hold.Armed())

	d.Tick(at(600))
	assert.Zero(t, rec.Count(GestureHold))
}

func TestHold_NotFiredWhenClaimedByDrag(t *testing.T) {
	d, rec := newRecorded(Options{"hold_threshold": 100})

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 100, 0, 50))
	d.Tick(at(600))

	assert.Equal(t, 1, rec.Count(GestureDragStart))
	assert.Zero(t, rec.Count(GestureHold))
}

func TestDrag(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 50, 0, 50))
	d.Handle(mouseInput(InputMove, 100, 0, 80))
	d.Handle(mouseInput(InputUp, 300, 0, 80))

	assert.Equal(t, []string{
		GestureTouch,
		GestureDragStart, GestureDrag, "dragdown",
		GestureDrag, "dragdown",
		GestureDragEnd, GestureRelease,
	}, rec.Names())
	assert.Equal(t, GestureDrag, d.Previous().Name)
}

func TestDrag_BelowMinDistance(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 50, 6, 0))
	d.Handle(mouseInput(InputUp, 100, 6, 0))

	assert.Zero(t, rec.Count(GestureDragStart))
	assert.Equal(t, 1, rec.Count(GestureTap))
}

func TestDrag_CorrectsStartPoint(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	ev := d.Handle(mouseInput(InputMove, 50, 30, 40))
	require.NotNil(t, ev)

	i := indexOf(rec.Names(), GestureDragStart)
	require.GreaterOrEqual(t, i, 0)
	start := rec.Gestures[i].Event

	require.NotNil(t, start.StartEvent)
	assert.InDelta(t, 6.0, start.StartEvent.Center.X, 1e-9)
	assert.InDelta(t, 8.0, start.StartEvent.Center.Y, 1e-9)
	assert.InDelta(t, 40.0, start.Distance, 1e-9)
	assert.InDelta(t, 24.0, start.DeltaX, 1e-9)
	assert.InDelta(t, 32.0, start.DeltaY, 1e-9)
	assert.InDelta(t, 40.0, ev.Distance, 1e-9)

	// The correction applies once per session.
	ev = d.Handle(mouseInput(InputMove, 100, 30, 60))
	assert.InDelta(t, 6.0, ev.StartEvent.Center.X, 1e-9)
	assert.InDelta(t, 8.0, ev.StartEvent.Center.Y, 1e-9)
}

func TestDrag_WithoutCorrection(t *testing.T) {
	d, rec := newRecorded(Options{"correct_for_drag_min_distance": false})

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 50, 30, 40))

	i := indexOf(rec.Names(), GestureDragStart)
	require.GreaterOrEqual(t, i, 0)
	assert.InDelta(t, 50.0, rec.Gestures[i].Event.Distance, 1e-9)
}

func TestDrag_LockToAxis(t *testing.T) {
	d, rec := newRecorded(Options{"drag_lock_to_axis": true})

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 10, 0, 15))
	d.Handle(mouseInput(InputMove, 20, 0, 30))
	last := d.Handle(mouseInput(InputMove, 30, 40, 35))

	assert.Equal(t, 3, rec.Count("dragdown"))
	assert.Zero(t, rec.Count("dragright"))
	require.NotNil(t, last)
	assert.True(t, last.DragLockedToAxis)
	assert.Equal(t, DirectionDown, last.Direction)
}

func TestDrag_WithoutAxisLock(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 10, 0, 15))
	d.Handle(mouseInput(InputMove, 20, 0, 30))
	d.Handle(mouseInput(InputMove, 30, 40, 35))

	assert.Equal(t, 1, rec.Count("dragright"))
}

func TestDrag_TooManyTouches(t *testing.T) {
	d, rec := newRecorded(Options{"transform": false})

	d.Handle(touchInput(InputDown, 0, Touch{ID: 1, X: 0, Y: 0}))
	d.Handle(touchInput(InputMove, 20, Touch{ID: 1, X: 0, Y: 0}, Touch{ID: 2, X: 0, Y: 100}))
	d.Handle(touchInput(InputMove, 40, Touch{ID: 1, X: 0, Y: 50}, Touch{ID: 2, X: 0, Y: 150}))

	assert.Zero(t, rec.Count(GestureDragStart))
}

func TestDrag_BlockHorizontal(t *testing.T) {
	d, _ := newRecorded(Options{"drag_block_horizontal": true})

	hooked := 0
	d.Handle(mouseInput(InputDown, 0, 0, 0))
	in := mouseInput(InputMove, 50, 50, 0)
	in.OnPreventDefault = func() { hooked++ }
	ev := d.Handle(in)

	require.NotNil(t, ev)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, hooked)

	in = mouseInput(InputMove, 60, 50, 60)
	in.OnPreventDefault = func() { hooked++ }
	ev = d.Handle(in)
	assert.False(t, ev.DefaultPrevented(), "vertical drags are not blocked")
	assert.Equal(t, 1, hooked)
}

func twoFingerStart(d *Detector) {
	d.Handle(touchInput(InputDown, 0, Touch{ID: 1, X: 150, Y: 100}))
	// The second contact joins through a move; the start input is ignored.
	d.Handle(touchInput(InputDown, 10, Touch{ID: 1, X: 100, Y: 100}, Touch{ID: 2, X: 200, Y: 100}))
	d.Handle(touchInput(InputMove, 20, Touch{ID: 1, X: 100, Y: 100}, Touch{ID: 2, X: 200, Y: 100}))
}

func TestTransform_Rotate(t *testing.T) {
	d, rec := newRecorded(nil)

	twoFingerStart(d)
	d.Handle(touchInput(InputMove, 40, Touch{ID: 1, X: 150, Y: 50}, Touch{ID: 2, X: 150, Y: 150}))
	d.Handle(touchInput(InputUp, 300))

	assert.Equal(t, []string{
		GestureTouch,
		GestureTransformStart, GestureTransform, GestureRotate,
		GestureTransformEnd, GestureRelease,
	}, rec.Names())
	rot := rec.Gestures[2].Event
	assert.InDelta(t, 90.0, rot.Rotation, 1e-9)
	assert.InDelta(t, 1.0, rot.Scale, 1e-9)
}

func TestTransform_Pinch(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Touch
		scale float64
		want  string
	}{
		{"out", Touch{ID: 1, X: 50, Y: 100}, Touch{ID: 2, X: 250, Y: 100}, 2, GesturePinchOut},
		{"in", Touch{ID: 1, X: 125, Y: 100}, Touch{ID: 2, X: 175, Y: 100}, 0.5, GesturePinchIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newRecorded(nil)
			twoFingerStart(d)
			d.Handle(touchInput(InputMove, 40, tt.a, tt.b))
			d.Handle(touchInput(InputUp, 300))

			assert.Equal(t, []string{
				GestureTouch,
				GestureTransformStart, GestureTransform, GesturePinch, tt.want,
				GestureTransformEnd, GestureRelease,
			}, rec.Names())
			assert.InDelta(t, tt.scale, rec.Gestures[3].Event.Scale, 1e-9)
		})
	}
}

func TestTransform_FingersLiftSeparately(t *testing.T) {
	d, rec := newRecorded(nil)
	a := Touch{ID: 1, X: 100, Y: 100}

	d.Handle(touchInput(InputDown, 0, a))
	d.Handle(touchInput(InputDown, 10, a, Touch{ID: 2, X: 200, Y: 100}))
	d.Handle(touchInput(InputMove, 20, a, Touch{ID: 2, X: 200, Y: 100}))
	d.Handle(touchInput(InputMove, 40, a, Touch{ID: 2, X: 300, Y: 100}))
	d.Handle(touchInput(InputUp, 60, a))
	d.Handle(touchInput(InputUp, 300))

	assert.Equal(t, []string{
		GestureTouch,
		GestureTransformStart, GestureTransform, GesturePinch, GesturePinchOut,
		GestureTransformEnd, GestureRelease,
	}, rec.Names())

	rec.Reset()
	d.Handle(mouseInput(InputDown, 1000, 10, 10))
	d.Handle(mouseInput(InputUp, 1050, 10, 10))
	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, rec.Names())
}

func TestTransform_HaltedSessionDoesNotLeak(t *testing.T) {
	d, rec := newRecorded(nil)
	d.On(GestureTransformStart, func(ctx GestureContext) { ctx.StopDetect() })

	twoFingerStart(d)
	d.Handle(touchInput(InputMove, 40, Touch{ID: 1, X: 50, Y: 100}, Touch{ID: 2, X: 250, Y: 100}))
	d.Handle(touchInput(InputUp, 60))

	rec.Reset()
	d.Handle(mouseInput(InputDown, 1000, 10, 10))
	d.Handle(mouseInput(InputUp, 1050, 10, 10))
	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, rec.Names())
}

func TestTransform_BelowThreshold(t *testing.T) {
	d, rec := newRecorded(nil)

	twoFingerStart(d)
	d.Handle(touchInput(InputMove, 40, Touch{ID: 1, X: 100.2, Y: 100}, Touch{ID: 2, X: 200.2, Y: 100}))

	assert.Zero(t, rec.Count(GestureTransformStart))
}

func TestTransform_RunsBeforeDrag(t *testing.T) {
	d, rec := newRecorded(Options{"drag_max_touches": 2})

	twoFingerStart(d)
	d.Handle(touchInput(InputMove, 40, Touch{ID: 1, X: 50, Y: 120}, Touch{ID: 2, X: 250, Y: 120}))
	d.Handle(touchInput(InputMove, 60, Touch{ID: 1, X: 50, Y: 130}, Touch{ID: 2, X: 250, Y: 130}))

	assert.Equal(t, []string{
		GestureTouch,
		GestureTransformStart, GestureTransform, GesturePinch, GesturePinchOut,
		GestureDragStart, GestureDrag, "dragdown",
		GestureTransformEnd, GestureDrag, "dragdown",
	}, rec.Names())
	assert.Less(t, indexOf(d.Recognizers(), GestureTransform), indexOf(d.Recognizers(), GestureDrag))
}

func TestTouch_PreventMouseEvents(t *testing.T) {
	d, rec := newRecorded(Options{"prevent_mouseevents": true})

	d.Handle(mouseInput(InputDown, 0, 10, 10))
	d.Handle(mouseInput(InputUp, 50, 10, 10))
	assert.Empty(t, rec.Names())
	assert.False(t, d.Active())

	d.Handle(touchInput(InputDown, 100, Touch{ID: 7, X: 10, Y: 10}))
	d.Handle(touchInput(InputUp, 150))
	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, rec.Names())
}

func TestTouch_PreventDefault(t *testing.T) {
	d, _ := newRecorded(Options{"prevent_default": true})

	hooked := 0
	in := mouseInput(InputDown, 0, 10, 10)
	in.OnPreventDefault = func() { hooked++ }
	ev := d.Handle(in)

	require.NotNil(t, ev)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, 1, hooked)
}

func TestStopDetect_FromListener(t *testing.T) {
	d, rec := newRecorded(nil)
	d.On(GestureDragStart, func(ctx GestureContext) {
		ctx.StopDetect()
	})

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 50, 0, 50))
	assert.False(t, d.Active())

	d.Handle(mouseInput(InputMove, 80, 0, 80))
	d.Handle(mouseInput(InputUp, 100, 0, 80))

	assert.Equal(t, []string{GestureTouch, GestureDragStart, GestureDrag, "dragdown"}, rec.Names())
	assert.Equal(t, GestureDrag, d.Previous().Name)

	// The next interaction starts a fresh session with no leftover drag.
	rec.Reset()
	d.Handle(mouseInput(InputDown, 400, 0, 0))
	d.Handle(mouseInput(InputUp, 450, 0, 0))
	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, rec.Names())
	assert.Zero(t, rec.Count(GestureDragEnd))
}

func TestDrag_HaltedByRecognizerDoesNotLeak(t *testing.T) {
	halt := false
	d, rec := newRecorded(nil)
	d.Register(&prioritizedStub{stubRecognizer{name: "halter", priority: 60, handle: func(ev *Event, _ *Session) Action {
		if halt && ev.Phase == PhaseMove {
			return ActionHalt
		}
		return ActionContinue
	}}})

	halt = true
	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 50, 0, 50))
	d.Handle(mouseInput(InputUp, 100, 0, 50))
	assert.Equal(t, 1, rec.Count(GestureDragStart))
	assert.False(t, d.Active())

	halt = false
	rec.Reset()
	d.Handle(mouseInput(InputDown, 400, 0, 0))
	d.Handle(mouseInput(InputUp, 450, 0, 0))
	assert.Equal(t, []string{GestureTouch, GestureTap, GestureRelease}, rec.Names())
}

func TestRelease_AlwaysLast(t *testing.T) {
	d, rec := newRecorded(nil)

	d.Handle(mouseInput(InputDown, 0, 0, 0))
	d.Handle(mouseInput(InputMove, 50, 100, 0))
	d.Handle(mouseInput(InputUp, 50, 100, 0))

	names := rec.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, GestureRelease, names[len(names)-1])
	assert.Equal(t, 1, rec.Count(GestureRelease))
	assert.Equal(t, 1, rec.Count(GestureSwipe))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		key  string
		want float64
	}{
		{"hold_timeout", 500},
		{"hold_threshold", 1},
		{"drag_min_distance", 10},
		{"drag_max_touches", 1},
		{"drag_lock_min_distance", 25},
		{"swipe_min_touches", 1},
		{"swipe_max_touches", 1},
		{"swipe_velocity", 0.7},
		{"transform_min_scale", 0.01},
		{"transform_min_rotation", 1},
		{"tap_max_touchtime", 250},
		{"tap_max_distance", 10},
		{"doubletap_distance", 20},
		{"doubletap_interval", 300},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, opts.Float(tt.key))
		})
	}
	assert.True(t, opts.Bool("correct_for_drag_min_distance"))
	assert.True(t, opts.Bool("tap_always"))
	assert.False(t, opts.Bool("drag_lock_to_axis"))
	assert.False(t, opts.Bool("prevent_mouseevents"))
}

// findRecognizer returns the registered recognizer of type T.
func findRecognizer[T Recognizer](t *testing.T, d *Detector) T {
	t.Helper()
	for _, e := range d.reg.entries {
		if r, ok := e.r.(T); ok {
			return r
		}
	}
	var zero T
	t.Fatalf("recognizer %T not registered", zero)
	return zero
}
