// Package tactile is a touch, pointer and mouse gesture detector for
// [Ebitengine] games and other Go programs that receive raw input.
//
// A [Detector] normalizes raw [Input] into a single event shape, enriches each
// event with kinematics relative to the start of the interaction (delta,
// velocity, distance, angle, two-finger scale and rotation), and runs an
// ordered registry of recognizers that emit named gestures.
//
// # Quick start
//
// With Ebitengine, let [EbitenInput] poll the mouse and touch screen:
//
//	d := tactile.NewDetector(nil)
//	d.On("tap", func(ctx tactile.GestureContext) { ... })
//	d.On("dragleft", func(ctx tactile.GestureContext) { ... })
//	in := tactile.NewEbitenInput(d)
//
//	func (g *Game) Update() error { g.in.Update(); return nil }
//
// Anything else can feed [Detector.Handle] directly and call [Detector.Tick]
// once per frame so hold timers fire while input is idle.
//
// # Gestures
//
// The built-in recognizers run in priority order: touch, hold, swipe,
// transform, drag, tap, release. They emit touch, hold, swipe and
// swipe<dir>, transformstart/transform/transformend, rotate, pinch,
// pinchin/pinchout, dragstart/drag/drag<dir>/dragend, tap, doubletap and
// release, where <dir> is left, right, up or down.
//
// Only one recognizer owns ("claims") a session at a time. Drag and transform
// end themselves when another recognizer claims the session. A listener can
// halt detection for the rest of the interaction with [Event.StopDetect].
//
// # Options
//
// [Options] is a flat map merged over recognizer defaults, e.g.
// drag_min_distance, tap_max_touchtime or swipe_velocity. Setting a
// recognizer's name to false disables it. Option files can be loaded from
// TOML or YAML with [LoadOptionsFile].
//
// Handlers run synchronously on the caller's goroutine. A panic in a handler
// is not recovered: detection of the remaining recognizers for that event is
// skipped and the session is left as it was.
//
// ECS integration is available via the [Donburi] adapter in tactile/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tactile
