package tactile

import (
	"time"

	"github.com/charmbracelet/log"
)

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureContext)
}

type handlerRegistry struct {
	byGesture map[string][]gestureHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered gesture listener.
type CallbackHandle struct {
	id      uint32
	reg     *handlerRegistry
	gesture string
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.byGesture[h.gesture]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			h.reg.byGesture[h.gesture] = s[:len(s)-1]
			return
		}
	}
}

// Detector owns the input normalizer, the recognizer registry, the active
// detection session and the gesture listeners of one input surface. It is not
// safe for concurrent use; feed it from a single goroutine (the game loop).
type Detector struct {
	opts     Options
	enabled  bool
	norm     normalizer
	reg      registry
	sched    scheduler
	handlers handlerRegistry

	current  *session
	previous *SessionSnapshot
	stopped  bool

	store  EventStore
	logger *log.Logger
	debug  bool
}

// NewDetector creates a detector with the built-in recognizers registered.
// opts overrides recognizer defaults and may be nil.
func NewDetector(opts Options) *Detector {
	d := NewEmptyDetector(opts)
	for _, r := range DefaultRecognizers() {
		d.Register(r)
	}
	return d
}

// NewEmptyDetector creates a detector without any recognizers.
func NewEmptyDetector(opts Options) *Detector {
	if opts == nil {
		opts = Options{}
	} else {
		opts = opts.Clone()
	}
	return &Detector{
		opts:     opts,
		enabled:  true,
		handlers: handlerRegistry{byGesture: make(map[string][]gestureHandler)},
	}
}

// Register adds a recognizer. Its default options are merged underneath the
// options already set, and the registry stays sorted by priority.
func (d *Detector) Register(r Recognizer) {
	if df, ok := r.(Defaulter); ok {
		d.opts.Merge(df.Defaults())
	}
	d.reg.add(r)
}

// Unregister removes the recognizer with the given name.
func (d *Detector) Unregister(name string) bool {
	return d.reg.remove(name)
}

// Recognizers returns the registered recognizer names in execution order.
func (d *Detector) Recognizers() []string {
	return d.reg.names()
}

// Options returns the detector's live option set. Changes take effect on the
// next event.
func (d *Detector) Options() Options {
	return d.opts
}

// SetEnabled toggles the detector. A disabled detector does not start new
// sessions; a running session continues until it ends.
func (d *Detector) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Enabled reports whether the detector starts new sessions.
func (d *Detector) Enabled() bool {
	return d.enabled
}

// SetEventStore sets the optional ECS bridge.
func (d *Detector) SetEventStore(store EventStore) {
	d.store = store
}

// Active reports whether a detection session is in progress.
func (d *Detector) Active() bool {
	return d.current != nil
}

// Previous returns the snapshot of the last terminated session, or nil.
func (d *Detector) Previous() *SessionSnapshot {
	return d.previous
}

// --- Listener registration ---

// On registers a listener for a named gesture (e.g. "tap", "dragleft").
func (d *Detector) On(gesture string, fn func(GestureContext)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.byGesture[gesture] = append(d.handlers.byGesture[gesture], gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, gesture: gesture}
}

// Off removes every listener of a gesture.
func (d *Detector) Off(gesture string) {
	delete(d.handlers.byGesture, gesture)
}

// --- Input processing ---

// Handle feeds one raw input through normalization and detection. It first
// fires any scheduled task due at the input's timestamp. The returned event is
// the enriched event that was detected, or nil if the input was ignored.
func (d *Detector) Handle(in Input) *Event {
	d.Tick(in.Time)

	ev, ok := d.norm.normalize(in)
	if !ok {
		return nil
	}
	if ev.Phase == PhaseStart {
		if d.current != nil || !d.enabled {
			// Additional contacts join through the following move events.
			return nil
		}
		d.startDetect(ev)
	}
	return d.detect(ev)
}

// Tick fires scheduled tasks (hold timers) due at now. Call it once per frame
// when input may be idle.
func (d *Detector) Tick(now time.Time) {
	if d.sched.pending() == 0 {
		return
	}
	d.sched.fire(now)
}

func (d *Detector) startDetect(ev Event) {
	for _, e := range d.reg.entries {
		if rs, ok := e.r.(Resetter); ok {
			rs.Reset()
		}
	}
	d.current = newSession(ev)
	d.stopped = false
	if d.logger != nil {
		d.logger.Debug("session start", "touches", len(ev.Touches), "pointer", ev.PointerKind, "x", ev.Center.X, "y", ev.Center.Y)
	}
}

// detect enriches ev and runs it through the registry.
func (d *Detector) detect(in Event) *Event {
	if d.current == nil || d.stopped {
		return nil
	}
	s := d.current
	ev := s.extend(in)
	ev.dispatch = d.newDispatch()

	for _, e := range d.reg.entries {
		if d.stopped {
			break
		}
		name := e.r.Name()
		if !d.opts.Enabled(name) {
			continue
		}
		switch e.r.Handle(ev, &Session{d: d, s: s, owner: name}) {
		case ActionClaim:
			s.name = name
		case ActionHalt:
			d.stopDetect("halted by " + name)
		}
	}

	if d.current == s {
		s.last = ev
	}
	if ev.Phase == PhaseEnd && d.current == s {
		d.stopDetect("end")
	}
	return ev
}

func (d *Detector) newDispatch() *dispatchState {
	cur := d.current
	return &dispatchState{halt: func() {
		if d.current == cur && cur != nil {
			d.stopDetect("stopped by listener")
		}
	}}
}

// stopDetect terminates the current session, keeping it as the previous one.
func (d *Detector) stopDetect(reason string) {
	s := d.current
	if s == nil {
		return
	}
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
	d.previous = s.snapshot()
	d.current = nil
	d.stopped = true
	if d.logger != nil {
		d.logger.Debug("session stop", "reason", reason, "gesture", s.name)
	}
}

// trigger delivers a gesture to listeners and the ECS bridge.
func (d *Detector) trigger(gesture string, ev *Event) {
	if ev.dispatch == nil {
		ev.dispatch = d.newDispatch()
	}
	if d.logger != nil {
		d.logger.Debug("gesture", "name", gesture, "dir", ev.Direction, "dist", ev.Distance, "dt", ev.DeltaTime)
	}
	ctx := GestureContext{Gesture: gesture, Event: ev}
	for _, h := range d.handlers.byGesture[gesture] {
		h.fn(ctx)
	}
	if d.store != nil {
		d.store.EmitEvent(newGestureEvent(gesture, ev))
	}
}
