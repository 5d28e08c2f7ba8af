package tactile

import (
	"sort"
	"time"
)

// defaultPriority is used for recognizers that do not declare one.
const defaultPriority = 1000

// Recognizer is a gesture state machine. Handle is called for every enriched
// event of a session in registry order and must not retain ev beyond the
// session.
type Recognizer interface {
	Name() string
	Handle(ev *Event, s *Session) Action
}

// Prioritized is implemented by recognizers that need a specific position in
// the registry. Lower priorities run first.
type Prioritized interface {
	Priority() int
}

// Defaulter is implemented by recognizers that declare default options.
type Defaulter interface {
	Defaults() Options
}

// Resetter is implemented by recognizers that keep state between events.
// Reset is called before every new session.
type Resetter interface {
	Reset()
}

type registryEntry struct {
	r        Recognizer
	priority int
}

// registry is the ordered recognizer list of one Detector.
type registry struct {
	entries []registryEntry
}

// add inserts r and keeps the list sorted by priority, ties in insertion order.
func (g *registry) add(r Recognizer) {
	p := defaultPriority
	if pr, ok := r.(Prioritized); ok {
		p = pr.Priority()
	}
	g.entries = append(g.entries, registryEntry{r: r, priority: p})
	sort.SliceStable(g.entries, func(i, j int) bool {
		return g.entries[i].priority < g.entries[j].priority
	})
}

// remove drops the recognizer with the given name. Returns false if absent.
func (g *registry) remove(name string) bool {
	for i := range g.entries {
		if g.entries[i].r.Name() == name {
			copy(g.entries[i:], g.entries[i+1:])
			g.entries[len(g.entries)-1] = registryEntry{}
			g.entries = g.entries[:len(g.entries)-1]
			return true
		}
	}
	return false
}

func (g *registry) names() []string {
	out := make([]string, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.r.Name()
	}
	return out
}

// Session is the handle recognizers use to read and steer the active
// session. It is only valid during a Handle call or a task callback.
type Session struct {
	d     *Detector
	s     *session
	owner string
}

// Claim makes the calling recognizer the session's gesture immediately.
// Returning ActionClaim from Handle has the same effect once Handle returns.
func (h *Session) Claim() {
	h.s.name = h.owner
}

// Claimed returns the gesture name claimed for the session, or "".
func (h *Session) Claimed() string {
	return h.s.name
}

// StartEvent returns the session's start event.
func (h *Session) StartEvent() *Event {
	return h.s.start
}

// LastEvent returns the previous enriched event, or nil on the first event.
func (h *Session) LastEvent() *Event {
	return h.s.last
}

// Previous returns the snapshot of the last terminated session, or nil.
func (h *Session) Previous() *SessionSnapshot {
	return h.d.previous
}

// Options returns the detector's options.
func (h *Session) Options() Options {
	return h.d.opts
}

// Active reports whether the session is still the detector's current one.
func (h *Session) Active() bool {
	return h.d.current == h.s
}

// Emit fires a gesture to the detector's listeners.
func (h *Session) Emit(gesture string, ev *Event) {
	h.d.trigger(gesture, ev)
}

// CorrectStart moves the start event's center by (dx, dy) and re-enriches ev
// in place against the corrected start. The start can be corrected once per
// session; later calls leave ev unchanged and return false.
func (h *Session) CorrectStart(ev *Event, dx, dy float64) bool {
	if h.s.corrected {
		return false
	}
	h.s.corrected = true
	h.s.start.Center.X += dx
	h.s.start.Center.Y += dy
	*ev = *h.s.extend(*ev)
	return true
}

// Schedule arms a task that fires from the first Tick at or after at. The
// task belongs to the session and is cancelled when the session ends.
func (h *Session) Schedule(at time.Time, fn func()) *Task {
	t := h.d.sched.schedule(at, fn)
	h.s.tasks = append(h.s.tasks, t)
	return t
}
