package tactile

import "time"

// Task is a deferred callback fired by Detector.Tick once its deadline has
// passed. Cancel is synchronous: a cancelled task never fires.
type Task struct {
	at    time.Time
	fn    func()
	armed bool
}

// Cancel disarms the task. Calling Cancel on a nil or fired task is a no-op.
func (t *Task) Cancel() {
	if t != nil {
		t.armed = false
	}
}

// Armed reports whether the task is still waiting to fire.
func (t *Task) Armed() bool {
	return t != nil && t.armed
}

// scheduler holds pending tasks in arming order. There is no background
// goroutine; tasks only fire from fire().
type scheduler struct {
	tasks []*Task
}

func (s *scheduler) schedule(at time.Time, fn func()) *Task {
	t := &Task{at: at, fn: fn, armed: true}
	s.tasks = append(s.tasks, t)
	return t
}

// fire runs every armed task whose deadline is at or before now, then drops
// disarmed tasks.
func (s *scheduler) fire(now time.Time) {
	for i := 0; i < len(s.tasks); i++ {
		t := s.tasks[i]
		if t.armed && !now.Before(t.at) {
			t.armed = false
			t.fn()
		}
	}
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.armed {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// pending returns the number of armed tasks.
func (s *scheduler) pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.armed {
			n++
		}
	}
	return n
}
