// Package sched implements a deterministic tick-driven scheduler with
// cancellable task handles. All callbacks run synchronously inside Tick on
// the caller's goroutine, so callers get single-threaded dispatch: a timer
// callback always runs to completion before the next one is dispatched.
package sched

// Task is a single pending scheduled call. The owner that created it holds
// the handle and cancels it explicitly; a cancelled task never fires.
type Task struct {
	due       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel stops the task from firing. Safe to call more than once, and safe
// to call on a task that has already fired.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Pending reports whether the task is still armed.
func (t *Task) Pending() bool {
	return !t.cancelled && !t.fired
}

// Scheduler runs tasks on a logical tick clock.
type Scheduler struct {
	now   uint64
	tasks []*Task
}

// New creates an empty scheduler at tick zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current logical tick.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// After schedules fn to run delay ticks from now and returns its handle.
// A zero delay is rounded up to one tick so a callback never runs inside
// the Tick that scheduled it.
func (s *Scheduler) After(delay uint64, fn func()) *Task {
	if delay == 0 {
		delay = 1
	}
	t := &Task{due: s.now + delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick advances the clock by one and runs every task that came due, in the
// order it was scheduled. Tasks armed by callbacks during this Tick run on
// a later tick; tasks cancelled by an earlier callback in the same Tick do
// not fire.
func (s *Scheduler) Tick() {
	s.now++

	// Split due tasks out first so re-arms during dispatch stay queued.
	var due []*Task
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
			// drop
		case t.due <= s.now:
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining

	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// Pending returns the number of live armed tasks. Used by tests to verify
// owners keep at most one timer each.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
