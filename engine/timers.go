package engine

import (
	"time"
)

// TimerHandle identifies a scheduled callback; the zero handle is never issued
type TimerHandle uint64

type timer struct {
	handle   TimerHandle
	start    time.Duration
	deadline time.Duration
	fn       func()
	// pass that scheduled a zero-length timer, it may not fire in that same pass
	pass uint64
}

// Timers is a single-threaded timer service driven by Advance
// Callbacks run synchronously from Advance, in deadline order, ties by scheduling order
// Clock time only moves forward
type Timers struct {
	now    time.Duration
	next   TimerHandle
	pass   uint64
	active map[TimerHandle]*timer
}

func NewTimers() *Timers {
	return &Timers{
		active: make(map[TimerHandle]*timer),
	}
}

// Now returns simulated time since construction
func (t *Timers) Now() time.Duration {
	return t.now
}

// Schedule runs fn once after d; non-positive d fires on the next Advance
func (t *Timers) Schedule(d time.Duration, fn func()) TimerHandle {
	if d < 0 {
		d = 0
	}
	t.next++
	t.active[t.next] = &timer{
		handle:   t.next,
		start:    t.now,
		deadline: t.now + d,
		fn:       fn,
		pass:     t.pass,
	}
	return t.next
}

// Cancel removes a pending timer, reporting whether it was pending
func (t *Timers) Cancel(h TimerHandle) bool {
	if _, ok := t.active[h]; !ok {
		return false
	}
	delete(t.active, h)
	return true
}

// Active reports whether h is still pending
func (t *Timers) Active(h TimerHandle) bool {
	_, ok := t.active[h]
	return ok
}

// ElapsedSince returns time since h was scheduled, capped at its duration
// Returns false for handles that fired, were cancelled, or were never issued
func (t *Timers) ElapsedSince(h TimerHandle) (time.Duration, bool) {
	tm, ok := t.active[h]
	if !ok {
		return 0, false
	}
	elapsed := t.now - tm.start
	if span := tm.deadline - tm.start; elapsed > span {
		elapsed = span
	}
	return elapsed, true
}

// Remaining returns time until h fires
func (t *Timers) Remaining(h TimerHandle) (time.Duration, bool) {
	tm, ok := t.active[h]
	if !ok {
		return 0, false
	}
	if rem := tm.deadline - t.now; rem > 0 {
		return rem, true
	}
	return 0, true
}

// Pending returns the number of scheduled timers
func (t *Timers) Pending() int {
	return len(t.active)
}

// Advance moves the clock by dt and fires every timer due within it
// While a callback runs, Now reports that timer's deadline, so timers chained
// from a callback are measured from the moment their parent fired
func (t *Timers) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt
	t.pass++

	for {
		due := t.nextDue(target)
		if due == nil {
			break
		}
		delete(t.active, due.handle)
		if due.deadline > t.now {
			t.now = due.deadline
		}
		if due.fn != nil {
			due.fn()
		}
	}

	t.now = target
}

// nextDue picks the earliest timer with deadline <= target
func (t *Timers) nextDue(target time.Duration) *timer {
	var best *timer
	for _, tm := range t.active {
		if tm.deadline > target {
			continue
		}
		// zero-length timers created during this pass wait for the next one
		if tm.deadline == tm.start && tm.pass == t.pass {
			continue
		}
		if best == nil || tm.deadline < best.deadline ||
			(tm.deadline == best.deadline && tm.handle < best.handle) {
			best = tm
		}
	}
	return best
}

// Reset cancels everything and rewinds the clock
func (t *Timers) Reset() {
	t.now = 0
	t.pass = 0
	clear(t.active)
}
