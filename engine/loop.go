package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/status"
)

// FrameFunc runs once per step after timers advanced; dt is the fixed step
type FrameFunc func(dt time.Duration)

// Loop drives Timers and a frame function on a fixed tick from one goroutine
// Work from other goroutines enters through Post and runs at the start of the next step,
// so the simulation itself never needs locks
type Loop struct {
	timers *Timers
	frame  FrameFunc
	clock  TimeProvider

	tickInterval     time.Duration
	nextTickDeadline time.Time

	posted chan func()
	paused atomic.Bool

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewLoop creates a loop; a nil clock uses the monotonic wall clock
func NewLoop(timers *Timers, tickInterval time.Duration, clock TimeProvider, frame FrameFunc, reg *status.Registry) *Loop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop{
		timers:       timers,
		frame:        frame,
		clock:        clock,
		tickInterval: tickInterval,
		posted:       make(chan func(), 256),
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statDropped:  reg.Ints.Get("engine.posts_dropped"),
	}
}

// Timers returns the timer service owned by the loop
func (l *Loop) Timers() *Timers {
	return l.timers
}

// TickCount returns completed steps
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Post queues fn to run on the loop goroutine before the next step
// Returns false when the queue is full
func (l *Loop) Post(fn func()) bool {
	select {
	case l.posted <- fn:
		return true
	default:
		l.statDropped.Add(1)
		log.Printf("engine: post queue full, dropping work")
		return false
	}
}

// Pause freezes simulated time; posted work still drains
func (l *Loop) Pause() {
	l.paused.Store(true)
}

func (l *Loop) Resume() {
	l.paused.Store(false)
}

func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// Step runs one step synchronously, for headless hosts and tests
// Must not be called while the loop goroutine is running
func (l *Loop) Step(dt time.Duration) {
	l.drainPosted()
	if l.paused.Load() {
		return
	}
	l.timers.Advance(dt)
	if l.frame != nil {
		l.frame(dt)
	}
	l.tickCount.Add(1)
	l.statTicks.Add(1)
}

// Start begins the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the current step to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

func (l *Loop) drainPosted() {
	for {
		select {
		case fn := <-l.posted:
			fn()
		default:
			return
		}
	}
}

// run ticks on deadlines instead of a ticker to correct drift
func (l *Loop) run() {
	defer l.wg.Done()

	l.nextTickDeadline = l.clock.Now().Add(l.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		now := l.clock.Now()
		if !now.Before(l.nextTickDeadline) {
			l.Step(l.tickInterval)

			l.nextTickDeadline = l.nextTickDeadline.Add(l.tickInterval)
			// Skip missed ticks instead of replaying a burst after a stall
			if now.Sub(l.nextTickDeadline) > l.tickInterval*2 {
				l.nextTickDeadline = now.Add(l.tickInterval)
			}
			continue
		}

		timer.Reset(l.nextTickDeadline.Sub(now))
		select {
		case <-timer.C:
		case fn := <-l.posted:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			fn()
		case <-l.stopChan:
			return
		}
	}
}
