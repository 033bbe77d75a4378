package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/echo-ring/core"
)

// Loop runs game logic on a fixed tick with drift-corrected deadlines.
// It sleeps between ticks instead of busy-waiting and never skips the
// callback to catch up; a late tick re-anchors the schedule.
type Loop struct {
	clock    Clock
	interval time.Duration
	onTick   func(now time.Time)

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a loop invoking onTick every interval
func NewLoop(clock Clock, interval time.Duration, onTick func(now time.Time)) *Loop {
	return &Loop{
		clock:    clock,
		interval: interval,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop in its own goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		// core.Go for centralized crash handling; a panic in game logic
		// must still reset the terminal
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

func (l *Loop) run() {
	defer l.wg.Done()

	deadline := l.clock.Now().Add(l.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		now := l.clock.Now()

		if !now.Before(deadline) {
			l.onTick(now)

			deadline = deadline.Add(l.interval)
			// Re-anchor when a slow tick pushed us more than one full
			// interval behind, instead of firing a burst of catch-up ticks
			if now.Sub(deadline) > l.interval {
				deadline = now.Add(l.interval)
			}
		}

		sleep := deadline.Sub(l.clock.Now())
		if sleep < 0 {
			sleep = 0
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-l.stopChan:
			return
		}
	}
}
