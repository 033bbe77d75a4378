package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/game"
	"github.com/lixenwraith/echo-ring/status"
)

// playbackPhase is the coordinator's reveal state
type playbackPhase uint8

const (
	phaseIdle playbackPhase = iota
	phaseLit                // sequence[index] is highlighted
	phaseDark               // gap between reveals
)

// Timing bundles the reveal parameters so tests and config can override them
type Timing struct {
	ShowDuration time.Duration // highlight window per reveal
	ShowGap      time.Duration // dark pause between reveals
	ClickFlash   time.Duration // input feedback flash
}

// DefaultTiming returns the standard reveal timing
func DefaultTiming() Timing {
	return Timing{
		ShowDuration: constants.ShowDuration,
		ShowGap:      constants.ShowGap,
		ClickFlash:   constants.ClickFlashDuration,
	}
}

// FeedbackTrigger is the optional host feedback capability (sound, haptics).
// Implementations must not block; absence of the capability is expressed by
// NopTrigger, never by a nil check at call sites.
type FeedbackTrigger interface {
	// Reveal fires when playback lights a region
	Reveal(r game.Region)
	// Pulse fires on an accepted player click
	Pulse(r game.Region)
	// Confirm fires on an accepted submit
	Confirm()
}

// NopTrigger is the no-capability implementation of FeedbackTrigger
type NopTrigger struct{}

func (NopTrigger) Reveal(game.Region) {}
func (NopTrigger) Pulse(game.Region)  {}
func (NopTrigger) Confirm()           {}

// Callbacks are the coordinator's only outputs to the caller
type Callbacks struct {
	// OnColorClick fires once per accepted click, never during playback,
	// while disabled, or outside the input phase
	OnColorClick func(r game.Region)
	// OnSubmit fires once per accepted submit action
	OnSubmit func()
}

// Coordinator owns the time-driven state of the board: which region is lit
// during sequence playback, the click feedback flash, and the click/submit
// gates. It is driven by Sync+Update from the tick loop and by Click/Submit
// from input dispatch; all methods are safe for that boundary.
//
// Playback is an explicit state machine over deadlines checked each tick,
// not self-rescheduling timers. Every run carries a generation token; work
// armed by an older generation is a silent no-op, which is the whole
// cancellation contract: a new round starting mid-playback can never leak a
// stale highlight.
type Coordinator struct {
	mu      sync.Mutex
	clock   Clock
	timing  Timing
	trigger FeedbackTrigger
	cb      Callbacks

	frame Frame

	// Playback run state
	generation uint64
	phase      playbackPhase
	index      int
	playing    []game.Region
	deadline   time.Time
	armedGen   uint64 // generation the deadline belongs to

	// Click feedback flash
	flashRegion game.Region
	flashUntil  time.Time

	// Cached metric pointers
	statActive   *atomic.Bool
	statRuns     *atomic.Int64
	statClicks   *atomic.Int64
	statRejected *atomic.Int64
	statSubmits  *atomic.Int64
}

// NewCoordinator creates a coordinator with the given collaborators.
// A nil trigger degrades to NopTrigger; callbacks may be individually nil.
func NewCoordinator(clock Clock, timing Timing, trigger FeedbackTrigger, reg *status.Registry, cb Callbacks) *Coordinator {
	if trigger == nil {
		trigger = NopTrigger{}
	}
	return &Coordinator{
		clock:       clock,
		timing:      timing,
		trigger:     trigger,
		cb:          cb,
		flashRegion: game.RegionNone,

		statActive:   reg.Bools.Get("playback.active"),
		statRuns:     reg.Ints.Get("playback.runs"),
		statClicks:   reg.Ints.Get("input.clicks"),
		statRejected: reg.Ints.Get("input.rejected"),
		statSubmits:  reg.Ints.Get("input.submits"),
	}
}

// Sync applies the caller's frame and reconciles playback against it:
// a raised show flag with a non-empty sequence starts a run, a dropped flag
// cancels it, and a sequence identity change mid-run restarts cleanly.
func (c *Coordinator) Sync(f Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.frame
	c.frame = f.clone()

	switch {
	case c.frame.ShowingSequence && len(c.frame.Sequence) > 0:
		if c.phase == phaseIdle && (!prev.ShowingSequence || !game.SequenceEqual(prev.Sequence, c.frame.Sequence)) {
			c.startPlayback()
		} else if c.phase != phaseIdle && !game.SequenceEqual(c.playing, c.frame.Sequence) {
			// New round started before the previous playback finished
			c.cancelPlayback()
			c.startPlayback()
		}
	case c.phase != phaseIdle:
		c.cancelPlayback()
	}
}

// startPlayback arms the first reveal; caller holds the lock
func (c *Coordinator) startPlayback() {
	c.generation++
	c.phase = phaseLit
	c.index = 0
	c.playing = game.CloneSequence(c.frame.Sequence)
	c.deadline = c.clock.Now().Add(c.timing.ShowDuration)
	c.armedGen = c.generation
	c.flashRegion = game.RegionNone
	c.flashUntil = time.Time{}

	c.statRuns.Add(1)
	c.statActive.Store(true)
	c.trigger.Reveal(c.playing[0])
}

// cancelPlayback invalidates the run; caller holds the lock.
// Bumping the generation makes any deadline armed by the old run inert,
// so no callback of the abandoned run can fire afterwards.
func (c *Coordinator) cancelPlayback() {
	c.generation++
	c.phase = phaseIdle
	c.index = 0
	c.playing = nil
	c.deadline = time.Time{}
	c.statActive.Store(false)
}

// Update advances time-driven state to now. Reveals are strictly sequential:
// one highlight-then-gap window fully elapses before the next index lights.
func (c *Coordinator) Update(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.flashUntil.IsZero() && !now.Before(c.flashUntil) {
		c.flashRegion = game.RegionNone
		c.flashUntil = time.Time{}
	}

	for c.phase != phaseIdle && !now.Before(c.deadline) {
		if c.armedGen != c.generation {
			// Stale deadline from a cancelled run
			return
		}

		switch c.phase {
		case phaseLit:
			c.phase = phaseDark
			c.deadline = c.deadline.Add(c.timing.ShowGap)
		case phaseDark:
			c.index++
			if c.index >= len(c.playing) {
				c.phase = phaseIdle
				c.playing = nil
				c.deadline = time.Time{}
				c.statActive.Store(false)
				return
			}
			c.phase = phaseLit
			c.deadline = c.deadline.Add(c.timing.ShowDuration)
			c.trigger.Reveal(c.playing[c.index])
		}
	}
}

// ActiveRegion returns the currently lit region, if any. At most one region
// is ever active: a playback highlight, or else the click feedback flash.
func (c *Coordinator) ActiveRegion() (game.Region, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == phaseLit {
		return c.playing[c.index], true
	}
	if c.flashRegion != game.RegionNone {
		return c.flashRegion, true
	}
	return game.RegionNone, false
}

// Playing reports whether a playback run is in flight
func (c *Coordinator) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase != phaseIdle
}

// Click reports a player press on region r. Accepted only outside playback,
// during the input phase, and while not disabled; anything else is dropped
// silently. Acceptance flashes the region briefly, fires the feedback
// capability, and forwards r to the caller. The coordinator never
// accumulates the player sequence itself.
func (c *Coordinator) Click(r game.Region) {
	c.mu.Lock()

	accept := r.Valid() &&
		!c.frame.Disabled &&
		!c.frame.ShowingSequence &&
		c.phase == phaseIdle &&
		c.frame.InputPhase

	if !accept {
		c.statRejected.Add(1)
		c.mu.Unlock()
		return
	}

	c.flashRegion = r
	c.flashUntil = c.clock.Now().Add(c.timing.ClickFlash)
	c.statClicks.Add(1)
	cb := c.cb.OnColorClick
	c.mu.Unlock()

	// Feedback and callback run outside the lock; the trigger must not block
	c.trigger.Pulse(r)
	if cb != nil {
		cb(r)
	}
}

// Submit forwards the submit action iff the caller's CanSubmit flag is up;
// otherwise it is a disabled affordance and a no-op.
func (c *Coordinator) Submit() {
	c.mu.Lock()

	if !c.frame.CanSubmit {
		c.statRejected.Add(1)
		c.mu.Unlock()
		return
	}

	c.statSubmits.Add(1)
	cb := c.cb.OnSubmit
	c.mu.Unlock()

	c.trigger.Confirm()
	if cb != nil {
		cb()
	}
}
