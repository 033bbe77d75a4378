// Package session drives the game rounds. It owns everything the
// coordinator treats as caller state: the secret sequence, the phase
// flags, the player's entered sequence and the countdown deadline.
package session

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/echo-ring/engine"
	"github.com/lixenwraith/echo-ring/events"
	"github.com/lixenwraith/echo-ring/game"
	"github.com/lixenwraith/echo-ring/status"
)

// Phase is the session's round state
type Phase uint8

const (
	// PhaseShowing replays the secret to the player; input is closed
	PhaseShowing Phase = iota
	// PhaseInput collects the player's reproduction under the countdown
	PhaseInput
	// PhaseGameOver awaits a restart
	PhaseGameOver
)

// Session is the round driver. It consumes the coordinator's callbacks and
// produces the per-tick frame the coordinator synchronizes against.
type Session struct {
	mu     sync.Mutex
	clock  engine.Clock
	rng    *rand.Rand
	log    *zap.SugaredLogger
	queue  *events.Queue
	timing engine.Timing

	roundSeconds int

	phase    Phase
	round    int
	score    int
	secret   []game.Region
	entered  []game.Region
	showDone time.Time // end of the playback window
	deadline time.Time // input-phase countdown deadline

	statRound *atomic.Int64
	statScore *atomic.Int64
}

// New creates a session and arms round one
func New(clock engine.Clock, timing engine.Timing, roundSeconds int, seed int64, queue *events.Queue, reg *status.Registry, log *zap.SugaredLogger) *Session {
	s := &Session{
		clock:        clock,
		rng:          rand.New(rand.NewSource(seed)),
		log:          log,
		queue:        queue,
		timing:       timing,
		roundSeconds: roundSeconds,

		statRound: reg.Ints.Get("session.round"),
		statScore: reg.Ints.Get("session.score"),
	}
	s.startRound(1, nil)
	return s
}

// startRound grows the secret by one region and opens playback;
// caller holds the lock (or is the constructor)
func (s *Session) startRound(round int, secret []game.Region) {
	s.round = round
	s.secret = append(secret, game.Region(s.rng.Intn(int(game.RegionCount))))
	s.entered = nil
	s.phase = PhaseShowing
	s.showDone = s.clock.Now().Add(s.playbackWindow())
	s.deadline = time.Time{}

	s.statRound.Store(int64(round))
	s.log.Infow("round started", "round", round, "length", len(s.secret))
}

// playbackWindow is the full reveal span of the current secret:
// every reveal holds for ShowDuration and is followed by a ShowGap
func (s *Session) playbackWindow() time.Duration {
	n := time.Duration(len(s.secret))
	return n * (s.timing.ShowDuration + s.timing.ShowGap)
}

// Update advances phase transitions owed to the clock: playback window
// elapsing opens the input phase, the countdown expiring ends the game
func (s *Session) Update(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseShowing:
		if !now.Before(s.showDone) {
			s.phase = PhaseInput
			s.deadline = now.Add(time.Duration(s.roundSeconds) * time.Second)
		}
	case PhaseInput:
		if !now.Before(s.deadline) {
			s.endGame("timeout")
		}
	}
}

// HandleColorClick accumulates one accepted click. This is the ceiling
// enforcement the coordinator delegates: entries beyond the secret's
// length are dropped.
func (s *Session) HandleColorClick(r game.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInput || len(s.entered) >= len(s.secret) {
		return
	}
	s.entered = append(s.entered, r)
}

// HandleSubmit resolves the round against the player's entry
func (s *Session) HandleSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseInput || len(s.entered) != len(s.secret) {
		return
	}

	if game.SequenceEqual(s.entered, s.secret) {
		s.score++
		s.statScore.Store(int64(s.score))
		s.publishResult(true)
		s.log.Infow("round won", "round", s.round, "score", s.score)
		s.startRound(s.round+1, s.secret)
		return
	}

	s.endGame("mismatch")
}

// endGame closes the session; caller holds the lock
func (s *Session) endGame(reason string) {
	s.phase = PhaseGameOver
	s.deadline = time.Time{}
	s.publishResult(false)
	s.log.Infow("game over", "reason", reason, "round", s.round, "score", s.score)
}

// Restart begins a fresh game after a game over
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseGameOver {
		return
	}
	s.score = 0
	s.statScore.Store(0)
	s.startRound(1, nil)
}

func (s *Session) publishResult(won bool) {
	s.queue.Push(events.Event{
		Type:      events.TypeRoundResult,
		Timestamp: s.clock.Now(),
		Payload: events.RoundResultPayload{
			Round:   s.round,
			Won:     won,
			Score:   s.score,
			Entered: game.CloneSequence(s.entered),
		},
	})
}

// Frame renders the session into the coordinator's input view for this tick
func (s *Session) Frame(now time.Time) engine.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	seconds := 0
	if s.phase == PhaseInput {
		remaining := s.deadline.Sub(now)
		seconds = int((remaining + time.Second - 1) / time.Second)
		if seconds < 0 {
			seconds = 0
		}
	}

	_, pulsing := game.CountdownView(seconds)

	return engine.Frame{
		Sequence:        game.CloneSequence(s.secret),
		Round:           s.round,
		ShowingSequence: s.phase == PhaseShowing,
		InputPhase:      s.phase == PhaseInput,
		Disabled:        s.phase == PhaseGameOver,
		PlayerSequence:  game.CloneSequence(s.entered),
		CanSubmit:       s.phase == PhaseInput && len(s.entered) == len(s.secret),

		SecondsRemaining: seconds,
		TimerColor:       game.TimerColorFor(seconds),
		TimerPulsing:     pulsing && s.phase == PhaseInput,
	}
}

// Snapshot returns the display values the renderer needs beyond the frame
func (s *Session) Snapshot() (round, score int, phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round, s.score, s.phase
}
