package session

import (
	"testing"
	"time"

	"github.com/lixenwraith/echo-ring/engine"
	"github.com/lixenwraith/echo-ring/events"
	"github.com/lixenwraith/echo-ring/game"
	"github.com/lixenwraith/echo-ring/logging"
	"github.com/lixenwraith/echo-ring/status"
)

func testTiming() engine.Timing {
	return engine.Timing{
		ShowDuration: 700 * time.Millisecond,
		ShowGap:      300 * time.Millisecond,
		ClickFlash:   150 * time.Millisecond,
	}
}

type sessionRig struct {
	clock *engine.MockClock
	queue *events.Queue
	sess  *Session
}

func newSessionRig(t *testing.T) *sessionRig {
	t.Helper()
	rig := &sessionRig{
		clock: engine.NewMockClock(time.Unix(0, 0)),
		queue: events.NewQueue(),
	}
	rig.sess = New(rig.clock, testTiming(), 30, 42, rig.queue, status.NewRegistry(), logging.Nop())
	return rig
}

// toInput advances past the playback window into the input phase
func (rig *sessionRig) toInput(t *testing.T) {
	t.Helper()
	f := rig.sess.Frame(rig.clock.Now())
	window := time.Duration(len(f.Sequence)) * (700 + 300) * time.Millisecond
	rig.clock.Advance(window)
	rig.sess.Update(rig.clock.Now())
	if f := rig.sess.Frame(rig.clock.Now()); !f.InputPhase {
		t.Fatal("session did not open input phase after playback window")
	}
}

// enterSecret replays the current secret through the click handler
func (rig *sessionRig) enterSecret() []game.Region {
	f := rig.sess.Frame(rig.clock.Now())
	for _, r := range f.Sequence {
		rig.sess.HandleColorClick(r)
	}
	return f.Sequence
}

func TestRoundOneFrame(t *testing.T) {
	rig := newSessionRig(t)

	f := rig.sess.Frame(rig.clock.Now())
	if f.Round != 1 || len(f.Sequence) != 1 {
		t.Errorf("round %d with %d-long secret, want round 1 length 1", f.Round, len(f.Sequence))
	}
	if !f.ShowingSequence || f.InputPhase || f.Disabled || f.CanSubmit {
		t.Errorf("round start flags wrong: %+v", f)
	}
	if !f.Sequence[0].Valid() {
		t.Errorf("secret contains invalid region %v", f.Sequence[0])
	}
}

func TestWinAdvancesRound(t *testing.T) {
	rig := newSessionRig(t)
	rig.toInput(t)

	prev := rig.enterSecret()

	f := rig.sess.Frame(rig.clock.Now())
	if !f.CanSubmit {
		t.Fatal("full reproduction entered but CanSubmit is false")
	}
	rig.sess.HandleSubmit()

	f = rig.sess.Frame(rig.clock.Now())
	if f.Round != 2 {
		t.Fatalf("round after win = %d, want 2", f.Round)
	}
	if len(f.Sequence) != 2 {
		t.Fatalf("secret length after win = %d, want 2", len(f.Sequence))
	}
	if !game.SequenceEqual(f.Sequence[:1], prev) {
		t.Error("new secret does not extend the previous one")
	}
	if !f.ShowingSequence || len(f.PlayerSequence) != 0 {
		t.Error("new round did not reset to playback with empty player sequence")
	}

	results := rig.queue.Consume()
	if len(results) != 1 || results[0].Type != events.TypeRoundResult {
		t.Fatalf("expected one round result event, got %v", results)
	}
	if p := results[0].Payload.(events.RoundResultPayload); !p.Won || p.Score != 1 {
		t.Errorf("result payload = %+v, want won with score 1", p)
	}
}

func TestMismatchEndsGame(t *testing.T) {
	rig := newSessionRig(t)
	rig.toInput(t)

	f := rig.sess.Frame(rig.clock.Now())
	wrong := game.RegionRed
	if f.Sequence[0] == wrong {
		wrong = game.RegionBlue
	}
	rig.sess.HandleColorClick(wrong)
	rig.sess.HandleSubmit()

	f = rig.sess.Frame(rig.clock.Now())
	if !f.Disabled || f.InputPhase {
		t.Errorf("game over flags wrong: %+v", f)
	}

	results := rig.queue.Consume()
	if len(results) != 1 {
		t.Fatalf("expected one result event, got %d", len(results))
	}
	if p := results[0].Payload.(events.RoundResultPayload); p.Won {
		t.Error("mismatch reported as won")
	}
}

func TestCountdownTimeout(t *testing.T) {
	rig := newSessionRig(t)
	rig.toInput(t)

	f := rig.sess.Frame(rig.clock.Now())
	if f.SecondsRemaining != 30 {
		t.Errorf("initial countdown = %d, want 30", f.SecondsRemaining)
	}

	rig.clock.Advance(25 * time.Second)
	rig.sess.Update(rig.clock.Now())
	f = rig.sess.Frame(rig.clock.Now())
	if f.SecondsRemaining != 5 || f.TimerColor != game.TimerRed || !f.TimerPulsing {
		t.Errorf("critical tier frame wrong: seconds=%d color=%v pulsing=%v",
			f.SecondsRemaining, f.TimerColor, f.TimerPulsing)
	}

	rig.clock.Advance(5 * time.Second)
	rig.sess.Update(rig.clock.Now())
	f = rig.sess.Frame(rig.clock.Now())
	if !f.Disabled {
		t.Error("countdown expiry did not end the game")
	}
}

func TestEntryCeiling(t *testing.T) {
	rig := newSessionRig(t)
	rig.toInput(t)

	rig.sess.HandleColorClick(game.RegionRed)
	rig.sess.HandleColorClick(game.RegionRed) // beyond secret length, dropped

	f := rig.sess.Frame(rig.clock.Now())
	if len(f.PlayerSequence) != 1 {
		t.Errorf("player sequence length = %d, want ceiling of 1", len(f.PlayerSequence))
	}
}

func TestSubmitIgnoredWhenIncomplete(t *testing.T) {
	rig := newSessionRig(t)
	rig.toInput(t)

	rig.sess.HandleSubmit() // nothing entered
	f := rig.sess.Frame(rig.clock.Now())
	if f.Disabled || f.Round != 1 {
		t.Errorf("incomplete submit changed state: %+v", f)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	rig := newSessionRig(t)

	rig.sess.Restart() // mid-game restart is a no-op
	if f := rig.sess.Frame(rig.clock.Now()); f.Round != 1 || !f.ShowingSequence {
		t.Error("restart during play altered the round")
	}

	rig.toInput(t)
	rig.clock.Advance(31 * time.Second)
	rig.sess.Update(rig.clock.Now())

	rig.sess.Restart()
	f := rig.sess.Frame(rig.clock.Now())
	if f.Round != 1 || len(f.Sequence) != 1 || f.Disabled {
		t.Errorf("restart did not reset cleanly: %+v", f)
	}

	round, score, phase := rig.sess.Snapshot()
	if round != 1 || score != 0 || phase != PhaseShowing {
		t.Errorf("snapshot after restart = %d/%d/%v", round, score, phase)
	}
}

func TestClicksIgnoredDuringShowing(t *testing.T) {
	rig := newSessionRig(t)

	rig.sess.HandleColorClick(game.RegionRed)
	if f := rig.sess.Frame(rig.clock.Now()); len(f.PlayerSequence) != 0 {
		t.Error("click accumulated during playback phase")
	}
}
