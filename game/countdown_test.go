package game

import "testing"

func TestCountdownViewTiers(t *testing.T) {
	tests := []struct {
		seconds int
		want    Severity
		pulsing bool
	}{
		{30, SeverityCalm, false},
		{11, SeverityCalm, false},
		{10, SeverityWarning, false},
		{6, SeverityWarning, false},
		{5, SeverityCritical, true},
		{1, SeverityCritical, true},
		{0, SeverityCritical, true},
	}

	for _, tt := range tests {
		sev, pulsing := CountdownView(tt.seconds)
		if sev != tt.want || pulsing != tt.pulsing {
			t.Errorf("CountdownView(%d) = (%v, %v), want (%v, %v)",
				tt.seconds, sev, pulsing, tt.want, tt.pulsing)
		}
	}
}

func TestCountdownViewMonotonic(t *testing.T) {
	prev, _ := CountdownView(60)
	for s := 59; s >= 0; s-- {
		sev, _ := CountdownView(s)
		if sev < prev {
			t.Fatalf("severity decreased from %v to %v at %d seconds", prev, sev, s)
		}
		prev = sev
	}
}

func TestTimerColorFor(t *testing.T) {
	if c := TimerColorFor(30); c != TimerGreen {
		t.Errorf("TimerColorFor(30) = %v, want green", c)
	}
	if c := TimerColorFor(8); c != TimerYellow {
		t.Errorf("TimerColorFor(8) = %v, want yellow", c)
	}
	if c := TimerColorFor(3); c != TimerRed {
		t.Errorf("TimerColorFor(3) = %v, want red", c)
	}
}

func TestSequenceEqual(t *testing.T) {
	a := []Region{RegionRed, RegionBlue}
	b := []Region{RegionRed, RegionBlue}
	if !SequenceEqual(a, b) {
		t.Error("identical sequences compared unequal")
	}
	if SequenceEqual(a, a[:1]) {
		t.Error("prefix compared equal")
	}
	if SequenceEqual(a, []Region{RegionBlue, RegionRed}) {
		t.Error("reordered sequence compared equal")
	}
	if !SequenceEqual(nil, []Region{}) {
		t.Error("nil and empty must compare equal")
	}
}

func TestCloneSequenceIndependent(t *testing.T) {
	src := []Region{RegionGreen, RegionYellow}
	dup := CloneSequence(src)
	src[0] = RegionRed
	if dup[0] != RegionGreen {
		t.Error("clone aliases source slice")
	}
	if CloneSequence(nil) != nil {
		t.Error("clone of nil should be nil")
	}
}
