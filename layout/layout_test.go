package layout

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/echo-ring/game"
)

func regions(n int) []game.Region {
	out := make([]game.Region, n)
	for i := range out {
		out[i] = game.Region(i % int(game.RegionCount))
	}
	return out
}

func TestComputeSpansWidthAndDisjoint(t *testing.T) {
	for n := 1; n <= 12; n++ {
		base := 360.0 / float64(n)
		for _, gap := range []float64{0, 1, 2, 6, 15, base - 0.5} {
			if gap >= base {
				continue // invalid for this N, covered by clamp test
			}

			spans := ComputeSpans(regions(n), gap)
			if len(spans) != n {
				t.Fatalf("n=%d gap=%v: got %d spans", n, gap, len(spans))
			}

			// Valid gaps must be honored exactly, however narrow the wedge
			wantWidth := base - gap
			if n == 1 && gap == 0 {
				wantWidth = 360 - 2 // single-region minimum gap
			}
			for i, s := range spans {
				if s.Start >= s.End {
					t.Errorf("n=%d gap=%v span %d: start %v >= end %v", n, gap, i, s.Start, s.End)
				}
				if math.Abs(s.Width()-wantWidth) > 1e-9 {
					t.Errorf("n=%d gap=%v span %d: width %v, want %v", n, gap, i, s.Width(), wantWidth)
				}
			}

			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if spans[i].Start < spans[j].End && spans[j].Start < spans[i].End {
						t.Errorf("n=%d gap=%v: spans %d and %d overlap", n, gap, i, j)
					}
				}
			}
		}
	}
}

func TestComputeSpansDegenerate(t *testing.T) {
	if spans := ComputeSpans(nil, 6); spans != nil {
		t.Errorf("zero regions: got %v, want nil", spans)
	}

	// Single region must stay an open wedge even with gap 0
	spans := ComputeSpans(regions(1), 0)
	if len(spans) != 1 {
		t.Fatalf("got %d spans", len(spans))
	}
	if spans[0].Width() >= 360 {
		t.Errorf("single region closed the circle: width %v", spans[0].Width())
	}

	// Gap wider than the sector is clamped, never a negative-width span
	spans = ComputeSpans(regions(4), 200)
	for _, s := range spans {
		if s.Width() <= 0 {
			t.Errorf("clamped gap produced non-positive width %v", s.Width())
		}
	}
}

func TestComputeSpansPure(t *testing.T) {
	order := game.BoardOrder
	a := ComputeSpans(order, 6)
	b := ComputeSpans(order, 6)
	if len(a) != len(b) {
		t.Fatal("length differs between identical calls")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("span %d differs between identical calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBoardOrderQuadrants(t *testing.T) {
	spans := ComputeSpans(game.BoardOrder, 6)

	// Mid-angle of each quadrant must land on the conventional region
	wants := map[float64]game.Region{
		45:  game.RegionRed,
		135: game.RegionBlue,
		225: game.RegionYellow,
		315: game.RegionGreen,
	}
	for angle, want := range wants {
		got, ok := SpanAt(spans, angle)
		if !ok || got != want {
			t.Errorf("SpanAt(%v) = %v,%v, want %v", angle, got, ok, want)
		}
	}

	// Quadrant boundaries sit inside gaps
	if _, ok := SpanAt(spans, 90); ok {
		t.Error("gap angle 90 reported a region")
	}
	if _, ok := SpanAt(spans, 360+45); !ok {
		t.Error("angle normalization failed for 405")
	}
}

func TestWedgePathLargeArcFlag(t *testing.T) {
	tests := []struct {
		start, end float64
		want       int
	}{
		{0, 84, 0},
		{0, 180, 0},
		{0, 181, 1},
		{3, 357, 1},
		{100, 250, 0},
	}
	for _, tt := range tests {
		path := WedgePath(50, 50, 20, 45, tt.start, tt.end)
		for i, flag := range arcFlags(t, path) {
			if flag != tt.want {
				t.Errorf("span %v-%v arc %d: large-arc flag %d, want %d (path %q)",
					tt.start, tt.end, i, flag, tt.want, path)
			}
		}
	}
}

// arcFlags extracts the large-arc flag of every arc command in the path.
// Arc syntax: A rx ry x-rotation large-arc sweep x y
func arcFlags(t *testing.T, path string) []int {
	t.Helper()
	var flags []int
	parts := strings.Split(path, "A ")
	for _, p := range parts[1:] {
		fields := strings.Fields(p)
		if len(fields) < 5 {
			t.Fatalf("malformed arc command in %q", path)
		}
		var flag int
		if _, err := fmt.Sscanf(fields[3], "%d", &flag); err != nil {
			t.Fatalf("unparseable large-arc flag in %q: %v", path, err)
		}
		flags = append(flags, flag)
	}
	if len(flags) != 2 {
		t.Fatalf("expected 2 arc commands, found %d in %q", len(flags), path)
	}
	return flags
}

func TestWedgePathShape(t *testing.T) {
	path := WedgePath(0, 0, 10, 20, 0, 90)

	if !strings.HasPrefix(path, "M ") || !strings.HasSuffix(path, "Z") {
		t.Errorf("path not closed: %q", path)
	}
	// Outer arc start is straight up from center: (0, -20)
	if !strings.HasPrefix(path, "M 0.00 -20.00") {
		t.Errorf("unexpected start point: %q", path)
	}
	// End angle 90 puts the outer corner at (20, 0)
	if !strings.Contains(path, "20.00 0.00") {
		t.Errorf("missing end-angle corner: %q", path)
	}
}

func TestWedgePathDeterministic(t *testing.T) {
	a := WedgePath(50, 50, 20, 45, 3, 87)
	b := WedgePath(50, 50, 20, 45, 3, 87)
	if a != b {
		t.Errorf("identical inputs produced different paths:\n%s\n%s", a, b)
	}
}

func TestWedgePathClampsRadii(t *testing.T) {
	// inner >= outer collapses to a degenerate but well-formed path
	path := WedgePath(0, 0, 30, 20, 0, 90)
	if !strings.HasPrefix(path, "M ") {
		t.Errorf("degenerate radii produced malformed path: %q", path)
	}
	if strings.Contains(path, "30.00 30.00") {
		t.Errorf("inner radius not clamped: %q", path)
	}

	if path := WedgePath(0, 0, -5, -1, 0, 90); !strings.HasSuffix(path, "Z") {
		t.Errorf("negative radii produced malformed path: %q", path)
	}
}

func TestAngleOf(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{0, -1, 0},   // up
		{1, 0, 90},   // right
		{0, 1, 180},  // down
		{-1, 0, 270}, // left
	}
	for _, tt := range tests {
		if got := AngleOf(tt.dx, tt.dy); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleOf(%v,%v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}
