// Package layout partitions the circular board into annulus-sector wedges.
// All functions are pure; angles are degrees, clockwise, 0 at 12 o'clock,
// and the same convention holds across partitioning, paths and hit tests.
package layout

import (
	"math"

	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/game"
)

// Span is one region's angular slot on the board, gap already carved out
type Span struct {
	Region game.Region
	Start  float64
	End    float64
}

// Width returns the angular width of the span in degrees
func (s Span) Width() float64 {
	return s.End - s.Start
}

// minSpanWidth is the floor a wedge never shrinks below when the caller
// passes a gap that would consume the whole sector
const minSpanWidth = 1.0

// ComputeSpans divides the circle into one equal sector per entry of order,
// then shrinks each sector by gapDegrees/2 per side for visual separation.
// The order slice is the explicit region-to-sector mapping: order[0] starts
// at 12 o'clock and assignment proceeds clockwise.
//
// Valid gaps (0 <= gap < 360/N) are honored exactly: each span has width
// (360/N)-gap. Only degenerate inputs are rewritten, never rejected:
// negative gaps become 0, a gap at or beyond the full sector is reduced to
// keep minSpanWidth, and a single region with no gap keeps a small opening
// so its wedge is not a closed circle.
func ComputeSpans(order []game.Region, gapDegrees float64) []Span {
	n := len(order)
	if n == 0 {
		return nil
	}

	base := 360.0 / float64(n)

	gap := gapDegrees
	if gap < 0 {
		gap = 0
	}
	if n == 1 && gap == 0 {
		gap = constants.MinSingleGapDegrees
	}
	if gap >= base {
		gap = base - minSpanWidth
		if gap < 0 {
			gap = 0
		}
	}

	spans := make([]Span, n)
	for i, r := range order {
		sectorStart := float64(i) * base
		spans[i] = Span{
			Region: r,
			Start:  sectorStart + gap/2,
			End:    sectorStart + base - gap/2,
		}
	}
	return spans
}

// SpanAt returns the region whose span contains the given angle, if any.
// Angles outside [0,360) are normalized first. Angles falling inside a gap
// report no region, which is what makes gaps dead zones for mouse input.
func SpanAt(spans []Span, angleDeg float64) (game.Region, bool) {
	a := math.Mod(angleDeg, 360)
	if a < 0 {
		a += 360
	}
	for _, s := range spans {
		if a >= s.Start && a < s.End {
			return s.Region, true
		}
	}
	return game.RegionNone, false
}

// AngleOf converts a vector from the board center into the board's angle
// convention. dy grows downward (screen coordinates).
func AngleOf(dx, dy float64) float64 {
	deg := math.Atan2(dx, -dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
