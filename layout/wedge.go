package layout

import (
	"fmt"
	"math"
)

// polar converts (radius, angle) into a point around (cx, cy) using the
// board convention: 0 degrees at 12 o'clock, increasing clockwise, y down
func polar(cx, cy, radius, angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return cx + radius*math.Sin(rad), cy - radius*math.Cos(rad)
}

// WedgePath builds the closed SVG outline of an annulus sector: outer arc
// clockwise from startAngle to endAngle, radial edge inward, inner arc back,
// radial edge out.
//
// The large-arc flag must be set for spans over 180 degrees; the wrong flag
// silently draws the reflex arc, so this is correctness, not style.
//
// Invalid radii are clamped rather than rejected: negatives become 0 and an
// inner radius at or above the outer one collapses to the outer radius,
// yielding a degenerate but well-formed path that renders as nothing.
func WedgePath(cx, cy, innerR, outerR, startAngle, endAngle float64) string {
	if outerR < 0 {
		outerR = 0
	}
	if innerR < 0 {
		innerR = 0
	}
	if innerR >= outerR {
		innerR = outerR
	}
	if endAngle < startAngle {
		startAngle, endAngle = endAngle, startAngle
	}

	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}

	x1, y1 := polar(cx, cy, outerR, startAngle)
	x2, y2 := polar(cx, cy, outerR, endAngle)
	x3, y3 := polar(cx, cy, innerR, endAngle)
	x4, y4 := polar(cx, cy, innerR, startAngle)

	return fmt.Sprintf(
		"M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		x1, y1, outerR, outerR, largeArc, x2, y2,
		x3, y3, innerR, innerR, largeArc, x4, y4,
	)
}
