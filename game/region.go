// Package game holds the UI-agnostic domain types of the memory board:
// regions, sequences and countdown presentation rules.
package game

// Region identifies one selectable colored zone of the board
type Region uint8

const (
	RegionGreen Region = iota
	RegionRed
	RegionBlue
	RegionYellow
	RegionCount // Sentinel for iteration
)

// RegionNone marks the absence of a lit region
const RegionNone Region = 0xFF

// String returns the lowercase color name
func (r Region) String() string {
	switch r {
	case RegionGreen:
		return "green"
	case RegionRed:
		return "red"
	case RegionBlue:
		return "blue"
	case RegionYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Valid reports whether r names an actual board region
func (r Region) Valid() bool {
	return r < RegionCount
}

// BoardOrder is the fixed quadrant convention, clockwise from 12 o'clock:
// red upper-right, blue lower-right, yellow lower-left, green upper-left.
// Layout receives this as an explicit ordered mapping so alternative
// boards (or N != 4) swap it without touching the partitioning code.
var BoardOrder = []Region{RegionRed, RegionBlue, RegionYellow, RegionGreen}
