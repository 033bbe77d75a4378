package constants

// Board Geometry
const (
	// BoardGapDegrees is the angular separation carved between adjacent wedges
	BoardGapDegrees = 6.0

	// MinSingleGapDegrees keeps a one-region board an open wedge instead of a closed circle
	MinSingleGapDegrees = 2.0

	// InnerRadiusRatio and OuterRadiusRatio size the annulus relative to the
	// smaller half-extent of the drawable area
	InnerRadiusRatio = 0.40
	OuterRadiusRatio = 0.95

	// CellAspect compensates terminal cells being roughly twice as tall as wide
	CellAspect = 2.0
)

// Event Queue
const (
	// EventQueueSize must be a power of two for mask indexing
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
