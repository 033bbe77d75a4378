package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/echo-ring/game"
)

// Base wedge colors, muted so the active highlight reads clearly
var regionColors = map[game.Region]colorful.Color{
	game.RegionGreen:  {R: 0.10, G: 0.55, B: 0.24},
	game.RegionRed:    {R: 0.70, G: 0.13, B: 0.13},
	game.RegionBlue:   {R: 0.12, G: 0.30, B: 0.70},
	game.RegionYellow: {R: 0.75, G: 0.65, B: 0.10},
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// regionStyle derives the cell style for a wedge in its current state.
// The active region blends toward white; a disabled board sinks toward black.
func regionStyle(r game.Region, active, disabled bool) tcell.Style {
	c, ok := regionColors[r]
	if !ok {
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	switch {
	case active:
		c = c.BlendLab(white, 0.55)
	case disabled:
		c = c.BlendLab(black, 0.6)
	}
	return tcell.StyleDefault.Background(toTcell(c))
}

// timerStyle colors the countdown digits by the caller's classification.
// The renderer never re-derives urgency from the seconds; the frame's
// timer color is the single source of truth.
func timerStyle(tc game.TimerColor) tcell.Style {
	var c colorful.Color
	switch tc {
	case game.TimerRed:
		c = colorful.Color{R: 0.95, G: 0.20, B: 0.20}
	case game.TimerYellow:
		c = colorful.Color{R: 0.95, G: 0.80, B: 0.20}
	default:
		c = colorful.Color{R: 0.25, G: 0.85, B: 0.35}
	}
	return tcell.StyleDefault.Foreground(toTcell(c)).Bold(true)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
