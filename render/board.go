// Package render rasterizes the annulus board onto a tcell screen.
// Drawing is pure with respect to its inputs: the same state always
// paints the same cells.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/engine"
	"github.com/lixenwraith/echo-ring/game"
	"github.com/lixenwraith/echo-ring/layout"
	"github.com/lixenwraith/echo-ring/session"
)

// State is everything one frame of drawing needs
type State struct {
	Frame        engine.Frame
	ActiveRegion game.Region
	HasActive    bool
	Round        int
	Score        int
	Phase        session.Phase
	Now          time.Time
}

// Board paints the radial game board
type Board struct {
	spans []layout.Span
}

// NewBoard builds a renderer over the fixed region order
func NewBoard(order []game.Region, gapDegrees float64) *Board {
	return &Board{
		spans: layout.ComputeSpans(order, gapDegrees),
	}
}

// Spans exposes the board partition for mouse hit testing
func (b *Board) Spans() []layout.Span {
	return b.spans
}

// Geometry returns the board center and radii for the current screen size.
// dx is measured in aspect-corrected cells so the board appears circular.
func (b *Board) Geometry(width, height int) (cx, cy, innerR, outerR float64) {
	cx = float64(width) / 2
	cy = float64(height-2)/2 + 1 // one header row, one footer row

	halfW := cx / constants.CellAspect
	halfH := float64(height-2) / 2
	maxR := math.Min(halfW, halfH)

	return cx, cy, maxR * constants.InnerRadiusRatio, maxR * constants.OuterRadiusRatio
}

// Draw paints one frame. The screen is cleared by the caller's loop only on
// resize; wedge cells fully cover their previous state.
func (b *Board) Draw(screen tcell.Screen, st State) {
	width, height := screen.Size()
	if width < 10 || height < 6 {
		return
	}

	cx, cy, innerR, outerR := b.Geometry(width, height)

	for y := 1; y < height-1; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / constants.CellAspect
			dy := float64(y) - cy
			dist := math.Hypot(dx, dy)

			style := tcell.StyleDefault
			if dist >= innerR && dist <= outerR {
				if r, ok := layout.SpanAt(b.spans, layout.AngleOf(dx, dy)); ok {
					active := st.HasActive && r == st.ActiveRegion
					style = regionStyle(r, active, st.Frame.Disabled)
				}
			}
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	b.drawHeader(screen, st)
	b.drawCenter(screen, int(cx), int(cy), st)
	b.drawFooter(screen, width, height, st)
}

func (b *Board) drawHeader(screen tcell.Screen, st State) {
	text := fmt.Sprintf(" round %d   score %d ", st.Round, st.Score)
	drawText(screen, 1, 0, tcell.StyleDefault.Bold(true), text)
}

// drawCenter puts the countdown (or the game-over notice) in the ring hole
func (b *Board) drawCenter(screen tcell.Screen, cx, cy int, st State) {
	switch {
	case st.Phase == session.PhaseGameOver:
		drawTextCentered(screen, cx, cy, tcell.StyleDefault.Bold(true), "GAME OVER")
		drawTextCentered(screen, cx, cy+1, tcell.StyleDefault, "press r")

	case st.Frame.InputPhase:
		if st.Frame.TimerPulsing && blinkOff(st.Now) {
			return // pulse: hide digits every other half-period
		}
		text := fmt.Sprintf("%d", st.Frame.SecondsRemaining)
		drawTextCentered(screen, cx, cy, timerStyle(st.Frame.TimerColor), text)
	}
}

// drawFooter shows reproduction progress as filled and hollow dots
func (b *Board) drawFooter(screen tcell.Screen, width, height int, st State) {
	if !st.Frame.InputPhase && st.Phase != session.PhaseGameOver {
		return
	}

	total := len(st.Frame.Sequence)
	done := len(st.Frame.PlayerSequence)

	x := (width - total*2) / 2
	if x < 0 {
		x = 0
	}
	for i := 0; i < total; i++ {
		ch := '○'
		if i < done {
			ch = '●'
		}
		screen.SetContent(x+i*2, height-1, ch, nil, tcell.StyleDefault)
	}

	if st.Frame.CanSubmit {
		drawText(screen, x+total*2+2, height-1, tcell.StyleDefault.Bold(true), "enter to submit")
	}
}

// blinkOff is the dark half of the pulse cycle
func blinkOff(now time.Time) bool {
	period := constants.PulsePeriod.Nanoseconds()
	return (now.UnixNano()/period)%2 == 1
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func drawTextCentered(screen tcell.Screen, cx, y int, style tcell.Style, text string) {
	drawText(screen, cx-len(text)/2, y, style, text)
}
