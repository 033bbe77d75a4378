// Package input translates terminal events into game intents and pushes
// them onto the event queue. It never gates: whether a click counts is the
// coordinator's contract, not the input layer's.
package input

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/core"
	"github.com/lixenwraith/echo-ring/events"
	"github.com/lixenwraith/echo-ring/game"
	"github.com/lixenwraith/echo-ring/layout"
)

// BoardGeometry resolves screen coordinates against the board shape.
// Implemented by render.Board.
type BoardGeometry interface {
	Geometry(width, height int) (cx, cy, innerR, outerR float64)
	Spans() []layout.Span
}

// Handler polls the terminal and feeds the event queue
type Handler struct {
	screen tcell.Screen
	queue  *events.Queue
	board  BoardGeometry
	order  []game.Region

	prevButtons tcell.ButtonMask
}

// NewHandler creates an input handler for the given screen and board
func NewHandler(screen tcell.Screen, queue *events.Queue, board BoardGeometry, order []game.Region) *Handler {
	return &Handler{
		screen: screen,
		queue:  queue,
		board:  board,
		order:  order,
	}
}

// Start launches the poll goroutine. It exits when the screen is finalized
// or Stop posts an interrupt.
func (h *Handler) Start() {
	core.Go(h.pollLoop)
}

// Stop unblocks the poll goroutine
func (h *Handler) Stop() {
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (h *Handler) pollLoop() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}

		switch tev := ev.(type) {
		case *tcell.EventInterrupt:
			return

		case *tcell.EventResize:
			h.screen.Sync()
			h.push(events.Event{Type: events.TypeResize, Timestamp: tev.When()})

		case *tcell.EventKey:
			if out, ok := TranslateKey(tev, h.order); ok {
				h.push(out)
			}

		case *tcell.EventMouse:
			h.handleMouse(tev)
		}
	}
}

// handleMouse fires a region click on the press edge of button one
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.prevButtons&tcell.Button1 == 0
	h.prevButtons = buttons
	if !pressed {
		return
	}

	x, y := ev.Position()
	w, hgt := h.screen.Size()
	if r, ok := HitRegion(h.board, w, hgt, x, y); ok {
		h.push(events.Event{
			Type:      events.TypeRegionClick,
			Timestamp: ev.When(),
			Payload:   events.RegionClickPayload{Region: r},
		})
	}
}

func (h *Handler) push(ev events.Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	h.queue.Push(ev)
}

// TranslateKey maps a key event to a game intent.
// Digits address regions by board order: 1 = first wedge clockwise from top.
func TranslateKey(ev *tcell.EventKey, order []game.Region) (events.Event, bool) {
	out := events.Event{Timestamp: ev.When()}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		out.Type = events.TypeQuit
		return out, true
	case tcell.KeyEnter:
		out.Type = events.TypeSubmit
		return out, true
	case tcell.KeyRune:
		switch ch := ev.Rune(); {
		case ch == 'q':
			out.Type = events.TypeQuit
			return out, true
		case ch == 'r':
			out.Type = events.TypeRestart
			return out, true
		case ch >= '1' && int(ch-'1') < len(order):
			out.Type = events.TypeRegionClick
			out.Payload = events.RegionClickPayload{Region: order[ch-'1']}
			return out, true
		}
	}
	return events.Event{}, false
}

// HitRegion resolves a screen cell to the wedge under it, if any.
// Cells in the ring hole, outside the rim, or inside a gap miss.
func HitRegion(board BoardGeometry, width, height, x, y int) (game.Region, bool) {
	cx, cy, innerR, outerR := board.Geometry(width, height)

	dx := (float64(x) - cx) / constants.CellAspect
	dy := float64(y) - cy
	dist := math.Hypot(dx, dy)

	if dist < innerR || dist > outerR {
		return game.RegionNone, false
	}
	return layout.SpanAt(board.Spans(), layout.AngleOf(dx, dy))
}
