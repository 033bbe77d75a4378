package events

import (
	"sync/atomic"

	"github.com/lixenwraith/echo-ring/constants"
)

// slot is one ring cell. ready flips true only after the event is fully
// written, so the consumer never observes a half-written event.
type slot struct {
	ev    Event
	ready atomic.Bool
}

// Queue is a lock-free MPSC ring buffer carrying game events from the
// input goroutine and the session into the tick loop.
//
// Producers claim a write position with an atomic increment and publish
// via the slot's ready flag; the single consumer drains in FIFO order.
// When the ring laps the reader the oldest unread events are dropped,
// which for this game means stale clicks, never state.
type Queue struct {
	slots [constants.EventQueueSize]slot
	head  atomic.Uint64 // next unread position
	tail  atomic.Uint64 // next write position
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev. Safe for any number of concurrent producers; never blocks.
func (q *Queue) Push(ev Event) {
	claimed := q.tail.Add(1) - 1
	s := &q.slots[claimed&constants.EventBufferMask]
	s.ev = ev
	s.ready.Store(true) // publish only after the event is in place

	// Lapped the reader: push head past the overwritten slot
	head := q.head.Load()
	if claimed+1-head > constants.EventQueueSize {
		q.head.CompareAndSwap(head, claimed+1-constants.EventQueueSize)
	}
}

// Consume drains every published event in FIFO order. Single consumer
// (the tick loop); returns nil when nothing is pending.
func (q *Queue) Consume() []Event {
	var out []Event
	for {
		head := q.head.Load()
		if head == q.tail.Load() {
			return out
		}

		s := &q.slots[head&constants.EventBufferMask]
		if !s.ready.Load() {
			// Claimed but not yet published; stop at the gap
			return out
		}

		ev := s.ev
		if q.head.CompareAndSwap(head, head+1) {
			s.ready.Store(false)
			out = append(out, ev)
		}
		// CAS failure means an overflowing producer moved head; re-read it
	}
}
