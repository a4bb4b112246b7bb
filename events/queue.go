package events

import (
	"sync/atomic"

	"github.com/mindfulcampus/bottlesmash/parameter"
)

// EventQueue is a fixed ring of scene events shared by one stage
//
// Producers are the frame task and the background task; the single consumer
// is the stage dispatch that runs after each drawn frame. Each slot carries
// the stamp of the sequence last published into it; the consumer reads a
// slot only when the stamp matches the sequence it expects, so a half
// written or stale event is never delivered. When producers lap the
// consumer the oldest events are dropped and counted in Lost.
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	stamp [parameter.EventQueueSize]atomic.Uint64 // seq+1 of the published event
	read  atomic.Uint64
	write atomic.Uint64
	lost  atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func slot(seq uint64) uint64 { return seq & parameter.EventBufferMask }

// Push claims the next sequence number and publishes the event in its slot
func (eq *EventQueue) Push(event GameEvent) {
	seq := eq.write.Add(1) - 1
	i := slot(seq)
	eq.slots[i] = event
	eq.stamp[i].Store(seq + 1)

	// Slide the read cursor past anything this write lapped
	for {
		r := eq.read.Load()
		if seq+1-r <= parameter.EventQueueSize {
			return
		}
		floor := seq + 1 - parameter.EventQueueSize
		if eq.read.CompareAndSwap(r, floor) {
			eq.lost.Add(floor - r)
			return
		}
	}
}

// Drain appends every published event to buf in push order and returns it
// Callers pass buf[:0] of a retained slice to dispatch without allocating.
// Draining stops at the first slot whose producer has not finished writing;
// that event is delivered on the next drain.
func (eq *EventQueue) Drain(buf []GameEvent) []GameEvent {
	for {
		r := eq.read.Load()
		w := eq.write.Load()

		start := len(buf)
		seq := r
		for ; seq < w; seq++ {
			i := slot(seq)
			if eq.stamp[i].Load() != seq+1 {
				break
			}
			buf = append(buf, eq.slots[i])
		}
		if seq == r {
			return buf
		}
		if eq.read.CompareAndSwap(r, seq) {
			return buf
		}
		// A producer moved the read cursor under us; retry from the new floor
		buf = buf[:start]
	}
}

// Consume returns pending events in a new slice, nil when there are none
func (eq *EventQueue) Consume() []GameEvent {
	evs := eq.Drain(nil)
	if len(evs) == 0 {
		return nil
	}
	return evs
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	n := eq.write.Load() - eq.read.Load()
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}

// Lost returns how many events were overwritten before the consumer saw them
func (eq *EventQueue) Lost() uint64 {
	return eq.lost.Load()
}
