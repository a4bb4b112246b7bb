package events

import (
	"sync"
	"testing"

	"github.com/mindfulcampus/bottlesmash/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventObjectSpawned, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d events, want 5", len(got))
	}
	for i, ev := range got {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("second consume should be empty")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventObjectBurst, Frame: int64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Frame != 10 || got[len(got)-1].Frame != int64(total-1) {
		t.Errorf("window = [%d..%d], want [10..%d]", got[0].Frame, got[len(got)-1].Frame, total-1)
	}
	if q.Lost() != 10 {
		t.Errorf("Lost = %d, want 10", q.Lost())
	}
}

func TestDrainReusesBuffer(t *testing.T) {
	q := NewEventQueue()
	buf := make([]GameEvent, 0, 8)

	q.Push(GameEvent{Type: EventObjectSpawned, Frame: 1})
	q.Push(GameEvent{Type: EventObjectBurst, Frame: 2})
	buf = q.Drain(buf[:0])
	if len(buf) != 2 || buf[0].Frame != 1 || buf[1].Frame != 2 {
		t.Fatalf("first drain = %+v", buf)
	}

	q.Push(GameEvent{Type: EventSplashSpawned, Frame: 3})
	next := q.Drain(buf[:0])
	if len(next) != 1 || next[0].Type != EventSplashSpawned {
		t.Fatalf("second drain = %+v", next)
	}
	if &next[0] != &buf[0] {
		t.Error("drain into a retained buffer should not reallocate")
	}
	if q.Len() != 0 || q.Lost() != 0 {
		t.Errorf("Len = %d Lost = %d after full drains", q.Len(), q.Lost())
	}
}

func TestDrainWhileProducing(t *testing.T) {
	q := NewEventQueue()
	const perProducer = parameter.EventQueueSize / 4

	var wg sync.WaitGroup
	for p := 0; p < 2; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventBackgroundChanged})
			}
		}()
	}

	seen := 0
	var buf []GameEvent
	finished := make(chan struct{})
	go func() { wg.Wait(); close(finished) }()
	for done := false; !done; {
		select {
		case <-finished:
			done = true
		default:
		}
		buf = q.Drain(buf[:0])
		seen += len(buf)
	}
	seen += len(q.Drain(buf[:0]))

	if seen != 2*perProducer || q.Lost() != 0 {
		t.Errorf("delivered %d lost %d, want %d and 0", seen, q.Lost(), 2*perProducer)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				q.Push(GameEvent{Type: EventSplashSpawned})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 200 {
		t.Errorf("consumed %d events, want 200", got)
	}
}

type countingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *countingHandler) HandleEvent(_ *int, ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *countingHandler) EventTypes() []EventType          { return h.types }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	burst := &countingHandler{types: []EventType{EventObjectBurst}}
	all := &countingHandler{types: []EventType{EventObjectSpawned, EventObjectBurst}}
	r.Register(burst)
	r.Register(all)

	calls := 0
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventBackgroundChanged},
		Fn:    func(ctx *int, _ GameEvent) { calls += *ctx },
	})

	q.Push(GameEvent{Type: EventObjectSpawned})
	q.Push(GameEvent{Type: EventObjectBurst})
	q.Push(GameEvent{Type: EventBackgroundChanged})
	q.Push(GameEvent{Type: EventSplashSpawned})

	ctx := 3
	if n := r.DispatchAll(&ctx); n != 4 {
		t.Errorf("dispatched %d, want 4", n)
	}
	if len(burst.seen) != 1 || len(all.seen) != 2 {
		t.Errorf("burst saw %v, all saw %v", burst.seen, all.seen)
	}
	if calls != 3 {
		t.Errorf("func handler ctx sum = %d, want 3", calls)
	}
	if r.HandlerCount(EventObjectBurst) != 2 {
		t.Errorf("HandlerCount = %d", r.HandlerCount(EventObjectBurst))
	}

	if n := r.DispatchAll(&ctx); n != 0 {
		t.Errorf("empty queue dispatched %d", n)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventObjectBurst.String() != "ObjectBurst" || EventType(99).String() != "Unknown" {
		t.Error("unexpected event names")
	}
}

func TestRouterIgnoresUnknownTypes(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)
	h := &countingHandler{types: []EventType{EventType(99), EventObjectBurst}}
	r.Register(h)

	q.Push(GameEvent{Type: EventType(99)})
	q.Push(GameEvent{Type: EventObjectBurst})

	ctx := 0
	if n := r.DispatchAll(&ctx); n != 2 {
		t.Errorf("drained %d, want 2", n)
	}
	if len(h.seen) != 1 || h.seen[0] != EventObjectBurst {
		t.Errorf("handler saw %v", h.seen)
	}
	if r.HandlerCount(EventType(99)) != 0 || r.HandlerCount(EventObjectBurst) != 1 {
		t.Error("unknown type should have no subscribers")
	}
}
