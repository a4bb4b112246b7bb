package events

// Handler receives the scene events it subscribes to, with a shared context
// (the stage passes its metrics registry). Audio and the journal are handlers
type Handler[T any] interface {
	// HandleEvent runs on the dispatching goroutine right after a frame
	// is drawn; slow work belongs on the handler's own goroutine
	HandleEvent(ctx T, event GameEvent)

	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }
func (h HandlerFunc[T]) EventTypes() []EventType            { return h.Types }

// Router fans events from one queue out to subscribed handlers
// Subscriptions are fixed before the first dispatch; handlers for a type run
// in registration order and events run in push order. Dispatch is single
// goroutine and reuses one buffer between calls
type Router[T any] struct {
	byType  [eventTypeLimit][]Handler[T]
	queue   *EventQueue
	scratch []GameEvent
}

func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes handler to its declared types. Unknown types are ignored
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		if t <= 0 || t >= eventTypeLimit {
			continue
		}
		r.byType[t] = append(r.byType[t], handler)
	}
}

// DispatchAll drains the queue and delivers each event, returning how many
// events were drained. Must not be called concurrently
func (r *Router[T]) DispatchAll(ctx T) int {
	if r.queue == nil {
		return 0
	}
	r.scratch = r.queue.Drain(r.scratch[:0])
	for _, ev := range r.scratch {
		if ev.Type <= 0 || ev.Type >= eventTypeLimit {
			continue
		}
		for _, h := range r.byType[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	n := len(r.scratch)
	// Drop payload references so delivered events can be collected
	clear(r.scratch)
	return n
}

// HandlerCount returns the number of handlers subscribed to t
func (r *Router[T]) HandlerCount(t EventType) int {
	if t <= 0 || t >= eventTypeLimit {
		return 0
	}
	return len(r.byType[t])
}
