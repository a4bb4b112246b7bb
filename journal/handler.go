package journal

import (
	"github.com/mindfulcampus/bottlesmash/events"
	"github.com/mindfulcampus/bottlesmash/status"
)

// Handler writes every burst event to the journal
type Handler struct {
	j *Journal
}

// NewHandler seeds the journal.total metric from the stored count
func NewHandler(j *Journal, reg *status.Registry) *Handler {
	if n, err := j.Total(); err == nil {
		reg.Ints.Get(status.KeyJournalTotal).Store(n)
	}
	return &Handler{j: j}
}

func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{events.EventObjectBurst}
}

func (h *Handler) HandleEvent(reg *status.Registry, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.ObjectBurstPayload)
	if !ok {
		return
	}
	s := Smash{
		Time:      ev.Timestamp,
		Kind:      p.Kind,
		Glass:     p.Glass,
		Liquid:    p.Liquid,
		X:         p.X,
		Y:         p.Y,
		WallDepth: p.WallDepth,
		Shards:    p.Shards,
		Pieces:    p.Pieces,
	}
	if h.j.Record(s) {
		reg.Ints.Get(status.KeyJournalTotal).Add(1)
	}
	reg.Ints.Get(status.KeyJournalFailed).Store(h.j.Dropped() + h.j.Failed())
}
