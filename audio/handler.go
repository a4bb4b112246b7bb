package audio

import (
	"github.com/mindfulcampus/bottlesmash/events"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/status"
)

// Player is the part of SoundManager the event handler drives
type Player interface {
	PlayThrow()
	PlaySmash(intensity float64)
	PlaySplash()
	Enabled() bool
}

// Handler maps scene events to sounds
type Handler struct {
	player Player
}

// NewHandler creates a handler playing through p
func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventObjectSpawned,
		events.EventObjectBurst,
		events.EventSplashSpawned,
	}
}

func (h *Handler) HandleEvent(reg *status.Registry, ev events.GameEvent) {
	enabled := h.player.Enabled()
	reg.Bools.Get(status.KeyAudioEnabled).Store(enabled)
	if !enabled {
		return
	}

	switch ev.Type {
	case events.EventObjectSpawned:
		h.player.PlayThrow()
	case events.EventObjectBurst:
		intensity := 0.5
		if p, ok := ev.Payload.(*events.ObjectBurstPayload); ok {
			span := float64(parameter.ShardCountMax - parameter.ShardCountMin)
			intensity = float64(p.Shards-parameter.ShardCountMin) / span
		}
		h.player.PlaySmash(intensity)
	case events.EventSplashSpawned:
		h.player.PlaySplash()
	default:
		return
	}
	reg.Ints.Get(status.KeySoundsPlayed).Add(1)
}
