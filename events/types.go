package events

import "time"

// EventType represents the type of scene event
type EventType int

const (
	// EventObjectSpawned signals a click turned into a thrown object
	// Trigger: Driver click drain | Payload: *ObjectSpawnedPayload
	// Consumer: audio (throw whoosh)
	EventObjectSpawned EventType = iota + 1

	// EventObjectBurst signals an object reached the wall and shattered
	// Trigger: Driver objects pass | Payload: *ObjectBurstPayload
	// Consumer: audio (crash), journal (record)
	EventObjectBurst

	// EventSplashSpawned signals a liquid splash was adopted by the scene
	// Trigger: Driver objects pass | Payload: *SplashSpawnedPayload
	// Consumer: audio (splash)
	EventSplashSpawned

	// EventBackgroundChanged signals the container gradient changed
	// Trigger: background task or fixed background apply | Payload: *BackgroundChangedPayload
	// Consumer: settings persistence, logging
	EventBackgroundChanged

	eventTypeLimit
)

var typeNames = map[EventType]string{
	EventObjectSpawned:     "ObjectSpawned",
	EventObjectBurst:       "ObjectBurst",
	EventSplashSpawned:     "SplashSpawned",
	EventBackgroundChanged: "BackgroundChanged",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single scene event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Driver frame that emitted the event
	Timestamp time.Time
}
