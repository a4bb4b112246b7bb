package status

import "sync/atomic"

// Metric keys written by the scene and its subsystems
const (
	KeyFrames        = "scene.frames"
	KeyObjects       = "scene.objects"
	KeySplashes      = "scene.splashes"
	KeySmashes       = "scene.smashes"
	KeyDepth         = "scene.depth"
	KeyBackground    = "scene.background"
	KeyDrivers       = "stage.drivers"
	KeyEventsLost    = "stage.events_lost"
	KeyJournalTotal  = "journal.total"
	KeyJournalFailed = "journal.failed"
	KeyAudioEnabled  = "audio.enabled"
	KeySoundsPlayed  = "audio.played"
)

// Registry is the central metrics facade
// Producers cache pointers during init; frame loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot is a point-in-time copy of the values the status bar shows
type Snapshot struct {
	Frames       int64
	Objects      int64
	Splashes     int64
	Smashes      int64
	JournalTotal int64
	Depth        float64
	Background   string
	Drivers      int64
	AudioEnabled bool
}

// Snapshot reads the well-known metrics without holding any lock across reads
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Frames:       r.Ints.Get(KeyFrames).Load(),
		Objects:      r.Ints.Get(KeyObjects).Load(),
		Splashes:     r.Ints.Get(KeySplashes).Load(),
		Smashes:      r.Ints.Get(KeySmashes).Load(),
		JournalTotal: r.Ints.Get(KeyJournalTotal).Load(),
		Depth:        r.Floats.Get(KeyDepth).Get(),
		Background:   r.Strings.Get(KeyBackground).Load(),
		Drivers:      r.Ints.Get(KeyDrivers).Load(),
		AudioEnabled: r.Bools.Get(KeyAudioEnabled).Load(),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
