package parameter

import "time"

// Frame Loop & Surface
const (
	// FrameRate is the nominal display refresh rate the simulation is tuned for
	FrameRate = 60

	// FrameUpdateInterval is the frame task tick (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// SurfaceWidth and SurfaceHeight are the logical drawing surface size
	SurfaceWidth  = 800
	SurfaceHeight = 500

	// ClickQueueSize bounds clicks buffered between two frames
	ClickQueueSize = 64
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
