package parameter

import "time"

// Wall & Depth
const (
	// DepthEase is the fraction of the remaining depth gap closed per frame
	DepthEase = 0.02

	// InitialSmoothedDepth is the wall depth a fresh driver starts easing from
	InitialSmoothedDepth = 1.0

	// WallX/Y/Width/Height is the wall rectangle at depth 1
	WallX      = 60.0
	WallY      = 40.0
	WallWidth  = 680.0
	WallHeight = 420.0

	// WallShadowBlur is the shadow blur at depth 1, divided by the smoothed depth
	WallShadowBlur = 20.0

	// WallBrickRows is the number of mortar courses drawn on the wall
	WallBrickRows = 9
)

// Background Rotation
const (
	// BackgroundRotateInterval is the auto background period
	BackgroundRotateInterval = 8 * time.Second
)

// Wall depth bounds accepted from the input surface
const (
	WallDepthMin  = 1.0
	WallDepthMax  = 3.0
	WallDepthStep = 0.1
)
