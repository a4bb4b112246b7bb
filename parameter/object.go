package parameter

// Breakable Object
const (
	// FramesPerDepthUnit converts wall depth into throw duration: totalFrames = 25 × depth
	FramesPerDepthUnit = 25.0

	// FragmentWindowFrames is how many post-burst frames fragments stay simulated
	FragmentWindowFrames = 24

	// DepthShrinkDivisor keeps receding objects visible: scale = 1 − progress/(depth×1.2)
	DepthShrinkDivisor = 1.2

	// GlassAlpha is the opacity applied to the resolved glass color
	GlassAlpha = 0.8

	// SizeScaleMin/Max bound the per-instance size multiplier
	SizeScaleMin = 0.85
	SizeScaleMax = 1.15

	// RotationSpeedMin/Max bound the per-instance spin in radians per frame
	RotationSpeedMin = 0.04
	RotationSpeedMax = 0.14

	// LaunchOffsetY places the launch point below the bottom edge of the surface
	LaunchOffsetY = 60.0
)

// Impact Flash
const (
	// FlashFrames is the number of burst frames the white flash is drawn for
	FlashFrames = 8

	// FlashBaseRadius is the flash radius on the burst frame
	FlashBaseRadius = 8.0

	// FlashGrowth is the radius increase per burst frame
	FlashGrowth = 2.0

	// FlashAlpha is the starting opacity (1.2 × 0.15), fading linearly to 0
	FlashAlpha = 1.2 * 0.15
)
