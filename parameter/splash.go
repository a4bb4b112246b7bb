package parameter

// Splash Entity
const (
	// SplashSizeMin/Max bound the randomized base size
	SplashSizeMin = 60.0
	SplashSizeMax = 90.0

	SplashArmMin = 7
	SplashArmMax = 12

	SplashDropletMin = 5
	SplashDropletMax = 12

	// SplashFadeSeconds is the full fade duration at the nominal frame rate
	SplashFadeSeconds = 4

	// SplashFadeRate is the life lost per frame: 1/(4×60)
	SplashFadeRate = 1.0 / (SplashFadeSeconds * FrameRate)

	// SplashArmJitter is the angular jitter applied to evenly spaced arms
	SplashArmJitter = 0.3
)
