package visual

import "github.com/mindfulcampus/bottlesmash/core"

// Scene colors
var (
	WallFace   = core.MustHex("#f4efe6")
	WallMortar = core.MustHex("#d9d0c1")
	WallShadow = core.RGBBlack

	// StatusBar colors for the terminal frontend
	StatusFg     = core.MustHex("#e8e8f0")
	StatusBg     = core.MustHex("#2b2d42")
	StatusAccent = core.MustHex("#7EC8E3")

	// Help overlay
	HelpFg = core.MustHex("#2b2d42")
	HelpBg = core.MustHex("#f4efe6")
)

// Opacities used by the scene
const (
	WallShadowAlpha = 0.35
	MortarAlpha     = 0.6
	HighlightAlpha  = 0.55
	AccentAlpha     = 0.7
)
