package input

import "github.com/mindfulcampus/bottlesmash/config"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Ctrl+C
	IntentEscape     // ESC: closes help, otherwise quits
	IntentHelp       // ?
	IntentToggleMute // m
	IntentResize     // terminal resize

	IntentCycle // o/g/l/b forward, O/G/L/B back
	IntentDepth // +/- and arrows

	IntentClick // left button press
)

// Intent is a parsed action, pure data
type Intent struct {
	Type  IntentType
	Field config.Field // IntentCycle
	Dir   int          // IntentCycle and IntentDepth: +1 or -1
	X, Y  int          // IntentClick cell
}
