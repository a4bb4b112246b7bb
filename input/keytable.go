package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mindfulcampus/bottlesmash/config"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Field      config.Field
	Dir        int
}

// KeyTable maps keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentType: IntentQuit},
			tcell.KeyEscape: {IntentType: IntentEscape},
			tcell.KeyUp:     {IntentType: IntentDepth, Dir: 1},
			tcell.KeyDown:   {IntentType: IntentDepth, Dir: -1},
			tcell.KeyRight:  {IntentType: IntentCycle, Field: config.FieldObject, Dir: 1},
			tcell.KeyLeft:   {IntentType: IntentCycle, Field: config.FieldObject, Dir: -1},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'?': {IntentType: IntentHelp},
			'm': {IntentType: IntentToggleMute},

			'o': {IntentType: IntentCycle, Field: config.FieldObject, Dir: 1},
			'O': {IntentType: IntentCycle, Field: config.FieldObject, Dir: -1},
			'g': {IntentType: IntentCycle, Field: config.FieldGlass, Dir: 1},
			'G': {IntentType: IntentCycle, Field: config.FieldGlass, Dir: -1},
			'l': {IntentType: IntentCycle, Field: config.FieldLiquid, Dir: 1},
			'L': {IntentType: IntentCycle, Field: config.FieldLiquid, Dir: -1},
			'b': {IntentType: IntentCycle, Field: config.FieldBackground, Dir: 1},
			'B': {IntentType: IntentCycle, Field: config.FieldBackground, Dir: -1},

			'+': {IntentType: IntentDepth, Dir: 1},
			'=': {IntentType: IntentDepth, Dir: 1},
			'-': {IntentType: IntentDepth, Dir: -1},
			'_': {IntentType: IntentDepth, Dir: -1},
		},
	}
}
