package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents
// Mouse clicks fire on the press edge only; holding the button does not repeat
type Machine struct {
	keys    *KeyTable
	buttons tcell.ButtonMask
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keys: DefaultKeyTable()}
}

// Process returns the intent for ev, or nil when ev means nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keys.Runes[ev.Rune()]
	} else {
		entry, ok = m.keys.SpecialKeys[ev.Key()]
	}
	if !ok {
		return nil
	}
	return &Intent{Type: entry.IntentType, Field: entry.Field, Dir: entry.Dir}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	if m.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		x, y := ev.Position()
		return &Intent{Type: IntentClick, X: x, Y: y}
	}
	return nil
}
