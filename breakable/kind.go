package breakable

import "strings"

// Kind selects the shape drawn for a breakable object
type Kind uint8

const (
	Bottle Kind = iota
	Cup
	Plate
	Vase
	Glass
	Bowl
)

// Kinds lists every shape in palette order, the "random" pool
var Kinds = []Kind{Bottle, Cup, Plate, Vase, Glass, Bowl}

var kindNames = [...]string{
	Bottle: "bottle",
	Cup:    "cup",
	Plate:  "plate",
	Vase:   "vase",
	Glass:  "glass",
	Bowl:   "bowl",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a lowercase shape name to its Kind
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}
