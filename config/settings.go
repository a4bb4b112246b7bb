// Package config holds the user-facing scene settings, their option lists
// and the TOML settings file they persist to.
package config

import (
	"math"
	"strings"

	"github.com/mindfulcampus/bottlesmash/breakable"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
)

// Option sentinels
const (
	Random   = "random"
	Auto     = "auto"
	SameTint = breakable.LiquidSame
	NoLiquid = breakable.LiquidNone
)

// DefaultWallDepth is used when no depth is configured
const DefaultWallDepth = 1.5

// Settings is the scene configuration a Driver is built from
// Values are comparable so reconfiguration can detect no-op changes
type Settings struct {
	ObjectType  string  `toml:"object_type"`
	GlassColor  string  `toml:"glass_color"`
	LiquidColor string  `toml:"liquid_color"`
	Background  string  `toml:"background"`
	WallDepth   float64 `toml:"wall_depth"`
}

// DefaultSettings returns random objects and tints, same-colored liquid,
// rotating backgrounds and a medium wall depth
func DefaultSettings() Settings {
	return Settings{
		ObjectType:  Random,
		GlassColor:  Random,
		LiquidColor: SameTint,
		Background:  Auto,
		WallDepth:   DefaultWallDepth,
	}
}

// Option lists in cycling order; the first entry is the default
var (
	ObjectTypes  = objectTypes()
	GlassColors  = append([]string{Random}, visual.GlassColors...)
	LiquidColors = append([]string{SameTint, NoLiquid}, visual.LiquidColors...)
	Backgrounds  = append([]string{Auto}, visual.Backgrounds...)
)

func objectTypes() []string {
	out := []string{Random}
	for _, k := range breakable.Kinds {
		out = append(out, k.String())
	}
	return out
}

// Field names a cyclable setting
type Field uint8

const (
	FieldObject Field = iota
	FieldGlass
	FieldLiquid
	FieldBackground
)

func (f Field) String() string {
	switch f {
	case FieldObject:
		return "object"
	case FieldGlass:
		return "glass"
	case FieldLiquid:
		return "liquid"
	case FieldBackground:
		return "background"
	}
	return "unknown"
}

func (s *Settings) field(f Field) (*string, []string) {
	switch f {
	case FieldObject:
		return &s.ObjectType, ObjectTypes
	case FieldGlass:
		return &s.GlassColor, GlassColors
	case FieldLiquid:
		return &s.LiquidColor, LiquidColors
	case FieldBackground:
		return &s.Background, Backgrounds
	}
	return nil, nil
}

// Cycle returns a copy with field moved dir steps through its option list
// Values outside the list restart from the first option
func (s Settings) Cycle(f Field, dir int) Settings {
	ptr, opts := s.field(f)
	if ptr == nil || len(opts) == 0 {
		return s
	}
	i := indexOf(opts, *ptr)
	if i < 0 {
		*ptr = opts[0]
		return s
	}
	n := len(opts)
	*ptr = opts[((i+dir)%n+n)%n]
	return s
}

// StepDepth returns a copy with the wall depth moved by steps × 0.1, clamped
func (s Settings) StepDepth(steps int) Settings {
	s.WallDepth = SnapDepth(s.WallDepth + float64(steps)*parameter.WallDepthStep)
	return s
}

// SnapDepth clamps d into the accepted range and rounds it to the depth step
func SnapDepth(d float64) float64 {
	if math.IsNaN(d) {
		return DefaultWallDepth
	}
	d = math.Max(parameter.WallDepthMin, math.Min(parameter.WallDepthMax, d))
	per := math.Round(1 / parameter.WallDepthStep)
	return math.Round(d*per) / per
}

// Normalize repairs settings read from an untrusted source: unknown options
// fall back to their defaults, hex literals are matched case-insensitively
// and the depth is clamped and snapped
func (s Settings) Normalize() Settings {
	for _, f := range []Field{FieldObject, FieldGlass, FieldLiquid, FieldBackground} {
		ptr, opts := s.field(f)
		if i := indexOf(opts, *ptr); i >= 0 {
			*ptr = opts[i]
		} else {
			*ptr = opts[0]
		}
	}
	if s.WallDepth == 0 {
		s.WallDepth = DefaultWallDepth
	}
	s.WallDepth = SnapDepth(s.WallDepth)
	return s
}

// Valid reports whether every value is one of its listed options and the depth is in range
func (s Settings) Valid() bool {
	return s == s.Normalize()
}

func indexOf(opts []string, v string) int {
	v = strings.TrimSpace(v)
	for i, o := range opts {
		if strings.EqualFold(o, v) {
			return i
		}
	}
	return -1
}

// Label returns a short display name for an option value
// Gradient literals are reduced to their two color stops
func Label(v string) string {
	if !strings.HasPrefix(v, "linear-gradient(") {
		return v
	}
	var stops []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "#") {
			stops = append(stops, strings.Fields(part)[0])
		}
	}
	return strings.Join(stops, "→")
}
