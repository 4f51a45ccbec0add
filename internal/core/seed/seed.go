// Package seed folds caller-supplied seed material into the single word
// that initializes the engine.
//
// Inputs are explicit variants: numbers pass through unchanged and strings
// contribute a 32-bit rolling hash. Later inputs are weighted more heavily,
// so Derive(Int(1), Int(2)) and Derive(Int(2), Int(1)) produce different
// seeds.
package seed

import (
	"math"
	"time"
)

// Input is one piece of seed material.
type Input struct {
	text   string
	number float64
	isText bool
}

// Number returns a numeric input.
func Number(v float64) Input {
	return Input{number: v}
}

// Int returns an integer input.
func Int(v int64) Input {
	return Input{number: float64(v)}
}

// Text returns a string input.
func Text(s string) Input {
	return Input{text: s, isText: true}
}

// value is the contribution of the input before positional weighting.
func (in Input) value() float64 {
	if !in.isText {
		if math.IsNaN(in.number) || math.IsInf(in.number, 0) {
			return 0
		}
		return in.number
	}
	units := utf16Units(in.text)
	// The hash is added once per character.
	return float64(hashUnits(units)) * float64(len(units))
}

// Hash is the 32-bit signed rolling hash applied to string inputs:
// hash = code + (hash<<6) + (hash<<16) - hash, wrapping at 32 bits.
func Hash(s string) int32 {
	return hashUnits(utf16Units(s))
}

func hashUnits(units []uint16) int32 {
	var h int32
	for _, u := range units {
		h = int32(u) + (h << 6) + (h << 16) - h
	}
	return h
}

// utf16Units matches the character codes the hash was defined over.
func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xd800+(r>>10)), uint16(0xdc00+(r&0x3ff)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

// Kind discriminates a Spec.
type Kind int

const (
	// KindUnset means no seed material was given; a time-derived seed is used.
	KindUnset Kind = iota
	// KindFixed carries a derived engine seed.
	KindFixed
	// KindExternal carries a caller-supplied uniform generator.
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindFixed:
		return "fixed"
	case KindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Spec is the resolved seed: Fixed(word) | External(fn) | Unset.
type Spec struct {
	kind     Kind
	value    uint32
	external func() float64
}

// Fixed returns a spec for an explicit engine seed.
func Fixed(v uint32) Spec {
	return Spec{kind: KindFixed, value: v}
}

// FromFunc returns a spec that bypasses the engine. fn must return values on
// [0, 1). A nil fn yields an unset spec.
func FromFunc(fn func() float64) Spec {
	if fn == nil {
		return Spec{}
	}
	return Spec{kind: KindExternal, external: fn}
}

// Kind reports which variant the spec holds.
func (s Spec) Kind() Kind {
	return s.kind
}

// Value returns the engine seed and whether the spec is fixed.
func (s Spec) Value() (uint32, bool) {
	return s.value, s.kind == KindFixed
}

// External returns the caller-supplied generator, if any.
func (s Spec) External() (func() float64, bool) {
	return s.external, s.kind == KindExternal
}

// Derive folds inputs into a spec. With no inputs the spec is unset.
func Derive(inputs ...Input) Spec {
	if len(inputs) == 0 {
		return Spec{}
	}
	acc := 0.0
	count := len(inputs)
	for i, in := range inputs {
		acc += float64(count-i) * in.value()
	}
	return Fixed(toUint32(acc))
}

// Resolve returns the engine seed for s, deriving one from the clock when the
// spec is unset. External specs resolve to zero; they never seed an engine.
func Resolve(s Spec) uint32 {
	switch s.kind {
	case KindFixed:
		return s.value
	case KindUnset:
		return TimeSeed(time.Now())
	default:
		return 0
	}
}

// TimeSeed derives an engine seed from a timestamp.
func TimeSeed(now time.Time) uint32 {
	ns := uint64(now.UnixNano())
	return uint32(ns ^ (ns >> 32))
}

// toUint32 truncates toward zero and reduces modulo 2^32.
func toUint32(v float64) uint32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	t := math.Mod(math.Trunc(v), 4294967296)
	if t < 0 {
		t += 4294967296
	}
	return uint32(t)
}
