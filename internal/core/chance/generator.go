// Package chance is the sampling core every fake-data generator composes
// from.
//
// A Generator owns exactly one uniform source: a Mersenne Twister seeded
// once at construction, or a caller-supplied function returning values on
// [0, 1). Primitives (Bool, Integer, Natural, Floating, Character, String)
// and sampling algorithms (PickOne, PickSet, Shuffle, Weighted, Unique,
// Normal, NormalPool) draw only through Random, so two generators built
// from the same seed produce identical output for identical call
// sequences.
//
// # Errors
//
// Every operation validates its arguments before drawing. Violations are
// reported as errors matching one of the sentinels in this package
// (ErrRangeViolation, ErrEmptyInput, ...) through errors.Is; no partial
// draws happen before a failed check.
//
// # Concurrency
//
// A Generator is not safe for concurrent use. Interleaved calls from
// several goroutines corrupt the engine cursor and silently break
// reproducibility.
package chance

import (
	"github.com/louisbranch/chance/internal/core/mt19937"
	"github.com/louisbranch/chance/internal/core/seed"
	"github.com/louisbranch/chance/internal/data"
)

// Generator draws deterministic pseudo-random values.
type Generator struct {
	random func() float64
	engine *mt19937.Twister
	seed   uint32
	spec   seed.Spec
	data   data.Provider
}

// Option configures a Generator.
type Option func(*Generator)

// WithData sets the reference-data provider. The default is data.Static().
func WithData(p data.Provider) Option {
	return func(g *Generator) {
		if p != nil {
			g.data = p
		}
	}
}

// New returns a Generator for spec. A fixed spec seeds the engine with its
// value, an unset spec seeds it from the clock, and an external spec binds
// Random to the caller's function without constructing an engine.
func New(spec seed.Spec, opts ...Option) *Generator {
	g := &Generator{spec: spec}
	if fn, ok := spec.External(); ok {
		g.random = fn
	} else {
		g.seed = seed.Resolve(spec)
		g.engine = mt19937.New(g.seed)
		g.random = g.engine.Float64
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.data == nil {
		g.data = data.Static()
	}
	return g
}

// Seeded derives a spec from inputs and returns a Generator for it.
func Seeded(inputs ...seed.Input) *Generator {
	return New(seed.Derive(inputs...))
}

// FromFunc returns a Generator whose Random is fn.
func FromFunc(fn func() float64) *Generator {
	return New(seed.FromFunc(fn))
}

// Random returns the next uniform value on [0, 1).
func (g *Generator) Random() float64 {
	return g.random()
}

// Seed returns the engine seed in use. It reports false when Random is
// bound to an external function.
func (g *Generator) Seed() (uint32, bool) {
	return g.seed, g.engine != nil
}

// Engine returns the underlying twister, or nil for external generators.
func (g *Generator) Engine() *mt19937.Twister {
	return g.engine
}

// Data returns the reference-data provider.
func (g *Generator) Data() data.Provider {
	return g.data
}

// Get returns a deep copy of the named reference table.
func (g *Generator) Get(name string) (any, error) {
	return data.Get(g.data, name)
}
