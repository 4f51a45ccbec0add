package fake

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/louisbranch/chance/internal/core/chance"
)

// generatorSource adapts a Generator to math/rand/v2.Source. Each Uint64
// packs two 32-bit draws, high word first, which matches the twister's own
// Uint64 when the generator is engine-backed.
type generatorSource struct {
	g *chance.Generator
}

func (s generatorSource) Uint64() uint64 {
	hi := uint64(s.g.Random() * (1 << 32))
	lo := uint64(s.g.Random() * (1 << 32))
	return hi<<32 | lo
}

// Gofakeit returns a gofakeit faker that draws from the same generator, for
// the catalog this package does not cover (companies, cities, job titles).
// Calls on either faker advance the shared stream.
func (f *Faker) Gofakeit() *gofakeit.Faker {
	return gofakeit.NewFaker(generatorSource{g: f.g}, false)
}
