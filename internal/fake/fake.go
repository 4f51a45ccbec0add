// Package fake composes the chance primitives into realistic fake values:
// words and sentences, people, web identifiers and place names.
//
// Every value is drawn through one *chance.Generator, so a Faker built on
// a seeded generator produces the same values for the same call sequence.
package fake

import (
	"strings"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/digest"
)

// Faker generates fake values.
type Faker struct {
	g        *chance.Generator
	digester digest.Digester
}

// Option configures a Faker.
type Option func(*Faker)

// WithDigester sets the digest used for avatar URLs. The default is MD5.
func WithDigester(d digest.Digester) Option {
	return func(f *Faker) {
		if d != nil {
			f.digester = d
		}
	}
}

// New returns a Faker drawing from g.
func New(g *chance.Generator, opts ...Option) *Faker {
	f := &Faker{g: g, digester: digest.MD5{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Generator returns the underlying generator.
func (f *Faker) Generator() *chance.Generator {
	return f.g
}

func (f *Faker) natural(min, max int64) (int64, error) {
	return f.g.Natural(chance.IntegerOptions{Min: chance.Ptr(min), Max: chance.Ptr(max)})
}

func (f *Faker) pickString(table string, path ...string) (string, error) {
	items, err := dataStrings(f.g, table, path...)
	if err != nil {
		return "", err
	}
	return chance.PickOne(f.g, items)
}

func (f *Faker) poolString(pool string, length int) (string, error) {
	return f.g.String(chance.StringOptions{Length: chance.Ptr(length), Character: chance.CharacterOptions{Pool: pool}})
}

func join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
