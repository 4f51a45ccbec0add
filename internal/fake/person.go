package fake

import (
	"fmt"
	"strings"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/data"
)

// Genders drawn by Gender.
var Genders = []string{"Male", "Female"}

const defaultNationality = "en"

func dataStrings(g *chance.Generator, table string, path ...string) ([]string, error) {
	return data.Strings(g.Data(), table, path...)
}

// Gender returns Male or Female.
func (f *Faker) Gender() (string, error) {
	return chance.PickOne(f.g, Genders)
}

// PersonOptions selects the name tables.
type PersonOptions struct {
	// Gender defaults to a random Gender.
	Gender string
	// Nationality defaults to "en".
	Nationality string
}

func (o PersonOptions) nationality() string {
	if o.Nationality == "" {
		return defaultNationality
	}
	return strings.ToLower(o.Nationality)
}

// First returns a first name.
func (f *Faker) First(opts PersonOptions) (string, error) {
	gender := opts.Gender
	if gender == "" {
		var err error
		if gender, err = f.Gender(); err != nil {
			return "", err
		}
	}
	return f.pickString("firstNames", strings.ToLower(gender), opts.nationality())
}

// Last returns a last name.
func (f *Faker) Last(opts PersonOptions) (string, error) {
	return f.pickString("lastNames", opts.nationality())
}

// NameOptions configures Name.
type NameOptions struct {
	PersonOptions
	// Middle adds a second first name.
	Middle bool
	// MiddleInitial adds an upper-case initial. Ignored when Middle is set.
	MiddleInitial bool
	// Prefix prepends an abbreviated name prefix.
	Prefix bool
}

// Name returns a full name.
func (f *Faker) Name(opts NameOptions) (string, error) {
	first, err := f.First(opts.PersonOptions)
	if err != nil {
		return "", err
	}
	last, err := f.Last(opts.PersonOptions)
	if err != nil {
		return "", err
	}

	var name string
	switch {
	case opts.Middle:
		middle, err := f.First(opts.PersonOptions)
		if err != nil {
			return "", err
		}
		name = fmt.Sprintf("%s %s %s", first, middle, last)
	case opts.MiddleInitial:
		initial, err := f.g.Character(chance.CharacterOptions{Alpha: true, Casing: chance.CasingUpper})
		if err != nil {
			return "", err
		}
		name = fmt.Sprintf("%s %s. %s", first, initial, last)
	default:
		name = first + " " + last
	}

	if opts.Prefix {
		prefix, err := f.Prefix(PrefixOptions{Gender: opts.Gender})
		if err != nil {
			return "", err
		}
		name = prefix + " " + name
	}
	return name, nil
}

// NamePrefix is a courtesy title.
type NamePrefix struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// NamePrefixes lists the prefixes for gender ("male", "female" or "all").
func (f *Faker) NamePrefixes(gender string) ([]NamePrefix, error) {
	if gender == "" {
		gender = "all"
	}
	records, err := data.Records(f.g.Data(), "namePrefixes", strings.ToLower(gender))
	if err != nil {
		return nil, err
	}
	prefixes := make([]NamePrefix, len(records))
	for i, r := range records {
		name, _ := r["name"].(string)
		abbreviation, _ := r["abbreviation"].(string)
		prefixes[i] = NamePrefix{Name: name, Abbreviation: abbreviation}
	}
	return prefixes, nil
}

// PrefixOptions configures Prefix.
type PrefixOptions struct {
	// Gender defaults to "all".
	Gender string
	// Full returns the spelled-out prefix instead of the abbreviation.
	Full bool
}

// Prefix returns a name prefix such as "Dr.".
func (f *Faker) Prefix(opts PrefixOptions) (string, error) {
	prefixes, err := f.NamePrefixes(opts.Gender)
	if err != nil {
		return "", err
	}
	p, err := chance.PickOne(f.g, prefixes)
	if err != nil {
		return "", err
	}
	if opts.Full {
		return p.Name, nil
	}
	return p.Abbreviation, nil
}
