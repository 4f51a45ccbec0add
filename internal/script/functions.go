package script

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/core/dice"
	"github.com/louisbranch/chance/internal/fake"
)

// options reads an optional table argument.
type options map[string]any

func optionsAt(state *lua.State, index int) (options, error) {
	switch state.TypeOf(index) {
	case lua.TypeNone, lua.TypeNil:
		return options{}, nil
	case lua.TypeTable:
		return tableToMap(state, index), nil
	default:
		return nil, fmt.Errorf("%w: argument %d must be an options table", ErrBadArgument, index)
	}
}

func (o options) float(key string) (*float64, error) {
	v, ok := o[key]
	if !ok {
		return nil, nil
	}
	switch n := v.(type) {
	case int:
		f := float64(n)
		return &f, nil
	case float64:
		return &n, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a number", ErrBadArgument, key)
	}
}

func (o options) int(key string) (*int64, error) {
	f, err := o.float(key)
	if err != nil || f == nil {
		return nil, err
	}
	if *f != float64(int64(*f)) {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrBadArgument, key)
	}
	n := int64(*f)
	return &n, nil
}

func (o options) intValue(key string) (int, error) {
	n, err := o.int(key)
	if err != nil || n == nil {
		return 0, err
	}
	return int(*n), nil
}

func (o options) string(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrBadArgument, key)
	}
	return s, nil
}

func (o options) bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

func (o options) character() (chance.CharacterOptions, error) {
	pool, err := o.string("pool")
	if err != nil {
		return chance.CharacterOptions{}, err
	}
	casing, err := o.string("casing")
	if err != nil {
		return chance.CharacterOptions{}, err
	}
	return chance.CharacterOptions{
		Pool:    pool,
		Alpha:   o.bool("alpha"),
		Symbols: o.bool("symbols"),
		Casing:  chance.Casing(casing),
	}, nil
}

func listAt(state *lua.State, index int) ([]any, error) {
	if state.TypeOf(index) != lua.TypeTable {
		return nil, fmt.Errorf("%w: argument %d must be a list", ErrBadArgument, index)
	}
	list, ok := tableToGo(state, index).([]any)
	if !ok {
		return nil, fmt.Errorf("%w: argument %d must be a list", ErrBadArgument, index)
	}
	return list, nil
}

func (r *Runner) boolFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	likelihood, err := opts.float("likelihood")
	if err != nil {
		return nil, err
	}
	return r.g.Bool(chance.BoolOptions{Likelihood: likelihood})
}

func (r *Runner) integerOptions(state *lua.State) (chance.IntegerOptions, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return chance.IntegerOptions{}, err
	}
	min, err := opts.int("min")
	if err != nil {
		return chance.IntegerOptions{}, err
	}
	max, err := opts.int("max")
	if err != nil {
		return chance.IntegerOptions{}, err
	}
	return chance.IntegerOptions{Min: min, Max: max}, nil
}

func (r *Runner) integerFn(state *lua.State) (any, error) {
	opts, err := r.integerOptions(state)
	if err != nil {
		return nil, err
	}
	return r.g.Integer(opts)
}

func (r *Runner) naturalFn(state *lua.State) (any, error) {
	opts, err := r.integerOptions(state)
	if err != nil {
		return nil, err
	}
	return r.g.Natural(opts)
}

func (r *Runner) floatingFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	var fo chance.FloatingOptions
	if fo.Min, err = opts.float("min"); err != nil {
		return nil, err
	}
	if fo.Max, err = opts.float("max"); err != nil {
		return nil, err
	}
	fixed, err := opts.int("fixed")
	if err != nil {
		return nil, err
	}
	if fixed != nil {
		fo.Fixed = chance.Ptr(int(*fixed))
	}
	precision, err := opts.int("precision")
	if err != nil {
		return nil, err
	}
	if precision != nil {
		fo.Precision = chance.Ptr(int(*precision))
	}
	return r.g.Floating(fo)
}

func (r *Runner) characterFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	co, err := opts.character()
	if err != nil {
		return nil, err
	}
	return r.g.Character(co)
}

func (r *Runner) stringFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	co, err := opts.character()
	if err != nil {
		return nil, err
	}
	length, err := opts.int("length")
	if err != nil {
		return nil, err
	}
	so := chance.StringOptions{Character: co}
	if length != nil {
		so.Length = chance.Ptr(int(*length))
	}
	return r.g.String(so)
}

func (r *Runner) pickOneFn(state *lua.State) (any, error) {
	list, err := listAt(state, 1)
	if err != nil {
		return nil, err
	}
	return chance.PickOne(r.g, list)
}

func (r *Runner) pickSetFn(state *lua.State) (any, error) {
	list, err := listAt(state, 1)
	if err != nil {
		return nil, err
	}
	count := lua.OptInteger(state, 2, 1)
	return chance.PickSet(r.g, list, count)
}

func (r *Runner) shuffleFn(state *lua.State) (any, error) {
	list, err := listAt(state, 1)
	if err != nil {
		return nil, err
	}
	return chance.Shuffle(r.g, list), nil
}

func (r *Runner) weightedFn(state *lua.State) (any, error) {
	list, err := listAt(state, 1)
	if err != nil {
		return nil, err
	}
	raw, err := listAt(state, 2)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(raw))
	for i, w := range raw {
		switch n := w.(type) {
		case int:
			weights[i] = float64(n)
		case float64:
			weights[i] = n
		default:
			return nil, fmt.Errorf("%w: weight %d must be a number", ErrBadArgument, i+1)
		}
	}
	return chance.Weighted(r.g, list, weights)
}

func (r *Runner) normalFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	mean, err := opts.float("mean")
	if err != nil {
		return nil, err
	}
	dev, err := opts.float("dev")
	if err != nil {
		return nil, err
	}
	no := chance.NormalOptions{Dev: dev}
	if mean != nil {
		no.Mean = *mean
	}
	if pool, ok := opts["pool"].([]any); ok {
		return chance.NormalPool(r.g, pool, no)
	}
	return r.g.Normal(no)
}

func (r *Runner) rpgFn(state *lua.State) (any, error) {
	notation := lua.CheckString(state, 1)
	opts, err := optionsAt(state, 2)
	if err != nil {
		return nil, err
	}
	rolls, err := dice.RPG(r.g, notation)
	if err != nil {
		return nil, err
	}
	if opts.bool("sum") {
		return dice.Sum(rolls), nil
	}
	return rolls, nil
}

func (r *Runner) wordFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	syllables, err := opts.intValue("syllables")
	if err != nil {
		return nil, err
	}
	length, err := opts.intValue("length")
	if err != nil {
		return nil, err
	}
	return r.faker.Word(fake.WordOptions{Syllables: syllables, Length: length, Capitalize: opts.bool("capitalize")})
}

func (r *Runner) sentenceFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	words, err := opts.intValue("words")
	if err != nil {
		return nil, err
	}
	so := fake.SentenceOptions{Words: words}
	if _, ok := opts["punctuation"]; ok {
		p, err := opts.string("punctuation")
		if err != nil {
			return nil, err
		}
		so.Punctuation = &p
	}
	return r.faker.Sentence(so)
}

func (r *Runner) nameFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	gender, err := opts.string("gender")
	if err != nil {
		return nil, err
	}
	nationality, err := opts.string("nationality")
	if err != nil {
		return nil, err
	}
	return r.faker.Name(fake.NameOptions{
		PersonOptions: fake.PersonOptions{Gender: gender, Nationality: nationality},
		Middle:        opts.bool("middle"),
		MiddleInitial: opts.bool("middle_initial"),
		Prefix:        opts.bool("prefix"),
	})
}

func (r *Runner) emailFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	domain, err := opts.string("domain")
	if err != nil {
		return nil, err
	}
	length, err := opts.intValue("length")
	if err != nil {
		return nil, err
	}
	return r.faker.Email(fake.EmailOptions{Domain: domain, Length: length})
}

func (r *Runner) guidFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	version, err := opts.intValue("version")
	if err != nil {
		return nil, err
	}
	return r.faker.GUID(fake.GUIDOptions{Version: version})
}

func (r *Runner) ipFn(*lua.State) (any, error) {
	return r.faker.IP()
}

func (r *Runner) colorFn(state *lua.State) (any, error) {
	opts, err := optionsAt(state, 1)
	if err != nil {
		return nil, err
	}
	format, err := opts.string("format")
	if err != nil {
		return nil, err
	}
	casing, err := opts.string("casing")
	if err != nil {
		return nil, err
	}
	return r.faker.Color(fake.ColorOptions{Format: format, Grayscale: opts.bool("grayscale"), Casing: chance.Casing(casing)})
}

func (r *Runner) placeFn(*lua.State) (any, error) {
	return r.faker.PlaceName()
}
