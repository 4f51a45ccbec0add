package chance

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxInt is the largest integer every bound and draw stays within (2^53).
const MaxInt int64 = 1 << 53

// MinInt is the smallest integer bound, -2^53.
const MinInt int64 = -MaxInt

const (
	defaultLikelihood = 50
	defaultFixed      = 4
	maxFixed          = 15
	defaultMinLength  = 5
	defaultMaxLength  = 20
)

// Character pools.
const (
	CharsLower = "abcdefghijklmnopqrstuvwxyz"
	CharsUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers    = "0123456789"
	Symbols    = "!@#$%^&*()[]"
	HexPool    = "0123456789abcdef"
)

// Ptr returns a pointer to v, for optional fields in option structs.
func Ptr[T any](v T) *T {
	return &v
}

// BoolOptions configures Bool.
type BoolOptions struct {
	// Likelihood of true, in percent. Defaults to 50.
	Likelihood *float64
}

// Bool returns true with the configured likelihood.
func (g *Generator) Bool(opts BoolOptions) (bool, error) {
	likelihood := float64(defaultLikelihood)
	if opts.Likelihood != nil {
		likelihood = *opts.Likelihood
	}
	if likelihood < 0 || likelihood > 100 || math.IsNaN(likelihood) {
		return false, rangeError("likelihood %v outside [0, 100]", likelihood)
	}
	return g.Random()*100 < likelihood, nil
}

// IntegerOptions bounds Integer and Natural. Both bounds are inclusive.
type IntegerOptions struct {
	Min *int64
	Max *int64
}

// Integer returns an integer on [Min, Max]. Bounds default to ±2^53.
func (g *Generator) Integer(opts IntegerOptions) (int64, error) {
	min, max := MinInt, MaxInt
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	if min < MinInt || max > MaxInt {
		return 0, rangeError("bounds [%d, %d] exceed ±2^53", min, max)
	}
	if min > max {
		return 0, rangeError("min %d greater than max %d", min, max)
	}
	return g.integer(float64(min), float64(max)), nil
}

// integer draws on [min, max] without validation. Callers check bounds.
func (g *Generator) integer(min, max float64) int64 {
	return int64(math.Floor(g.Random()*(max-min+1) + min))
}

// Natural returns a non-negative integer on [Min, Max]. Min defaults to 0.
func (g *Generator) Natural(opts IntegerOptions) (int64, error) {
	if opts.Min == nil {
		opts.Min = Ptr(int64(0))
	}
	if *opts.Min < 0 {
		return 0, rangeError("natural min %d is negative", *opts.Min)
	}
	return g.Integer(opts)
}

// FloatingOptions configures Floating.
type FloatingOptions struct {
	Min *float64
	Max *float64
	// Fixed is the number of decimal places. Defaults to 4.
	Fixed *int
	// Precision rounds the draw to this many significant digits instead of
	// a fixed number of decimals. Mutually exclusive with Fixed.
	Precision *int
}

// Floating returns a decimal on [Min, Max] rounded to Fixed places.
func (g *Generator) Floating(opts FloatingOptions) (float64, error) {
	if opts.Fixed != nil && opts.Precision != nil {
		return 0, conflictError("fixed", "precision")
	}
	fixed := defaultFixed
	if opts.Fixed != nil {
		fixed = *opts.Fixed
	}
	if fixed < 0 || fixed > maxFixed {
		return 0, rangeError("fixed %d outside [0, %d]", fixed, maxFixed)
	}
	if opts.Precision != nil && *opts.Precision < 1 {
		return 0, rangeError("precision %d must be positive", *opts.Precision)
	}

	scale := math.Pow10(fixed)
	limit := float64(MaxInt) / scale
	min, max := -limit, limit
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}
	if math.IsNaN(min) || math.IsNaN(max) {
		return 0, rangeError("bounds must be numbers")
	}
	if min < -limit {
		return 0, rangeError("min %v out of range with fixed %d, should be at least %v", min, fixed, -limit)
	}
	if max > limit {
		return 0, rangeError("max %v out of range with fixed %d, should be at most %v", max, fixed, limit)
	}
	if min > max {
		return 0, rangeError("min %v greater than max %v", min, max)
	}

	scaledMin, scaledMax := math.Round(min*scale), math.Round(max*scale)
	if scaledMin > scaledMax {
		return 0, rangeError("no value with %d decimals in [%v, %v]", fixed, min, max)
	}
	num := float64(g.integer(scaledMin, scaledMax)) / scale
	value, err := strconv.ParseFloat(strconv.FormatFloat(num, 'f', fixed, 64), 64)
	if err != nil {
		return 0, err
	}
	if opts.Precision != nil {
		return strconv.ParseFloat(strconv.FormatFloat(value, 'g', *opts.Precision, 64), 64)
	}
	return value, nil
}

// Casing restricts the letters in the default character pools.
type Casing string

const (
	CasingAny   Casing = ""
	CasingLower Casing = "lower"
	CasingUpper Casing = "upper"
)

// CharacterOptions configures Character.
type CharacterOptions struct {
	// Pool overrides every other option when non-empty.
	Pool    string
	Alpha   bool
	Symbols bool
	Casing  Casing
}

func (o CharacterOptions) pool() ([]rune, error) {
	if o.Alpha && o.Symbols {
		return nil, conflictError("alpha", "symbols")
	}
	var letters string
	switch o.Casing {
	case CasingLower:
		letters = CharsLower
	case CasingUpper:
		letters = CharsUpper
	case CasingAny:
		letters = CharsLower + CharsUpper
	default:
		return nil, rangeError("unknown casing %q", o.Casing)
	}
	switch {
	case o.Pool != "":
		return []rune(o.Pool), nil
	case o.Alpha:
		return []rune(letters), nil
	case o.Symbols:
		return []rune(Symbols), nil
	default:
		return []rune(letters + Numbers + Symbols), nil
	}
}

// Character returns one character from the configured pool.
func (g *Generator) Character(opts CharacterOptions) (string, error) {
	pool, err := opts.pool()
	if err != nil {
		return "", err
	}
	return string(g.pick(pool)), nil
}

func (g *Generator) pick(pool []rune) rune {
	return pool[g.integer(0, float64(len(pool)-1))]
}

// StringOptions configures String.
type StringOptions struct {
	// Length defaults to a natural on [5, 20].
	Length    *int
	Character CharacterOptions
}

// String returns Length characters drawn from the configured pool.
func (g *Generator) String(opts StringOptions) (string, error) {
	pool, err := opts.Character.pool()
	if err != nil {
		return "", err
	}
	if opts.Length != nil && *opts.Length < 0 {
		return "", rangeError("length %d is negative", *opts.Length)
	}
	var length int
	if opts.Length != nil {
		length = *opts.Length
	} else {
		length = int(g.integer(defaultMinLength, defaultMaxLength))
	}
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteRune(g.pick(pool))
	}
	return b.String(), nil
}

// N calls fn n times and collects the results, stopping at the first error.
func N[T any](n int, fn func() (T, error)) ([]T, error) {
	if n < 0 {
		return nil, rangeError("count %d is negative", n)
	}
	out := make([]T, 0, n)
	for range n {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Pad left-pads the decimal form of number with pad up to width runes.
func Pad(number int64, width int, pad rune) string {
	s := strconv.FormatInt(number, 10)
	if n := width - len(s); n > 0 {
		return strings.Repeat(string(pad), n) + s
	}
	return s
}

// Capitalize upper-cases the first letter of word and leaves the rest,
// including later words, untouched.
func Capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return cases.Upper(language.Und).String(word[:size]) + word[size:]
}
