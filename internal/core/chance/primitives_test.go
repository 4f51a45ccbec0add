package chance

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBool(t *testing.T) {
	g := newTestGenerator()
	want := []bool{false, true, false, false, true, false}
	for i, w := range want {
		got, err := g.Bool(BoolOptions{})
		if err != nil {
			t.Fatalf("bool: %v", err)
		}
		if got != w {
			t.Fatalf("Bool()[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestBoolLikelihoodBounds(t *testing.T) {
	g := newTestGenerator()
	for _, likelihood := range []float64{-1, 100.5, math.NaN()} {
		if _, err := g.Bool(BoolOptions{Likelihood: Ptr(likelihood)}); !errors.Is(err, ErrRangeViolation) {
			t.Fatalf("likelihood %v error = %v, want %v", likelihood, err, ErrRangeViolation)
		}
	}

	for i := 0; i < 200; i++ {
		never, err := g.Bool(BoolOptions{Likelihood: Ptr(0.0)})
		if err != nil {
			t.Fatalf("bool: %v", err)
		}
		always, err := g.Bool(BoolOptions{Likelihood: Ptr(100.0)})
		if err != nil {
			t.Fatalf("bool: %v", err)
		}
		if never || !always {
			t.Fatalf("likelihood extremes not honored: 0 => %v, 100 => %v", never, always)
		}
	}
}

func TestInteger(t *testing.T) {
	g := newTestGenerator()
	want := []int64{8, 1, 9, 8, 1, 9}
	for i, w := range want {
		got, err := g.Integer(IntegerOptions{Min: Ptr(int64(0)), Max: Ptr(int64(9))})
		if err != nil {
			t.Fatalf("integer: %v", err)
		}
		if got != w {
			t.Fatalf("Integer()[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestIntegerStaysInRange(t *testing.T) {
	g := newTestGenerator()
	seen := map[int64]bool{}
	for i := 0; i < 5000; i++ {
		got, err := g.Integer(IntegerOptions{Min: Ptr(int64(-3)), Max: Ptr(int64(3))})
		if err != nil {
			t.Fatalf("integer: %v", err)
		}
		if got < -3 || got > 3 {
			t.Fatalf("Integer = %d, outside [-3, 3]", got)
		}
		seen[got] = true
	}
	if len(seen) != 7 {
		t.Fatalf("saw %d distinct values, want 7", len(seen))
	}

	for i := 0; i < 100; i++ {
		got, err := g.Integer(IntegerOptions{})
		if err != nil {
			t.Fatalf("integer: %v", err)
		}
		if got < MinInt || got > MaxInt {
			t.Fatalf("Integer = %d outside default range", got)
		}
	}
}

func TestIntegerSingletonRange(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 50; i++ {
		got, err := g.Integer(IntegerOptions{Min: Ptr(int64(42)), Max: Ptr(int64(42))})
		if err != nil {
			t.Fatalf("integer: %v", err)
		}
		if got != 42 {
			t.Fatalf("Integer = %d, want 42", got)
		}
	}
}

func TestIntegerErrors(t *testing.T) {
	g := newTestGenerator()
	tcs := []struct {
		name string
		opts IntegerOptions
	}{
		{"min greater than max", IntegerOptions{Min: Ptr(int64(5)), Max: Ptr(int64(1))}},
		{"max beyond safe range", IntegerOptions{Max: Ptr(MaxInt + 1)}},
		{"min beyond safe range", IntegerOptions{Min: Ptr(MinInt - 1)}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Integer(tc.opts); !errors.Is(err, ErrRangeViolation) {
				t.Fatalf("error = %v, want %v", err, ErrRangeViolation)
			}
		})
	}
}

func TestValidationDoesNotDraw(t *testing.T) {
	calls := 0
	g := FromFunc(func() float64 {
		calls++
		return 0.5
	})
	_, _ = g.Integer(IntegerOptions{Min: Ptr(int64(2)), Max: Ptr(int64(1))})
	_, _ = g.Bool(BoolOptions{Likelihood: Ptr(101.0)})
	_, _ = g.Floating(FloatingOptions{Fixed: Ptr(2), Precision: Ptr(2)})
	_, _ = g.String(StringOptions{Length: Ptr(-1)})
	_, _ = PickOne(g, []int{})
	if calls != 0 {
		t.Fatalf("random source called %d times by failing operations", calls)
	}
}

func TestNatural(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 500; i++ {
		got, err := g.Natural(IntegerOptions{Max: Ptr(int64(10))})
		if err != nil {
			t.Fatalf("natural: %v", err)
		}
		if got < 0 || got > 10 {
			t.Fatalf("Natural = %d outside [0, 10]", got)
		}
	}
	if _, err := g.Natural(IntegerOptions{Min: Ptr(int64(-1))}); !errors.Is(err, ErrRangeViolation) {
		t.Fatalf("negative min error = %v, want %v", err, ErrRangeViolation)
	}
}

func TestFloating(t *testing.T) {
	g := newTestGenerator()
	want := []float64{0.82, 0.13, 0.91}
	for i, w := range want {
		got, err := g.Floating(FloatingOptions{Min: Ptr(0.0), Max: Ptr(1.0), Fixed: Ptr(2)})
		if err != nil {
			t.Fatalf("floating: %v", err)
		}
		if got != w {
			t.Fatalf("Floating()[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestFloatingRespectsFixedDigits(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 500; i++ {
		got, err := g.Floating(FloatingOptions{Min: Ptr(-10.0), Max: Ptr(10.0)})
		if err != nil {
			t.Fatalf("floating: %v", err)
		}
		if got < -10 || got > 10 {
			t.Fatalf("Floating = %v outside [-10, 10]", got)
		}
		scaled := got * 1e4
		if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Fatalf("Floating = %v has more than 4 decimals", got)
		}
	}
}

func TestFloatingPrecision(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 100; i++ {
		got, err := g.Floating(FloatingOptions{Min: Ptr(100.0), Max: Ptr(999.0), Precision: Ptr(2)})
		if err != nil {
			t.Fatalf("floating: %v", err)
		}
		if math.Mod(got, 10) != 0 {
			t.Fatalf("Floating = %v, want two significant digits", got)
		}
	}
}

func TestFloatingErrors(t *testing.T) {
	g := newTestGenerator()
	tcs := []struct {
		name string
		opts FloatingOptions
		want error
	}{
		{"fixed and precision", FloatingOptions{Fixed: Ptr(2), Precision: Ptr(3)}, ErrConflictingOptions},
		{"max overflows fixed", FloatingOptions{Max: Ptr(float64(MaxInt)), Fixed: Ptr(4)}, ErrRangeViolation},
		{"min overflows fixed", FloatingOptions{Min: Ptr(-float64(MaxInt)), Fixed: Ptr(1)}, ErrRangeViolation},
		{"min greater than max", FloatingOptions{Min: Ptr(2.0), Max: Ptr(1.0)}, ErrRangeViolation},
		{"negative fixed", FloatingOptions{Fixed: Ptr(-1)}, ErrRangeViolation},
		{"zero precision", FloatingOptions{Precision: Ptr(0)}, ErrRangeViolation},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Floating(tc.opts); !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCharacter(t *testing.T) {
	g := newTestGenerator()
	var b strings.Builder
	for i := 0; i < 5; i++ {
		c, err := g.Character(CharacterOptions{Pool: "abc"})
		if err != nil {
			t.Fatalf("character: %v", err)
		}
		b.WriteString(c)
	}
	if got := b.String(); got != "cacca" {
		t.Fatalf("characters = %q, want %q", got, "cacca")
	}
}

func TestCharacterPools(t *testing.T) {
	g := newTestGenerator()
	tcs := []struct {
		name string
		opts CharacterOptions
		pool string
	}{
		{"alpha lower", CharacterOptions{Alpha: true, Casing: CasingLower}, CharsLower},
		{"alpha upper", CharacterOptions{Alpha: true, Casing: CasingUpper}, CharsUpper},
		{"symbols", CharacterOptions{Symbols: true}, Symbols},
		{"default", CharacterOptions{}, CharsLower + CharsUpper + Numbers + Symbols},
		{"multibyte pool", CharacterOptions{Pool: "äöü"}, "äöü"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				c, err := g.Character(tc.opts)
				if err != nil {
					t.Fatalf("character: %v", err)
				}
				if len([]rune(c)) != 1 || !strings.Contains(tc.pool, c) {
					t.Fatalf("Character = %q not in pool %q", c, tc.pool)
				}
			}
		})
	}
}

func TestCharacterErrors(t *testing.T) {
	g := newTestGenerator()
	if _, err := g.Character(CharacterOptions{Alpha: true, Symbols: true}); !errors.Is(err, ErrConflictingOptions) {
		t.Fatalf("alpha+symbols error = %v, want %v", err, ErrConflictingOptions)
	}
	if _, err := g.Character(CharacterOptions{Casing: "title"}); !errors.Is(err, ErrRangeViolation) {
		t.Fatalf("unknown casing error = %v, want %v", err, ErrRangeViolation)
	}
}

func TestString(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 200; i++ {
		s, err := g.String(StringOptions{})
		if err != nil {
			t.Fatalf("string: %v", err)
		}
		if n := len([]rune(s)); n < 5 || n > 20 {
			t.Fatalf("String length = %d, want [5, 20]", n)
		}
	}

	s, err := g.String(StringOptions{Length: Ptr(8), Character: CharacterOptions{Pool: "xy"}})
	if err != nil {
		t.Fatalf("string: %v", err)
	}
	if len(s) != 8 || strings.Trim(s, "xy") != "" {
		t.Fatalf("String = %q, want 8 chars from xy", s)
	}

	empty, err := g.String(StringOptions{Length: Ptr(0)})
	if err != nil || empty != "" {
		t.Fatalf("String(0) = %q, %v, want empty", empty, err)
	}

	if _, err := g.String(StringOptions{Length: Ptr(-1)}); !errors.Is(err, ErrRangeViolation) {
		t.Fatalf("negative length error = %v, want %v", err, ErrRangeViolation)
	}
}

func TestN(t *testing.T) {
	g := newTestGenerator()
	got, err := N(4, func() (int64, error) {
		return g.Natural(IntegerOptions{Max: Ptr(int64(9))})
	})
	if err != nil {
		t.Fatalf("n: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("N length = %d, want 4", len(got))
	}

	boom := errors.New("boom")
	if _, err := N(3, func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("N error = %v, want %v", err, boom)
	}
	if _, err := N(-1, func() (int, error) { return 0, nil }); !errors.Is(err, ErrRangeViolation) {
		t.Fatalf("N negative error = %v, want %v", err, ErrRangeViolation)
	}
}

func TestPadAndCapitalize(t *testing.T) {
	if got := Pad(7, 3, '0'); got != "007" {
		t.Fatalf("Pad = %q, want 007", got)
	}
	if got := Pad(1234, 2, '0'); got != "1234" {
		t.Fatalf("Pad = %q, want 1234", got)
	}
	if got := Capitalize("hello"); got != "Hello" {
		t.Fatalf("Capitalize = %q, want Hello", got)
	}
	if got := Capitalize("mcDonald"); got != "McDonald" {
		t.Fatalf("Capitalize = %q, want McDonald", got)
	}
	tests := map[string]string{
		"hello world":         "Hello world",
		"ze wizre cibi":       "Ze wizre cibi",
		"élan vital":          "Élan vital",
		"":                    "",
		"already Up and down": "Already Up and down",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
