package fake

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/core/seed"
	"github.com/louisbranch/chance/internal/data"
	"github.com/louisbranch/chance/internal/digest"
)

func newFaker(s uint32) *Faker {
	return New(chance.New(seed.Fixed(s)))
}

func TestSyllableAlternates(t *testing.T) {
	f := newFaker(1)
	for i := 0; i < 200; i++ {
		s, err := f.Syllable(SyllableOptions{})
		if err != nil {
			t.Fatalf("syllable: %v", err)
		}
		if len(s) < 2 || len(s) > 3 {
			t.Fatalf("Syllable = %q, want 2 or 3 letters", s)
		}
		for j := 1; j < len(s); j++ {
			prevConsonant := strings.ContainsRune(consonants, rune(s[j-1]))
			curConsonant := strings.ContainsRune(consonants, rune(s[j]))
			if prevConsonant == curConsonant {
				t.Fatalf("Syllable = %q does not alternate", s)
			}
		}
	}

	s, err := f.Syllable(SyllableOptions{Length: 5, Capitalize: true})
	if err != nil {
		t.Fatalf("syllable: %v", err)
	}
	if len(s) != 5 || strings.ToUpper(s[:1]) != s[:1] {
		t.Fatalf("Syllable = %q, want 5 letters capitalized", s)
	}
}

func TestWord(t *testing.T) {
	f := newFaker(2)
	w, err := f.Word(WordOptions{Length: 7})
	if err != nil {
		t.Fatalf("word: %v", err)
	}
	if len(w) != 7 {
		t.Fatalf("Word = %q, want 7 letters", w)
	}

	w, err = f.Word(WordOptions{Syllables: 2, Capitalize: true})
	if err != nil {
		t.Fatalf("word: %v", err)
	}
	if len(w) < 4 || len(w) > 6 || strings.ToUpper(w[:1]) != w[:1] {
		t.Fatalf("Word = %q, want 2 capitalized syllables", w)
	}

	if _, err := f.Word(WordOptions{Syllables: 2, Length: 4}); !errors.Is(err, chance.ErrConflictingOptions) {
		t.Fatalf("Word error = %v, want %v", err, chance.ErrConflictingOptions)
	}
}

func TestSentenceCapitalizesFirstWordOnly(t *testing.T) {
	s, err := newFaker(7).Sentence(SentenceOptions{Words: 5})
	if err != nil {
		t.Fatalf("sentence: %v", err)
	}
	if want := "Ze wizre cibi etema vugeloga."; s != want {
		t.Fatalf("Sentence = %q, want %q", s, want)
	}
}

func TestSentenceAndParagraph(t *testing.T) {
	f := newFaker(3)
	s, err := f.Sentence(SentenceOptions{Words: 4})
	if err != nil {
		t.Fatalf("sentence: %v", err)
	}
	if !regexp.MustCompile(`^[A-Z][a-z]* [a-z]+ [a-z]+ [a-z]+\.$`).MatchString(s) {
		t.Fatalf("Sentence = %q, want four words and a period", s)
	}

	s, err = f.Sentence(SentenceOptions{Words: 2, Punctuation: chance.Ptr("?")})
	if err != nil || !strings.HasSuffix(s, "?") {
		t.Fatalf("Sentence = %q, %v, want question mark", s, err)
	}
	s, err = f.Sentence(SentenceOptions{Words: 2, Punctuation: chance.Ptr("")})
	if err != nil || strings.ContainsAny(s, ".?;!:") {
		t.Fatalf("Sentence = %q, %v, want no punctuation", s, err)
	}
	s, err = f.Sentence(SentenceOptions{Words: 2, Punctuation: chance.Ptr("#")})
	if err != nil || !strings.HasSuffix(s, ".") {
		t.Fatalf("Sentence = %q, %v, want period fallback", s, err)
	}

	p, err := f.Paragraph(ParagraphOptions{Sentences: 3})
	if err != nil {
		t.Fatalf("paragraph: %v", err)
	}
	if got := strings.Count(p, "."); got != 3 {
		t.Fatalf("Paragraph has %d sentences, want 3", got)
	}
}

func TestPersonNames(t *testing.T) {
	f := newFaker(4)
	males, err := data.Strings(data.Static(), "firstNames", "male", "en")
	if err != nil {
		t.Fatalf("strings: %v", err)
	}

	for i := 0; i < 50; i++ {
		first, err := f.First(PersonOptions{Gender: "Male"})
		if err != nil {
			t.Fatalf("first: %v", err)
		}
		if !slices.Contains(males, first) {
			t.Fatalf("First = %q not a male en name", first)
		}
	}

	if _, err := f.First(PersonOptions{Gender: "Male", Nationality: "xx"}); !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("unknown nationality error = %v, want %v", err, data.ErrNotFound)
	}

	name, err := f.Name(NameOptions{MiddleInitial: true, Prefix: true, PersonOptions: PersonOptions{Gender: "female", Nationality: "it"}})
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if !regexp.MustCompile(`^(Miss|Mrs\.|Dr\.) \S+ [A-Z]\. \S+$`).MatchString(name) {
		t.Fatalf("Name = %q, want prefix first initial last", name)
	}

	name, err = f.Name(NameOptions{Middle: true})
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if len(strings.Fields(name)) < 3 {
		t.Fatalf("Name = %q, want middle name", name)
	}
}

func TestPrefix(t *testing.T) {
	f := newFaker(5)
	for i := 0; i < 50; i++ {
		p, err := f.Prefix(PrefixOptions{Gender: "male", Full: true})
		if err != nil {
			t.Fatalf("prefix: %v", err)
		}
		if p != "Mister" && p != "Doctor" {
			t.Fatalf("Prefix = %q, want male full prefix", p)
		}
	}
	all, err := f.NamePrefixes("")
	if err != nil || len(all) != 4 {
		t.Fatalf("NamePrefixes(all) = %v, %v, want four", all, err)
	}
}

func TestWebValues(t *testing.T) {
	f := newFaker(6)
	tests := []struct {
		name    string
		pattern string
		fn      func() (string, error)
	}{
		{"domain", `^[a-z]+\.[a-z.]+$`, func() (string, error) { return f.Domain(DomainOptions{}) }},
		{"email", `^[a-z]{6}@[a-z]+\.test$`, func() (string, error) {
			return f.Email(EmailOptions{Length: 6, Domain: "example.test"})
		}},
		{"ip", `^([1-9]\d{0,2})\.(\d{1,3})\.(\d{1,3})\.([1-9]\d{0,2})$`, f.IP},
		{"ipv6", `^([0-9a-f]{4}:){7}[0-9a-f]{4}$`, f.IPv6},
		{"hash", `^[0-9A-F]{40}$`, func() (string, error) { return f.Hash(HashOptions{Casing: chance.CasingUpper}) }},
		{"guid", `^[0-9a-f]{8}-[0-9a-f]{4}-5[0-9a-f]{3}-[ab89][0-9a-f]{3}-[0-9a-f]{12}$`, func() (string, error) {
			return f.GUID(GUIDOptions{})
		}},
		{"hex color", `^#[0-9a-f]{6}$`, func() (string, error) { return f.Color(ColorOptions{Format: ColorHex}) }},
		{"gray shorthex", `^#[0-9a-f]{3}$`, func() (string, error) {
			return f.Color(ColorOptions{Format: ColorShortHex, Grayscale: true})
		}},
		{"rgba", `^rgba\(\d{1,3},\d{1,3},\d{1,3},[0-9.]+\)$`, func() (string, error) { return f.Color(ColorOptions{Format: ColorRGBA}) }},
		{"0x upper", `^0X[0-9A-F]{6}$`, func() (string, error) {
			return f.Color(ColorOptions{Format: Color0x, Casing: chance.CasingUpper})
		}},
		{"place", `^The [A-Z][a-z]+ [A-Z][a-z]+$`, f.PlaceName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			for i := 0; i < 20; i++ {
				got, err := tt.fn()
				if err != nil {
					t.Fatalf("%s: %v", tt.name, err)
				}
				if !re.MatchString(got) {
					t.Fatalf("%s = %q, want match for %s", tt.name, got, tt.pattern)
				}
			}
		})
	}

	for i := 0; i < 20; i++ {
		got, err := f.Color(ColorOptions{Format: ColorShortHex, Grayscale: true})
		if err != nil {
			t.Fatalf("gray shorthex: %v", err)
		}
		if got[1] != got[2] || got[2] != got[3] {
			t.Fatalf("gray shorthex = %q, want one repeated digit", got)
		}
	}

	if _, err := f.Color(ColorOptions{Format: "cmyk"}); !errors.Is(err, chance.ErrRangeViolation) {
		t.Fatalf("invalid color error = %v, want %v", err, chance.ErrRangeViolation)
	}
}

func TestAvatar(t *testing.T) {
	f := newFaker(7)
	got, err := f.Avatar(AvatarOptions{
		Email:         "abc",
		Protocol:      "https",
		FileExtension: "png",
		Size:          100,
		Rating:        "pg",
		Fallback:      "retro",
	})
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	want := "https://www.gravatar.com/avatar/900150983cd24fb0d6963f7d28e17f72.png?d=retro&r=pg&s=100"
	if got != want {
		t.Fatalf("Avatar = %q, want %q", got, want)
	}

	got, err = f.Avatar(AvatarOptions{Email: "abc", Protocol: "ftp", Rating: "nc17"})
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if got != "//www.gravatar.com/avatar/900150983cd24fb0d6963f7d28e17f72" {
		t.Fatalf("Avatar = %q, want unknown options dropped", got)
	}

	stub := New(chance.New(seed.Fixed(7)), WithDigester(digest.Func(func([]byte) [digest.Size]byte {
		return [digest.Size]byte{0xff}
	})))
	got, err = stub.Avatar(AvatarOptions{Email: "abc"})
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	if !strings.HasSuffix(got, "/ff000000000000000000000000000000") {
		t.Fatalf("Avatar = %q, want injected digest", got)
	}
}

func TestPersonDeterministic(t *testing.T) {
	a, err := newFaker(99).Person()
	if err != nil {
		t.Fatalf("person: %v", err)
	}
	b, err := newFaker(99).Person()
	if err != nil {
		t.Fatalf("person: %v", err)
	}
	if a != b {
		t.Fatalf("records differ for the same seed:\n%+v\n%+v", a, b)
	}
	if a.Company == "" || a.City == "" || a.Job == "" {
		t.Fatalf("gofakeit fields empty: %+v", a)
	}

	c, err := newFaker(100).Person()
	if err != nil {
		t.Fatalf("person: %v", err)
	}
	if a == c {
		t.Fatal("expected different seeds to produce different records")
	}
}

func TestGofakeitSharesStream(t *testing.T) {
	g1 := chance.New(seed.Fixed(11))
	g2 := chance.New(seed.Fixed(11))

	if New(g1).Gofakeit().Uint64() != g2.Engine().Uint64() {
		t.Fatal("gofakeit source should pack the twister words")
	}
	if g1.Random() != g2.Random() {
		t.Fatal("generators diverged after shared draw")
	}
}

func TestNamesFromOverlay(t *testing.T) {
	overlay := data.NewOverlay(data.Static())
	if err := overlay.Set("lastNames", map[string][]string{"en": {"Solo"}}); err != nil {
		t.Fatalf("set: %v", err)
	}
	f := New(chance.New(seed.Fixed(1), chance.WithData(overlay)))
	last, err := f.Last(PersonOptions{})
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last != "Solo" {
		t.Fatalf("Last = %q, want Solo", last)
	}
}
