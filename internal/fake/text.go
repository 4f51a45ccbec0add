package fake

import (
	"strings"

	"github.com/louisbranch/chance/internal/core/chance"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

const (
	consonants = "bcdfghjklmnprstvwz"
	vowels     = "aeiou"
)

// SyllableOptions configures Syllable.
type SyllableOptions struct {
	// Length defaults to 2 or 3 letters.
	Length     int
	Capitalize bool
}

// Syllable alternates consonants and vowels after a free first letter.
func (f *Faker) Syllable(opts SyllableOptions) (string, error) {
	if opts.Length < 0 {
		return "", apperrors.Newf(apperrors.CodeRangeViolation, "syllable length %d is negative", opts.Length)
	}
	length := opts.Length
	if length == 0 {
		n, err := f.natural(2, 3)
		if err != nil {
			return "", err
		}
		length = int(n)
	}

	var b strings.Builder
	var prev string
	for i := range length {
		pool := consonants + vowels
		if i > 0 {
			if strings.Contains(consonants, prev) {
				pool = vowels
			} else {
				pool = consonants
			}
		}
		c, err := f.g.Character(chance.CharacterOptions{Pool: pool})
		if err != nil {
			return "", err
		}
		b.WriteString(c)
		prev = c
	}

	text := b.String()
	if opts.Capitalize {
		text = chance.Capitalize(text)
	}
	return text, nil
}

// WordOptions configures Word. Syllables and Length are mutually exclusive.
type WordOptions struct {
	// Syllables defaults to 1 to 3.
	Syllables int
	// Length bounds the word by letters instead of syllables.
	Length     int
	Capitalize bool
}

// Word joins syllables into a pronounceable word.
func (f *Faker) Word(opts WordOptions) (string, error) {
	if opts.Syllables != 0 && opts.Length != 0 {
		return "", apperrors.WithMetadata(apperrors.CodeConflictingOptions,
			"cannot specify both syllables and length",
			map[string]string{"first": "syllables", "second": "length"})
	}
	if opts.Syllables < 0 || opts.Length < 0 {
		return "", apperrors.Newf(apperrors.CodeRangeViolation, "word size must not be negative")
	}

	var b strings.Builder
	if opts.Length > 0 {
		for b.Len() < opts.Length {
			s, err := f.Syllable(SyllableOptions{})
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	} else {
		syllables := opts.Syllables
		if syllables == 0 {
			n, err := f.natural(1, 3)
			if err != nil {
				return "", err
			}
			syllables = int(n)
		}
		for range syllables {
			s, err := f.Syllable(SyllableOptions{})
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}

	text := b.String()
	if opts.Length > 0 {
		text = text[:opts.Length]
	}
	if opts.Capitalize {
		text = chance.Capitalize(text)
	}
	return text, nil
}

// SentenceOptions configures Sentence.
type SentenceOptions struct {
	// Words defaults to 12 to 18.
	Words int
	// Punctuation is one of . ? ; ! : and defaults to a period. A pointer
	// to the empty string omits it.
	Punctuation *string
}

// Sentence returns capitalized words ending in punctuation.
func (f *Faker) Sentence(opts SentenceOptions) (string, error) {
	if opts.Words < 0 {
		return "", apperrors.Newf(apperrors.CodeRangeViolation, "word count %d is negative", opts.Words)
	}
	count := opts.Words
	if count == 0 {
		n, err := f.natural(12, 18)
		if err != nil {
			return "", err
		}
		count = int(n)
	}
	words, err := chance.N(count, func() (string, error) { return f.Word(WordOptions{}) })
	if err != nil {
		return "", err
	}

	text := chance.Capitalize(join(words, " "))
	punctuation := "."
	if opts.Punctuation != nil {
		punctuation = *opts.Punctuation
		if punctuation != "" && (len(punctuation) != 1 || !strings.Contains(".?;!:", punctuation)) {
			punctuation = "."
		}
	}
	return text + punctuation, nil
}

// ParagraphOptions configures Paragraph.
type ParagraphOptions struct {
	// Sentences defaults to 3 to 7.
	Sentences int
}

// Paragraph joins sentences with spaces.
func (f *Faker) Paragraph(opts ParagraphOptions) (string, error) {
	if opts.Sentences < 0 {
		return "", apperrors.Newf(apperrors.CodeRangeViolation, "sentence count %d is negative", opts.Sentences)
	}
	count := opts.Sentences
	if count == 0 {
		n, err := f.natural(3, 7)
		if err != nil {
			return "", err
		}
		count = int(n)
	}
	sentences, err := chance.N(count, func() (string, error) { return f.Sentence(SentenceOptions{}) })
	if err != nil {
		return "", err
	}
	return join(sentences, " "), nil
}
