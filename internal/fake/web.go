package fake

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/louisbranch/chance/internal/core/chance"
	"github.com/louisbranch/chance/internal/digest"
	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// TLD returns a top-level domain.
func (f *Faker) TLD() (string, error) {
	return f.pickString("tlds")
}

// DomainOptions configures Domain.
type DomainOptions struct {
	// TLD defaults to a random TLD.
	TLD string
}

// Domain returns word.tld.
func (f *Faker) Domain(opts DomainOptions) (string, error) {
	word, err := f.Word(WordOptions{})
	if err != nil {
		return "", err
	}
	tld := opts.TLD
	if tld == "" {
		if tld, err = f.TLD(); err != nil {
			return "", err
		}
	}
	return word + "." + tld, nil
}

// EmailOptions configures Email.
type EmailOptions struct {
	// Length fixes the local part length.
	Length int
	// Domain defaults to a random Domain.
	Domain string
}

// Email returns word@domain.
func (f *Faker) Email(opts EmailOptions) (string, error) {
	local, err := f.Word(WordOptions{Length: opts.Length})
	if err != nil {
		return "", err
	}
	domain := opts.Domain
	if domain == "" {
		if domain, err = f.Domain(DomainOptions{}); err != nil {
			return "", err
		}
	}
	return local + "@" + domain, nil
}

// IP returns a dotted IPv4 address whose first and last octets avoid 0
// and 255.
func (f *Faker) IP() (string, error) {
	bounds := [4][2]int64{{1, 254}, {0, 255}, {0, 255}, {1, 254}}
	octets := make([]string, 0, len(bounds))
	for _, b := range bounds {
		n, err := f.natural(b[0], b[1])
		if err != nil {
			return "", err
		}
		octets = append(octets, strconv.FormatInt(n, 10))
	}
	return join(octets, "."), nil
}

// IPv6 returns eight groups of four hex digits.
func (f *Faker) IPv6() (string, error) {
	groups, err := chance.N(8, func() (string, error) {
		return f.Hash(HashOptions{Length: 4})
	})
	if err != nil {
		return "", err
	}
	return join(groups, ":"), nil
}

// HashOptions configures Hash.
type HashOptions struct {
	// Length defaults to 40.
	Length int
	// Casing selects upper-case hex digits with chance.CasingUpper.
	Casing chance.Casing
}

// Hash returns random hex digits.
func (f *Faker) Hash(opts HashOptions) (string, error) {
	if opts.Length < 0 {
		return "", apperrors.Newf(apperrors.CodeRangeViolation, "hash length %d is negative", opts.Length)
	}
	length := opts.Length
	if length == 0 {
		length = 40
	}
	pool := chance.HexPool
	if opts.Casing == chance.CasingUpper {
		pool = strings.ToUpper(pool)
	}
	return f.poolString(pool, length)
}

// GUIDOptions configures GUID.
type GUIDOptions struct {
	// Version digit, defaults to 5.
	Version int
}

// GUID returns an RFC 4122 shaped identifier.
func (f *Faker) GUID(opts GUIDOptions) (string, error) {
	version := opts.Version
	if version == 0 {
		version = 5
	}
	if version < 0 || version > 9 {
		return "", apperrors.Newf(apperrors.CodeRangeViolation, "guid version %d outside [1, 9]", version)
	}

	const pool = "abcdef1234567890"
	parts := make([]string, 0, 6)
	for _, step := range []struct {
		pool   string
		length int
	}{
		{pool, 8}, {pool, 4}, {pool, 3}, {"ab89", 1}, {pool, 3}, {pool, 12},
	} {
		s, err := f.poolString(step.pool, step.length)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return fmt.Sprintf("%s-%s-%d%s-%s%s-%s", parts[0], parts[1], version, parts[2], parts[3], parts[4], parts[5]), nil
}

// Color formats.
const (
	ColorHex      = "hex"
	ColorShortHex = "shorthex"
	ColorRGB      = "rgb"
	ColorRGBA     = "rgba"
	Color0x       = "0x"
	ColorName     = "name"
)

var colorFormats = []string{ColorHex, ColorShortHex, ColorRGB, ColorRGBA, Color0x, ColorName}

// ColorOptions configures Color.
type ColorOptions struct {
	// Format defaults to a random format.
	Format    string
	Grayscale bool
	Casing    chance.Casing
}

// Color returns a CSS-style color.
func (f *Faker) Color(opts ColorOptions) (string, error) {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = chance.PickOne(f.g, colorFormats); err != nil {
			return "", err
		}
	}

	var value string
	var err error
	switch format {
	case ColorHex:
		value, err = f.hexColor(2, 6, "#", opts.Grayscale)
	case ColorShortHex:
		value, err = f.hexColor(1, 3, "#", opts.Grayscale)
	case Color0x:
		value, err = f.hexColor(2, 6, "0x", opts.Grayscale)
	case ColorRGB:
		value, err = f.rgbColor(false, opts.Grayscale)
	case ColorRGBA:
		value, err = f.rgbColor(true, opts.Grayscale)
	case ColorName:
		return f.pickString("colorNames")
	default:
		return "", apperrors.WithMetadata(apperrors.CodeRangeViolation,
			fmt.Sprintf("invalid color format %q", format),
			map[string]string{"format": format})
	}
	if err != nil {
		return "", err
	}
	if opts.Casing == chance.CasingUpper {
		value = strings.ToUpper(value)
	}
	return value, nil
}

func (f *Faker) hexColor(grayLen, fullLen int, prefix string, grayscale bool) (string, error) {
	if grayscale {
		h, err := f.Hash(HashOptions{Length: grayLen})
		if err != nil {
			return "", err
		}
		return prefix + strings.Repeat(h, 3), nil
	}
	h, err := f.Hash(HashOptions{Length: fullLen})
	if err != nil {
		return "", err
	}
	return prefix + h, nil
}

func (f *Faker) rgbColor(alpha, grayscale bool) (string, error) {
	channels := make([]string, 0, 4)
	if grayscale {
		v, err := f.natural(0, 255)
		if err != nil {
			return "", err
		}
		s := strconv.FormatInt(v, 10)
		channels = append(channels, s, s, s)
	} else {
		for range 3 {
			v, err := f.natural(0, 255)
			if err != nil {
				return "", err
			}
			channels = append(channels, strconv.FormatInt(v, 10))
		}
	}
	name := "rgb"
	if alpha {
		a, err := f.g.Floating(chance.FloatingOptions{Min: chance.Ptr(0.0), Max: chance.Ptr(1.0)})
		if err != nil {
			return "", err
		}
		channels = append(channels, strconv.FormatFloat(a, 'f', -1, 64))
		name = "rgba"
	}
	return name + "(" + join(channels, ",") + ")", nil
}

// AvatarOptions configures Avatar. Unknown enum values are dropped.
type AvatarOptions struct {
	// Email defaults to a random Email.
	Email string
	// Protocol is "http" or "https"; empty gives a scheme-relative URL.
	Protocol string
	// FileExtension is one of bmp, gif, jpg or png.
	FileExtension string
	Size          int
	// Rating is one of g, pg, r or x.
	Rating string
	// Fallback is one of 404, mm, identicon, monsterid, wavatar, retro or blank.
	Fallback string
}

var (
	avatarProtocols  = []string{"http", "https"}
	avatarExtensions = []string{"bmp", "gif", "jpg", "png"}
	avatarRatings    = []string{"g", "pg", "r", "x"}
	avatarFallbacks  = []string{"404", "mm", "identicon", "monsterid", "wavatar", "retro", "blank"}
)

// Avatar returns a Gravatar URL for the digest of an email address.
func (f *Faker) Avatar(opts AvatarOptions) (string, error) {
	email := opts.Email
	if email == "" {
		var err error
		if email, err = f.Email(EmailOptions{}); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	if slices.Contains(avatarProtocols, opts.Protocol) {
		b.WriteString(opts.Protocol + ":")
	}
	b.WriteString("//www.gravatar.com/avatar/")
	b.WriteString(digest.Hex(f.digester, []byte(email)))
	if slices.Contains(avatarExtensions, opts.FileExtension) {
		b.WriteString("." + opts.FileExtension)
	}

	query := url.Values{}
	if opts.Size > 0 {
		query.Set("s", strconv.Itoa(opts.Size))
	}
	if slices.Contains(avatarRatings, opts.Rating) {
		query.Set("r", opts.Rating)
	}
	if slices.Contains(avatarFallbacks, opts.Fallback) {
		query.Set("d", opts.Fallback)
	}
	if len(query) > 0 {
		b.WriteString("?" + query.Encode())
	}
	return b.String(), nil
}
