// Package digest hashes bytes for generators that derive tokens from other
// values, such as avatar URLs built from an email address.
package digest

import (
	"crypto/md5"
	"encoding/hex"
)

// Size is the digest length in bytes.
const Size = md5.Size

// Digester produces a fixed-length digest.
type Digester interface {
	Digest(b []byte) [Size]byte
}

// MD5 digests with MD5. It is not for security use.
type MD5 struct{}

// Digest implements Digester.
func (MD5) Digest(b []byte) [Size]byte {
	return md5.Sum(b)
}

// Func adapts a function to Digester.
type Func func([]byte) [Size]byte

// Digest implements Digester.
func (f Func) Digest(b []byte) [Size]byte {
	return f(b)
}

// Hex returns the lowercase hex encoding of d's digest of b.
func Hex(d Digester, b []byte) string {
	sum := d.Digest(b)
	return hex.EncodeToString(sum[:])
}
