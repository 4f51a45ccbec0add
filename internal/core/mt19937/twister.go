// Package mt19937 implements the 32-bit Mersenne Twister engine.
//
// The word sequence for a given seed is bit-for-bit identical to the
// reference mt19937ar implementation, which is what makes every generator
// built on top of it reproducible across processes and platforms.
//
// A Twister is not safe for concurrent use.
package mt19937

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperB = 0x9d2c5680
	temperC = 0xefc60000
)

// DefaultSeed is the seed the reference implementation falls back to.
const DefaultSeed uint32 = 5489

// Twister holds the engine state: 624 words and a cursor into them.
type Twister struct {
	mt  [n]uint32
	mti int
}

// New returns a Twister seeded with seed.
func New(seed uint32) *Twister {
	t := &Twister{}
	t.Seed(seed)
	return t
}

// NewFromArray returns a Twister seeded from a key array.
func NewFromArray(key []uint32) *Twister {
	t := &Twister{}
	t.SeedArray(key)
	return t
}

// Seed resets the state from a single word (init_genrand).
func (t *Twister) Seed(seed uint32) {
	t.mt[0] = seed
	for i := 1; i < n; i++ {
		prev := t.mt[i-1]
		t.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	t.mti = n
}

// SeedArray resets the state from a key of arbitrary length (init_by_array).
// An empty key behaves like a key of a single zero word.
func (t *Twister) SeedArray(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	t.Seed(19650218)

	i, j := 1, 0
	k := n
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := t.mt[i-1]
		t.mt[i] = (t.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			t.mt[0] = t.mt[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		prev := t.mt[i-1]
		t.mt[i] = (t.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			t.mt[0] = t.mt[n-1]
			i = 1
		}
	}
	t.mt[0] = 0x80000000
}

// twist regenerates all 624 words.
func (t *Twister) twist() {
	var y uint32
	kk := 0
	for ; kk < n-m; kk++ {
		y = (t.mt[kk] & upperMask) | (t.mt[kk+1] & lowerMask)
		t.mt[kk] = t.mt[kk+m] ^ (y >> 1) ^ mag01(y)
	}
	for ; kk < n-1; kk++ {
		y = (t.mt[kk] & upperMask) | (t.mt[kk+1] & lowerMask)
		t.mt[kk] = t.mt[kk+(m-n)] ^ (y >> 1) ^ mag01(y)
	}
	y = (t.mt[n-1] & upperMask) | (t.mt[0] & lowerMask)
	t.mt[n-1] = t.mt[m-1] ^ (y >> 1) ^ mag01(y)
	t.mti = 0
}

func mag01(y uint32) uint32 {
	if y&1 == 0 {
		return 0
	}
	return matrixA
}

// Uint32 returns the next tempered word on [0, 0xffffffff].
func (t *Twister) Uint32() uint32 {
	if t.mti >= n {
		t.twist()
	}
	y := t.mt[t.mti]
	t.mti++

	y ^= y >> 11
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	y ^= y >> 18
	return y
}

// Int31 returns the next word shifted into [0, 0x7fffffff].
func (t *Twister) Int31() int32 {
	return int32(t.Uint32() >> 1)
}

// Uint64 packs two consecutive words, high word first. It lets a Twister
// serve as a math/rand/v2 Source.
func (t *Twister) Uint64() uint64 {
	hi := uint64(t.Uint32())
	lo := uint64(t.Uint32())
	return hi<<32 | lo
}

// Float64 returns a value on [0, 1) with 32-bit resolution.
func (t *Twister) Float64() float64 {
	return float64(t.Uint32()) * (1.0 / 4294967296.0)
}

// Float64Closed returns a value on [0, 1].
func (t *Twister) Float64Closed() float64 {
	return float64(t.Uint32()) * (1.0 / 4294967295.0)
}

// Float64Open returns a value on (0, 1).
func (t *Twister) Float64Open() float64 {
	return (float64(t.Uint32()) + 0.5) * (1.0 / 4294967296.0)
}

// Float64Res53 returns a value on [0, 1) with 53-bit resolution. It consumes
// two words.
func (t *Twister) Float64Res53() float64 {
	a := t.Uint32() >> 5
	b := t.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}
