package chance

import (
	"math"
	"slices"
)

const (
	// uniqueBudgetFactor sets the Unique draw budget since the last unique
	// result at count*uniqueBudgetFactor.
	uniqueBudgetFactor = 50

	// normalPoolTries bounds NormalPool draws that land outside the pool.
	normalPoolTries = 100
)

// PickOne returns a uniformly chosen element of items.
func PickOne[T any](g *Generator, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, emptyError("pickone")
	}
	return items[g.index(len(items))], nil
}

// index draws a position on [0, n-1]. n must be positive.
func (g *Generator) index(n int) int {
	return int(g.integer(0, float64(n-1)))
}

// PickSet returns count distinct positions of items in random order. A count
// larger than items returns a full permutation.
func PickSet[T any](g *Generator, items []T, count int) ([]T, error) {
	if count < 0 {
		return nil, rangeError("count %d is negative", count)
	}
	if count == 0 {
		return []T{}, nil
	}
	if len(items) == 0 {
		return nil, emptyError("pickset")
	}
	if count == 1 {
		item, err := PickOne(g, items)
		if err != nil {
			return nil, err
		}
		return []T{item}, nil
	}
	shuffled := Shuffle(g, items)
	return shuffled[:min(count, len(shuffled))], nil
}

// Shuffle returns a random permutation of items. The input is not modified.
func Shuffle[T any](g *Generator, items []T) []T {
	remaining := slices.Clone(items)
	out := make([]T, 0, len(items))
	for len(remaining) > 0 {
		j := g.index(len(remaining))
		out = append(out, remaining[j])
		remaining = slices.Delete(remaining, j, j+1)
	}
	return out
}

// Weighted returns one of items with probability proportional to its weight.
// Non-positive weights are never chosen.
func Weighted[T any](g *Generator, items []T, weights []float64) (T, error) {
	var zero T
	i, err := g.weightedIndex(len(items), weights)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// WeightedTrim behaves like Weighted and additionally returns copies of items
// and weights without the chosen entry. The inputs are not modified.
func WeightedTrim[T any](g *Generator, items []T, weights []float64) (T, []T, []float64, error) {
	var zero T
	i, err := g.weightedIndex(len(items), weights)
	if err != nil {
		return zero, nil, nil, err
	}
	chosen := items[i]
	restItems := slices.Delete(slices.Clone(items), i, i+1)
	restWeights := slices.Delete(slices.Clone(weights), i, i+1)
	return chosen, restItems, restWeights, nil
}

func (g *Generator) weightedIndex(n int, weights []float64) (int, error) {
	if n != len(weights) {
		return 0, mismatchError(n, len(weights))
	}
	if n == 0 {
		return 0, emptyError("weighted")
	}
	var sum float64
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if !(sum > 0) || math.IsInf(sum, 1) {
		return 0, degenerateError(sum)
	}

	selected := g.Random() * sum
	var total float64
	last := -1
	for i, w := range weights {
		if !(w > 0) {
			continue
		}
		total += w
		if selected <= total {
			return i, nil
		}
		last = i
	}
	return last, nil
}

// Unique calls fn until it has produced count distinct values. It fails with
// ErrExhaustedSampleSpace after count*50 consecutive duplicates.
func Unique[T comparable](g *Generator, count int, fn func(*Generator) (T, error)) ([]T, error) {
	seen := make(map[T]struct{}, max(count, 0))
	return unique(g, count, fn, func(v T) bool {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}

// UniqueFunc is Unique for values that are not comparable with ==; equal
// reports whether two values are duplicates.
func UniqueFunc[T any](g *Generator, count int, fn func(*Generator) (T, error), equal func(a, b T) bool) ([]T, error) {
	var kept []T
	return unique(g, count, fn, func(v T) bool {
		for _, k := range kept {
			if equal(k, v) {
				return false
			}
		}
		kept = append(kept, v)
		return true
	})
}

func unique[T any](g *Generator, count int, fn func(*Generator) (T, error), add func(T) bool) ([]T, error) {
	if count < 0 {
		return nil, rangeError("count %d is negative", count)
	}
	out := make([]T, 0, count)
	budget := count * uniqueBudgetFactor
	// attempts restarts at each unique result and counts every draw,
	// that one included.
	attempts := 0
	for len(out) < count {
		v, err := fn(g)
		if err != nil {
			return nil, err
		}
		if add(v) {
			out = append(out, v)
			attempts = 0
		}
		attempts++
		if attempts > budget {
			return nil, exhaustedError("unique", budget)
		}
	}
	return out, nil
}

// NormalOptions parameterizes Normal. Dev defaults to 1.
type NormalOptions struct {
	Mean float64
	Dev  *float64
}

func (o NormalOptions) validate() (float64, float64, error) {
	dev := 1.0
	if o.Dev != nil {
		dev = *o.Dev
	}
	if dev < 0 || math.IsNaN(dev) || math.IsNaN(o.Mean) {
		return 0, 0, rangeError("invalid normal parameters mean=%v dev=%v", o.Mean, dev)
	}
	return o.Mean, dev, nil
}

// Normal returns a normally distributed value using the Marsaglia polar
// method.
func (g *Generator) Normal(opts NormalOptions) (float64, error) {
	mean, dev, err := opts.validate()
	if err != nil {
		return 0, err
	}
	return g.normal(mean, dev), nil
}

func (g *Generator) normal(mean, dev float64) float64 {
	var u, v, s float64
	for {
		u = g.Random()*2 - 1
		v = g.Random()*2 - 1
		s = u*u + v*v
		if s < 1 && s != 0 {
			break
		}
	}
	return dev*u*math.Sqrt(-2*math.Log(s)/s) + mean
}

// NormalPool rounds normal draws half up to an index into pool and returns
// the first one that lands inside it, giving up after 100 misses.
func NormalPool[T any](g *Generator, pool []T, opts NormalOptions) (T, error) {
	var zero T
	mean, dev, err := opts.validate()
	if err != nil {
		return zero, err
	}
	if len(pool) == 0 {
		return zero, emptyError("normal pool")
	}
	for range normalPoolTries {
		i := math.Floor(g.normal(mean, dev) + 0.5)
		if i >= 0 && i < float64(len(pool)) {
			return pool[int(i)], nil
		}
	}
	return zero, exhaustedError("normal pool", normalPoolTries)
}
