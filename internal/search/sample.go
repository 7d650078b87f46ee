package search

import (
	"math/rand/v2"
	"sort"
)

// SampleSize is how many listings the initial view shows.
const SampleSize = 12

type keyed[T any] struct {
	key  float64
	item T
}

// Sample returns up to n items in pseudo-random order. Every item gets an
// independent uniform key and the slice is sorted by it, so the order is
// shuffled but not guaranteed to be a uniform permutation.
// items is not modified.
func Sample[T any](rng *rand.Rand, items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	ks := make([]keyed[T], len(items))
	for i, it := range items {
		ks[i] = keyed[T]{key: rng.Float64(), item: it}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })

	if len(ks) > n {
		ks = ks[:n]
	}
	out := make([]T, len(ks))
	for i, k := range ks {
		out[i] = k.item
	}
	return out
}
