package tablefind_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestOverlappingPairsScenario1(t *testing.T) {
	a := []tablefind.Bbox{
		{X0: 1, Top: 2, X1: 3, Bottom: 4},
		{X0: 3, Top: 2, X1: 4, Bottom: 4},
		{X0: 4, Top: 2, X1: 6, Bottom: 4},
		{X0: 2, Top: 4, X1: 5, Bottom: 9},
	}
	b := []tablefind.Bbox{
		{X0: 1.2, Top: 2.2, X1: 2.8, Bottom: 3.8},
		{X0: 6, Top: 2, X1: 8, Bottom: 5},
		{X0: 8, Top: 10, X1: 10, Bottom: 12},
		{X0: 1.4, Top: 2.4, X1: 6, Bottom: 3.8},
	}

	got := tablefind.OverlappingPairs(a, b)
	want := []tablefind.Pair{{A: 0, B: 0}, {A: 0, B: 3}, {A: 1, B: 3}, {A: 2, B: 3}}

	sortPairs(got)
	sortPairs(want)
	require.Equal(t, want, got)

	naive := tablefind.NaiveOverlappingPairs(a, b)
	sortPairs(naive)
	require.Equal(t, want, naive)
}

func TestOverlappingPairsRandomCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randBoxes := func(n int) []tablefind.Bbox {
		boxes := make([]tablefind.Bbox, n)
		for i := range boxes {
			x0 := rng.Float64() * 100
			y0 := rng.Float64() * 100
			boxes[i] = tablefind.Bbox{
				X0:     x0,
				Top:    y0,
				X1:     x0 + rng.Float64()*20,
				Bottom: y0 + rng.Float64()*20,
			}
		}
		return boxes
	}

	for trial := 0; trial < 20; trial++ {
		a := randBoxes(1 + rng.Intn(40))
		b := randBoxes(1 + rng.Intn(40))

		got := tablefind.OverlappingPairs(a, b)
		want := tablefind.NaiveOverlappingPairs(a, b)

		sortPairs(got)
		sortPairs(want)
		require.Equal(t, want, got)
	}
}

func sortPairs(pairs []tablefind.Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}
