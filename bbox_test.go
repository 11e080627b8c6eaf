package tablefind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestBboxOverlaps(t *testing.T) {
	a := tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 10}
	b := tablefind.Bbox{X0: 5, Top: 5, X1: 15, Bottom: 15}
	require.True(t, a.Overlaps(b))

	touching := tablefind.Bbox{X0: 10, Top: 0, X1: 20, Bottom: 10}
	require.False(t, a.Overlaps(touching), "boxes sharing only an edge must not count as overlapping")
}

func TestBboxContains(t *testing.T) {
	outer := tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 10}
	inner := tablefind.Bbox{X0: 1, Top: 1, X1: 9, Bottom: 9}
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
}

func TestBboxUnion(t *testing.T) {
	a := tablefind.Bbox{X0: 0, Top: 0, X1: 5, Bottom: 5}
	b := tablefind.Bbox{X0: 3, Top: -1, X1: 8, Bottom: 4}
	got := a.Union(b)
	require.Equal(t, tablefind.Bbox{X0: 0, Top: -1, X1: 8, Bottom: 5}, got)
}

func TestUnionBboxes(t *testing.T) {
	boxes := []tablefind.Bbox{
		{X0: 0, Top: 0, X1: 1, Bottom: 1},
		{X0: 2, Top: 2, X1: 3, Bottom: 3},
		{X0: -1, Top: -1, X1: 0.5, Bottom: 0.5},
	}
	got := tablefind.UnionBboxes(boxes)
	require.Equal(t, tablefind.Bbox{X0: -1, Top: -1, X1: 3, Bottom: 3}, got)
}
