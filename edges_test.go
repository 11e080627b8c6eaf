package tablefind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestRectToEdges(t *testing.T) {
	r := tablefind.Rect{Bbox: tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 20}}
	edges := tablefind.RectToEdges(r)
	require.Len(t, edges, 4)

	var horiz, vert int
	for _, e := range edges {
		if e.Orientation == tablefind.Horizontal {
			horiz++
		} else {
			vert++
		}
	}
	require.Equal(t, 2, horiz)
	require.Equal(t, 2, vert)
}

func TestLineToEdge(t *testing.T) {
	h, ok := tablefind.LineToEdge(tablefind.Bbox{X0: 0, Top: 5, X1: 10, Bottom: 5}, tablefind.RGBA{}, tablefind.RGBA{})
	require.True(t, ok)
	require.Equal(t, tablefind.Horizontal, h.Orientation)

	v, ok := tablefind.LineToEdge(tablefind.Bbox{X0: 5, Top: 0, X1: 5, Bottom: 10}, tablefind.RGBA{}, tablefind.RGBA{})
	require.True(t, ok)
	require.Equal(t, tablefind.Vertical, v.Orientation)

	_, ok = tablefind.LineToEdge(tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 10}, tablefind.RGBA{}, tablefind.RGBA{})
	require.False(t, ok, "a diagonal line carries no table structure")
}

func TestWordsToEdgesHorizontal(t *testing.T) {
	words := []tablefind.Word{
		{Bbox: tablefind.Bbox{X0: 10, Top: 100, X1: 40, Bottom: 112}, Text: "Name"},
		{Bbox: tablefind.Bbox{X0: 60, Top: 100, X1: 90, Bottom: 112}, Text: "Age"},
		{Bbox: tablefind.Bbox{X0: 110, Top: 100, X1: 150, Bottom: 112}, Text: "City"},
	}
	edges := tablefind.WordsToEdgesHorizontal(words, 3)
	require.Len(t, edges, 2, "one top edge and one bottom edge for the surviving cluster")
	require.Equal(t, 10.0, edges[0].X0)
	require.Equal(t, 150.0, edges[0].X1)
}

func TestWordsToEdgesHorizontalBelowMinWords(t *testing.T) {
	words := []tablefind.Word{
		{Bbox: tablefind.Bbox{X0: 10, Top: 100, X1: 40, Bottom: 112}, Text: "Name"},
	}
	edges := tablefind.WordsToEdgesHorizontal(words, 3)
	require.Nil(t, edges)
}

func TestWordsToEdgesVertical(t *testing.T) {
	words := []tablefind.Word{
		{Bbox: tablefind.Bbox{X0: 10, Top: 100, X1: 40, Bottom: 112}, Text: "Name"},
		{Bbox: tablefind.Bbox{X0: 10, Top: 130, X1: 45, Bottom: 142}, Text: "John"},
		{Bbox: tablefind.Bbox{X0: 10, Top: 160, X1: 44, Bottom: 172}, Text: "Jane"},
	}
	edges := tablefind.WordsToEdgesVertical(words, 3)
	require.NotEmpty(t, edges)
	for _, e := range edges {
		require.Equal(t, tablefind.Vertical, e.Orientation)
	}
}
