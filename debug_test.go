package tablefind_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestBlankCanvasSize(t *testing.T) {
	page := &tablefind.Page{Width: 200, Height: 100}
	canvas := tablefind.BlankCanvas(page, 72)

	bounds := canvas.Bounds()
	require.Equal(t, 200, bounds.Dx())
	require.Equal(t, 100, bounds.Dy())
}

func TestBlankCanvasScalesWithResolution(t *testing.T) {
	page := &tablefind.Page{Width: 100, Height: 50}
	canvas := tablefind.BlankCanvas(page, 144)

	bounds := canvas.Bounds()
	require.Equal(t, 200, bounds.Dx())
	require.Equal(t, 100, bounds.Dy())
}

func TestVisualizeTablesPaintsCells(t *testing.T) {
	page := &tablefind.Page{Width: 100, Height: 100}
	background := tablefind.BlankCanvas(page, 72)

	tables := []tablefind.Table{
		{Cells: []tablefind.CellBBox{{X0: 10, Top: 10, X1: 50, Bottom: 50}}},
	}
	colors := tablefind.DefaultDebugColors()
	out := tablefind.VisualizeTables(background, tables, 72, colors)

	r, g, b, a := out.At(30, 30).RGBA()
	painted := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	require.NotEqual(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, painted)
}
