package tablefind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func barGraphCells() []tablefind.CellBBox {
	cells := make([]tablefind.CellBBox, 0, 6)
	for i := 0; i < 6; i++ {
		top := float64(i * 10)
		cells = append(cells, tablefind.CellBBox{X0: 0, Top: top, X1: 10, Bottom: top + 10})
	}
	return cells
}

func TestDropBarGraphsScenario6(t *testing.T) {
	table := tablefind.Table{Bbox: tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 60}, Cells: barGraphCells()}

	page := &tablefind.Page{Width: 612, Height: 792}
	for i := 0; i < 8; i++ {
		page.Rects = append(page.Rects, tablefind.Rect{
			Bbox:             tablefind.Bbox{X0: 0, Top: float64(i * 7), X1: 10, Bottom: float64(i*7 + 7)},
			NonStrokingColor: tablefind.RGBA{R: uint8(i * 10), G: 0, B: 0, A: 255},
		})
	}

	got := tablefind.DropBarGraphs(page, []tablefind.Table{table})
	require.Empty(t, got, "a single-column table with more fill colors than cells is a bar graph")
}

func TestDropBarGraphsKeepsRealTable(t *testing.T) {
	table := tablefind.Table{Bbox: tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 60}, Cells: barGraphCells()}

	page := &tablefind.Page{Width: 612, Height: 792}
	page.Rects = append(page.Rects, tablefind.Rect{
		Bbox:             tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 60},
		NonStrokingColor: tablefind.RGBA{R: 0, G: 0, B: 0, A: 255},
	})

	got := tablefind.DropBarGraphs(page, []tablefind.Table{table})
	require.Len(t, got, 1)
}

func TestDropTooLongEdges(t *testing.T) {
	page := &tablefind.Page{Width: 100, Height: 100}
	edges := []tablefind.Edge{
		{Bbox: tablefind.Bbox{X0: 0, Top: 0, X1: 99, Bottom: 0}, Orientation: tablefind.Horizontal, Width: 99},
		{Bbox: tablefind.Bbox{X0: 0, Top: 0, X1: 40, Bottom: 0}, Orientation: tablefind.Horizontal, Width: 40},
	}
	got := tablefind.DropTooLongEdges(page, edges, 0.95)
	require.Len(t, got, 1)
	require.Equal(t, 40.0, got[0].Width)
}

func TestDropColorlessEdges(t *testing.T) {
	edges := []tablefind.Edge{
		{StrokingColor: tablefind.RGBA{R: 0, A: 255}, NonStrokingColor: tablefind.RGBA{R: 0, A: 255}},
		{StrokingColor: tablefind.RGBA{R: 0, A: 255}, NonStrokingColor: tablefind.RGBA{R: 255, A: 255}},
	}
	got := tablefind.DropColorlessEdges(edges)
	require.Len(t, got, 1)
}

func TestDropTablesWithoutChars(t *testing.T) {
	tables := []tablefind.Table{
		{Bbox: tablefind.Bbox{X0: 0, Top: 0, X1: 10, Bottom: 10}},
		{Bbox: tablefind.Bbox{X0: 100, Top: 100, X1: 110, Bottom: 110}},
	}
	chars := []tablefind.Char{
		{Bbox: tablefind.Bbox{X0: 1, Top: 1, X1: 2, Bottom: 2}, Text: 'A'},
	}
	got := tablefind.DropTablesWithoutChars(tables, chars)
	require.Len(t, got, 1)
	require.Equal(t, 10.0, got[0].X1)
}

func TestDropTablesWithFewerThanTwoCells(t *testing.T) {
	tables := []tablefind.Table{
		{Cells: make([]tablefind.CellBBox, 1)},
		{Cells: make([]tablefind.CellBBox, 2)},
		{Cells: make([]tablefind.CellBBox, 3)},
	}
	got := tablefind.DropTablesWithFewerThanTwoCells(tables)
	require.Len(t, got, 2, "only the single-cell table is degenerate")
	require.Len(t, got[0].Cells, 2)
	require.Len(t, got[1].Cells, 3)
}
