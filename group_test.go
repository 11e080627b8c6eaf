package tablefind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvorsen/tablefind"
)

func TestCellsToTablesScenario5(t *testing.T) {
	cells := []tablefind.CellBBox{
		{X0: 0, Top: 0, X1: 0.5, Bottom: 0.5},
		{X0: 0.5, Top: 0, X1: 1, Bottom: 0.5},
		{X0: 0, Top: 0.5, X1: 0.5, Bottom: 1},
		{X0: 0.5, Top: 0.5, X1: 1, Bottom: 1},
	}
	tables := tablefind.CellsToTables(cells, 0.01)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Cells, 4)
}

func TestCellsToTablesDropsSingleCell(t *testing.T) {
	cells := []tablefind.CellBBox{
		{X0: 0, Top: 0, X1: 10, Bottom: 10},
		{X0: 100, Top: 100, X1: 110, Bottom: 110},
	}
	tables := tablefind.CellsToTables(cells, 0.01)
	require.Empty(t, tables, "isolated cells without neighbors form no table")
}

func TestCellsToTablesRejectsPartialEdgeOverlap(t *testing.T) {
	// A=(0,0)-(1,10) and B=(1,5)-(2,15) touch along a stretch of the line
	// x=1 but share none of their four corners, so they must not be grouped.
	cells := []tablefind.CellBBox{
		{X0: 0, Top: 0, X1: 1, Bottom: 10},
		{X0: 1, Top: 5, X1: 2, Bottom: 15},
	}
	tables := tablefind.CellsToTables(cells, 0.01)
	require.Empty(t, tables, "cells that only partially overlap an edge share no corner")
}

func TestTableRowsScenario5(t *testing.T) {
	table := tablefind.Table{
		Cells: []tablefind.CellBBox{
			{X0: 0.5, Top: 0, X1: 1, Bottom: 0.5},
			{X0: 0, Top: 0, X1: 0.5, Bottom: 0.5},
			{X0: 0.5, Top: 0.5, X1: 1, Bottom: 1},
			{X0: 0, Top: 0.5, X1: 0.5, Bottom: 1},
		},
	}
	rows := table.Rows()
	require.Len(t, rows, 2)
	require.Len(t, rows[0].Cells, 2)
	require.Less(t, rows[0].Cells[0].X0, rows[0].Cells[1].X0)
	require.Less(t, rows[0].Bbox.Top, rows[1].Bbox.Top)
}
