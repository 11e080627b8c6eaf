package tablefind

import "sort"

// cellSize returns a cell's (width, height), the canonical order used
// throughout this file (see DESIGN.md for why the original's swapped
// tuple order was not carried over).
func cellSize(c CellBBox) (width, height float64) {
	return c.Width(), c.Height()
}

// DropTooLongEdges removes edges that span almost the entire page: a ruling
// that long is usually a page border or decorative rule, not table
// structure.
func DropTooLongEdges(page *Page, edges []Edge, ratio float64) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.Width <= ratio*page.Width && e.Height <= ratio*page.Height {
			out = append(out, e)
		}
	}
	return out
}

// DropTerminalEdges removes edges that sit within margin of any page edge.
// The original implementation mixed page.height and page.width on the x
// axis; this resolves that to the coherent fully width/height-based bounds.
func DropTerminalEdges(page *Page, edges []Edge, margin float64) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.X0 <= page.Width*margin ||
			e.X1 >= page.Width*(1-margin) ||
			e.Top <= page.Height*margin ||
			e.Bottom >= page.Height*(1-margin) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DropColorlessEdges removes edges whose stroke is identical to its fill:
// such an edge is invisible and carries no table structure.
func DropColorlessEdges(edges []Edge) []Edge {
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.StrokingColor != e.NonStrokingColor {
			out = append(out, e)
		}
	}
	return out
}

// DropTooSmallCells removes cells smaller than the smallest character on the
// page in both dimensions at once. A cell narrower than the smallest glyph
// but still tall enough (or vice versa) is kept; this is the less-aggressive
// of the two variants seen in the reference filter revisions.
func DropTooSmallCells(page *Page, cells []CellBBox) []CellBBox {
	minW, minH := minCharSize(page)
	out := make([]CellBBox, 0, len(cells))
	for _, c := range cells {
		w, h := cellSize(c)
		if w < minW && h < minH {
			continue
		}
		out = append(out, c)
	}
	return out
}

func minCharSize(page *Page) (width, height float64) {
	width, height = page.Width, page.Height
	for _, c := range page.Chars {
		width = min(width, c.Width())
		height = min(height, c.Height())
	}
	return width, height
}

// DropTooShortCells removes cells whose height is a small outlier relative
// to the mean height of all the given cells: ratio*height < mean flags a
// sliver.
func DropTooShortCells(cells []CellBBox, ratio float64) []CellBBox {
	if len(cells) == 0 {
		return cells
	}
	var sum float64
	heights := make([]float64, len(cells))
	for i, c := range cells {
		_, h := cellSize(c)
		heights[i] = h
		sum += h
	}
	mean := sum / float64(len(cells))

	out := make([]CellBBox, 0, len(cells))
	for i, c := range cells {
		if heights[i]*ratio >= mean {
			out = append(out, c)
		}
	}
	return out
}

// DropTablesWithoutChars keeps only tables whose bbox overlaps at least one
// character on the page.
func DropTablesWithoutChars(tables []Table, chars []Char) []Table {
	tableBoxes := make([]Bbox, len(tables))
	for i, t := range tables {
		tableBoxes[i] = t.Bbox
	}
	charBoxes := make([]Bbox, len(chars))
	for i, c := range chars {
		charBoxes[i] = c.Bbox
	}
	pairs := OverlappingPairs(tableBoxes, charBoxes)
	withChars := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		withChars[p.A] = true
	}

	out := make([]Table, 0, len(tables))
	for i, t := range tables {
		if withChars[i] {
			out = append(out, t)
		}
	}
	return out
}

// cellIdxsOverlappedWithChars returns, sorted, the indices into table.Cells
// of cells that overlap at least one character strictly within the table's
// own footprint on the page.
func cellIdxsOverlappedWithChars(table Table, page *Page) []int {
	area := page.WithinBBox(table.Bbox)
	cellBoxes := bboxesOf(table.Cells)
	charBoxes := make([]Bbox, len(area.Chars))
	for i, c := range area.Chars {
		charBoxes[i] = c.Bbox
	}
	pairs := OverlappingPairs(cellBoxes, charBoxes)
	seen := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		seen[p.A] = true
	}
	idxs := make([]int, 0, len(seen))
	for idx := range seen {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}

// DropMisdetectedTwoCellTables removes two-cell tables where only one of the
// two cells actually contains text: a real two-cell table normally has text
// in both.
func DropMisdetectedTwoCellTables(page *Page, tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if len(t.Cells) == 2 {
			if len(cellIdxsOverlappedWithChars(t, page)) == 1 {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// DropTablesWithFewerThanTwoCells removes degenerate single-cell detections.
func DropTablesWithFewerThanTwoCells(tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if len(t.Cells) > 1 {
			out = append(out, t)
		}
	}
	return out
}

// DropTablesWithUnusualShape removes tables where every cell has a distinct
// width and a distinct height: a real grid reuses row heights and column
// widths across cells, so a table with none shared is very likely noise.
func DropTablesWithUnusualShape(tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		widths := make(map[float64]bool)
		heights := make(map[float64]bool)
		for _, c := range t.Cells {
			w, h := cellSize(c)
			widths[w] = true
			heights[h] = true
		}
		if len(widths) == len(t.Cells) && len(heights) == len(t.Cells) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// cellNums returns the number of distinct rows and columns implied by a
// table's cell boundaries.
func cellNums(cells []CellBBox) (nRow, nCol int) {
	rows := make(map[[2]float64]bool)
	cols := make(map[[2]float64]bool)
	for _, c := range cells {
		rows[[2]float64{c.Top, c.Bottom}] = true
		cols[[2]float64{c.X0, c.X1}] = true
	}
	return len(rows), len(cols)
}

// DropSingleColRowTitleBands removes tables that are really a single
// narrow column or thin row of running text masquerading as a table: a real
// single-column/single-row table is wide or tall enough to hold content.
func DropSingleColRowTitleBands(page *Page, tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		nRow, nCol := cellNums(t.Cells)
		drop := false
		if nCol == 1 {
			w, _ := cellSize(t.Cells[0])
			if w < page.Width*0.03 {
				drop = true
			}
		}
		if nRow == 1 {
			_, h := cellSize(t.Cells[0])
			if h < page.Height*0.02 {
				drop = true
			}
		}
		if drop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// modeCharSize returns the (width, height) that occurs most often among the
// page's characters, tie-broken toward the smallest value at the max count.
func modeCharSize(page *Page) (width, height float64) {
	return modeOf(charDim(page, func(c Char) float64 { return c.Width() })),
		modeOf(charDim(page, func(c Char) float64 { return c.Height() }))
}

func charDim(page *Page, get func(Char) float64) []float64 {
	out := make([]float64, len(page.Chars))
	for i, c := range page.Chars {
		out[i] = get(c)
	}
	return out
}

func modeOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best := values[0]
	bestCount := 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return best
}

// DropManySmallCellTables removes tables where twice the number of cells
// narrower or shorter than the modal character size within the table
// exceeds the number of remaining cells: such a table is more likely a
// dense grid of decorative rules than readable content.
func DropManySmallCellTables(page *Page, tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		area := page.WithinBBox(t.Bbox)
		modeW, modeH := modeCharSize(area)
		nCell := len(t.Cells)
		nSmall := 0
		for _, c := range t.Cells {
			w, h := cellSize(c)
			if w < modeW || h < modeH {
				nSmall++
			}
		}
		if nSmall*2 > nCell-nSmall {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DropCharts removes tables where only a small fraction of cells actually
// contain text: a grid of ruled lines with mostly empty cells is typically a
// chart axis, not a data table.
func DropCharts(page *Page, tables []Table, ratio float64) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		overlapped := cellIdxsOverlappedWithChars(t, page)
		if float64(len(overlapped)) < float64(len(t.Cells))/ratio {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DropTitles removes tables where every non-space character on the page
// within the table's footprint is already accounted for by a cell overlap:
// a heading followed by an unrelated ruling pattern looks like a one-cell
// "table" containing the entire title.
func DropTitles(page *Page, tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		overlapped := cellIdxsOverlappedWithChars(t, page)
		area := page.WithinBBox(t.Bbox)
		meaningful := 0
		for _, c := range area.Chars {
			if c.Text != ' ' {
				meaningful++
			}
		}
		if len(overlapped) >= meaningful {
			continue
		}
		out = append(out, t)
	}
	return out
}

// DropBarGraphs removes single-row or single-column tables whose cropped
// area contains more distinct fill colors than cells: a bar graph built from
// colored rectangles sweeps a single axis, just like a degenerate table, but
// carries far more unique fills than a real row/column of data cells would.
func DropBarGraphs(page *Page, tables []Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		nRow, nCol := cellNums(t.Cells)
		nCells := nCol + nRow - 1
		if (nCol == 1 || nRow == 1) && nCells > 4 {
			cropped := page.Crop(t.Bbox)
			colors := make(map[RGBA]bool)
			for _, r := range cropped.Rects {
				colors[r.NonStrokingColor] = true
			}
			if len(colors) >= nCells+1 {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// FilterEdges applies the full edge-level filter chain.
func FilterEdges(page *Page, edges []Edge, s TableSettings) []Edge {
	edges = DropTooLongEdges(page, edges, s.TooLongEdgeRatio)
	edges = DropTerminalEdges(page, edges, s.TerminalEdgeMargin)
	edges = DropColorlessEdges(edges)
	return edges
}

// FilterCells applies the full cell-level filter chain.
func FilterCells(page *Page, cells []CellBBox, s TableSettings) []CellBBox {
	cells = DropTooSmallCells(page, cells)
	cells = DropTooShortCells(cells, s.ShortCellHeightRatio)
	return cells
}

// FilterTables applies the table-level filter chain, in the order the
// reference implementation runs them, ending with DropBarGraphs. It applies
// no check for "complicated" tables (many self-overlapping cells, or
// rows x columns far above the cell count) and no check of the gap between
// the two source rectangles of a two-cell table.
func FilterTables(page *Page, tables []Table, s TableSettings) []Table {
	tables = DropTablesWithoutChars(tables, page.Chars)
	tables = DropMisdetectedTwoCellTables(page, tables)
	tables = DropTablesWithFewerThanTwoCells(tables)
	tables = DropTablesWithUnusualShape(tables)
	tables = DropSingleColRowTitleBands(page, tables)
	tables = DropManySmallCellTables(page, tables)
	tables = DropCharts(page, tables, s.ChartCellRatio)
	tables = DropTitles(page, tables)
	tables = DropBarGraphs(page, tables)
	return tables
}
