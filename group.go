package tablefind

import "sort"

// buildRows groups a table's cells into reading-order rows by clustering on
// Top, then sorts each row's cells left to right.
func buildRows(cells []CellBBox) []Row {
	if len(cells) == 0 {
		return nil
	}
	tops := make([]float64, len(cells))
	for i, c := range cells {
		tops[i] = c.Top
	}
	clusters := clusterIndices(tops, 1.0)

	rows := make([]Row, 0, len(clusters))
	for _, cluster := range clusters {
		row := Row{Cells: make([]*CellBBox, len(cluster))}
		bbox := cells[cluster[0]]
		for i, idx := range cluster {
			row.Cells[i] = &cells[idx]
			bbox = bbox.Union(cells[idx])
		}
		sort.Slice(row.Cells, func(i, j int) bool { return row.Cells[i].X0 < row.Cells[j].X0 })
		row.Bbox = bbox
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Bbox.Top < rows[j].Bbox.Top })
	return rows
}

// corners returns a cell's four corner points.
func corners(c CellBBox) [4]Point {
	return [4]Point{
		{X: c.X0, Y: c.Top},
		{X: c.X1, Y: c.Top},
		{X: c.X0, Y: c.Bottom},
		{X: c.X1, Y: c.Bottom},
	}
}

// cellsShareCorner reports whether two cells have at least one corner in
// common, the contiguity test used to group cells into tables. tol only
// absorbs float imprecision between snapped coordinates; it is not an
// overlap or edge-touch allowance.
func cellsShareCorner(a, b CellBBox, tol float64) bool {
	ca, cb := corners(a), corners(b)
	for _, p := range ca {
		for _, q := range cb {
			if closeEnough(p.X, q.X, tol) && closeEnough(p.Y, q.Y, tol) {
				return true
			}
		}
	}
	return false
}

func closeEnough(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// CellsToTables groups cells into tables: every pair of cells that shares a
// corner is joined with union-find, so each table is a connected set of
// corner-sharing cells. Groups of fewer than two cells are dropped: a single
// isolated cell carries no table structure.
func CellsToTables(cells []CellBBox, tol float64) []Table {
	n := len(cells)
	if n == 0 {
		return nil
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cellsShareCorner(cells[i], cells[j], tol) {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]CellBBox)
	var order []int
	for i, c := range cells {
		root := find(i)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], c)
	}
	sort.Ints(order)

	var tables []Table
	for _, root := range order {
		members := groups[root]
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			if members[i].Top != members[j].Top {
				return members[i].Top < members[j].Top
			}
			return members[i].X0 < members[j].X0
		})
		tables = append(tables, Table{
			Bbox:  UnionBboxes(bboxesOf(members)),
			Cells: members,
		})
	}

	sort.Slice(tables, func(i, j int) bool {
		if tables[i].Top != tables[j].Top {
			return tables[i].Top < tables[j].Top
		}
		return tables[i].X0 < tables[j].X0
	})
	return tables
}

func bboxesOf(cells []CellBBox) []Bbox {
	out := make([]Bbox, len(cells))
	copy(out, cells)
	return out
}
