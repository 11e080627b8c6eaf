package tablefind

import "sort"

// Intersection is a vertex where at least one vertical and one horizontal
// edge cross, together with every edge of each orientation that touched it.
type Intersection struct {
	Point
	VEdges []Edge
	HEdges []Edge
}

// FindIntersections computes every vertex where a vertical edge crosses a
// horizontal edge within tolerance, and records which edges touched it.
func FindIntersections(edges []Edge, xTol, yTol float64) map[Point]*Intersection {
	var vEdges, hEdges []Edge
	for _, e := range edges {
		if e.Orientation == Vertical {
			vEdges = append(vEdges, e)
		} else {
			hEdges = append(hEdges, e)
		}
	}

	out := make(map[Point]*Intersection)
	for _, v := range vEdges {
		for _, h := range hEdges {
			if v.Top <= h.Top+yTol &&
				v.Bottom >= h.Top-yTol &&
				v.X0 >= h.X0-xTol &&
				v.X0 <= h.X1+xTol {
				p := Point{X: v.X0, Y: h.Top}
				entry, ok := out[p]
				if !ok {
					entry = &Intersection{Point: p}
					out[p] = entry
				}
				entry.VEdges = append(entry.VEdges, v)
				entry.HEdges = append(entry.HEdges, h)
			}
		}
	}
	return out
}

func edgesShare(a, b []Edge, sameEdge func(x, y Edge) bool) bool {
	for _, x := range a {
		for _, y := range b {
			if sameEdge(x, y) {
				return true
			}
		}
	}
	return false
}

func sameVEdge(a, b Edge) bool { return a.X0 == b.X0 && a.Top == b.Top && a.Bottom == b.Bottom }
func sameHEdge(a, b Edge) bool { return a.Top == b.Top && a.X0 == b.X0 && a.X1 == b.X1 }

// IntersectionsToCells reconstructs the minimal rectangular cells implied by
// a set of intersection vertices: for each vertex, every vertex directly
// below and every vertex directly right are tried, nearest first, until a
// (below, right) pair whose implied bottom-right corner is itself a vertex
// and whose four sides are all covered by a shared edge is found.
func IntersectionsToCells(intersections map[Point]*Intersection) []CellBBox {
	if len(intersections) == 0 {
		return nil
	}

	points := make([]Point, 0, len(intersections))
	for p := range intersections {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	connectsV := func(p1, p2 Point) bool {
		return edgesShare(intersections[p1].VEdges, intersections[p2].VEdges, sameVEdge)
	}
	connectsH := func(p1, p2 Point) bool {
		return edgesShare(intersections[p1].HEdges, intersections[p2].HEdges, sameHEdge)
	}

	var cells []CellBBox
	for i, p := range points {
		var belows, rights []Point
		for j := i + 1; j < len(points); j++ {
			q := points[j]
			if q.X == p.X && q.Y > p.Y {
				belows = append(belows, q)
			}
			if q.Y == p.Y && q.X > p.X {
				rights = append(rights, q)
			}
		}
		sort.Slice(belows, func(a, b int) bool { return belows[a].Y < belows[b].Y })
		sort.Slice(rights, func(a, b int) bool { return rights[a].X < rights[b].X })

		cell, ok := findSmallestCell(p, belows, rights, intersections, connectsV, connectsH)
		if ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// findSmallestCell tries every (below, right) candidate pair, nearest first,
// returning the first combination whose implied bottom-right corner is a
// vertex with all four sides edge-connected.
func findSmallestCell(p Point, belows, rights []Point, intersections map[Point]*Intersection, connectsV, connectsH func(Point, Point) bool) (CellBBox, bool) {
	for _, below := range belows {
		if !connectsV(p, below) {
			continue
		}
		for _, right := range rights {
			if !connectsH(p, right) {
				continue
			}
			br := Point{X: right.X, Y: below.Y}
			if _, ok := intersections[br]; !ok {
				continue
			}
			if !connectsV(right, br) || !connectsH(below, br) {
				continue
			}
			return CellBBox{X0: p.X, Top: p.Y, X1: br.X, Bottom: br.Y}, true
		}
	}
	return CellBBox{}, false
}
