package tablefind

import "sort"

// SnapEdges snaps vertical edges together on X0 and horizontal edges
// together on Top, each within its own tolerance.
func SnapEdges(edges []Edge, xTol, yTol float64) []Edge {
	var v, h []Edge
	for _, e := range edges {
		if e.Orientation == Vertical {
			v = append(v, e)
		} else {
			h = append(h, e)
		}
	}
	v = snapEdgesOnAxis(v, xTol, true)
	h = snapEdgesOnAxis(h, yTol, false)
	return append(v, h...)
}

// snapEdgesOnAxis clusters edges by their position on the snapped axis
// (X0 for vertical edges, Top for horizontal edges) and moves every edge in
// a cluster onto the cluster's arithmetic mean, shifting its paired coordinate
// (X1 or Bottom) by the same delta so the edge's extent is preserved.
func snapEdgesOnAxis(edges []Edge, tol float64, vertical bool) []Edge {
	if len(edges) == 0 {
		return edges
	}
	getPos := func(e Edge) float64 {
		if vertical {
			return e.X0
		}
		return e.Top
	}

	keys := make([]float64, len(edges))
	for i, e := range edges {
		keys[i] = getPos(e)
	}
	clusters := clusterIndices(keys, tol)

	out := append([]Edge(nil), edges...)
	for _, cluster := range clusters {
		var mean float64
		for _, idx := range cluster {
			mean += keys[idx]
		}
		mean /= float64(len(cluster))
		for _, idx := range cluster {
			e := out[idx]
			if vertical {
				delta := mean - e.X0
				e.X0 = mean
				e.X1 += delta
			} else {
				delta := mean - e.Top
				e.Top = mean
				e.Bottom += delta
			}
			out[idx] = e
		}
	}
	return out
}

// JoinEdgeGroup merges end-to-end collinear edges that already share the
// same snapped coordinate: edges are sorted by their starting position, then
// any edge whose start lies within tolerance of the running edge's end
// extends that edge rather than starting a new one.
func JoinEdgeGroup(edges []Edge, orientation Orientation, tolerance float64) []Edge {
	if len(edges) == 0 {
		return edges
	}
	getMin := func(e Edge) float64 {
		if orientation == Horizontal {
			return e.X0
		}
		return e.Top
	}
	getMax := func(e Edge) float64 {
		if orientation == Horizontal {
			return e.X1
		}
		return e.Bottom
	}

	sorted := append([]Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool { return getMin(sorted[i]) < getMin(sorted[j]) })

	joined := []Edge{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &joined[len(joined)-1]
		if getMin(cur) <= getMax(*last)+tolerance {
			if getMax(cur) > getMax(*last) {
				if orientation == Horizontal {
					last.X1 = cur.X1
					last.Width = last.X1 - last.X0
				} else {
					last.Bottom = cur.Bottom
					last.Height = last.Bottom - last.Top
				}
			}
		} else {
			joined = append(joined, cur)
		}
	}
	return joined
}

// MergeEdges snaps and then joins edges, grouping by (orientation, snapped
// coordinate) before joining each group independently.
func MergeEdges(edges []Edge, settings TableSettings) []Edge {
	if settings.SnapXTolerance > 0 || settings.SnapYTolerance > 0 {
		edges = SnapEdges(edges, settings.SnapXTolerance, settings.SnapYTolerance)
	}

	type groupKey struct {
		orientation Orientation
		position    float64
	}
	groups := make(map[groupKey][]Edge)
	var order []groupKey
	for _, e := range edges {
		key := groupKey{orientation: e.Orientation}
		if e.Orientation == Horizontal {
			key.position = e.Top
		} else {
			key.position = e.X0
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].orientation != order[j].orientation {
			return order[i].orientation < order[j].orientation
		}
		return order[i].position < order[j].position
	})

	var out []Edge
	for _, key := range order {
		tol := settings.JoinXTolerance
		if key.orientation == Vertical {
			tol = settings.JoinYTolerance
		}
		out = append(out, JoinEdgeGroup(groups[key], key.orientation, tol)...)
	}
	return out
}

// FilterEdgesByMinLength drops edges whose extent along their own axis is
// below minLength.
func FilterEdgesByMinLength(edges []Edge, minLength float64) []Edge {
	if minLength <= 0 {
		return edges
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		length := e.Width
		if e.Orientation == Vertical {
			length = e.Height
		}
		if length >= minLength {
			out = append(out, e)
		}
	}
	return out
}
