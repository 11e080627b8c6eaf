package tablefind

import (
	"math"
	"sort"
)

// RectToEdges emits the four border edges of a rectangle primitive: top and
// bottom as zero-height horizontal edges, left and right as zero-width
// vertical edges.
func RectToEdges(r Rect) []Edge {
	return []Edge{
		{
			Bbox:             Bbox{X0: r.X0, Top: r.Top, X1: r.X1, Bottom: r.Top},
			Orientation:      Horizontal,
			Width:            r.Width(),
			ObjectType:       ObjectRectEdge,
			StrokingColor:    r.StrokingColor,
			NonStrokingColor: r.NonStrokingColor,
		},
		{
			Bbox:             Bbox{X0: r.X0, Top: r.Bottom, X1: r.X1, Bottom: r.Bottom},
			Orientation:      Horizontal,
			Width:            r.Width(),
			ObjectType:       ObjectRectEdge,
			StrokingColor:    r.StrokingColor,
			NonStrokingColor: r.NonStrokingColor,
		},
		{
			Bbox:             Bbox{X0: r.X0, Top: r.Top, X1: r.X0, Bottom: r.Bottom},
			Orientation:      Vertical,
			Height:           r.Height(),
			ObjectType:       ObjectRectEdge,
			StrokingColor:    r.StrokingColor,
			NonStrokingColor: r.NonStrokingColor,
		},
		{
			Bbox:             Bbox{X0: r.X1, Top: r.Top, X1: r.X1, Bottom: r.Bottom},
			Orientation:      Vertical,
			Height:           r.Height(),
			ObjectType:       ObjectRectEdge,
			StrokingColor:    r.StrokingColor,
			NonStrokingColor: r.NonStrokingColor,
		},
	}
}

// LineToEdge classifies a raw line primitive as horizontal or vertical. It
// returns false if the line is neither (a diagonal stroke carries no table
// structure information).
func LineToEdge(b Bbox, stroking, nonStroking RGBA) (Edge, bool) {
	switch {
	case b.Top == b.Bottom:
		return Edge{Bbox: b, Orientation: Horizontal, Width: b.Width(), ObjectType: ObjectLine, StrokingColor: stroking, NonStrokingColor: nonStroking}, true
	case b.X0 == b.X1:
		return Edge{Bbox: b, Orientation: Vertical, Height: b.Height(), ObjectType: ObjectLine, StrokingColor: stroking, NonStrokingColor: nonStroking}, true
	default:
		return Edge{}, false
	}
}

// CurveToEdges splits a curve into its constituent points and keeps only the
// segments that run exactly horizontal or vertical; diagonal segments are
// discarded as carrying no grid information.
func CurveToEdges(points []Point, stroking, nonStroking RGBA) []Edge {
	var edges []Edge
	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		x0, x1 := min(p0.X, p1.X), max(p0.X, p1.X)
		y0, y1 := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		b := Bbox{X0: x0, Top: y0, X1: x1, Bottom: y1}
		switch {
		case p0.Y == p1.Y:
			edges = append(edges, Edge{Bbox: b, Orientation: Horizontal, Width: b.Width(), ObjectType: ObjectCurve, StrokingColor: stroking, NonStrokingColor: nonStroking})
		case p0.X == p1.X:
			edges = append(edges, Edge{Bbox: b, Orientation: Vertical, Height: b.Height(), ObjectType: ObjectCurve, StrokingColor: stroking, NonStrokingColor: nonStroking})
		}
	}
	return edges
}

// ExplicitEdges turns a list of bare coordinates (the explicit_vertical_lines
// / explicit_horizontal_lines settings) into full-span edges.
func ExplicitEdges(values []float64, orientation Orientation, pageBbox Bbox) []Edge {
	edges := make([]Edge, 0, len(values))
	for _, v := range values {
		if orientation == Vertical {
			edges = append(edges, Edge{
				Bbox:        Bbox{X0: v, Top: pageBbox.Top, X1: v, Bottom: pageBbox.Bottom},
				Orientation: Vertical,
				Height:      pageBbox.Height(),
				ObjectType:  ObjectLine,
			})
		} else {
			edges = append(edges, Edge{
				Bbox:        Bbox{X0: pageBbox.X0, Top: v, X1: pageBbox.X1, Bottom: v},
				Orientation: Horizontal,
				Width:       pageBbox.Width(),
				ObjectType:  ObjectLine,
			})
		}
	}
	return edges
}

// WordsToEdgesHorizontal derives imaginary horizontal edges from word
// alignment: words whose tops cluster together (within 1pt) and whose
// cluster has at least minWords members each yield a pair of horizontal
// edges (top and bottom of the cluster), all spanning the combined x-extent
// of every surviving cluster.
func WordsToEdgesHorizontal(words []Word, minWords int) []Edge {
	if len(words) == 0 {
		return nil
	}

	tops := make([]float64, len(words))
	for i, w := range words {
		tops[i] = w.Top
	}
	clusters := clusterIndices(tops, 1.0)

	var kept [][]int
	for _, c := range clusters {
		if len(c) >= minWords {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	minX0, maxX1 := math.Inf(1), math.Inf(-1)
	for _, c := range kept {
		for _, idx := range c {
			minX0 = min(minX0, words[idx].X0)
			maxX1 = max(maxX1, words[idx].X1)
		}
	}

	var edges []Edge
	for _, c := range kept {
		top := words[c[0]].Top
		bottom := top
		for _, idx := range c {
			bottom = max(bottom, words[idx].Bottom)
		}
		edges = append(edges,
			Edge{Bbox: Bbox{X0: minX0, Top: top, X1: maxX1, Bottom: top}, Orientation: Horizontal, Width: maxX1 - minX0, ObjectType: ObjectLine},
			Edge{Bbox: Bbox{X0: minX0, Top: bottom, X1: maxX1, Bottom: bottom}, Orientation: Horizontal, Width: maxX1 - minX0, ObjectType: ObjectLine},
		)
	}
	return edges
}

// WordsToEdgesVertical derives imaginary vertical edges from word alignment:
// words are clustered by x0, x1, and centerpoint (each independently, tol=1);
// clusters with at least minWords members become candidate column
// boundaries; overlapping candidates are greedily dropped (first survivor
// wins) before emitting one vertical edge per surviving boundary plus one at
// the rightmost extent.
func WordsToEdgesVertical(words []Word, minWords int) []Edge {
	if len(words) == 0 {
		return nil
	}

	type candidate struct {
		bbox  Bbox
		count int
	}

	keyOf := func(get func(Word) float64) []candidate {
		keys := make([]float64, len(words))
		for i, w := range words {
			keys[i] = get(w)
		}
		clusters := clusterIndices(keys, 1.0)
		var out []candidate
		for _, c := range clusters {
			if len(c) < minWords {
				continue
			}
			bb := Bbox{X0: math.Inf(1), Top: math.Inf(1), X1: math.Inf(-1), Bottom: math.Inf(-1)}
			for _, idx := range c {
				bb = bb.Union(words[idx].Bbox)
			}
			out = append(out, candidate{bbox: bb, count: len(c)})
		}
		return out
	}

	var all []candidate
	all = append(all, keyOf(func(w Word) float64 { return w.X0 })...)
	all = append(all, keyOf(func(w Word) float64 { return w.X1 })...)
	all = append(all, keyOf(func(w Word) float64 { return w.CenterX() })...)

	sort.SliceStable(all, func(i, j int) bool { return all[i].count > all[j].count })

	var kept []Bbox
	for _, cand := range all {
		overlap := false
		for _, existing := range kept {
			if cand.bbox.Overlaps(existing) {
				overlap = true
				break
			}
		}
		if !overlap {
			kept = append(kept, cand.bbox)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].X0 < kept[j].X0 })

	minTop, maxBottom, maxX1 := math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, bb := range kept {
		minTop = min(minTop, bb.Top)
		maxBottom = max(maxBottom, bb.Bottom)
		maxX1 = max(maxX1, bb.X1)
	}

	edges := make([]Edge, 0, len(kept)+1)
	for _, bb := range kept {
		edges = append(edges, Edge{
			Bbox:        Bbox{X0: bb.X0, Top: minTop, X1: bb.X0, Bottom: maxBottom},
			Orientation: Vertical,
			Height:      maxBottom - minTop,
			ObjectType:  ObjectLine,
		})
	}
	edges = append(edges, Edge{
		Bbox:        Bbox{X0: maxX1, Top: minTop, X1: maxX1, Bottom: maxBottom},
		Orientation: Vertical,
		Height:      maxBottom - minTop,
		ObjectType:  ObjectLine,
	})
	return edges
}
