package tablefind

// Page is everything the table-detection pipeline needs from a single
// document page: its dimensions and the primitive streams the upstream
// parser produced for it. Extraction of these primitives from an actual PDF
// is out of scope for this package (see pdfsource.go for the thin adapter
// that fills one in from go-pdfium); the pipeline only ever consumes this
// struct's fields.
type Page struct {
	Number int
	Width  float64
	Height float64
	Bbox   Bbox
	Chars  []Char
	Rects  []Rect
	Edges  []Edge
	Words  []Word
}

// Crop returns a view of the page restricted to bbox: every primitive is
// kept if it overlaps bbox at all. Chars, rects and edges are clipped to
// bbox's extent; words are kept whole. Zero-area edges count as overlapping
// when they touch bbox.
func (p *Page) Crop(bbox Bbox) *Page {
	out := &Page{Number: p.Number, Width: p.Width, Height: p.Height, Bbox: bbox}
	for _, c := range p.Chars {
		if c.Bbox.Overlaps(bbox) || c.Bbox == bbox {
			clipped := c
			clipped.Bbox = clipBbox(c.Bbox, bbox)
			out.Chars = append(out.Chars, clipped)
		}
	}
	for _, r := range p.Rects {
		if r.Bbox.Overlaps(bbox) {
			clipped := r
			clipped.Bbox = clipBbox(r.Bbox, bbox)
			out.Rects = append(out.Rects, clipped)
		}
	}
	for _, e := range p.Edges {
		touches := e.X0 <= bbox.X1 && e.X1 >= bbox.X0 && e.Top <= bbox.Bottom && e.Bottom >= bbox.Top
		if e.Bbox.Overlaps(bbox) || (e.Bbox.Width()*e.Bbox.Height() == 0 && touches) {
			clipped := e
			clipped.Bbox = clipBbox(e.Bbox, bbox)
			clipped.Width = clipped.Bbox.Width()
			clipped.Height = clipped.Bbox.Height()
			out.Edges = append(out.Edges, clipped)
		}
	}
	for _, w := range p.Words {
		if w.Bbox.Overlaps(bbox) {
			out.Words = append(out.Words, w)
		}
	}
	return out
}

// WithinBBox returns a view of the page containing only the primitives that
// lie entirely within bbox, unclipped. This is the semantics the filter
// pipeline's crop-and-inspect helpers rely on (e.g. counting characters
// strictly inside a table's footprint).
func (p *Page) WithinBBox(bbox Bbox) *Page {
	out := &Page{Number: p.Number, Width: p.Width, Height: p.Height, Bbox: bbox}
	for _, c := range p.Chars {
		if bbox.Contains(c.Bbox) {
			out.Chars = append(out.Chars, c)
		}
	}
	for _, r := range p.Rects {
		if bbox.Contains(r.Bbox) {
			out.Rects = append(out.Rects, r)
		}
	}
	for _, e := range p.Edges {
		if bbox.Contains(e.Bbox) {
			out.Edges = append(out.Edges, e)
		}
	}
	for _, w := range p.Words {
		if bbox.Contains(w.Bbox) {
			out.Words = append(out.Words, w)
		}
	}
	return out
}

func clipBbox(b, bound Bbox) Bbox {
	return Bbox{
		X0:     max(b.X0, bound.X0),
		Top:    max(b.Top, bound.Top),
		X1:     min(b.X1, bound.X1),
		Bottom: min(b.Bottom, bound.Bottom),
	}
}
