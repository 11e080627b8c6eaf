package tablefind

// RGBA is a stroking or fill color as reported by the upstream document
// parser. Two colors compare equal by value, which is what the "colorless
// edge" filter (stroking == non-stroking) relies on.
type RGBA struct {
	R, G, B, A uint8
}

// Orientation classifies an Edge as running along the page's horizontal or
// vertical axis.
type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

// ObjectType tags the PDF primitive an Edge was derived from.
type ObjectType string

const (
	ObjectLine     ObjectType = "line"
	ObjectRect     ObjectType = "rect"
	ObjectRectEdge ObjectType = "rect_edge"
	ObjectCurve    ObjectType = "curve"
)

// Edge is an oriented line segment derived from a rectangle side, a line, or
// a curve segment. Horizontal edges have Top == Bottom; vertical edges have
// X0 == X1.
type Edge struct {
	Bbox
	Orientation      Orientation
	Width            float64
	Height           float64
	ObjectType       ObjectType
	StrokingColor    RGBA
	NonStrokingColor RGBA
}

// Rect is a raw filled/stroked rectangle primitive, kept separate from the
// edges derived from it because the bar-graph filter needs the rectangle's
// fill color, not its border geometry.
type Rect struct {
	Bbox
	StrokingColor    RGBA
	NonStrokingColor RGBA
}

// Char is a single glyph as reported by the upstream document parser.
type Char struct {
	Bbox
	Text     rune
	FontName string
	FontSize float64
	Upright  bool
	Doctop   float64
}

// Word is a run of characters grouped by GroupCharsIntoWords.
type Word struct {
	Bbox
	Text    string
	Upright bool
}

// Point is a vertex where a vertical and a horizontal edge cross.
type Point struct {
	X, Y float64
}

// Row is an on-demand view of a Table: the cells whose tops cluster
// together, ordered left to right. It holds only cells that exist; a column
// position the row has no cell for gets no nil placeholder slot.
type Row struct {
	Bbox  Bbox
	Cells []*CellBBox
}

// Table is a maximal set of cells connected by shared corners.
type Table struct {
	Bbox
	Cells []CellBBox
	page  *Page
}

// Rows groups a table's cells into rows by their Top (within 1pt), top to
// bottom, each row ordered left to right. Rows contain only the cells
// present, so rows of a table with missing cells can differ in length and
// are not aligned by column.
func (t *Table) Rows() []Row {
	return buildRows(t.Cells)
}

// Extract returns the cell-text matrix for the table: one string per cell in
// row-major order, or nil where a cell has no overlapping text (so "not
// present" is distinguishable from an empty string).
func (t *Table) Extract(xTol, yTol float64) [][]*string {
	rows := t.Rows()
	if t.page == nil {
		out := make([][]*string, len(rows))
		for i, row := range rows {
			out[i] = make([]*string, len(row.Cells))
		}
		return out
	}
	return ExtractTableText(t.page, rows, xTol, yTol)
}
