package tablefind

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DebugColors controls the fill/stroke used to annotate detected cells.
type DebugColors struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth int
}

// DefaultDebugColors mirrors the semi-transparent blue fill / red stroke
// the reference visualizer uses.
func DefaultDebugColors() DebugColors {
	return DebugColors{
		Fill:        color.RGBA{R: 0, G: 0, B: 255, A: 50},
		Stroke:      color.RGBA{R: 255, G: 0, B: 0, A: 200},
		StrokeWidth: 1,
	}
}

// VisualizeTables renders every detected table's cells as annotated
// rectangles over background (a rendered page image, or a blank canvas the
// size of the page when no rendering is available), scaled by resolution/72
// the same way the reference visualizer maps PDF points to pixels.
func VisualizeTables(background image.Image, tables []Table, resolution float64, colors DebugColors) image.Image {
	ratio := resolution / 72.0
	canvas := imaging.Clone(background)

	for _, t := range tables {
		for _, cell := range t.Cells {
			drawRect(canvas, cell, ratio, colors)
		}
	}
	return canvas
}

// BlankCanvas returns a white canvas sized for a page rendered at
// resolution dots per inch, for callers with no rendered page image handy.
func BlankCanvas(page *Page, resolution float64) image.Image {
	ratio := resolution / 72.0
	w := int(page.Width * ratio)
	h := int(page.Height * ratio)
	return imaging.New(w, h, color.White)
}

func drawRect(canvas draw.Image, cell CellBBox, ratio float64, colors DebugColors) {
	x0 := int(cell.X0 * ratio)
	y0 := int(cell.Top * ratio)
	x1 := int(cell.X1 * ratio)
	y1 := int(cell.Bottom * ratio)

	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			blendPixel(canvas, x, y, colors.Fill)
		}
	}
	for w := 0; w < colors.StrokeWidth; w++ {
		for x := x0; x < x1; x++ {
			blendPixel(canvas, x, y0+w, colors.Stroke)
			blendPixel(canvas, x, y1-1-w, colors.Stroke)
		}
		for y := y0; y < y1; y++ {
			blendPixel(canvas, x0+w, y, colors.Stroke)
			blendPixel(canvas, x1-1-w, y, colors.Stroke)
		}
	}
}

func blendPixel(canvas draw.Image, x, y int, c color.RGBA) {
	bounds := canvas.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	canvas.Set(x, y, c)
}
