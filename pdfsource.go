package tablefind

import (
	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/enums"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// ExtractPage reads a single page's characters, rectangles, and ruling lines
// out of a loaded go-pdfium document and returns a Page ready for
// DetectTables. It does no table-specific filtering of its own: every
// primitive on the page is kept, and the detection pipeline decides what to
// discard.
func ExtractPage(instance pdfium.Pdfium, page references.FPDF_PAGE, pageNumber int, keepBlankChars bool) (*Page, error) {
	widthResp, err := instance.FPDF_GetPageWidthF(&requests.FPDF_GetPageWidthF{Page: requests.Page{ByReference: &page}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page width")
	}
	heightResp, err := instance.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{Page: requests.Page{ByReference: &page}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page height")
	}
	width := float64(widthResp.PageWidth)
	height := float64(heightResp.PageHeight)

	out := &Page{
		Number: pageNumber,
		Width:  width,
		Height: height,
		Bbox:   Bbox{X0: 0, Top: 0, X1: width, Bottom: height},
	}

	chars, err := extractChars(instance, page, height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract characters")
	}
	out.Chars = chars
	out.Words = GroupCharsIntoWords(chars, keepBlankChars)

	rects, edges, err := extractPathObjects(instance, page, height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract path objects")
	}
	out.Rects = rects
	out.Edges = edges

	return out, nil
}

func extractChars(instance pdfium.Pdfium, page references.FPDF_PAGE, pageHeight float64) ([]Char, error) {
	textPage, err := instance.FPDFText_LoadPage(&requests.FPDFText_LoadPage{Page: requests.Page{ByReference: &page}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load text page")
	}
	defer instance.FPDFText_ClosePage(&requests.FPDFText_ClosePage{TextPage: textPage.TextPage})

	countResp, err := instance.FPDFText_CountChars(&requests.FPDFText_CountChars{TextPage: textPage.TextPage})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count characters")
	}

	chars := make([]Char, 0, countResp.Count)
	var doctop float64
	var prevBottom float64
	for i := 0; i < countResp.Count; i++ {
		unicodeResp, err := instance.FPDFText_GetUnicode(&requests.FPDFText_GetUnicode{TextPage: textPage.TextPage, Index: i})
		if err != nil || unicodeResp.Unicode == 0 {
			continue
		}
		boxResp, err := instance.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{TextPage: textPage.TextPage, Index: i})
		if err != nil {
			continue
		}
		bb := Bbox{
			X0:     boxResp.Left,
			Top:    pageHeight - boxResp.Top,
			X1:     boxResp.Right,
			Bottom: pageHeight - boxResp.Bottom,
		}

		fontSizeVal := 12.0
		if r, err := instance.FPDFText_GetFontSize(&requests.FPDFText_GetFontSize{TextPage: textPage.TextPage, Index: i}); err == nil {
			fontSizeVal = r.FontSize
		}
		fontNameVal := ""
		if r, err := instance.FPDFText_GetFontInfo(&requests.FPDFText_GetFontInfo{TextPage: textPage.TextPage, Index: i}); err == nil {
			fontNameVal = r.FontName
		}

		if bb.Top > prevBottom {
			doctop += bb.Top - prevBottom
		}
		prevBottom = bb.Bottom

		chars = append(chars, Char{
			Bbox:     bb,
			Text:     rune(unicodeResp.Unicode),
			FontName: fontNameVal,
			FontSize: fontSizeVal,
			Upright:  true,
			Doctop:   doctop + bb.Top,
		})
	}
	return chars, nil
}

func extractPathObjects(instance pdfium.Pdfium, page references.FPDF_PAGE, pageHeight float64) ([]Rect, []Edge, error) {
	countResp, err := instance.FPDFPage_CountObjects(&requests.FPDFPage_CountObjects{Page: requests.Page{ByReference: &page}})
	if err != nil {
		return nil, nil, err
	}

	var rects []Rect
	var edges []Edge
	for i := 0; i < countResp.Count; i++ {
		objResp, err := instance.FPDFPage_GetObject(&requests.FPDFPage_GetObject{Page: requests.Page{ByReference: &page}, Index: i})
		if err != nil {
			continue
		}
		typeResp, err := instance.FPDFPageObj_GetType(&requests.FPDFPageObj_GetType{PageObject: objResp.PageObject})
		if err != nil || typeResp.Type != enums.FPDF_PAGEOBJ_PATH {
			continue
		}
		boundsResp, err := instance.FPDFPageObj_GetBounds(&requests.FPDFPageObj_GetBounds{PageObject: objResp.PageObject})
		if err != nil {
			continue
		}
		bb := Bbox{
			X0:     float64(boundsResp.Left),
			Top:    pageHeight - float64(boundsResp.Top),
			X1:     float64(boundsResp.Right),
			Bottom: pageHeight - float64(boundsResp.Bottom),
		}

		stroking, nonStroking := pathColors(instance, objResp.PageObject)

		segCountResp, err := instance.FPDFPath_CountSegments(&requests.FPDFPath_CountSegments{PageObject: objResp.PageObject})
		if err != nil {
			continue
		}

		switch {
		case segCountResp.Count == 2:
			if e, ok := LineToEdge(bb, stroking, nonStroking); ok {
				edges = append(edges, e)
			}
		case segCountResp.Count >= 4:
			r := Rect{Bbox: bb, StrokingColor: stroking, NonStrokingColor: nonStroking}
			rects = append(rects, r)
			edges = append(edges, RectToEdges(r)...)
		}
	}
	return rects, edges, nil
}

// pathColors reads a path object's stroke and fill colors, defaulting to
// opaque black when go-pdfium cannot report them.
func pathColors(instance pdfium.Pdfium, obj references.FPDF_PAGEOBJECT) (stroking, nonStroking RGBA) {
	stroking = RGBA{R: 0, G: 0, B: 0, A: 255}
	nonStroking = RGBA{R: 0, G: 0, B: 0, A: 255}
	if r, err := instance.FPDFPageObj_GetStrokeColor(&requests.FPDFPageObj_GetStrokeColor{PageObject: obj}); err == nil {
		stroking = RGBA{R: uint8(r.R), G: uint8(r.G), B: uint8(r.B), A: uint8(r.A)}
	}
	if r, err := instance.FPDFPageObj_GetFillColor(&requests.FPDFPageObj_GetFillColor{PageObject: obj}); err == nil {
		nonStroking = RGBA{R: uint8(r.R), G: uint8(r.G), B: uint8(r.B), A: uint8(r.A)}
	}
	return stroking, nonStroking
}
