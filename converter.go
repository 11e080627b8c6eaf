package tablefind

import (
	"log"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// Finder runs table detection over a whole PDF document, one page at a
// time, using a pooled go-pdfium instance.
type Finder struct {
	instance pdfium.Pdfium
	settings TableSettings

	// EnableMetricsLogging mirrors the teacher's per-page timing log.
	EnableMetricsLogging bool
}

// NewFinder creates a Finder with the default lattice detection settings.
func NewFinder(instance pdfium.Pdfium) *Finder {
	return &Finder{instance: instance, settings: DefaultTableSettings()}
}

// NewFinderWithSettings creates a Finder using caller-supplied settings.
func NewFinderWithSettings(instance pdfium.Pdfium, settings TableSettings) *Finder {
	return &Finder{instance: instance, settings: settings}
}

// PageResult pairs a page's detected tables with its extracted text
// matrices, in page order.
type PageResult struct {
	PageNumber int
	Tables     []Table
	Matrices   [][][]*string
}

// FindInFile opens filePath and runs DetectTables over every page.
func (f *Finder) FindInFile(filePath string) ([]PageResult, error) {
	doc, err := f.instance.OpenDocument(&requests.OpenDocument{FilePath: &filePath})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer f.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})

	return f.findInDocument(doc.Document)
}

// FindInBytes runs DetectTables over every page of an in-memory PDF.
func (f *Finder) FindInBytes(pdfBytes []byte) ([]PageResult, error) {
	doc, err := f.instance.OpenDocument(&requests.OpenDocument{File: &pdfBytes})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer f.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{Document: doc.Document})

	return f.findInDocument(doc.Document)
}

func (f *Finder) findInDocument(docRef references.FPDF_DOCUMENT) ([]PageResult, error) {
	pageCountResp, err := f.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{Document: docRef})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}

	results := make([]PageResult, 0, pageCountResp.PageCount)
	for i := 0; i < pageCountResp.PageCount; i++ {
		start := time.Now()
		result, err := f.findOnPage(docRef, i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to process page %d", i+1)
		}
		results = append(results, *result)
		if f.EnableMetricsLogging {
			log.Printf("page %d/%d: %d tables in %v", i+1, pageCountResp.PageCount, len(result.Tables), time.Since(start))
		}
	}
	return results, nil
}

func (f *Finder) findOnPage(docRef references.FPDF_DOCUMENT, pageIndex int) (*PageResult, error) {
	pageResp, err := f.instance.FPDF_LoadPage(&requests.FPDF_LoadPage{Document: docRef, Index: pageIndex})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}
	defer f.instance.FPDF_ClosePage(&requests.FPDF_ClosePage{Page: pageResp.Page})

	page, err := ExtractPage(f.instance, pageResp.Page, pageIndex+1, f.settings.KeepBlankChars)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract page content")
	}

	tables, err := DetectTables(page, f.settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect tables")
	}

	matrices := make([][][]*string, len(tables))
	for i, t := range tables {
		matrices[i] = t.Extract(f.settings.TextXTolerance, f.settings.TextYTolerance)
	}

	return &PageResult{PageNumber: pageIndex + 1, Tables: tables, Matrices: matrices}, nil
}
