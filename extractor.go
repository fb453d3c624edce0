package ocrtab

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/extract"
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/ocr"
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/raster"
)

// Recognizer turns an encoded page image into text. *ocr.Client satisfies
// it; tests and callers with their own OCR backend can substitute any
// implementation.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
	Close() error
}

// Extractor provides a fluent interface for extracting table records from
// scanned PDFs. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	filename string
	doc      *raster.Document

	// Lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool // true if the document has been opened

	// Recognition backend; nil means a Tesseract client is created on
	// the first terminal operation and closed afterwards.
	recognizer     Recognizer
	ownsRecognizer bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:       e.filename,
		doc:            e.doc,
		ownsDoc:        e.ownsDoc,
		docOpened:      e.docOpened,
		recognizer:     e.recognizer,
		ownsRecognizer: e.ownsRecognizer,
		options:        e.options.clone(),
		err:            e.err,
		warnings:       append([]Warning(nil), e.warnings...),
	}
}

// ensureDoc opens the document if not already open.
func (e *Extractor) ensureDoc() error {
	if e.docOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	doc, err := raster.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	var err error
	if e.ownsDoc && e.doc != nil {
		err = e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
	}
	if e.ownsRecognizer && e.recognizer != nil {
		if cerr := e.recognizer.Close(); err == nil {
			err = cerr
		}
		e.recognizer = nil
		e.ownsRecognizer = false
	}
	return err
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Rotate sets the clockwise rotation applied to every rendered page.
// Valid angles are 0, 90, 180, and 270 degrees; the default is 0.
//
// Example:
//
//	records, _, err := ocrtab.Open("scan.pdf").Rotate(90).Records()
func (e *Extractor) Rotate(deg int) *Extractor {
	newExt := e.clone()
	newExt.options.rotate = deg
	return newExt
}

// CropRight removes the given fraction of the page width from the right
// edge before recognition. Valid ratios are in [0, 1); the default is 0.
//
// Example:
//
//	records, _, err := ocrtab.Open("scan.pdf").CropRight(0.05).Records()
func (e *Extractor) CropRight(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.cropRight = ratio
	return newExt
}

// DPI sets the render resolution. The default is raster.DefaultDPI.
func (e *Extractor) DPI(dpi int) *Extractor {
	newExt := e.clone()
	newExt.options.dpi = dpi
	return newExt
}

// Columns sets the output column names, in order. Names Email, Phone, and
// PostalCode (case-insensitive) are matched by pattern; all other names
// are filled by line position. The default is extract.DefaultColumns.
//
// Example:
//
//	records, _, err := ocrtab.Open("scan.pdf").
//	    Columns("Company", "PostalCode", "Email").
//	    Records()
func (e *Extractor) Columns(names ...string) *Extractor {
	newExt := e.clone()
	newExt.options.columns = append([]string(nil), names...)
	return newExt
}

// Languages sets the Tesseract language hints. The default is German
// plus English ("deu", "eng").
func (e *Extractor) Languages(languages ...string) *Extractor {
	newExt := e.clone()
	newExt.options.languages = append([]string(nil), languages...)
	return newExt
}

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	records, _, err := ocrtab.Open("scan.pdf").Pages(1, 3, 5).Records()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// OnPage registers a callback invoked once per processed page (1-indexed)
// during Records, whether or not the page produced records. Useful for
// progress reporting.
func (e *Extractor) OnPage(fn func(page int)) *Extractor {
	newExt := e.clone()
	newExt.options.onPage = fn
	return newExt
}

// WithRecognizer sets the OCR backend for terminal operations. The caller
// remains responsible for closing the recognizer. Without this, a
// Tesseract client is created per terminal operation (which requires the
// "ocr" build tag).
func (e *Extractor) WithRecognizer(r Recognizer) *Extractor {
	newExt := e.clone()
	newExt.recognizer = r
	newExt.ownsRecognizer = false
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureDoc(); err != nil {
		return 0, err
	}
	return e.doc.PageCount(), nil
}

// Records renders, recognizes, and parses the configured pages, returning
// the extracted records in page order. This is a terminal operation that
// closes the underlying document.
//
// Returns the records, any warnings encountered during processing, and an
// error if extraction could not run at all. Warnings indicate non-fatal
// issues (a page that failed to render or recognize) where the page was
// skipped and processing continued.
//
// Example:
//
//	records, warnings, err := ocrtab.Open("scan.pdf").Records()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ocrtab.FormatWarnings(warnings))
//	}
func (e *Extractor) Records() ([]extract.Record, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	ropts := e.options.rasterOptions()
	if err := ropts.Validate(); err != nil {
		return nil, nil, err
	}

	if err := e.ensureDoc(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	if err := e.ensureRecognizer(); err != nil {
		return nil, nil, err
	}

	pageIndices, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	fields := extract.FieldsFor(e.options.columns)
	base := filepath.Base(e.filename)

	var records []extract.Record
	for _, idx := range pageIndices {
		records = append(records, e.processPage(idx, ropts, fields, base)...)
		if e.options.onPage != nil {
			e.options.onPage(idx + 1)
		}
	}

	return records, e.warnings, nil
}

// processPage renders, recognizes, and parses a single page. Failures
// produce a warning and zero records; the run continues with the next page.
func (e *Extractor) processPage(idx int, ropts raster.Options, fields []extract.Field, base string) []extract.Record {
	img, err := e.doc.RenderPage(idx, ropts)
	if err != nil {
		e.warn(idx+1, fmt.Sprintf("render failed: %v", err))
		return nil
	}

	data, err := raster.EncodePNG(img)
	if err != nil {
		e.warn(idx+1, fmt.Sprintf("encode failed: %v", err))
		return nil
	}

	text, err := e.recognizer.RecognizeImage(data)
	if err != nil {
		e.warn(idx+1, fmt.Sprintf("recognition failed: %v", err))
		return nil
	}

	var records []extract.Record
	for _, rec := range extract.Parse(text, fields) {
		rec.File = base
		rec.Page = idx + 1
		records = append(records, rec)
	}
	return records
}

// ensureRecognizer creates the default Tesseract-backed recognizer when
// none was injected.
func (e *Extractor) ensureRecognizer() error {
	if e.recognizer != nil {
		return nil
	}
	client, err := ocr.New(e.options.languages...)
	if err != nil {
		return err
	}
	if e.options.dpi > 0 {
		if err := client.SetDPI(e.options.dpi); err != nil {
			client.Close()
			return err
		}
	}
	e.recognizer = client
	e.ownsRecognizer = true
	return nil
}

// warn records a page-level warning.
func (e *Extractor) warn(page int, message string) {
	e.warnings = append(e.warnings, Warning{
		File:    filepath.Base(e.filename),
		Page:    page,
		Message: message,
	})
}

// resolvePages returns the 0-indexed pages to process, validated against
// the document's page count.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.doc.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	// Convert 1-indexed to 0-indexed and validate
	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	sort.Ints(pageIndices)
	return pageIndices, nil
}
