// Package raster renders PDF pages to pixel images suitable for OCR.
//
// Rendering is delegated to MuPDF via the go-fitz bindings. Pages are
// rendered at a configurable resolution, optionally rotated in quarter
// turns, and optionally cropped on the right margin before recognition.
package raster

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the render resolution used when Options.DPI is zero.
// 200 DPI is enough for Tesseract on typical scanned tables without
// producing oversized bitmaps.
const DefaultDPI = 200

// Options controls how a page is rendered.
type Options struct {
	// DPI is the render resolution. Zero means DefaultDPI.
	DPI int

	// Rotate is a clockwise rotation applied after rendering.
	// Must be 0, 90, 180, or 270.
	Rotate int

	// CropRight is the fraction of the page width removed from the right
	// edge after rotation. Must be in [0, 1).
	CropRight float64

	// MaxDim caps the longer edge of the rendered image in pixels.
	// Larger renders are downscaled before OCR. Zero disables the cap.
	MaxDim int
}

// Validate reports the first invalid option, or nil.
func (o Options) Validate() error {
	switch o.Rotate {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("rotation must be 0, 90, 180, or 270, got %d", o.Rotate)
	}
	if o.CropRight < 0 || o.CropRight >= 1 {
		return fmt.Errorf("crop ratio must be in [0, 1), got %g", o.CropRight)
	}
	if o.DPI < 0 {
		return fmt.Errorf("dpi must be positive, got %d", o.DPI)
	}
	return nil
}

// Document is an open PDF ready for page rendering.
type Document struct {
	doc  *fitz.Document
	path string
}

// Open opens a PDF file for rendering. The returned Document must be
// closed when no longer needed.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{doc: doc, path: path}, nil
}

// Close releases the underlying MuPDF document. Safe to call more than once.
func (d *Document) Close() error {
	if d.doc != nil {
		err := d.doc.Close()
		d.doc = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// RenderPage renders the page at idx (0-based) according to opts: render
// at the configured DPI, rotate, crop the right margin, then downscale if
// the result exceeds MaxDim.
func (d *Document) RenderPage(idx int, opts Options) (image.Image, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dpi := opts.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}

	img, err := d.doc.ImageDPI(idx, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("render page %d of %s: %w", idx+1, d.path, err)
	}

	out, err := Rotate(img, opts.Rotate)
	if err != nil {
		return nil, err
	}
	out = CropRight(out, opts.CropRight)
	out = capSize(out, opts.MaxDim)
	return out, nil
}
