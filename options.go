package ocrtab

import (
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/extract"
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/raster"
)

// ExtractOptions holds configuration for record extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Rendering
	rotate    int     // clockwise rotation: 0, 90, 180, 270
	cropRight float64 // right-margin crop ratio, [0, 1)
	dpi       int     // render resolution
	maxDim    int     // pixel cap on the longer rendered edge; 0 = none

	// Recognition and parsing
	languages []string
	columns   []string

	// Progress reporting; called once per processed page (1-indexed),
	// whether or not the page produced records.
	onPage func(page int)
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:     nil, // nil means all pages
		rotate:    0,
		cropRight: 0,
		dpi:       raster.DefaultDPI,
		maxDim:    0,
		languages: []string{"deu", "eng"},
		columns:   extract.DefaultColumns,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		rotate:    o.rotate,
		cropRight: o.cropRight,
		dpi:       o.dpi,
		maxDim:    o.maxDim,
		onPage:    o.onPage,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	newOpts.languages = append([]string(nil), o.languages...)
	newOpts.columns = append([]string(nil), o.columns...)

	return newOpts
}

// rasterOptions converts the extraction options to raster options.
func (o ExtractOptions) rasterOptions() raster.Options {
	return raster.Options{
		DPI:       o.dpi,
		Rotate:    o.rotate,
		CropRight: o.cropRight,
		MaxDim:    o.maxDim,
	}
}
