// Package ocrtab provides a fluent API for extracting tabular records
// from scanned PDFs using OCR.
//
// Each page is rendered to a bitmap, optionally rotated and cropped,
// recognized with Tesseract, and parsed into named fields.
//
// Basic usage:
//
//	records, warnings, err := ocrtab.Open("scan.pdf").Records()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", ocrtab.FormatWarnings(warnings))
//	}
//
// With options:
//
//	records, _, err := ocrtab.Open("scan.pdf").
//	    Rotate(90).
//	    CropRight(0.05).
//	    Columns("Company", "PostalCode", "Email").
//	    Records()
//
// OCR support requires building with the "ocr" tag and a system
// Tesseract installation; see the ocr package. Without the tag, a
// Recognizer must be supplied via WithRecognizer.
package ocrtab

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Records().
//
// Example:
//
//	records, warnings, err := ocrtab.Open("scan.pdf").Records()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := ocrtab.Must(ocrtab.Open("scan.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustRecords is a helper that wraps a call to Records() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	records := ocrtab.MustRecords(ocrtab.Open("scan.pdf").Records())
func MustRecords[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
