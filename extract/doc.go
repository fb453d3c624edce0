// Package extract turns the OCR text of a single page into structured
// table records.
//
// Extraction is driven by an ordered list of [Field] definitions. A field
// either carries a [Matcher] (a structured field such as Email, Phone, or
// PostalCode, recognized by a textual pattern) or no matcher (a free-text
// field such as Company or Name, assigned by line position).
//
// # Matching policy
//
// The page text is split into trimmed, non-empty lines and grouped into
// blocks, one record per block. Within a block, structured fields are
// resolved first, in column order, with first-match-wins semantics: the
// first unconsumed line satisfying a field's pattern is assigned to it and
// never reconsidered for another field. Free-text fields then take the
// remaining lines in order. A field whose pattern never matches is left
// empty; the record always carries every configured column.
//
// A block only produces a record when at least one structured field
// matched. Garbled OCR output and pages without table content therefore
// yield zero records rather than rows of noise.
//
// Lines that carry a whole table row at once (the columnar layout produced
// when a page is scanned from a printed list: company, city, street,
// postal code, contact name, title, email, and phone on one line) are
// detected and parsed positionally before block grouping applies.
//
// Extraction is pure and deterministic: the same text and field
// configuration always produce the same records.
package extract
