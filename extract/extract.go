package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field describes one output column. Fields with a non-nil Match are
// structured (pattern-recognized); fields without one are free-text and
// assigned by line position.
type Field struct {
	Name  string
	Match Matcher
}

// Record is a single extracted table row. Values holds every configured
// field name; unmatched fields map to the empty string. File and Page
// identify where the row was recognized.
type Record struct {
	File   string
	Page   int // 1-based
	Values map[string]string
}

// DefaultColumns is the default output column order.
var DefaultColumns = []string{
	"Company", "City", "StreetNo", "PostalCode", "Name", "Title", "Email", "Phone",
}

// FieldsFor builds the field list for the given column names, attaching
// built-in matchers to the structured names (Email, Phone, PostalCode,
// case-insensitive). Any other name becomes a free-text field.
func FieldsFor(names []string) []Field {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field{Name: name, Match: MatcherFor(name)})
	}
	return fields
}

// DefaultFields returns FieldsFor(DefaultColumns).
func DefaultFields() []Field {
	return FieldsFor(DefaultColumns)
}

// Parse extracts zero or more records from the OCR text of one page.
// The returned records have Values populated; File and Page are left for
// the caller to fill in. Parsing is pure: it never fails, and identical
// input always yields identical output.
func Parse(text string, fields []Field) []Record {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	var records []Record
	var block []string
	emit := func() {
		if values, ok := parseBlock(block, fields); ok {
			records = append(records, Record{Values: values})
		}
		block = nil
	}

	anchor := matcherByName(fields, "email")
	tail := matcherByName(fields, "phone")

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// A line carrying a whole table row is parsed positionally and
		// never participates in block grouping.
		if values, ok := parseColumnarLine(line, fields); ok {
			emit()
			records = append(records, Record{Values: values})
			continue
		}

		block = append(block, line)

		// The email address is the most reliable pattern OCR produces,
		// so it anchors record boundaries: a block closes after its
		// email line, extended by one directly following phone line.
		if anchor != nil {
			if _, ok := anchor(line); ok {
				if tail != nil && i+1 < len(lines) {
					if _, ok := tail(lines[i+1]); ok {
						block = append(block, lines[i+1])
						i++
					}
				}
				emit()
			}
		}
	}
	emit()

	return records
}

// splitLines returns the trimmed, non-empty, NFC-normalized lines of the
// text. Column header lines ("PLZ ...") are dropped.
func splitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(norm.NFC.String(raw))
		if line == "" || strings.HasPrefix(strings.ToLower(line), "plz") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseBlock maps a block of lines to field values. Structured fields are
// resolved first in column order (first unconsumed matching line wins),
// then free-text fields take the remaining lines in order. The second
// return value is false when no structured field matched, in which case
// the block is discarded as non-table text.
func parseBlock(block []string, fields []Field) (map[string]string, bool) {
	if len(block) == 0 {
		return nil, false
	}

	values := make(map[string]string, len(fields))
	consumed := make([]bool, len(block))
	matched := false

	for _, f := range fields {
		values[f.Name] = ""
		if f.Match == nil {
			continue
		}
		for i, line := range block {
			if consumed[i] {
				continue
			}
			if v, ok := f.Match(line); ok {
				values[f.Name] = v
				consumed[i] = true
				matched = true
				break
			}
		}
	}
	if !matched {
		return nil, false
	}

	next := 0
	for _, f := range fields {
		if f.Match != nil {
			continue
		}
		for next < len(block) && consumed[next] {
			next++
		}
		if next < len(block) {
			values[f.Name] = block[next]
			consumed[next] = true
			next++
		}
	}

	return values, true
}

// matcherByName returns the matcher of the first structured field with the
// given canonical name (case-insensitive), or nil if none is configured.
func matcherByName(fields []Field, name string) Matcher {
	for _, f := range fields {
		if f.Match != nil && strings.EqualFold(f.Name, name) {
			return f.Match
		}
	}
	return nil
}
