// Package report accumulates extracted records into an ordered result
// table and writes it out as CSV and XLSX.
//
// The CSV file carries a leading page-number column; the XLSX file holds
// the same rows without it. Both writers overwrite existing files.
package report

import (
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/extract"
)

// Table is the ordered collection of records produced by one run. Rows
// keep the order in which records were appended: input file order, page
// order within a file, row order within a page.
type Table struct {
	columns []string
	rows    []extract.Record
}

// NewTable creates an empty table with the given column set. The column
// order is the output column order for both writers.
func NewTable(columns []string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// Append adds records to the table in order.
func (t *Table) Append(records ...extract.Record) {
	t.rows = append(t.rows, records...)
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the configured column names in output order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// row flattens a record into cell values in column order. Fields absent
// from the record come out as empty cells, so every row has the full
// column set.
func (t *Table) row(rec extract.Record) []string {
	cells := make([]string, len(t.columns))
	for i, name := range t.columns {
		cells[i] = rec.Values[name]
	}
	return cells
}
