package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetName is the worksheet that receives the rows. Excelize creates it
// by default in new workbooks.
const sheetName = "Sheet1"

// WriteXLSX writes the table to path as an Excel workbook. The sheet has
// the configured columns only; the page-number column of the CSV output
// is intentionally absent. An existing file is overwritten.
func (t *Table) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(t.columns))
	for i, name := range t.columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range t.rows {
		cells := t.row(rec)
		row := make([]interface{}, len(cells))
		for j, v := range cells {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
