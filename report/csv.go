package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the table to path as comma-separated values with a
// leading "Page" column. An existing file is overwritten. Any failure is
// returned to the caller; a run must not claim success with a partial
// output file on disk.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	header := append([]string{"Page"}, t.columns...)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range t.rows {
		row := append([]string{strconv.Itoa(rec.Page)}, t.row(rec)...)
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
