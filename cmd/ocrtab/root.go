package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	ocrtab "github.com/mxxfun/pdf-to-csv-and-xlsx-ocr"
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/extract"
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/ocr"
	"github.com/mxxfun/pdf-to-csv-and-xlsx-ocr/report"
)

var log = logrus.New()

var flags struct {
	input   string
	output  string
	rotate  int
	crop    float64
	columns string
	lang    string
	dpi     int
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:   "ocrtab",
	Short: "Extract tables from scanned PDFs using OCR",
	Long: `ocrtab renders every page of every PDF in the input directory,
runs Tesseract OCR over the bitmaps, parses the recognized text into
named fields, and writes the collected rows to tables.csv (with a page
number column) and tables.xlsx (without) in the output directory.

Examples:
  ocrtab
  ocrtab --rotate 90 --crop 0.05
  ocrtab --input scans --output results --columns Company,PostalCode,Email`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flags.input, "input", "input", "directory containing PDF files")
	rootCmd.Flags().StringVar(&flags.output, "output", "output", "directory for the CSV and XLSX output")
	rootCmd.Flags().IntVar(&flags.rotate, "rotate", 0, "page rotation in degrees (0, 90, 180, 270)")
	rootCmd.Flags().Float64Var(&flags.crop, "crop", 0.05, "right margin crop ratio (0-1)")
	rootCmd.Flags().StringVar(&flags.columns, "columns", strings.Join(extract.DefaultColumns, ","),
		"comma-separated output columns")
	rootCmd.Flags().StringVar(&flags.lang, "lang", "deu+eng", "Tesseract languages, separated by +")
	rootCmd.Flags().IntVar(&flags.dpi, "dpi", 200, "render resolution")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if flags.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	columns := splitColumns(flags.columns)
	if len(columns) == 0 {
		return fmt.Errorf("no output columns configured")
	}
	languages := strings.Split(flags.lang, "+")

	pdfs, err := listPDFs(flags.input)
	if err != nil {
		return err
	}
	log.Infof("Found %d PDF files", len(pdfs))

	if err := os.MkdirAll(flags.output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	recognizer, err := ocr.New(languages...)
	if err != nil {
		return fmt.Errorf("initialize OCR: %w", err)
	}
	defer recognizer.Close()
	if err := recognizer.SetDPI(flags.dpi); err != nil {
		return fmt.Errorf("configure OCR: %w", err)
	}

	table := report.NewTable(columns)

	for _, path := range pdfs {
		if err := processFile(path, columns, recognizer, table); err != nil {
			// Unreadable files are skipped; the run continues.
			log.WithField("file", path).Errorf("skipping: %v", err)
		}
	}

	csvPath := filepath.Join(flags.output, "tables.csv")
	xlsxPath := filepath.Join(flags.output, "tables.xlsx")
	if err := table.WriteCSV(csvPath); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	if err := table.WriteXLSX(xlsxPath); err != nil {
		return fmt.Errorf("write XLSX: %w", err)
	}

	log.Infof("Complete - %d rows written to %s and %s", table.Len(), csvPath, xlsxPath)
	return nil
}

// processFile runs the extraction pipeline over one PDF and appends its
// records to the table.
func processFile(path string, columns []string, recognizer ocrtab.Recognizer, table *report.Table) error {
	log.Infof("Processing: %s", filepath.Base(path))

	ext := ocrtab.Open(path).
		Rotate(flags.rotate).
		CropRight(flags.crop).
		DPI(flags.dpi).
		Columns(columns...).
		WithRecognizer(recognizer)

	pageCount, err := ext.PageCount()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(pageCount,
		progressbar.OptionSetDescription("OCR"),
		progressbar.OptionShowCount(),
	)

	records, warnings, err := ext.OnPage(func(int) { bar.Add(1) }).Records()
	bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		log.Warn(w.String())
	}

	table.Append(records...)
	log.Debugf("%s: %d records", filepath.Base(path), len(records))
	return nil
}

// listPDFs returns the PDF files in dir, in directory order. Missing
// directories and directories without PDFs are errors: there is nothing
// to do, and silently writing empty outputs would hide mistakes.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, entry.Name()))
		}
	}
	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}
	return pdfs, nil
}

// splitColumns parses the --columns flag value into trimmed, non-empty
// column names.
func splitColumns(s string) []string {
	var columns []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}
	return columns
}
