// Command ocrtab extracts tabular records from scanned PDFs using OCR
// and writes them to CSV and Excel files.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
