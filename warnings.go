package ocrtab

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered during processing,
// such as a page that could not be rendered or recognized. Processing
// continues past warnings; the affected page simply contributes no
// records.
type Warning struct {
	File    string
	Page    int // 1-based; 0 when the warning is not page-specific
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s page %d: %s", w.File, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.File, w.Message)
}

// FormatWarnings joins warnings into a single printable string, one per line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
