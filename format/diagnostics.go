package format

import (
	"fmt"
	"io"

	"github.com/chuff-lang/chuff/huff/parser"
)

// WriteDiagnostics renders diagnostics one per line as
// "file:[start-end) severity: message".
func WriteDiagnostics(w io.Writer, diags []parser.Diagnostic) error {
	for _, d := range diags {
		file := d.File
		if file == "" {
			file = "<input>"
		}
		_, err := fmt.Fprintf(w, "%s:[%d-%d) %s: %s\n", file, d.Span.Start, d.Span.End, d.Severity, d.Message)
		if err != nil {
			return err
		}
	}
	return nil
}
