package diag

import (
	"fmt"
	"strings"

	"quasi/internal/source"
)

// FormatShort renders diagnostics one per line as
// "SEV CODE path:line:col message", in the given order. Notes follow their
// diagnostic as "note CODE path:line:col message" when includeNotes is set.
// Spans from unknown files resolve to line 1, column 1.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	var b strings.Builder
	for _, d := range diags {
		writeShortLine(&b, d.Severity.String(), d.Code, d.Primary, d.Message, fs)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			writeShortLine(&b, "note", d.Code, n.Span, n.Msg, fs)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeShortLine(b *strings.Builder, sev string, code Code, sp source.Span, msg string, fs *source.FileSet) {
	path := "?"
	line, col := uint32(1), uint32(1)
	if fs != nil {
		if f := fs.Get(sp.File); f != nil {
			path = f.Path
			start, _ := fs.Resolve(sp)
			line, col = start.Line, start.Col
		}
	}
	fmt.Fprintf(b, "%s %s %s:%d:%d %s\n", sev, code.ID(), path, line, col, sanitizeMessage(msg))
}

func sanitizeMessage(msg string) string {
	return strings.ReplaceAll(strings.TrimSpace(msg), "\n", " ")
}
