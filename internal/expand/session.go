package expand

import (
	"quasi/internal/diag"
	"quasi/internal/source"
)

// Session owns the sources and diagnostics of one expansion.
type Session struct {
	FileSet  *source.FileSet
	Bag      *diag.Bag
	reporter diag.Reporter
}

// NewSession creates a session whose bag keeps at most maxDiagnostics
// entries (0 means unlimited).
func NewSession(maxDiagnostics int) *Session {
	bag := diag.NewBag(maxDiagnostics)
	return &Session{
		FileSet:  source.NewFileSet(),
		Bag:      bag,
		reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	}
}

// Reporter returns the session reporter; exact duplicates are dropped.
func (s *Session) Reporter() diag.Reporter {
	return s.reporter
}
