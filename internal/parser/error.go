package parser

import (
	"fmt"

	"quasi/internal/diag"
)

// Error is returned by every entry point; it carries the first diagnostic
// of the parse, which is also recorded in the session bag.
type Error struct {
	diag.Diagnostic
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Message)
}

// Unwrap exposes the diagnostic as a *diag.Error.
func (e *Error) Unwrap() error {
	return diag.AsError(e.Diagnostic)
}
