package diag

import "fmt"

// Error carries a Diagnostic through Go error returns.
// Conversions and parsers return it so callers can decide whether to abort
// the expansion; use errors.As to get the diagnostic back.
type Error struct {
	Diagnostic
}

// AsError wraps d.
func AsError(d Diagnostic) *Error {
	return &Error{Diagnostic: d}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Primary, e.Message)
}
