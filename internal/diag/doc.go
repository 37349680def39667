// Package diag defines the diagnostic model shared by the lexer, the parser
// and the token conversions.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID (LEX1001, SYN2001, QQ4001), a short Message, the Primary span and
// optional Notes.
//
// Producers emit through a Reporter; BagReporter collects into a Bag and
// DedupReporter drops repeats. Code that needs to hand a diagnostic back to its
// caller wraps it in *Error, which satisfies the error interface.
//
// Package diag does no formatting beyond single-line short output; rendering
// with source context lives in internal/diagfmt.
package diag
