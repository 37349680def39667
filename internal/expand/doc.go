// Package expand holds the state shared by one macro expansion: the cfg
// configuration, the session (file set and diagnostics) and the re-lexing
// entry point used by conversions and parsing utilities.
//
// A Context is bound to a single expansion and must not be shared between
// goroutines.
package expand
