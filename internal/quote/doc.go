// Package quote is the quasi-quotation layer of the expander.
//
// Tokenizable values (syntax nodes from internal/ast, scalars and the
// generic containers defined here) convert themselves into token trees that
// the parser can consume again. The parsing utilities go the other way:
// text becomes typed nodes, with Must* variants for callers that want the
// whole expansion to abort on malformed input.
package quote
