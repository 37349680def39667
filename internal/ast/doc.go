// Package ast defines the syntax nodes of the quoted language.
//
// Nodes are pointers to values that are never mutated after parsing, so a
// node can be shared freely: interpolated tokens carry the node pointer
// itself. Every node kind is a closed variant: a Kind enum plus the payload
// fields that kind uses. Each node prints itself in canonical form through
// String() and converts itself to token trees through ToTokens.
package ast
