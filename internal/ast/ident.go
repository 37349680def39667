package ast

import "quasi/internal/source"

type Ident struct {
	Name string
	Span source.Span
}

func NewIdent(name string, sp source.Span) *Ident {
	return &Ident{Name: name, Span: sp}
}

func (id *Ident) String() string {
	if id == nil {
		return ""
	}
	return id.Name
}

// Lifetime is a lifetime name; Name includes the leading quote ("'a").
type Lifetime struct {
	Name string
	Span source.Span
}

func (lt *Lifetime) String() string {
	if lt == nil {
		return ""
	}
	return lt.Name
}

// Spanned pairs a node with the span it was written at.
type Spanned[T any] struct {
	Node T
	Span source.Span
}
