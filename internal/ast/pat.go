package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

type PatKind uint8

const (
	PatWild        PatKind = iota // _
	PatIdent                      // ref mut Ident @ Sub
	PatLit                        // Expr (literal, -literal or path)
	PatRange                      // Lo ... Hi
	PatTuple                      // (Pats)
	PatTupleStruct                // Path(Pats)
	PatStruct                     // Path { Fields, .. }
	PatPath                       // Path
	PatRef                        // &mut Sub
)

type BindingMode uint8

const (
	ByValue BindingMode = iota
	ByRef
)

type Pat struct {
	Kind    PatKind
	Binding BindingMode
	Mut     bool
	Ident   *Ident
	Sub     *Pat
	Expr    *Expr // PatLit, PatRange lower bound
	Hi      *Expr // PatRange upper bound
	Path    *Path
	Pats    []*Pat
	Fields  []*FieldPat
	Etc     bool // trailing `..` in a struct pattern
	Span    source.Span
}

// FieldPat is `name: pat` in a struct pattern; Shorthand is `ref mut name`.
type FieldPat struct {
	Ident     *Ident
	Pat       *Pat
	Shorthand bool
	Span      source.Span
}

func (p *Pat) NtKind() token.NtKind { return token.NtPat }

func (p *Pat) String() string {
	return printNode(func(pr *printer) { pr.pat(p) })
}
