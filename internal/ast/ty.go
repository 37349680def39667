package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

type TyKind uint8

const (
	TyPath  TyKind = iota // Path
	TyRef                 // &'a mut Elem
	TySlice               // [Elem]
	TyArray               // [Elem; Len]
	TyTuple               // (Elems...), () included
	TyNever               // !
	TyInfer               // _
	TyParen               // (Elem)
)

type Ty struct {
	Kind     TyKind
	Path     *Path
	Lifetime *Lifetime
	Mut      bool
	Elem     *Ty
	Len      *Expr
	Elems    []*Ty
	Span     source.Span
}

func (t *Ty) NtKind() token.NtKind { return token.NtTy }

func (t *Ty) String() string {
	return printNode(func(pr *printer) { pr.ty(t) })
}
