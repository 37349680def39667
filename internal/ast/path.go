package ast

import (
	"quasi/internal/source"
	"quasi/internal/token"
)

// Path is `a::b::<T>::c`, optionally global (`::a`).
type Path struct {
	Global   bool
	Segments []*PathSegment
	Span     source.Span
}

type PathSegment struct {
	Ident *Ident
	Args  *GenericArgs // nil if the segment has no <...>
}

// GenericArgs is the `<'a, T, Item = U>` list of a path segment.
type GenericArgs struct {
	Lifetimes []*Lifetime
	Types     []*Ty
	Bindings  []*TypeBinding
}

// TypeBinding is an associated type binding `Name = Ty`.
type TypeBinding struct {
	Ident *Ident
	Ty    *Ty
	Span  source.Span
}

func (a *GenericArgs) Empty() bool {
	return a == nil || len(a.Lifetimes)+len(a.Types)+len(a.Bindings) == 0
}

// PathFromIdents builds a plain path `a::b::c`.
func PathFromIdents(sp source.Span, names ...string) *Path {
	p := &Path{Span: sp}
	for _, n := range names {
		p.Segments = append(p.Segments, &PathSegment{Ident: NewIdent(n, sp)})
	}
	return p
}

// IsIdent reports whether the path is a single plain segment.
func (p *Path) IsIdent() bool {
	return p != nil && !p.Global && len(p.Segments) == 1 && p.Segments[0].Args.Empty()
}

func (p *Path) String() string {
	return printNode(func(pr *printer) { pr.path(p, false) })
}

func (p *Path) NtKind() token.NtKind { return token.NtPath }
