package ast

import "quasi/internal/source"

// Generics is the `<'a: 'b, T: Bound = Default>` list of an item. The where
// clause is kept alongside but prints separately.
type Generics struct {
	Lifetimes []*LifetimeDef
	TyParams  []*TyParam
	Where     *WhereClause
	Span      source.Span
}

type LifetimeDef struct {
	Lifetime *Lifetime
	Bounds   []*Lifetime
	Span     source.Span
}

type TyParam struct {
	Ident   *Ident
	Bounds  []*TyParamBound
	Default *Ty
	Span    source.Span
}

type BoundKind uint8

const (
	BoundTrait    BoundKind = iota // Path, ?Path
	BoundLifetime                  // 'a
)

type TyParamBound struct {
	Kind     BoundKind
	Maybe    bool // ?Sized
	Path     *Path
	Lifetime *Lifetime
	Span     source.Span
}

// Empty reports whether there are no lifetimes and no type parameters.
func (g *Generics) Empty() bool {
	return g == nil || len(g.Lifetimes)+len(g.TyParams) == 0
}

// String prints only the parameter list, "" when empty.
func (g *Generics) String() string {
	return printNode(func(pr *printer) { pr.generics(g) })
}

type WherePredicateKind uint8

const (
	WhereBound    WherePredicateKind = iota // Ty: Bounds
	WhereLifetime                           // 'a: 'b + 'c
)

type WhereClause struct {
	Predicates []*WherePredicate
	Span       source.Span
}

type WherePredicate struct {
	Kind           WherePredicateKind
	BoundedTy      *Ty
	Bounds         []*TyParamBound
	Lifetime       *Lifetime
	LifetimeBounds []*Lifetime
	Span           source.Span
}

func (w *WhereClause) Empty() bool {
	return w == nil || len(w.Predicates) == 0
}

// String prints "where ...", "" when empty.
func (w *WhereClause) String() string {
	return printNode(func(pr *printer) { pr.whereClause(w) })
}
