package ast

import (
	"quasi/internal/expand"
	"quasi/internal/source"
	"quasi/internal/token"
)

// Conversions to token trees. Literal-like nodes become plain tokens; the
// rich kinds become a single Interpolated token carrying the node, so the
// parser can take them back without re-parsing; Generics and WhereClause are
// printed and re-lexed.

func interpolated(nt token.Nonterminal, sp source.Span) []token.Tree {
	return []token.Tree{token.TokenTree(token.NewInterpolated(nt, sp))}
}

func (id *Ident) ToTokens(*expand.Context) ([]token.Tree, error) {
	return []token.Tree{token.TokenTree(token.NewIdent(id.Name, id.Span))}, nil
}

func (lt *Lifetime) ToTokens(*expand.Context) ([]token.Tree, error) {
	return []token.Tree{token.TokenTree(token.NewLit(token.Lifetime, lt.Name, lt.Span))}, nil
}

// Token returns the literal as one token.
func (l *Lit) Token() token.Token {
	switch l.Kind {
	case LitStr:
		return token.NewLit(token.StrLit, l.String(), l.Span)
	case LitChar:
		return token.NewLit(token.CharLit, l.String(), l.Span)
	case LitInt:
		return token.NewLit(token.IntLit, l.String(), l.Span)
	case LitFloat:
		return token.NewLit(token.FloatLit, l.String(), l.Span)
	}
	if l.Bool {
		return token.New(token.KwTrue, l.Span)
	}
	return token.New(token.KwFalse, l.Span)
}

func (l *Lit) ToTokens(*expand.Context) ([]token.Tree, error) {
	return []token.Tree{token.TokenTree(l.Token())}, nil
}

// Paths carry no span of their own in the token stream.
func (p *Path) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(p, source.NoSpan), nil
}

func (t *Ty) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(t, t.Span), nil
}

func (b *Block) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(b, b.Span), nil
}

func (it *Item) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(it, it.Span), nil
}

func (it *ImplItem) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(it, it.Span), nil
}

func (it *TraitItem) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(it, it.Span), nil
}

func (e *Expr) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(e, e.Span), nil
}

func (p *Pat) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(p, p.Span), nil
}

func (a *Arm) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(a, source.NoSpan), nil
}

func (m *MetaItem) ToTokens(*expand.Context) ([]token.Tree, error) {
	return interpolated(m, m.Span), nil
}

// ToTokens appends `;` when the statement needs one to stay a statement.
func (s *Stmt) ToTokens(*expand.Context) ([]token.Tree, error) {
	trees := interpolated(s, s.Span)
	if StmtEndsWithSemi(s) {
		trees = append(trees, token.TokenTree(token.New(token.Semi, s.Span)))
	}
	return trees, nil
}

func (g *Generics) ToTokens(cx *expand.Context) ([]token.Tree, error) {
	return cx.ParseTTs(expand.QuoteExpansion, g.String())
}

func (w *WhereClause) ToTokens(cx *expand.Context) ([]token.Tree, error) {
	return cx.ParseTTs(expand.QuoteExpansion, w.String())
}

// ToTokens yields `#`, `!` for inner attributes, and a `[...]` group holding
// the meta item, all at the attribute's span.
func (a *Attribute) ToTokens(cx *expand.Context) ([]token.Tree, error) {
	inner, err := a.Value.ToTokens(cx)
	if err != nil {
		return nil, err
	}
	out := []token.Tree{token.TokenTree(token.New(token.Pound, a.Span))}
	if a.Style == AttrInner {
		out = append(out, token.TokenTree(token.New(token.Bang, a.Span)))
	}
	return append(out, token.DelimitedTree(token.Bracket, a.Span, inner)), nil
}
