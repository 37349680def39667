package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/source"
	"quasi/internal/token"
)

// parseGenerics разбирает `<'a: 'b, T: Bound = Default>`; без `<` возвращает пустой список.
func (p *Parser) parseGenerics() (*ast.Generics, bool) {
	g := &ast.Generics{}
	if !p.at(token.Lt) {
		sp := p.peek().Span
		g.Span = source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
		return g, true
	}
	start := p.advance().Span
	for !p.eatGt() {
		switch {
		case p.at(token.Lifetime):
			if len(g.TyParams) > 0 {
				return nil, p.fail(diag.SynUnexpectedToken, "lifetime parameters must be declared prior to type parameters")
			}
			lt, _ := p.parseLifetime()
			def := &ast.LifetimeDef{Lifetime: lt}
			if p.eat(token.Colon) {
				bounds, ok := p.parseLifetimeBounds()
				if !ok {
					return nil, false
				}
				def.Bounds = bounds
			}
			def.Span = p.spanFrom(lt.Span)
			g.Lifetimes = append(g.Lifetimes, def)
		case p.at(token.Ident):
			ident, _ := p.parseIdent()
			tp := &ast.TyParam{Ident: ident}
			if p.eat(token.Colon) {
				bounds, ok := p.parseBounds()
				if !ok {
					return nil, false
				}
				tp.Bounds = bounds
			}
			if p.eat(token.Eq) {
				def, ok := p.parseTy()
				if !ok {
					return nil, false
				}
				tp.Default = def
			}
			tp.Span = p.spanFrom(ident.Span)
			g.TyParams = append(g.TyParams, tp)
		default:
			return nil, p.unexpected(diag.SynExpectIdentifier, "generic parameter")
		}
		if p.eat(token.Comma) {
			continue
		}
		if p.eatGt() {
			break
		}
		return nil, p.unexpected(diag.SynUnexpectedToken, "`,` or `>`")
	}
	g.Span = p.spanFrom(start)
	return g, true
}

// parseWhereClause разбирает `where T: Bound, 'a: 'b`; без `where` возвращает пустой.
func (p *Parser) parseWhereClause() (*ast.WhereClause, bool) {
	w := &ast.WhereClause{}
	if !p.at(token.KwWhere) {
		sp := p.peek().Span
		w.Span = source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
		return w, true
	}
	start := p.advance().Span
	for {
		predStart := p.peek().Span
		switch {
		case p.at(token.Lifetime):
			lt, _ := p.parseLifetime()
			if _, ok := p.expect(token.Colon); !ok {
				return nil, false
			}
			bounds, ok := p.parseLifetimeBounds()
			if !ok {
				return nil, false
			}
			w.Predicates = append(w.Predicates, &ast.WherePredicate{
				Kind: ast.WhereLifetime, Lifetime: lt, LifetimeBounds: bounds, Span: p.spanFrom(predStart),
			})
		case p.canBeginType():
			ty, ok := p.parseTy()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Colon); !ok {
				return nil, false
			}
			bounds, ok := p.parseBounds()
			if !ok {
				return nil, false
			}
			w.Predicates = append(w.Predicates, &ast.WherePredicate{
				Kind: ast.WhereBound, BoundedTy: ty, Bounds: bounds, Span: p.spanFrom(predStart),
			})
		default:
			w.Span = p.spanFrom(start)
			return w, true
		}
		if !p.eat(token.Comma) {
			w.Span = p.spanFrom(start)
			return w, true
		}
	}
}

// parseGenericsWithWhere is used by items: the where clause, if any, is
// attached to the generics it follows.
func (p *Parser) attachWhere(g *ast.Generics) bool {
	w, ok := p.parseWhereClause()
	if !ok {
		return false
	}
	if !w.Empty() {
		g.Where = w
	}
	return true
}
