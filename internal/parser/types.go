package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/token"
)

func (p *Parser) canBeginType() bool {
	switch p.peek().Kind {
	case token.Amp, token.AndAnd, token.LBracket, token.LParen, token.Bang, token.Underscore, token.ModSep:
		return true
	case token.Interpolated:
		return p.atNt(token.NtTy) || p.atNt(token.NtPath)
	}
	return isPathSegmentStart(p.peek().Kind)
}

func (p *Parser) parseTy() (*ast.Ty, bool) {
	if p.atNt(token.NtTy) {
		return p.advance().Nt.(*ast.Ty), true
	}
	start := p.peek().Span
	switch p.peek().Kind {
	case token.Amp, token.AndAnd:
		p.eatAmp()
		t := &ast.Ty{Kind: ast.TyRef}
		if p.at(token.Lifetime) {
			t.Lifetime, _ = p.parseLifetime()
		}
		t.Mut = p.eat(token.KwMut)
		elem, ok := p.parseTy()
		if !ok {
			return nil, false
		}
		t.Elem = elem
		t.Span = p.spanFrom(start)
		return t, true

	case token.LBracket:
		p.advance()
		elem, ok := p.parseTy()
		if !ok {
			return nil, false
		}
		t := &ast.Ty{Kind: ast.TySlice, Elem: elem}
		if p.eat(token.Semi) {
			n, ok := p.parseExprFresh()
			if !ok {
				return nil, false
			}
			t.Kind = ast.TyArray
			t.Len = n
		}
		if _, ok := p.expect(token.RBracket); !ok {
			return nil, false
		}
		t.Span = p.spanFrom(start)
		return t, true

	case token.LParen:
		p.advance()
		var elems []*ast.Ty
		trailingComma := false
		for !p.at(token.RParen) {
			elem, ok := p.parseTy()
			if !ok {
				return nil, false
			}
			elems = append(elems, elem)
			trailingComma = false
			if !p.eat(token.Comma) {
				break
			}
			trailingComma = true
		}
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
		if len(elems) == 1 && !trailingComma {
			return &ast.Ty{Kind: ast.TyParen, Elem: elems[0], Span: p.spanFrom(start)}, true
		}
		return &ast.Ty{Kind: ast.TyTuple, Elems: elems, Span: p.spanFrom(start)}, true

	case token.Bang:
		p.advance()
		return &ast.Ty{Kind: ast.TyNever, Span: p.spanFrom(start)}, true

	case token.Underscore:
		p.advance()
		return &ast.Ty{Kind: ast.TyInfer, Span: p.spanFrom(start)}, true
	}

	if p.atPathStart() {
		path, ok := p.parsePath(pathType)
		if !ok {
			return nil, false
		}
		return &ast.Ty{Kind: ast.TyPath, Path: path, Span: path.Span}, true
	}
	return nil, p.unexpected(diag.SynExpectType, "type")
}

// parseBounds разбирает `Bound + 'a + ?Sized`.
func (p *Parser) parseBounds() ([]*ast.TyParamBound, bool) {
	var bounds []*ast.TyParamBound
	for {
		start := p.peek().Span
		switch {
		case p.at(token.Lifetime):
			lt, _ := p.parseLifetime()
			bounds = append(bounds, &ast.TyParamBound{Kind: ast.BoundLifetime, Lifetime: lt, Span: lt.Span})
		case p.at(token.Question) || p.atPathStart():
			maybe := p.eat(token.Question)
			path, ok := p.parsePath(pathType)
			if !ok {
				return nil, false
			}
			bounds = append(bounds, &ast.TyParamBound{Kind: ast.BoundTrait, Maybe: maybe, Path: path, Span: p.spanFrom(start)})
		default:
			return nil, p.unexpected(diag.SynExpectType, "bound")
		}
		if !p.eat(token.Plus) {
			return bounds, true
		}
	}
}

// parseLifetimeBounds разбирает `'b + 'c`.
func (p *Parser) parseLifetimeBounds() ([]*ast.Lifetime, bool) {
	var out []*ast.Lifetime
	for {
		lt, ok := p.parseLifetime()
		if !ok {
			return nil, false
		}
		out = append(out, lt)
		if !p.eat(token.Plus) {
			return out, true
		}
	}
}
