package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/source"
	"quasi/internal/token"
)

func (p *Parser) parsePat() (*ast.Pat, bool) {
	if p.atNt(token.NtPat) {
		return p.advance().Nt.(*ast.Pat), true
	}
	start := p.peek().Span
	switch p.peek().Kind {
	case token.Underscore:
		p.advance()
		return &ast.Pat{Kind: ast.PatWild, Span: start}, true

	case token.Amp, token.AndAnd:
		p.eatAmp()
		mut := p.eat(token.KwMut)
		sub, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		return &ast.Pat{Kind: ast.PatRef, Mut: mut, Sub: sub, Span: p.spanFrom(start)}, true

	case token.LParen:
		p.advance()
		var pats []*ast.Pat
		trailing := false
		for !p.at(token.RParen) {
			sub, ok := p.parsePat()
			if !ok {
				return nil, false
			}
			pats = append(pats, sub)
			trailing = false
			if !p.eat(token.Comma) {
				break
			}
			trailing = true
		}
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
		if len(pats) == 1 && !trailing {
			// скобки без запятой ничего не меняют
			return pats[0], true
		}
		return &ast.Pat{Kind: ast.PatTuple, Pats: pats, Span: p.spanFrom(start)}, true

	case token.KwRef, token.KwMut:
		return p.parseBindingPat()

	case token.Minus, token.IntLit, token.FloatLit, token.StrLit, token.CharLit, token.KwTrue, token.KwFalse:
		lo, ok := p.parsePatLitExpr()
		if !ok {
			return nil, false
		}
		return p.parsePatRangeEnd(lo)
	}

	if p.at(token.Ident) && isBindingFollow(p.peekAt(1).Kind) {
		return p.parseBindingPat()
	}
	if !p.atPathStart() {
		return nil, p.unexpected(diag.SynExpectPattern, "pattern")
	}
	path, ok := p.parsePath(pathExpr)
	if !ok {
		return nil, false
	}
	switch p.peek().Kind {
	case token.LParen:
		p.advance()
		var pats []*ast.Pat
		for !p.at(token.RParen) {
			sub, ok := p.parsePat()
			if !ok {
				return nil, false
			}
			pats = append(pats, sub)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
		return &ast.Pat{Kind: ast.PatTupleStruct, Path: path, Pats: pats, Span: p.spanFrom(pathStart(path, start))}, true
	case token.LBrace:
		return p.parseStructPat(path, start)
	case token.DotDotDot:
		lo := &ast.Expr{Kind: ast.ExprPath, Path: path, Span: path.Span}
		return p.parsePatRangeEnd(lo)
	}
	return &ast.Pat{Kind: ast.PatPath, Path: path, Span: path.Span}, true
}

// isBindingFollow: after a lone identifier these tokens make it a binding
// rather than the start of a path pattern.
func isBindingFollow(k token.Kind) bool {
	switch k {
	case token.ModSep, token.LParen, token.LBrace, token.DotDotDot, token.Bang:
		return false
	}
	return true
}

// parseBindingPat разбирает `ref mut name @ sub`.
func (p *Parser) parseBindingPat() (*ast.Pat, bool) {
	start := p.peek().Span
	pat := &ast.Pat{Kind: ast.PatIdent, Binding: ast.ByValue}
	if p.eat(token.KwRef) {
		pat.Binding = ast.ByRef
	}
	pat.Mut = p.eat(token.KwMut)
	ident, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	pat.Ident = ident
	if p.eat(token.At) {
		sub, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		pat.Sub = sub
	}
	pat.Span = p.spanFrom(start)
	return pat, true
}

// parsePatLitExpr разбирает литерал с необязательным `-`.
func (p *Parser) parsePatLitExpr() (*ast.Expr, bool) {
	start := p.peek().Span
	neg := p.eat(token.Minus)
	if !isLitStart(p.peek().Kind) {
		return nil, p.unexpected(diag.SynExpectPattern, "literal")
	}
	lit, ok := p.parseLit()
	if !ok {
		return nil, false
	}
	e := &ast.Expr{Kind: ast.ExprLit, Lit: lit, Span: lit.Span}
	if neg {
		e = &ast.Expr{Kind: ast.ExprUnary, UnOp: ast.UnNeg, X: e, Span: p.spanFrom(start)}
	}
	return e, true
}

func (p *Parser) parsePatRangeEnd(lo *ast.Expr) (*ast.Pat, bool) {
	if !p.eat(token.DotDotDot) {
		return &ast.Pat{Kind: ast.PatLit, Expr: lo, Span: lo.Span}, true
	}
	var hi *ast.Expr
	if p.atPathStart() {
		path, ok := p.parsePath(pathExpr)
		if !ok {
			return nil, false
		}
		hi = &ast.Expr{Kind: ast.ExprPath, Path: path, Span: path.Span}
	} else {
		var ok bool
		if hi, ok = p.parsePatLitExpr(); !ok {
			return nil, false
		}
	}
	return &ast.Pat{Kind: ast.PatRange, Expr: lo, Hi: hi, Span: p.spanFrom(lo.Span)}, true
}

func (p *Parser) parseStructPat(path *ast.Path, start source.Span) (*ast.Pat, bool) {
	p.advance() // {
	pat := &ast.Pat{Kind: ast.PatStruct, Path: path}
	for !p.at(token.RBrace) {
		if p.eat(token.DotDot) {
			pat.Etc = true
			break
		}
		fieldStart := p.peek().Span
		var f *ast.FieldPat
		if p.atAny(token.KwRef, token.KwMut) || p.at(token.Ident) && p.peekAt(1).Kind != token.Colon {
			bind, ok := p.parseBindingPat()
			if !ok {
				return nil, false
			}
			f = &ast.FieldPat{Ident: bind.Ident, Pat: bind, Shorthand: true}
		} else {
			ident, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Colon); !ok {
				return nil, false
			}
			sub, ok := p.parsePat()
			if !ok {
				return nil, false
			}
			f = &ast.FieldPat{Ident: ident, Pat: sub}
		}
		f.Span = p.spanFrom(fieldStart)
		pat.Fields = append(pat.Fields, f)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return nil, false
	}
	pat.Span = p.spanFrom(pathStart(path, start))
	return pat, true
}
