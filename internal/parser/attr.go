package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/lexer"
	"quasi/internal/token"
)

// parseOuterAttrs collects `#[...]` attributes; an inner attribute here is an error.
func (p *Parser) parseOuterAttrs() ([]*ast.Attribute, bool) {
	var attrs []*ast.Attribute
	for p.at(token.Pound) {
		a, ok := p.parseAttribute(false)
		if !ok {
			return nil, false
		}
		attrs = append(attrs, a)
	}
	return attrs, true
}

// parseInnerAttrs collects leading `#![...]` attributes.
func (p *Parser) parseInnerAttrs() ([]*ast.Attribute, bool) {
	var attrs []*ast.Attribute
	for p.at(token.Pound) && p.peekAt(1).Kind == token.Bang {
		a, ok := p.parseAttribute(true)
		if !ok {
			return nil, false
		}
		attrs = append(attrs, a)
	}
	return attrs, true
}

func (p *Parser) parseAttribute(permitInner bool) (*ast.Attribute, bool) {
	start, ok := p.expect(token.Pound)
	if !ok {
		return nil, false
	}
	style := ast.AttrOuter
	if p.at(token.Bang) {
		if !permitInner {
			return nil, p.fail(diag.SynInnerAttributeNotAllowed, "an inner attribute is not permitted in this context")
		}
		p.advance()
		style = ast.AttrInner
	}
	if _, ok := p.expect(token.LBracket); !ok {
		return nil, false
	}
	meta, ok := p.parseMetaItem()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBracket); !ok {
		return nil, false
	}
	return &ast.Attribute{Style: style, Value: meta, Span: p.spanFrom(start.Span)}, true
}

// parseMetaItem разбирает `word`, `name = lit` или `name(meta, ...)`.
func (p *Parser) parseMetaItem() (*ast.MetaItem, bool) {
	if p.atNt(token.NtMeta) {
		return p.advance().Nt.(*ast.MetaItem), true
	}
	tok := p.peek()
	if tok.Kind != token.Ident && !tok.Kind.IsKeyword() {
		return nil, p.unexpected(diag.SynExpectMetaItem, "meta item")
	}
	p.advance()
	m := &ast.MetaItem{Kind: ast.MetaWord, Name: tok.Text}
	switch {
	case p.eat(token.Eq):
		if !p.peek().IsLiteral() && !p.atAny(token.KwTrue, token.KwFalse) {
			return nil, p.unexpected(diag.SynBadLiteral, "literal")
		}
		lit, ok := p.parseLit()
		if !ok {
			return nil, false
		}
		m.Kind = ast.MetaNameValue
		m.Lit = lit
	case p.eat(token.LParen):
		m.Kind = ast.MetaList
		for !p.at(token.RParen) {
			sub, ok := p.parseMetaItem()
			if !ok {
				return nil, false
			}
			m.List = append(m.List, sub)
			if !p.eat(token.Comma) {
				break
			}
		}
		if _, ok := p.expect(token.RParen); !ok {
			return nil, false
		}
	}
	m.Span = p.spanFrom(tok.Span)
	return m, true
}

// parseLit converts the current literal token into an ast.Lit.
func (p *Parser) parseLit() (*ast.Lit, bool) {
	tok := p.peek()
	lit := &ast.Lit{Span: tok.Span}
	switch tok.Kind {
	case token.KwTrue, token.KwFalse:
		lit.Kind = ast.LitBool
		lit.Bool = tok.Kind == token.KwTrue
	case token.StrLit:
		s, err := lexer.CookString(tok.Text)
		if err != nil {
			return nil, p.fail(diag.SynBadLiteral, err.Error())
		}
		lit.Kind = ast.LitStr
		lit.Str = s
	case token.CharLit:
		r, err := lexer.CookChar(tok.Text)
		if err != nil {
			return nil, p.fail(diag.SynBadLiteral, err.Error())
		}
		lit.Kind = ast.LitChar
		lit.Char = r
	case token.IntLit:
		body, suffix := lexer.SplitNumber(tok.Text)
		ty, ok := ast.ParseIntTy(suffix)
		if !ok {
			return nil, p.fail(diag.SynBadLiteral, "invalid suffix `"+suffix+"` for integer literal")
		}
		v, err := lexer.ParseIntBody(body)
		if err != nil {
			return nil, p.fail(diag.SynBadLiteral, "integer literal is too large")
		}
		lit.Kind = ast.LitInt
		lit.Int = v
		lit.IntTy = ty
	case token.FloatLit:
		body, suffix := lexer.SplitNumber(tok.Text)
		if suffix != "" && suffix != "f32" && suffix != "f64" {
			return nil, p.fail(diag.SynBadLiteral, "invalid suffix `"+suffix+"` for float literal")
		}
		lit.Kind = ast.LitFloat
		lit.Float = body
		lit.FloatSufx = suffix
	default:
		return nil, p.unexpected(diag.SynBadLiteral, "literal")
	}
	p.advance()
	return lit, true
}

func isLitStart(k token.Kind) bool {
	return k.IsLiteral() || k == token.KwTrue || k == token.KwFalse
}
