package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/token"
)

type pathMode uint8

const (
	// pathType: generic args follow the segment directly (`Vec<T>`).
	pathType pathMode = iota
	// pathExpr: generic args need a turbofish (`Vec::<T>`); a bare `<` is an operator.
	pathExpr
)

func isPathSegmentStart(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwSelfValue, token.KwSelfType, token.KwSuper, token.KwCrate:
		return true
	}
	return false
}

// atPathStart reports whether a path (or an interpolated one) begins here.
func (p *Parser) atPathStart() bool {
	k := p.peek().Kind
	return isPathSegmentStart(k) || k == token.ModSep && isPathSegmentStart(p.peekAt(1).Kind) || p.atNt(token.NtPath)
}

func (p *Parser) parseIdent() (*ast.Ident, bool) {
	if !p.at(token.Ident) {
		return nil, p.unexpected(diag.SynExpectIdentifier, "identifier")
	}
	tok := p.advance()
	return ast.NewIdent(tok.Text, tok.Span), true
}

func (p *Parser) parseLifetime() (*ast.Lifetime, bool) {
	if !p.at(token.Lifetime) {
		return nil, p.unexpected(diag.SynExpectIdentifier, "lifetime")
	}
	tok := p.advance()
	return &ast.Lifetime{Name: tok.Text, Span: tok.Span}, true
}

func (p *Parser) parsePath(mode pathMode) (*ast.Path, bool) {
	if p.atNt(token.NtPath) {
		return p.advance().Nt.(*ast.Path), true
	}
	start := p.peek().Span
	path := &ast.Path{}
	if p.at(token.ModSep) {
		p.advance()
		path.Global = true
	}
	for {
		if !isPathSegmentStart(p.peek().Kind) {
			return nil, p.unexpected(diag.SynExpectIdentifier, "identifier")
		}
		tok := p.advance()
		seg := &ast.PathSegment{Ident: ast.NewIdent(tok.Text, tok.Span)}

		switch {
		case mode == pathType && p.at(token.Lt):
			args, ok := p.parseGenericArgs()
			if !ok {
				return nil, false
			}
			seg.Args = args
		case p.at(token.ModSep) && p.peekAt(1).Kind == token.Lt:
			p.advance() // ::
			args, ok := p.parseGenericArgs()
			if !ok {
				return nil, false
			}
			seg.Args = args
		}
		path.Segments = append(path.Segments, seg)

		if p.at(token.ModSep) && isPathSegmentStart(p.peekAt(1).Kind) {
			p.advance()
			continue
		}
		break
	}
	path.Span = p.spanFrom(start)
	return path, true
}

// parseGenericArgs разбирает `<'a, T, Item = U>`; `>>` закрывает по одному уровню.
func (p *Parser) parseGenericArgs() (*ast.GenericArgs, bool) {
	if _, ok := p.expect(token.Lt); !ok {
		return nil, false
	}
	args := &ast.GenericArgs{}
	for !p.eatGt() {
		switch {
		case p.at(token.Lifetime):
			lt, _ := p.parseLifetime()
			args.Lifetimes = append(args.Lifetimes, lt)
		case p.at(token.Ident) && p.peekAt(1).Kind == token.Eq:
			ident, _ := p.parseIdent()
			p.advance() // =
			ty, ok := p.parseTy()
			if !ok {
				return nil, false
			}
			args.Bindings = append(args.Bindings, &ast.TypeBinding{Ident: ident, Ty: ty, Span: ident.Span.Cover(ty.Span)})
		default:
			ty, ok := p.parseTy()
			if !ok {
				return nil, false
			}
			args.Types = append(args.Types, ty)
		}
		if p.eat(token.Comma) {
			continue
		}
		if p.eatGt() {
			break
		}
		return nil, p.unexpected(diag.SynUnexpectedToken, "`,` or `>`")
	}
	return args, true
}
