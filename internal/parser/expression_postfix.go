package parser

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/source"
	"quasi/internal/token"
)

// parsePostfix applies `.field`, `.method()`, `.0`, calls, indexing and `?`.
func (p *Parser) parsePostfix(x *ast.Expr) (*ast.Expr, bool) {
	for {
		switch p.peek().Kind {
		case token.Question:
			p.advance()
			x = &ast.Expr{Kind: ast.ExprTry, X: x, Span: p.spanFrom(x.Span)}
		case token.LParen:
			p.advance()
			args, _, ok := p.parseExprList(token.RParen)
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RParen); !ok {
				return nil, false
			}
			x = &ast.Expr{Kind: ast.ExprCall, X: x, Args: args, Span: p.spanFrom(x.Span)}
		case token.LBracket:
			p.advance()
			idx, ok := p.parseExprFresh()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RBracket); !ok {
				return nil, false
			}
			x = &ast.Expr{Kind: ast.ExprIndex, X: x, Y: idx, Span: p.spanFrom(x.Span)}
		case token.Dot:
			p.advance()
			var ok bool
			if x, ok = p.parseDotSuffix(x); !ok {
				return nil, false
			}
		default:
			return x, true
		}
	}
}

func (p *Parser) parseDotSuffix(x *ast.Expr) (*ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		ident, _ := p.parseIdent()
		var types []*ast.Ty
		if p.at(token.ModSep) && p.peekAt(1).Kind == token.Lt {
			p.advance()
			args, ok := p.parseGenericArgs()
			if !ok {
				return nil, false
			}
			if len(args.Lifetimes) > 0 || len(args.Bindings) > 0 {
				return nil, p.failAt(diag.SynUnexpectedToken, p.lastSpan, "method turbofish takes only types")
			}
			types = args.Types
		}
		if len(types) > 0 || p.at(token.LParen) {
			if _, ok := p.expect(token.LParen); !ok {
				return nil, false
			}
			args, _, ok := p.parseExprList(token.RParen)
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RParen); !ok {
				return nil, false
			}
			return &ast.Expr{Kind: ast.ExprMethodCall, X: x, Ident: ident, Types: types, Args: args, Span: p.spanFrom(x.Span)}, true
		}
		return &ast.Expr{Kind: ast.ExprField, X: x, Ident: ident, Span: p.spanFrom(x.Span)}, true

	case token.IntLit:
		idx, ok := p.tupleIndex(tok.Text, tok.Span)
		if !ok {
			return nil, false
		}
		p.advance()
		return &ast.Expr{Kind: ast.ExprTupField, X: x, Index: idx, Span: p.spanFrom(x.Span)}, true

	case token.FloatLit:
		// `x.0.1` лексится как `x` `.` `0.1`: разрезаем на два индекса.
		first, second, found := strings.Cut(tok.Text, ".")
		if !found || second == "" {
			return nil, p.fail(diag.SynInvalidTupleIndex, "invalid tuple index `"+tok.Text+"`")
		}
		firstSpan, secondSpan := tok.Span, tok.Span
		if int(tok.Span.Len()) == len(tok.Text) {
			firstSpan.End = firstSpan.Start + uint32(len(first))
			secondSpan.Start = firstSpan.End + 1
		}
		i, ok := p.tupleIndex(first, firstSpan)
		if !ok {
			return nil, false
		}
		j, ok := p.tupleIndex(second, secondSpan)
		if !ok {
			return nil, false
		}
		p.advance()
		inner := &ast.Expr{Kind: ast.ExprTupField, X: x, Index: i, Span: x.Span.Cover(firstSpan)}
		return &ast.Expr{Kind: ast.ExprTupField, X: inner, Index: j, Span: p.spanFrom(x.Span)}, true
	}
	return nil, p.unexpected(diag.SynExpectIdentifier, "field name or tuple index")
}

// tupleIndex validates a plain decimal index without suffix.
func (p *Parser) tupleIndex(text string, sp source.Span) (uint32, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, p.failAt(diag.SynInvalidTupleIndex, sp, "invalid tuple index `"+text+"`")
		}
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, p.failAt(diag.SynInvalidTupleIndex, sp, "tuple index `"+text+"` is too large")
	}
	idx, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, p.failAt(diag.SynInvalidTupleIndex, sp, "tuple index `"+text+"` is too large")
	}
	return idx, true
}
