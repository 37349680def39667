package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/token"
)

var binOps = map[token.Kind]ast.BinOp{
	token.Plus:    ast.BinAdd,
	token.Minus:   ast.BinSub,
	token.Star:    ast.BinMul,
	token.Slash:   ast.BinDiv,
	token.Percent: ast.BinRem,
	token.AndAnd:  ast.BinAnd,
	token.OrOr:    ast.BinOr,
	token.Caret:   ast.BinBitXor,
	token.Amp:     ast.BinBitAnd,
	token.Pipe:    ast.BinBitOr,
	token.Shl:     ast.BinShl,
	token.Shr:     ast.BinShr,
	token.EqEq:    ast.BinEq,
	token.Lt:      ast.BinLt,
	token.Le:      ast.BinLe,
	token.Ne:      ast.BinNe,
	token.Ge:      ast.BinGe,
	token.Gt:      ast.BinGt,
}

var assignOps = map[token.Kind]ast.BinOp{
	token.PlusEq:    ast.BinAdd,
	token.MinusEq:   ast.BinSub,
	token.StarEq:    ast.BinMul,
	token.SlashEq:   ast.BinDiv,
	token.PercentEq: ast.BinRem,
	token.CaretEq:   ast.BinBitXor,
	token.AmpEq:     ast.BinBitAnd,
	token.PipeEq:    ast.BinBitOr,
	token.ShlEq:     ast.BinShl,
	token.ShrEq:     ast.BinShr,
}

// canBeginExpr reports whether the current token may start an expression.
func (p *Parser) canBeginExpr() bool {
	k := p.peek().Kind
	switch k {
	case token.LParen, token.LBracket, token.LBrace,
		token.Minus, token.Bang, token.Star, token.Amp, token.AndAnd, token.DotDot,
		token.KwIf, token.KwMatch, token.KwWhile, token.KwLoop, token.KwFor,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwUnsafe, token.Lifetime:
		return true
	case token.Interpolated:
		return p.atNt(token.NtExpr) || p.atNt(token.NtPath) || p.atNt(token.NtBlock)
	}
	return isLitStart(k) || p.atPathStart()
}

// parseExprFresh parses a full expression with struct literals allowed again
// (inside delimiters the head-of-condition restriction no longer applies).
func (p *Parser) parseExprFresh() (*ast.Expr, bool) {
	saved := p.noStruct
	p.noStruct = false
	e, ok := p.parseExpr()
	p.noStruct = saved
	return e, ok
}

// parseCond parses the head of if/while/for/match: struct literals are off.
func (p *Parser) parseCond() (*ast.Expr, bool) {
	saved := p.noStruct
	p.noStruct = true
	e, ok := p.parseExpr()
	p.noStruct = saved
	return e, ok
}

func (p *Parser) parseExpr() (*ast.Expr, bool) {
	return p.parseAssign(nil)
}

// parseAssign: присваивание правоассоциативно и слабее всего остального.
// A non-nil lhs is an already parsed leftmost operand.
func (p *Parser) parseAssign(lhs *ast.Expr) (*ast.Expr, bool) {
	x, ok := p.parseRange(lhs)
	if !ok {
		return nil, false
	}
	if p.at(token.Eq) {
		p.advance()
		y, ok := p.parseAssign(nil)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprAssign, X: x, Y: y, Span: x.Span.Cover(y.Span)}, true
	}
	if op, isOp := assignOps[p.peek().Kind]; isOp {
		p.advance()
		y, ok := p.parseAssign(nil)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprAssignOp, BinOp: op, X: x, Y: y, Span: x.Span.Cover(y.Span)}, true
	}
	return x, true
}

func (p *Parser) parseRange(lhs *ast.Expr) (*ast.Expr, bool) {
	if lhs == nil && p.at(token.DotDot) {
		start := p.advance().Span
		e := &ast.Expr{Kind: ast.ExprRange}
		if p.canBeginExpr() {
			y, ok := p.parseBinary(ast.PrecRange+1, nil)
			if !ok {
				return nil, false
			}
			e.Y = y
		}
		e.Span = p.spanFrom(start)
		return e, true
	}
	x, ok := p.parseBinary(ast.PrecRange+1, lhs)
	if !ok {
		return nil, false
	}
	if !p.at(token.DotDot) {
		return x, true
	}
	p.advance()
	e := &ast.Expr{Kind: ast.ExprRange, X: x}
	if p.canBeginExpr() && !(p.noStruct && p.at(token.LBrace)) {
		y, ok := p.parseBinary(ast.PrecRange+1, nil)
		if !ok {
			return nil, false
		}
		e.Y = y
	}
	e.Span = p.spanFrom(x.Span)
	return e, true
}

// parseBinary does precedence climbing over binary operators and `as`.
func (p *Parser) parseBinary(minPrec int, lhs *ast.Expr) (*ast.Expr, bool) {
	x := lhs
	if x == nil {
		var ok bool
		if x, ok = p.parsePrefix(); !ok {
			return nil, false
		}
	}
	for {
		if p.at(token.KwAs) {
			if ast.PrecCast < minPrec {
				return x, true
			}
			p.advance()
			ty, ok := p.parseTy()
			if !ok {
				return nil, false
			}
			x = &ast.Expr{Kind: ast.ExprCast, X: x, Ty: ty, Span: x.Span.Cover(ty.Span)}
			continue
		}
		op, isOp := binOps[p.peek().Kind]
		if !isOp || op.Precedence() < minPrec {
			return x, true
		}
		if op.IsComparison() && x.Kind == ast.ExprBinary && x.BinOp.IsComparison() {
			return nil, p.fail(diag.SynUnexpectedToken, "comparison operators cannot be chained")
		}
		p.advance()
		y, ok := p.parseBinary(op.Precedence()+1, nil)
		if !ok {
			return nil, false
		}
		x = &ast.Expr{Kind: ast.ExprBinary, BinOp: op, X: x, Y: y, Span: x.Span.Cover(y.Span)}
	}
}

func (p *Parser) parsePrefix() (*ast.Expr, bool) {
	start := p.peek().Span
	var op ast.UnOp
	switch p.peek().Kind {
	case token.Minus:
		op = ast.UnNeg
	case token.Bang:
		op = ast.UnNot
	case token.Star:
		op = ast.UnDeref
	case token.Amp, token.AndAnd:
		p.eatAmp()
		mut := p.eat(token.KwMut)
		x, ok := p.parsePrefix()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprAddrOf, Mut: mut, X: x, Span: p.spanFrom(start)}, true
	default:
		x, ok := p.parsePrimary()
		if !ok {
			return nil, false
		}
		return p.parsePostfix(x)
	}
	p.advance()
	x, ok := p.parsePrefix()
	if !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprUnary, UnOp: op, X: x, Span: p.spanFrom(start)}, true
}

// parseExprList parses `expr, expr, ...` up to close (not consumed); the
// second result reports a trailing comma.
func (p *Parser) parseExprList(close token.Kind) ([]*ast.Expr, bool, bool) {
	var list []*ast.Expr
	trailing := false
	for !p.at(close) {
		e, ok := p.parseExprFresh()
		if !ok {
			return nil, false, false
		}
		list = append(list, e)
		trailing = false
		if !p.eat(token.Comma) {
			break
		}
		trailing = true
	}
	return list, trailing, true
}
