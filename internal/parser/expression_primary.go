package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/source"
	"quasi/internal/token"
)

func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Interpolated:
		switch tok.Nt.NtKind() {
		case token.NtExpr:
			p.advance()
			return tok.Nt.(*ast.Expr), true
		case token.NtBlock:
			p.advance()
			b := tok.Nt.(*ast.Block)
			return &ast.Expr{Kind: ast.ExprBlock, Block: b, Span: tok.Span}, true
		case token.NtPath:
			return p.parsePathExpr()
		}
		return nil, p.unexpected(diag.SynExpectExpression, "expression")

	case token.IntLit, token.FloatLit, token.StrLit, token.CharLit, token.KwTrue, token.KwFalse:
		lit, ok := p.parseLit()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprLit, Lit: lit, Span: lit.Span}, true

	case token.LParen:
		return p.parseParenOrTuple()
	case token.LBracket:
		return p.parseArray()
	case token.LBrace, token.KwUnsafe, token.KwIf, token.KwMatch,
		token.KwWhile, token.KwLoop, token.KwFor, token.Lifetime:
		return p.parseBlockLike()

	case token.KwReturn:
		p.advance()
		e := &ast.Expr{Kind: ast.ExprRet}
		if p.canBeginExpr() && !(p.noStruct && p.at(token.LBrace)) {
			x, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			e.X = x
		}
		e.Span = p.spanFrom(tok.Span)
		return e, true

	case token.KwBreak, token.KwContinue:
		p.advance()
		e := &ast.Expr{Kind: ast.ExprBreak}
		if tok.Kind == token.KwContinue {
			e.Kind = ast.ExprContinue
		}
		if p.at(token.Lifetime) {
			e.Label, _ = p.parseLifetime()
		}
		e.Span = p.spanFrom(tok.Span)
		return e, true
	}
	if p.atPathStart() {
		return p.parsePathExpr()
	}
	return nil, p.unexpected(diag.SynExpectExpression, "expression")
}

// atBlockLike reports whether an expression that ends with a block starts here.
func (p *Parser) atBlockLike() bool {
	switch p.peek().Kind {
	case token.LBrace, token.KwIf, token.KwMatch, token.KwWhile, token.KwLoop, token.KwFor:
		return true
	case token.KwUnsafe:
		return p.peekAt(1).Kind == token.LBrace
	case token.Lifetime:
		return p.peekAt(1).Kind == token.Colon
	case token.Interpolated:
		return p.atNt(token.NtBlock)
	}
	return false
}

func (p *Parser) parseBlockLike() (*ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Interpolated:
		p.advance()
		return &ast.Expr{Kind: ast.ExprBlock, Block: tok.Nt.(*ast.Block), Span: tok.Span}, true
	case token.LBrace, token.KwUnsafe:
		b, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprBlock, Block: b, Span: b.Span}, true
	case token.KwIf:
		return p.parseIf()
	case token.KwMatch:
		return p.parseMatch()
	}

	var label *ast.Lifetime
	if p.at(token.Lifetime) {
		label, _ = p.parseLifetime()
		if _, ok := p.expect(token.Colon); !ok {
			return nil, false
		}
	}
	e := &ast.Expr{Label: label}
	switch p.peek().Kind {
	case token.KwWhile:
		p.advance()
		cond, ok := p.parseCond()
		if !ok {
			return nil, false
		}
		e.Kind = ast.ExprWhile
		e.X = cond
	case token.KwLoop:
		p.advance()
		e.Kind = ast.ExprLoop
	case token.KwFor:
		p.advance()
		pat, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KwIn); !ok {
			return nil, false
		}
		iter, ok := p.parseCond()
		if !ok {
			return nil, false
		}
		e.Kind = ast.ExprForLoop
		e.Pat = pat
		e.X = iter
	default:
		return nil, p.unexpected(diag.SynUnexpectedToken, "`while`, `loop` or `for` after a label")
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	e.Block = body
	e.Span = p.spanFrom(tok.Span)
	return e, true
}

func (p *Parser) parseIf() (*ast.Expr, bool) {
	start, ok := p.expect(token.KwIf)
	if !ok {
		return nil, false
	}
	cond, ok := p.parseCond()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	e := &ast.Expr{Kind: ast.ExprIf, X: cond, Block: then}
	if p.eat(token.KwElse) {
		var els *ast.Expr
		if p.at(token.KwIf) {
			els, ok = p.parseIf()
		} else {
			var b *ast.Block
			b, ok = p.parseBlock()
			if ok {
				els = &ast.Expr{Kind: ast.ExprBlock, Block: b, Span: b.Span}
			}
		}
		if !ok {
			return nil, false
		}
		e.Else = els
	}
	e.Span = p.spanFrom(start.Span)
	return e, true
}

func (p *Parser) parseMatch() (*ast.Expr, bool) {
	start, ok := p.expect(token.KwMatch)
	if !ok {
		return nil, false
	}
	scrutinee, ok := p.parseCond()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace); !ok {
		return nil, false
	}
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	var arms []*ast.Arm
	for !p.at(token.RBrace) {
		if p.atNt(token.NtArm) {
			arms = append(arms, p.advance().Nt.(*ast.Arm))
			p.eat(token.Comma)
			continue
		}
		arm, ok := p.parseArm()
		if !ok {
			return nil, false
		}
		keep, ok := p.cfgKeep(arm.Attrs)
		if !ok {
			return nil, false
		}
		if keep {
			arms = append(arms, arm)
		}
	}
	p.advance() // }
	return &ast.Expr{Kind: ast.ExprMatch, X: scrutinee, Arms: arms, Span: p.spanFrom(start.Span)}, true
}

// parseArm разбирает `pat | pat if guard => body,`.
func (p *Parser) parseArm() (*ast.Arm, bool) {
	if p.atNt(token.NtArm) {
		return p.advance().Nt.(*ast.Arm), true
	}
	start := p.peek().Span
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return nil, false
	}
	arm := &ast.Arm{Attrs: attrs}
	p.eat(token.Pipe)
	for {
		pat, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		arm.Pats = append(arm.Pats, pat)
		if !p.eat(token.Pipe) {
			break
		}
	}
	if p.eat(token.KwIf) {
		guard, ok := p.parseExprFresh()
		if !ok {
			return nil, false
		}
		arm.Guard = guard
	}
	if _, ok := p.expect(token.FatArrow); !ok {
		return nil, false
	}
	body, ok := p.parseStmtExpr()
	if !ok {
		return nil, false
	}
	arm.Body = body
	arm.Span = p.spanFrom(start)

	if !ast.ExprRequiresSemiToBeStmt(body) || p.atAny(token.RBrace, token.EOF) {
		p.eat(token.Comma)
		return arm, true
	}
	if _, ok := p.expect(token.Comma); !ok {
		return nil, false
	}
	return arm, true
}

func (p *Parser) parseParenOrTuple() (*ast.Expr, bool) {
	start := p.advance().Span // (
	elems, trailing, ok := p.parseExprList(token.RParen)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen); !ok {
		return nil, false
	}
	if len(elems) == 1 && !trailing {
		return &ast.Expr{Kind: ast.ExprParen, X: elems[0], Span: p.spanFrom(start)}, true
	}
	return &ast.Expr{Kind: ast.ExprTuple, Args: elems, Span: p.spanFrom(start)}, true
}

func (p *Parser) parseArray() (*ast.Expr, bool) {
	start := p.advance().Span // [
	if p.eat(token.RBracket) {
		return &ast.Expr{Kind: ast.ExprArray, Span: p.spanFrom(start)}, true
	}
	first, ok := p.parseExprFresh()
	if !ok {
		return nil, false
	}
	if p.eat(token.Semi) {
		count, ok := p.parseExprFresh()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RBracket); !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprRepeat, X: first, Y: count, Span: p.spanFrom(start)}, true
	}
	elems := []*ast.Expr{first}
	if p.eat(token.Comma) {
		rest, _, ok := p.parseExprList(token.RBracket)
		if !ok {
			return nil, false
		}
		elems = append(elems, rest...)
	}
	if _, ok := p.expect(token.RBracket); !ok {
		return nil, false
	}
	return &ast.Expr{Kind: ast.ExprArray, Args: elems, Span: p.spanFrom(start)}, true
}

// parsePathExpr: путь, вызов макроса `path!(...)` или struct literal.
func (p *Parser) parsePathExpr() (*ast.Expr, bool) {
	path, ok := p.parsePath(pathExpr)
	if !ok {
		return nil, false
	}
	if p.at(token.Bang) && isOpenDelim(p.peekAt(1).Kind) {
		p.advance()
		mac, ok := p.parseMacBody(path)
		if !ok {
			return nil, false
		}
		return &ast.Expr{Kind: ast.ExprMac, Mac: mac, Span: mac.Span}, true
	}
	if p.at(token.LBrace) && !p.noStruct {
		return p.parseStructLit(path)
	}
	return &ast.Expr{Kind: ast.ExprPath, Path: path, Span: path.Span}, true
}

func (p *Parser) parseStructLit(path *ast.Path) (*ast.Expr, bool) {
	p.advance() // {
	e := &ast.Expr{Kind: ast.ExprStruct, Path: path}
	for !p.at(token.RBrace) {
		if p.eat(token.DotDot) {
			base, ok := p.parseExprFresh()
			if !ok {
				return nil, false
			}
			e.Base = base
			break
		}
		ident, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		f := &ast.FieldInit{Name: ast.Spanned[*ast.Ident]{Node: ident, Span: ident.Span}}
		if p.eat(token.Colon) {
			val, ok := p.parseExprFresh()
			if !ok {
				return nil, false
			}
			f.Expr = val
		} else {
			f.Shorthand = true
			f.Expr = &ast.Expr{Kind: ast.ExprPath, Path: ast.PathFromIdents(ident.Span, ident.Name), Span: ident.Span}
		}
		f.Span = p.spanFrom(ident.Span)
		e.Fields = append(e.Fields, f)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return nil, false
	}
	e.Span = p.spanFrom(pathStart(path, p.lastSpan))
	return e, true
}

func pathStart(path *ast.Path, fallback source.Span) source.Span {
	if path.Span.Empty() {
		return fallback
	}
	return path.Span
}

func isOpenDelim(k token.Kind) bool {
	return k == token.LParen || k == token.LBracket || k == token.LBrace
}

// parseMacBody reads the delimited group after `path!` back into token trees.
func (p *Parser) parseMacBody(path *ast.Path) (*ast.Mac, bool) {
	if !isOpenDelim(p.peek().Kind) {
		return nil, p.unexpected(diag.SynUnexpectedToken, "one of `(`, `[` or `{`")
	}
	tree, ok := p.parseTokenTree()
	if !ok {
		return nil, false
	}
	g := tree.Group
	return &ast.Mac{Path: path, Delim: g.Delim, Tts: g.Trees, Span: pathStart(path, g.OpenSpan).Cover(g.CloseSpan)}, true
}

// parseTokenTree regroups one tree from the flat token stream.
func (p *Parser) parseTokenTree() (token.Tree, bool) {
	open := p.peek()
	delim, isDelim := token.DelimOf(open.Kind)
	if !isDelim || !isOpenDelim(open.Kind) {
		if open.Kind == token.EOF {
			return token.Tree{}, p.fail(diag.SynUnclosedDelimiter, "unexpected end of input in token tree")
		}
		if isDelim {
			return token.Tree{}, p.fail(diag.SynUnexpectedCloseDelimiter, "unexpected closing delimiter "+describe(open))
		}
		return token.TokenTree(p.advance()), true
	}
	p.advance()
	var trees []token.Tree
	for !p.at(delim.Close()) {
		t, ok := p.parseTokenTree()
		if !ok {
			return token.Tree{}, false
		}
		trees = append(trees, t)
	}
	closeTok := p.advance()
	return token.Tree{Kind: token.TreeDelimited, Group: &token.Delimited{
		Delim:     delim,
		OpenSpan:  open.Span,
		CloseSpan: closeTok.Span,
		Trees:     trees,
	}}, true
}
