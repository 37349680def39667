package parser

import (
	"quasi/internal/ast"
	"quasi/internal/diag"
	"quasi/internal/token"
)

// parseBlock разбирает `{ stmts... tail }` (или `unsafe { ... }`).
func (p *Parser) parseBlock() (*ast.Block, bool) {
	if p.atNt(token.NtBlock) {
		return p.advance().Nt.(*ast.Block), true
	}
	start := p.peek().Span
	rules := ast.DefaultBlock
	if p.eat(token.KwUnsafe) {
		rules = ast.UnsafeBlock
	}
	if _, ok := p.expect(token.LBrace); !ok {
		return nil, false
	}
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	b := &ast.Block{Rules: rules}
	for !p.at(token.RBrace) {
		if p.eat(token.Semi) {
			continue
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		if stmt == nil {
			return nil, p.unexpected(diag.SynUnclosedDelimiter, "`}`")
		}
		switch stmt.Kind {
		case ast.StmtLocal:
			if _, ok := p.expect(token.Semi); !ok {
				return nil, false
			}
			keep, ok := p.cfgKeep(stmt.Local.Attrs)
			if !ok {
				return nil, false
			}
			if !keep {
				continue
			}
		case ast.StmtExpr:
			switch {
			case p.eat(token.Semi):
				stmt = &ast.Stmt{Kind: ast.StmtSemi, Expr: stmt.Expr, Span: p.spanFrom(stmt.Span)}
			case p.at(token.RBrace):
				b.Expr = stmt.Expr
				continue
			case !ast.ExprRequiresSemiToBeStmt(stmt.Expr), ast.IsBraceMac(stmt.Expr):
				// блочные выражения и `m! { }` не требуют `;`
			default:
				return nil, p.unexpected(diag.SynExpectSemicolon, "`;` or `}`")
			}
		case ast.StmtItem:
			keep, ok := p.cfgKeep(stmt.Item.Attrs)
			if !ok {
				return nil, false
			}
			if !keep {
				continue
			}
		}
		b.Stmts = append(b.Stmts, stmt)
	}
	p.advance() // }
	b.Span = p.spanFrom(start)
	return b, true
}

// parseStmt returns nil at `}` or end of input. The terminating `;` is left
// for the caller.
func (p *Parser) parseStmt() (*ast.Stmt, bool) {
	if p.atAny(token.RBrace, token.EOF) {
		return nil, true
	}
	if p.atNt(token.NtStmt) {
		return p.advance().Nt.(*ast.Stmt), true
	}
	start := p.peek().Span
	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return nil, false
	}

	if p.at(token.KwLet) {
		p.advance()
		local := &ast.Local{Attrs: attrs}
		pat, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		local.Pat = pat
		if p.eat(token.Colon) {
			if local.Ty, ok = p.parseTy(); !ok {
				return nil, false
			}
		}
		if p.eat(token.Eq) {
			if local.Init, ok = p.parseExprFresh(); !ok {
				return nil, false
			}
		}
		local.Span = p.spanFrom(start)
		return &ast.Stmt{Kind: ast.StmtLocal, Local: local, Span: local.Span}, true
	}

	if p.atItemStart(false) {
		item, ok := p.parseItemWithAttrs(attrs, false)
		if !ok {
			return nil, false
		}
		return &ast.Stmt{Kind: ast.StmtItem, Item: item, Span: item.Span}, true
	}
	if len(attrs) > 0 {
		return nil, p.unexpected(diag.SynExpectItem, "item or `let` statement after attributes")
	}

	e, ok := p.parseStmtExpr()
	if !ok {
		return nil, false
	}
	return &ast.Stmt{Kind: ast.StmtExpr, Expr: e, Span: e.Span}, true
}

// parseStmtExpr parses an expression in statement position: a leading
// block-like expression ends the statement unless a method call, field
// access or `?` continues it.
func (p *Parser) parseStmtExpr() (*ast.Expr, bool) {
	if !p.atBlockLike() {
		return p.parseExprFresh()
	}
	saved := p.noStruct
	p.noStruct = false
	defer func() { p.noStruct = saved }()

	e, ok := p.parseBlockLike()
	if !ok {
		return nil, false
	}
	if !p.atAny(token.Dot, token.Question) {
		return e, true
	}
	if e, ok = p.parsePostfix(e); !ok {
		return nil, false
	}
	return p.parseAssign(e)
}
