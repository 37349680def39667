package parser

import (
	"quasi/internal/ast"
	"quasi/internal/token"
)

// Exported entry points. Each consumes exactly one node starting at the
// current token and leaves the rest of the stream in place. Once an entry
// point fails the parser is poisoned and every later call returns the same
// *Error.

func finish[T any](p *Parser, node T, ok bool) (T, error) {
	if err := p.Err(); err != nil || !ok {
		var zero T
		return zero, err
	}
	return node, nil
}

func (p *Parser) ParseExpr() (*ast.Expr, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	e, ok := p.parseExprFresh()
	return finish(p, e, ok)
}

// ParseItem returns nil, nil when no item starts at the current token.
func (p *Parser) ParseItem() (*ast.Item, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	it, ok := p.parseItem()
	return finish(p, it, ok)
}

// ParseItems parses items until end of input, dropping those disabled by
// `#[cfg(...)]`. Leading inner attributes must be consumed first with
// ParseInnerAttrs.
func (p *Parser) ParseItems() ([]*ast.Item, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	items, ok := p.parseItemsUntil(token.EOF)
	return finish(p, items, ok)
}

// ParseInnerAttrs consumes leading `#![...]` attributes (file or module level).
func (p *Parser) ParseInnerAttrs() ([]*ast.Attribute, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	attrs, ok := p.parseInnerAttrs()
	return finish(p, attrs, ok)
}

func (p *Parser) ParsePat() (*ast.Pat, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	pat, ok := p.parsePat()
	return finish(p, pat, ok)
}

// ParseArm consumes one match arm together with its trailing comma.
func (p *Parser) ParseArm() (*ast.Arm, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	arm, ok := p.parseArm()
	return finish(p, arm, ok)
}

func (p *Parser) ParseTy() (*ast.Ty, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	t, ok := p.parseTy()
	return finish(p, t, ok)
}

// ParseStmt returns nil, nil at `}` or end of input. A terminating `;` is
// not consumed.
func (p *Parser) ParseStmt() (*ast.Stmt, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	s, ok := p.parseStmt()
	return finish(p, s, ok)
}

// ParseAttribute parses `#[...]`, or `#![...]` when permitInner is set.
func (p *Parser) ParseAttribute(permitInner bool) (*ast.Attribute, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	a, ok := p.parseAttribute(permitInner)
	return finish(p, a, ok)
}

// ParseGenerics returns empty generics when no `<` follows.
func (p *Parser) ParseGenerics() (*ast.Generics, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	g, ok := p.parseGenerics()
	return finish(p, g, ok)
}

// ParseWhereClause returns an empty clause when no `where` follows.
func (p *Parser) ParseWhereClause() (*ast.WhereClause, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	w, ok := p.parseWhereClause()
	return finish(p, w, ok)
}

func (p *Parser) ParseMetaItem() (*ast.MetaItem, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	m, ok := p.parseMetaItem()
	return finish(p, m, ok)
}

func (p *Parser) ParseImplItem() (*ast.ImplItem, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	it, ok := p.parseImplItem()
	return finish(p, it, ok)
}

func (p *Parser) ParseTraitItem() (*ast.TraitItem, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	it, ok := p.parseTraitItem()
	return finish(p, it, ok)
}

func (p *Parser) ParseBlock() (*ast.Block, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	b, ok := p.parseBlock()
	return finish(p, b, ok)
}

// ParsePath parses a path in type style: generic arguments follow a segment
// directly, without `::`.
func (p *Parser) ParsePath() (*ast.Path, error) {
	if p.err != nil {
		return nil, p.Err()
	}
	path, ok := p.parsePath(pathType)
	return finish(p, path, ok)
}
